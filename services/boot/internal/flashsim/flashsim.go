// Package flashsim models application flash for host runs. An image is
// loaded from Intel HEX into one contiguous span; everything outside it, and
// any gap inside it, reads as erased (0xFF).
package flashsim

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
	"github.com/sigurn/crc16"
)

const erased = 0xFF

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

type Flash struct {
	base uint32
	data []byte
}

// Erased returns flash with nothing programmed.
func Erased() *Flash { return &Flash{} }

// FromBytes programs data at base.
func FromBytes(base uint32, data []byte) *Flash {
	return &Flash{base: base, data: append([]byte(nil), data...)}
}

// LoadHex parses an Intel HEX image.
func LoadHex(r io.Reader) (*Flash, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return nil, fmt.Errorf("flashsim: parse hex: %w", err)
	}
	segs := mem.GetDataSegments()
	if len(segs) == 0 {
		return Erased(), nil
	}

	lo, hi := segs[0].Address, segs[0].Address
	for _, s := range segs {
		if s.Address < lo {
			lo = s.Address
		}
		if end := s.Address + uint32(len(s.Data)); end > hi {
			hi = end
		}
	}
	f := &Flash{base: lo, data: make([]byte, hi-lo)}
	for i := range f.data {
		f.data[i] = erased
	}
	for _, s := range segs {
		copy(f.data[s.Address-lo:], s.Data)
	}
	return f, nil
}

// Load32 reads a little-endian word as the core would.
func (f *Flash) Load32(addr uint32) uint32 {
	var w [4]byte
	for i := range w {
		w[i] = f.byteAt(addr + uint32(i))
	}
	return binary.LittleEndian.Uint32(w[:])
}

func (f *Flash) byteAt(addr uint32) byte {
	if addr < f.base || addr-f.base >= uint32(len(f.data)) {
		return erased
	}
	return f.data[addr-f.base]
}

// Base is the lowest programmed address.
func (f *Flash) Base() uint32 { return f.base }

// Size is the programmed span in bytes.
func (f *Flash) Size() int { return len(f.data) }

// CRC16 fingerprints the programmed span (CRC-16/CCITT-FALSE).
func (f *Flash) CRC16() uint16 { return crc16.Checksum(f.data, crcTable) }
