// Package regs abstracts 32-bit memory-mapped registers so that pin and
// bring-up code runs unchanged against real hardware or a fake.
package regs

// Bus reads and writes 32-bit registers by absolute address.
type Bus interface {
	Load(addr uint32) uint32
	Store(addr uint32, v uint32)
}

func SetBits(b Bus, addr, mask uint32) {
	b.Store(addr, b.Load(addr)|mask)
}

func ClearBits(b Bus, addr, mask uint32) {
	b.Store(addr, b.Load(addr)&^mask)
}

// ReplaceBits clears mask and ORs in value<<pos (value pre-shift).
func ReplaceBits(b Bus, addr, value, mask uint32, pos uint8) {
	b.Store(addr, b.Load(addr)&^(mask<<pos)|(value&mask)<<pos)
}

// Memory adapts a Bus to word reads of memory-mapped flash.
type Memory struct{ Bus Bus }

func (m Memory) Load32(addr uint32) uint32 { return m.Bus.Load(addr) }
