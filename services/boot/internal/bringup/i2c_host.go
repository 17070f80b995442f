//go:build !rp2040 && !rp2350

package bringup

import (
	"sync"

	"bootstage-go/errcode"

	"tinygo.org/x/drivers"
)

// HostI2C implements drivers.I2C for host builds and records the last
// transaction. Addresses in Absent do not acknowledge.
type HostI2C struct {
	mu     sync.Mutex
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
	Count  int
	Absent map[uint16]bool
}

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.Absent[addr] {
		return &errcode.E{C: errcode.NotConnected, Op: "i2c.tx", Msg: "nack"}
	}
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	h.Count++
	return nil
}

// MapI2C is a fixed bus table.
type MapI2C map[string]drivers.I2C

func (m MapI2C) ByID(id string) (drivers.I2C, bool) {
	b, ok := m[id]
	return b, ok
}

// DefaultI2CFactory provides inert "i2c0" and "i2c1" buses.
func DefaultI2CFactory() I2CFactory {
	return MapI2C{"i2c0": &HostI2C{}, "i2c1": &HostI2C{}}
}
