// Package pins maps logical pins to GPIO registers.
package pins

import (
	"bootstage-go/services/boot/internal/core"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/types"
)

// Ensure the register GPIO satisfies the contract at compile time.
var _ core.GPIO = (*RegGPIO)(nil)

// Layout describes how one STM32 family arranges a GPIO bank.
type Layout interface {
	portBase(p types.Port) uint32
	read(b regs.Bus, base uint32, bit uint8) bool
	output(b regs.Bus, base uint32, bit uint8, initial bool)
	input(b regs.Bus, base uint32, bit uint8, pull types.Pull)
}

// RegGPIO drives pins through a register bus using a family layout and the
// board's pin table.
type RegGPIO struct {
	bus    regs.Bus
	layout Layout
	table  *[types.NumPins]types.PinDescriptor
}

func NewRegGPIO(bus regs.Bus, layout Layout, board *types.Board) *RegGPIO {
	return &RegGPIO{bus: bus, layout: layout, table: &board.Pins}
}

func (g *RegGPIO) ReadDigital(id types.PinID) bool {
	d := g.table[id]
	return g.layout.read(g.bus, g.layout.portBase(d.Port), d.Bit)
}

func (g *RegGPIO) ConfigureOutput(id types.PinID, initial bool) {
	d := g.table[id]
	g.layout.output(g.bus, g.layout.portBase(d.Port), d.Bit, initial)
}

func (g *RegGPIO) ConfigureInput(id types.PinID, pull types.Pull) {
	d := g.table[id]
	g.layout.input(g.bus, g.layout.portBase(d.Port), d.Bit, pull)
}

// Base returns the register block address for a descriptor's port.
func (g *RegGPIO) Base(id types.PinID) uint32 {
	return g.layout.portBase(g.table[id].Port)
}
