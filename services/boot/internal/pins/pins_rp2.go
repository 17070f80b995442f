//go:build rp2040 || rp2350

package pins

import (
	"machine"

	"bootstage-go/services/boot/internal/core"
	"bootstage-go/types"
)

var _ core.GPIO = (*RP2GPIO)(nil)

// RP2GPIO maps descriptors to machine.Pin(Bit); RP2 has a single bank.
type RP2GPIO struct {
	table *[types.NumPins]types.PinDescriptor
}

func NewRP2GPIO(board *types.Board) *RP2GPIO { return &RP2GPIO{table: &board.Pins} }

func (g *RP2GPIO) pin(id types.PinID) machine.Pin { return machine.Pin(g.table[id].Bit) }

func (g *RP2GPIO) ReadDigital(id types.PinID) bool { return g.pin(id).Get() }

func (g *RP2GPIO) ConfigureOutput(id types.PinID, initial bool) {
	p := g.pin(id)
	p.Set(initial)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(initial)
}

func (g *RP2GPIO) ConfigureInput(id types.PinID, pull types.Pull) {
	var mode machine.PinMode
	switch pull {
	case types.PullUp:
		mode = machine.PinInputPullup
	case types.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	g.pin(id).Configure(machine.PinConfig{Mode: mode})
}
