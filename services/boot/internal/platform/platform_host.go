//go:build !tinygo

package platform

import (
	"bootstage-go/services/boot/internal/bridge"
	"bootstage-go/services/boot/internal/bringup"
	"bootstage-go/services/boot/internal/pins"
	"bootstage-go/services/boot/internal/platform/boards"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/x/conv"
)

// Selected returns the simulated platform: the board's registers live in a
// regs.Fake, flash reads as erased and transfers only log. Callers (tests,
// bootsim) replace Flash, Transfer and Controller as needed.
func Selected() Platform {
	board := &boards.Selected
	bus := regs.NewFake()
	flash := regs.NewFake()
	flash.Default = 0xFFFFFFFF

	return Platform{
		Board:      board,
		Bus:        bus,
		Plan:       bringup.PlanFor(board.Family),
		I2C:        bringup.DefaultI2CFactory(),
		GPIO:       pins.NewRegGPIO(bus, layoutFor(board.Family), board),
		Flash:      regs.Memory{Bus: flash},
		Transfer:   func(entry uint32) { println("[boot] transfer to", conv.Hex32(entry)) },
		Controller: transport.Detached{},
		Wakeup:     wakeupFor(board.Family),
		Bind:       bridge.Bind,
		Reset:      func() {},
	}
}
