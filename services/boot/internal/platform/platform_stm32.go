//go:build tinygo && stm32

package platform

import (
	"device/arm"

	"bootstage-go/services/boot/internal/bridge"
	"bootstage-go/services/boot/internal/bringup"
	"bootstage-go/services/boot/internal/jump"
	"bootstage-go/services/boot/internal/pins"
	"bootstage-go/services/boot/internal/platform/boards"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
)

// Selected binds the board to real registers. The USB device stack is
// linked separately, so the controller starts Detached.
func Selected() Platform {
	board := &boards.Selected
	bus := regs.MMIO{}
	return Platform{
		Board:      board,
		Bus:        bus,
		Plan:       bringup.PlanFor(board.Family),
		GPIO:       pins.NewRegGPIO(bus, layoutFor(board.Family), board),
		Flash:      regs.Memory{Bus: bus},
		Transfer:   jump.Branch,
		Controller: transport.Detached{},
		Wakeup:     wakeupFor(board.Family),
		Bind:       bridge.Bind,
		Reset:      arm.SystemReset,
	}
}
