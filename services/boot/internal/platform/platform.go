// Package platform assembles the pieces one build needs: the selected
// board, its register bus, pin driver, clock plan, transport controller
// and the control-transfer primitive.
package platform

import (
	"bootstage-go/services/boot/internal/bridge"
	"bootstage-go/services/boot/internal/bringup"
	"bootstage-go/services/boot/internal/core"
	"bootstage-go/services/boot/internal/pins"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/types"
)

type Platform struct {
	Board *types.Board
	Bus   regs.Bus
	Plan  bringup.ClockPlan
	I2C   bringup.I2CFactory

	GPIO     core.GPIO
	Flash    core.Memory
	Transfer core.Transfer

	Controller transport.Controller
	Wakeup     bridge.WakeupLine
	// Bind unmasks the transport vectors; see bridge.Bind.
	Bind func(*bridge.Bridge)
	// Reset restarts the core once the bootloader has nothing left to do.
	Reset func()
}

// layoutFor picks the GPIO register layout for an STM32 family.
func layoutFor(f types.Family) pins.Layout {
	switch f {
	case types.FamilySTM32F3:
		return pins.F3
	case types.FamilySTM32F4:
		return pins.F4
	default:
		return pins.F1
	}
}

// wakeupFor returns the USB wake-up EXTI line where the family has one.
func wakeupFor(f types.Family) bridge.WakeupLine {
	switch f {
	case types.FamilySTM32F1, types.FamilySTM32F3:
		return bridge.F1WakeupLine
	default:
		return bridge.WakeupLine{}
	}
}
