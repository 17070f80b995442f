//go:build tinygo && (stm32f4 || stm32f2)

package bridge

import (
	"device/stm32"
	"runtime/interrupt"
)

var active *Bridge

// Bind routes the OTG_FS and WWDG vectors to b and unmasks them.
func Bind(b *Bridge) {
	active = b
	otg := interrupt.New(stm32.IRQ_OTG_FS, func(interrupt.Interrupt) { active.USB() })
	wwdg := interrupt.New(stm32.IRQ_WWDG, func(interrupt.Interrupt) { active.WindowWatchdog() })
	otg.Enable()
	wwdg.Enable()
}

//export SysTick_Handler
func sysTickHandler() {
	if active != nil {
		active.SysTick()
	}
}
