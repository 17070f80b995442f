//go:build tinygo && (stm32f103 || stm32f3)

package bridge

import (
	"device/stm32"
	"runtime/interrupt"
)

var active *Bridge

// Bind routes the USB vectors to b and unmasks them. Call only once the
// boot path is settled.
func Bind(b *Bridge) {
	active = b
	usb := interrupt.New(stm32.IRQ_USB_LP_CAN_RX0, func(interrupt.Interrupt) { active.USB() })
	wake := interrupt.New(stm32.IRQ_USBWakeup, func(interrupt.Interrupt) { active.USBWakeup() })
	usb.Enable()
	wake.Enable()
}

//export SysTick_Handler
func sysTickHandler() {
	if active != nil {
		active.SysTick()
	}
}
