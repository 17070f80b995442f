//go:build rp2040 || rp2350

package platform

import (
	"device/arm"
	"machine"

	"bootstage-go/services/boot/internal/bridge"
	"bootstage-go/services/boot/internal/bringup"
	"bootstage-go/services/boot/internal/jump"
	"bootstage-go/services/boot/internal/pins"
	"bootstage-go/services/boot/internal/platform/boards"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Selected carries the stream over UART0 at 115200 on the default pins.
func Selected() Platform {
	board := &boards.Selected
	bus := regs.MMIO{}
	uart := transport.NewUART(uartx.UART0, uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return Platform{
		Board:      board,
		Bus:        bus,
		Plan:       bringup.PlanFor(board.Family),
		I2C:        bringup.DefaultI2CFactory(),
		GPIO:       pins.NewRP2GPIO(board),
		Flash:      regs.Memory{Bus: bus},
		Transfer:   jump.Branch,
		Controller: uart,
		Bind:       bridge.Bind,
		Reset:      arm.SystemReset,
	}
}
