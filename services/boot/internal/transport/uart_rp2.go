//go:build rp2040 || rp2350

package transport

import (
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// UART carries the stream over an RP2 UART. uartx owns the UART interrupt
// and its own RX buffer; a pump goroutine moves bytes between that buffer
// and the rings and is the only user of both ring sides it touches.
type UART struct {
	hw  *uartx.UART
	cfg uartx.UARTConfig
	ep  Endpoint
	err error
}

func NewUART(hw *uartx.UART, cfg uartx.UARTConfig) *UART {
	return &UART{hw: hw, cfg: cfg}
}

// Init binds ep only. uartx.Configure unmasks the UART interrupt, so it
// waits for Start.
func (c *UART) Init(ep Endpoint) { c.ep = ep }

func (c *UART) Start() {
	// Defaults inside uartx apply if zero.
	if err := c.hw.Configure(c.cfg); err != nil {
		c.err = err
		println("[transport] uart configure failed:", err.Error())
		return
	}
	go c.pump()
}

func (c *UART) Service() {
	if err := pumpOnce(c.hw, c.ep); err != nil && c.err == nil {
		c.err = err
		println("[transport]", err.Error())
	}
}

// Err returns the first configure or driver error.
func (c *UART) Err() error { return c.err }

func (c *UART) pump() {
	for {
		c.Service()
		time.Sleep(500 * time.Microsecond)
	}
}
