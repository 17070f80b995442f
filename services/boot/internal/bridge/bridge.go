// Package bridge holds the interrupt handlers that connect the transport
// controller to the rings. Handlers are short and never block; none of them
// may decide the boot path or jump.
package bridge

import (
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/x/shmring"
	"bootstage-go/x/timex"
)

var _ transport.Endpoint = (*Bridge)(nil)

// WakeupLine is the EXTI pending register and line used for USB wake-up.
// A zero Addr disables the acknowledge (families without the line).
type WakeupLine struct {
	Addr uint32
	Line uint8
}

// F1WakeupLine is EXTI line 18 on STM32F1/F3.
var F1WakeupLine = WakeupLine{Addr: 0x40010414, Line: 18}

// Bridge owns the interrupt-side ring handles: the RX producer and the TX
// consumer.
type Bridge struct {
	rx *shmring.Producer
	tx *shmring.Consumer

	bus    regs.Bus
	wakeup WakeupLine
	ctrl   transport.Controller

	loopsPerUS int
}

type Config struct {
	RX         *shmring.Producer
	TX         *shmring.Consumer
	Bus        regs.Bus
	Wakeup     WakeupLine
	Controller transport.Controller
	// LoopsPerUS calibrates DelayMicroseconds; 0 uses timex.DefaultLoopsPerUS.
	LoopsPerUS int
}

func New(cfg Config) *Bridge {
	if cfg.Controller == nil {
		cfg.Controller = transport.Detached{}
	}
	if cfg.LoopsPerUS <= 0 {
		cfg.LoopsPerUS = timex.DefaultLoopsPerUS
	}
	return &Bridge{
		rx:         cfg.RX,
		tx:         cfg.TX,
		bus:        cfg.Bus,
		wakeup:     cfg.Wakeup,
		ctrl:       cfg.Controller,
		loopsPerUS: cfg.LoopsPerUS,
	}
}

// Controller returns the bound transport controller.
func (b *Bridge) Controller() transport.Controller { return b.ctrl }

// ---- Interrupt handlers ----

// USB is the transport controller interrupt (USB_LP_CAN1_RX0 on F1/F3,
// OTG_FS on F2/F4).
func (b *Bridge) USB() { b.ctrl.Service() }

// USBWakeup acknowledges the wake-up EXTI line.
func (b *Bridge) USBWakeup() {
	if b.wakeup.Addr == 0 || b.bus == nil {
		return
	}
	// EXTI_PR is write-one-to-clear.
	b.bus.Store(b.wakeup.Addr, 1<<b.wakeup.Line)
}

// SysTick is reserved for a future time base consumer.
func (b *Bridge) SysTick() {}

// WindowWatchdog absorbs a stray WWDG vector seen on F401 parts.
func (b *Bridge) WindowWatchdog() {}

// ---- transport.Endpoint ----

func (b *Bridge) Receive(c byte) shmring.PushResult { return b.rx.Push(c) }

func (b *Bridge) NextTX() (byte, bool) { return b.tx.Pop() }

func (b *Bridge) HasSpaceFor(n int) bool { return b.rx.HasCapacityFor(n) }

// Connected always reports true; the bootloader has no line-state tracking.
func (b *Bridge) Connected() bool { return true }

func (b *Bridge) EventsUsed() int { return b.rx.Ring().Len() }

func (b *Bridge) DelayMicroseconds(us int) { timex.SpinMicroseconds(us, b.loopsPerUS) }

// RxOverflows counts host bytes rejected by a full RX ring.
func (b *Bridge) RxOverflows() uint32 { return b.rx.Ring().Overflows() }
