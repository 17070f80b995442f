// Package bringup runs the one-time hardware initialisation that precedes
// the boot decision: clocks, interrupt priority grouping, the SysTick time
// base, declared I2C buses and the transport controller.
package bringup

import (
	"sync/atomic"

	"bootstage-go/errcode"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/types"
	"bootstage-go/x/conv"
	"bootstage-go/x/timex"

	"tinygo.org/x/drivers"
)

// ---- System control block ----

const (
	AIRCR = 0xE000ED0C
	SHPR3 = 0xE000ED20

	SysTickCTRL = 0xE000E010
	SysTickLOAD = 0xE000E014
	SysTickVAL  = 0xE000E018

	aircrVectKey = 0x05FA << 16
	// PRIGROUP=3: four bits of preemption priority, no sub-priority.
	priGroup4 = 3 << 8

	sysTickEnable  = 1 << 0
	sysTickInt     = 1 << 1
	sysTickDiv     = 8
	sysTickPrioPos = 24
)

// I2CFactory resolves declared bus names ("i2c0") to driver handles.
type I2CFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

type Config struct {
	Board *types.Board
	Bus   regs.Bus
	Plan  ClockPlan

	// I2C may be nil when the board declares no buses.
	I2C I2CFactory

	Controller transport.Controller
	Endpoint   transport.Endpoint
}

// Peripherals are the handles bring-up produced.
type Peripherals struct {
	I2C map[string]drivers.I2C
	// Missing lists declared buses the factory could not supply.
	Missing []string
	// Present lists the board's probe devices that acknowledged a read.
	Present []types.I2CDevice
}

// Once guards bring-up. The loader holds one per reset; the zero value is
// ready to use.
type Once struct{ done atomic.Bool }

// Initialize brings the hardware to a known state. It runs exactly once per
// Once; a second call panics. Interrupts are left masked and the transport
// controller is bound but not started: both happen only once the loader has
// decided to stay.
func (o *Once) Initialize(cfg Config) Peripherals {
	if !o.done.CompareAndSwap(false, true) {
		panic(errcode.AlreadyInitialised)
	}

	if cfg.Bus != nil {
		apply(cfg.Bus, cfg.Plan.Enable)
		apply(cfg.Bus, cfg.Plan.Prescale)
		if cfg.Board != nil && cfg.Board.DisableSWJ && cfg.Plan.SWJ != nil {
			apply(cfg.Bus, []Step{*cfg.Plan.SWJ})
		}
		if cfg.Plan.PriorityGrouping {
			cfg.Bus.Store(AIRCR, aircrVectKey|priGroup4)
		}
		if cfg.Plan.SysTick {
			startSysTick(cfg.Bus)
			if cfg.Board != nil {
				println("[bringup] systick wraps every",
					timex.SysTickPeriod(cfg.Board.CoreClockHz, sysTickDiv, timex.SysTickMax).String())
			}
		}
	}

	var p Peripherals
	if cfg.Board != nil && len(cfg.Board.I2C) > 0 {
		p.I2C = make(map[string]drivers.I2C, len(cfg.Board.I2C))
		for _, id := range cfg.Board.I2C {
			var (
				b  drivers.I2C
				ok bool
			)
			if cfg.I2C != nil {
				b, ok = cfg.I2C.ByID(id)
			}
			if !ok {
				println("[bringup] i2c unavailable:", id)
				p.Missing = append(p.Missing, id)
				continue
			}
			p.I2C[id] = b
		}
		p.Present = probe(p.I2C, cfg.Board.Probe)
	}

	ctrl := cfg.Controller
	if ctrl == nil {
		ctrl = transport.Detached{}
	}
	ctrl.Init(cfg.Endpoint)

	println("[bringup] plan", cfg.Plan.Name, "done")
	return p
}

// probe reads one byte from each device; an acknowledged read marks it
// present.
func probe(buses map[string]drivers.I2C, devs []types.I2CDevice) []types.I2CDevice {
	var present []types.I2CDevice
	var rd [1]byte
	for _, d := range devs {
		b, ok := buses[d.Bus]
		if !ok {
			continue
		}
		if err := b.Tx(d.Addr, nil, rd[:]); err != nil {
			println("[bringup] no ack from", d.Bus, conv.Hex32(uint32(d.Addr)))
			continue
		}
		present = append(present, d)
	}
	return present
}

func apply(b regs.Bus, steps []Step) {
	for _, s := range steps {
		b.Store(s.Addr, b.Load(s.Addr)&^s.Clear|s.Set)
	}
}

// startSysTick runs the counter from HCLK/8 over the full 24-bit range at
// the highest priority. TICKINT stays clear: the SysTick vector is bound
// but not armed.
func startSysTick(b regs.Bus) {
	b.Store(SysTickCTRL, 0)
	b.Store(SysTickLOAD, timex.SysTickMax)
	b.Store(SysTickVAL, 0)
	regs.ClearBits(b, SHPR3, 0xFF<<sysTickPrioPos)
	// CLKSOURCE=0 selects the HCLK/8 reference.
	b.Store(SysTickCTRL, sysTickEnable)
}
