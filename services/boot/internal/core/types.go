package core

import "bootstage-go/types"

// ---- GPIO ----

// GPIO is the pin abstraction used by the gate and the loader.
type GPIO interface {
	// ReadDigital samples the electrical level without side effects.
	ReadDigital(id types.PinID) bool
	// ConfigureOutput selects push-pull output driving initial.
	ConfigureOutput(id types.PinID, initial bool)
	ConfigureInput(id types.PinID, pull types.Pull)
}

// ---- Memory & control transfer ----

// Memory reads 32-bit words of memory-mapped flash.
type Memory interface {
	Load32(addr uint32) uint32
}

// Transfer hands the processor to entry. On hardware it never returns.
type Transfer func(entry uint32)
