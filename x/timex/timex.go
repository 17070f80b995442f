// Package timex has the timing helpers that work before any timer runs.
package timex

import "time"

// DefaultLoopsPerUS approximates one microsecond of spinning on a ~72 MHz
// Cortex-M3.
const DefaultLoopsPerUS = 80

//go:noinline
func spin(n int) int {
	s := 0
	for i := 0; i < n; i++ {
		s += i
	}
	return s
}

// SpinMicroseconds busy-waits roughly us microseconds. It uses no timer
// and is safe in interrupt context.
func SpinMicroseconds(us, loopsPerUS int) {
	for ; us > 0; us-- {
		spin(loopsPerUS)
	}
}

// SysTickMax is the largest SysTick reload value (24-bit counter).
const SysTickMax = 1<<24 - 1

// SysTickPeriod returns the period of a SysTick running at coreHz/div with
// the given reload. coreHz==0 or div==0 yields 0.
func SysTickPeriod(coreHz, div, reload uint32) time.Duration {
	if coreHz == 0 || div == 0 {
		return 0
	}
	ticks := uint64(reload) + 1
	return time.Duration(ticks * uint64(div) * uint64(time.Second) / uint64(coreHz))
}
