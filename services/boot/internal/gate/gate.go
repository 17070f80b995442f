// Package gate decides the boot path from a single sample of the boot button.
package gate

import (
	"bootstage-go/services/boot/internal/core"
	"bootstage-go/types"
)

// Decide samples the button once. No debounce: a glitch at reset can flip
// the result, which is acceptable for a hand-held button.
func Decide(gpio core.GPIO, polarity types.Polarity) types.BootDecision {
	level := gpio.ReadDigital(types.PinButton)
	if Engaged(level, polarity) {
		return types.StayInBootloader
	}
	return types.ResumeApplication
}

// Engaged maps an electrical level to the button's logical state.
func Engaged(level bool, polarity types.Polarity) bool {
	if polarity == types.ActiveLow {
		return !level
	}
	return level
}
