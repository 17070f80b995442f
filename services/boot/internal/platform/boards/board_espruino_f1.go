//go:build board_espruino_f1

package boards

import "bootstage-go/types"

const (
	buttonPull = types.PullDown
	pulls      = types.PullsAll
)

const _ = pulls>>buttonPull&1 - 1

// The LEDs share PA13..PA15 with SWJ, so the debug port is released.
var Selected = types.Board{
	Name:   "espruino_f1",
	Family: types.FamilySTM32F1,
	Pins: [types.NumPins]types.PinDescriptor{
		types.PinButton: {Port: types.PortB, Bit: 12},
		types.PinLED:    {Port: types.PortA, Bit: 13},
	},
	ButtonActive:   types.ActiveHigh,
	ButtonPull:     buttonPull,
	SupportedPulls: pulls,
	Image:          types.ImageDescriptor{Base: 0x08002800, VectorOffset: 4},
	CoreClockHz:    72_000_000,
	DisableSWJ:     true,
}
