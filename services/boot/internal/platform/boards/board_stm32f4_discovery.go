//go:build board_stm32f4_discovery

package boards

import "bootstage-go/types"

const (
	buttonPull = types.PullDown
	pulls      = types.PullsAll
)

const _ = pulls>>buttonPull&1 - 1

var Selected = types.Board{
	Name:   "stm32f4_discovery",
	Family: types.FamilySTM32F4,
	Pins: [types.NumPins]types.PinDescriptor{
		types.PinButton: {Port: types.PortA, Bit: 0},
		types.PinLED:    {Port: types.PortD, Bit: 14},
	},
	ButtonActive:   types.ActiveHigh,
	ButtonPull:     buttonPull,
	SupportedPulls: pulls,
	Image:          types.ImageDescriptor{Base: 0x08004000, VectorOffset: 4},
	CoreClockHz:    168_000_000,
}
