//go:build !board_espruino_f1 && !board_stm32f4_discovery && !board_pico

package boards

import "bootstage-go/types"

const (
	buttonPull = types.PullDown
	pulls      = types.PullsAll
)

const _ = pulls>>buttonPull&1 - 1

var Selected = types.Board{
	Name:   "sim",
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
	I2C:            []string{"i2c0"},
	Probe:          []types.I2CDevice{{Bus: "i2c0", Addr: 0x50}},
}
