//go:build board_pico

package boards

import "bootstage-go/types"

const (
	buttonPull = types.PullUp
	pulls      = types.PullsAll
)

const _ = pulls>>buttonPull&1 - 1

// Button on GP15 to ground; on-board LED on GP25. The application is linked
// 64 KiB into XIP flash. A board ID EEPROM answers at 0x50 on i2c0.
var Selected = types.Board{
	Name:   "pico",
	Family: types.FamilyRP2,
	Pins: [types.NumPins]types.PinDescriptor{
		types.PinButton: {Port: types.PortA, Bit: 15},
		types.PinLED:    {Port: types.PortA, Bit: 25},
	},
	ButtonActive:   types.ActiveLow,
	ButtonPull:     buttonPull,
	SupportedPulls: pulls,
	Image:          types.ImageDescriptor{Base: 0x10010000, VectorOffset: 4},
	CoreClockHz:    125_000_000,
	I2C:            []string{"i2c0"},
	Probe:          []types.I2CDevice{{Bus: "i2c0", Addr: 0x50}},
}
