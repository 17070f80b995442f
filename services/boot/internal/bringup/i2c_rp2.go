//go:build rp2040 || rp2350

package bringup

import (
	"machine"

	"tinygo.org/x/drivers"
)

type rp2I2C struct{}

// DefaultI2CFactory configures i2c0/i2c1 at 400 kHz on the board default
// pins as each is requested.
func DefaultI2CFactory() I2CFactory { return rp2I2C{} }

func (rp2I2C) ByID(id string) (drivers.I2C, bool) {
	var (
		hw       *machine.I2C
		sda, scl machine.Pin
	)
	switch id {
	case "i2c0":
		hw, sda, scl = machine.I2C0, machine.I2C0_SDA_PIN, machine.I2C0_SCL_PIN
	case "i2c1":
		hw, sda, scl = machine.I2C1, machine.I2C1_SDA_PIN, machine.I2C1_SCL_PIN
	default:
		return nil, false
	}
	if err := hw.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz, SDA: sda, SCL: scl}); err != nil {
		println("[bringup] i2c configure failed:", id, err.Error())
		return nil, false
	}
	return hw, true
}
