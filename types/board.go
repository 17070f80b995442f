package types

// ---- Pins ----

// PinID indexes Board.Pins. Ids are logical; the board table maps them to
// a port and bit.
type PinID uint8

const (
	PinButton PinID = iota
	PinLED
	NumPins
)

// Port identifies a GPIO bank (A=0, B=1, ...). RP2 boards use PortA only.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
)

// PinDescriptor locates a logical pin on the chip.
type PinDescriptor struct {
	Port Port
	Bit  uint8
}

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// PullMask is a set of Pull values, bit n set means Pull(n) is available.
type PullMask uint8

const (
	PullsNone PullMask = 1 << PullNone
	PullsUp   PullMask = 1 << PullUp
	PullsDown PullMask = 1 << PullDown
	PullsAll           = PullsNone | PullsUp | PullsDown
)

// Has reports whether p is in the mask.
func (m PullMask) Has(p Pull) bool { return m&(1<<p) != 0 }

// Polarity is the electrical level that means "engaged".
type Polarity uint8

const (
	ActiveHigh Polarity = iota
	ActiveLow
)

// ---- Image ----

// ImageDescriptor locates the candidate application. The entry point lives
// at Base+VectorOffset (4 on Cortex-M: slot 1 of the vector table).
type ImageDescriptor struct {
	Base         uint32
	VectorOffset uint32
}

// EntrySlot returns the address holding the initial program counter.
func (d ImageDescriptor) EntrySlot() uint32 { return d.Base + d.VectorOffset }

// ---- Family ----

// Family selects register layouts and bring-up plans. It is fixed per build.
type Family uint8

const (
	FamilyHost Family = iota
	FamilySTM32F1
	FamilySTM32F3
	FamilySTM32F4 // also F2
	FamilyRP2
)

func (f Family) String() string {
	switch f {
	case FamilySTM32F1:
		return "stm32f1"
	case FamilySTM32F3:
		return "stm32f3"
	case FamilySTM32F4:
		return "stm32f4"
	case FamilyRP2:
		return "rp2"
	default:
		return "host"
	}
}

// RingSize is the capacity of each transport ring.
const RingSize = 8192

// Board describes one build's wiring and memory map. Values of this type are
// declared in build-tagged files and never mutated.
type Board struct {
	Name   string
	Family Family

	Pins           [NumPins]PinDescriptor
	ButtonActive   Polarity
	ButtonPull     Pull
	SupportedPulls PullMask

	Image ImageDescriptor

	// CoreClockHz is informational; the SysTick divisor is fixed.
	CoreClockHz uint32

	// Peripherals declared in use beyond GPIO (e.g. "i2c0").
	I2C []string
	// Probe lists I2C devices checked for presence during bring-up (board
	// ID EEPROM, power monitor).
	Probe []I2CDevice

	// DisableSWJ releases the JTAG/SWD pins for GPIO use (F1 only).
	DisableSWJ bool
}

// I2CDevice is a 7-bit address on a declared bus.
type I2CDevice struct {
	Bus  string
	Addr uint16
}

// Pin returns the descriptor for id.
func (b *Board) Pin(id PinID) PinDescriptor { return b.Pins[id] }
