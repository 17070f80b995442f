package pins

import (
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/types"
)

// ---- F1: CRL/CRH nibble layout ----

const (
	f1GPIOA = 0x40010800

	f1CRL  = 0x00
	f1CRH  = 0x04
	f1IDR  = 0x08
	f1ODR  = 0x0C
	f1BSRR = 0x10
	f1BRR  = 0x14

	// MODE[1:0] | CNF[3:2]
	f1InFloating = 0x4
	f1InPull     = 0x8
	f1OutPP50MHz = 0x3
)

// F1 is the STM32F1 layout (4-bit CNF/MODE fields in CRL/CRH).
var F1 Layout = f1Layout{}

type f1Layout struct{}

func (f1Layout) portBase(p types.Port) uint32 { return f1GPIOA + uint32(p)*0x400 }

func (f1Layout) read(b regs.Bus, base uint32, bit uint8) bool {
	return b.Load(base+f1IDR)&(1<<bit) != 0
}

func (l f1Layout) output(b regs.Bus, base uint32, bit uint8, initial bool) {
	// Latch the level first so the pin comes up already driven.
	if initial {
		b.Store(base+f1BSRR, 1<<bit)
	} else {
		b.Store(base+f1BRR, 1<<bit)
	}
	l.setCNF(b, base, bit, f1OutPP50MHz)
}

func (l f1Layout) input(b regs.Bus, base uint32, bit uint8, pull types.Pull) {
	switch pull {
	case types.PullUp:
		b.Store(base+f1BSRR, 1<<bit)
		l.setCNF(b, base, bit, f1InPull)
	case types.PullDown:
		b.Store(base+f1BRR, 1<<bit)
		l.setCNF(b, base, bit, f1InPull)
	default:
		l.setCNF(b, base, bit, f1InFloating)
	}
}

func (f1Layout) setCNF(b regs.Bus, base uint32, bit uint8, nibble uint32) {
	reg := base + f1CRL
	if bit >= 8 {
		reg = base + f1CRH
		bit -= 8
	}
	regs.ReplaceBits(b, reg, nibble, 0xF, bit*4)
}

// ---- F2/F3/F4: MODER/OTYPER/OSPEEDR/PUPDR layout ----

const (
	moder   = 0x00
	otyper  = 0x04
	ospeedr = 0x08
	pupdr   = 0x0C
	idr     = 0x10
	bsrr    = 0x18

	modeInput  = 0b00
	modeOutput = 0b01
	speedFast  = 0b10 // "50 MHz"
)

// F4 covers F2 and F4 (AHB1 GPIO banks from 0x40020000).
var F4 Layout = api2Layout{gpioA: 0x40020000}

// F3 has its banks on AHB2 from 0x48000000.
var F3 Layout = api2Layout{gpioA: 0x48000000}

type api2Layout struct{ gpioA uint32 }

func (l api2Layout) portBase(p types.Port) uint32 { return l.gpioA + uint32(p)*0x400 }

func (api2Layout) read(b regs.Bus, base uint32, bit uint8) bool {
	return b.Load(base+idr)&(1<<bit) != 0
}

func (api2Layout) output(b regs.Bus, base uint32, bit uint8, initial bool) {
	if initial {
		b.Store(base+bsrr, 1<<bit)
	} else {
		b.Store(base+bsrr, 1<<(bit+16))
	}
	regs.ClearBits(b, base+otyper, 1<<bit)
	regs.ReplaceBits(b, base+ospeedr, speedFast, 0b11, bit*2)
	regs.ReplaceBits(b, base+pupdr, uint32(types.PullNone), 0b11, bit*2)
	regs.ReplaceBits(b, base+moder, modeOutput, 0b11, bit*2)
}

func (api2Layout) input(b regs.Bus, base uint32, bit uint8, pull types.Pull) {
	// PUPDR encoding matches types.Pull: 00 none, 01 up, 10 down.
	regs.ReplaceBits(b, base+pupdr, uint32(pull), 0b11, bit*2)
	regs.ReplaceBits(b, base+moder, modeInput, 0b11, bit*2)
}

// IDROffset is the input data register offset within a bank.
func IDROffset(f types.Family) uint32 {
	if f == types.FamilySTM32F1 {
		return f1IDR
	}
	return idr
}
