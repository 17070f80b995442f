package pins

import (
	"testing"

	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/types"
)

func board(button, led types.PinDescriptor) *types.Board {
	b := &types.Board{}
	b.Pins[types.PinButton] = button
	b.Pins[types.PinLED] = led
	return b
}

func TestF1PortBases(t *testing.T) {
	cases := []struct {
		port types.Port
		want uint32
	}{
		{types.PortA, 0x40010800},
		{types.PortB, 0x40010C00},
		{types.PortC, 0x40011000},
		{types.PortG, 0x40012000},
	}
	for _, tc := range cases {
		if got := F1.portBase(tc.port); got != tc.want {
			t.Fatalf("port %d base = %#x, want %#x", tc.port, got, tc.want)
		}
	}
	if got := F4.portBase(types.PortD); got != 0x40020C00 {
		t.Fatalf("F4 port D = %#x", got)
	}
	if got := F3.portBase(types.PortE); got != 0x48001000 {
		t.Fatalf("F3 port E = %#x", got)
	}
}

func TestF1OutputLatchesLevelBeforeMode(t *testing.T) {
	bus := regs.NewFake()
	// LED on PB13 (CRH nibble 5).
	g := NewRegGPIO(bus, F1, board(types.PinDescriptor{}, types.PinDescriptor{Port: types.PortB, Bit: 13}))

	g.ConfigureOutput(types.PinLED, true)

	w := bus.Writes()
	if len(w) != 2 {
		t.Fatalf("writes = %+v", w)
	}
	if w[0].Addr != 0x40010C00+f1BSRR || w[0].Value != 1<<13 {
		t.Fatalf("first write must set the level: %+v", w[0])
	}
	if w[1].Addr != 0x40010C00+f1CRH || w[1].Value != f1OutPP50MHz<<20 {
		t.Fatalf("second write must switch mode: %+v", w[1])
	}

	bus.ResetLog()
	g.ConfigureOutput(types.PinLED, false)
	if w := bus.Writes(); w[0].Addr != 0x40010C00+f1BRR || w[0].Value != 1<<13 {
		t.Fatalf("low level must go through BRR: %+v", w[0])
	}
}

func TestF1Inputs(t *testing.T) {
	cases := []struct {
		name   string
		pull   types.Pull
		nibble uint32
		odrReg uint32 // register written to select the pull, 0 for none
	}{
		{"floating", types.PullNone, f1InFloating, 0},
		{"pull-up", types.PullUp, f1InPull, f1BSRR},
		{"pull-down", types.PullDown, f1InPull, f1BRR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bus := regs.NewFake()
			// Button on PA0 (CRL nibble 0), pre-set to output to see it replaced.
			bus.Poke(f1GPIOA+f1CRL, 0x44444443)
			g := NewRegGPIO(bus, F1, board(types.PinDescriptor{Port: types.PortA, Bit: 0}, types.PinDescriptor{}))

			g.ConfigureInput(types.PinButton, tc.pull)

			if got := bus.Load(f1GPIOA + f1CRL); got != 0x44444440|tc.nibble {
				t.Fatalf("CRL = %#x", got)
			}
			if tc.odrReg != 0 {
				if v := bus.WritesTo(f1GPIOA + tc.odrReg); len(v) != 1 || v[0] != 1 {
					t.Fatalf("pull select writes = %v", v)
				}
			}
		})
	}
}

func TestReadDigital(t *testing.T) {
	for _, layout := range []struct {
		name string
		l    Layout
		idr  uint32
	}{
		{"f1", F1, f1GPIOA + 0x400*2 + f1IDR},
		{"f4", F4, 0x40020000 + 0x400*2 + idr},
	} {
		t.Run(layout.name, func(t *testing.T) {
			bus := regs.NewFake()
			g := NewRegGPIO(bus, layout.l, board(types.PinDescriptor{Port: types.PortC, Bit: 13}, types.PinDescriptor{}))
			if g.ReadDigital(types.PinButton) {
				t.Fatal("expected low")
			}
			bus.Poke(layout.idr, 1<<13)
			if !g.ReadDigital(types.PinButton) {
				t.Fatal("expected high")
			}
			if len(bus.Writes()) != 0 {
				t.Fatal("ReadDigital must not write")
			}
		})
	}
}

func TestAPI2OutputAndInput(t *testing.T) {
	bus := regs.NewFake()
	const base = 0x40020C00 // port D
	g := NewRegGPIO(bus, F4, board(
		types.PinDescriptor{Port: types.PortA, Bit: 0},
		types.PinDescriptor{Port: types.PortD, Bit: 12},
	))

	g.ConfigureOutput(types.PinLED, false)
	w := bus.Writes()
	if w[0].Addr != base+bsrr || w[0].Value != 1<<(12+16) {
		t.Fatalf("level must be latched first via BSRR reset half: %+v", w[0])
	}
	if last := w[len(w)-1]; last.Addr != base+moder {
		t.Fatalf("mode must be switched last: %+v", last)
	}
	if got := bus.Load(base + moder); got != modeOutput<<24 {
		t.Fatalf("MODER = %#x", got)
	}
	if got := bus.Load(base + ospeedr); got != speedFast<<24 {
		t.Fatalf("OSPEEDR = %#x", got)
	}

	g.ConfigureInput(types.PinButton, types.PullDown)
	if got := bus.Load(0x40020000 + pupdr); got != 0b10 {
		t.Fatalf("PUPDR = %#b", got)
	}
	if got := bus.Load(0x40020000 + moder); got != 0 {
		t.Fatalf("MODER = %#b", got)
	}
}

func TestIDROffset(t *testing.T) {
	if IDROffset(types.FamilySTM32F1) != 0x08 {
		t.Fatal("F1 IDR")
	}
	if IDROffset(types.FamilySTM32F4) != 0x10 || IDROffset(types.FamilySTM32F3) != 0x10 {
		t.Fatal("API2 IDR")
	}
}
