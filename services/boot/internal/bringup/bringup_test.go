package bringup

import (
	"testing"

	"bootstage-go/errcode"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/types"
)

type recordingCtrl struct {
	inits, starts int
	ep            transport.Endpoint
}

func (c *recordingCtrl) Init(ep transport.Endpoint) { c.inits++; c.ep = ep }
func (c *recordingCtrl) Start()                     { c.starts++ }
func (c *recordingCtrl) Service()                   {}

type nopEndpoint struct{ transport.Endpoint }

func run(t *testing.T, cfg Config) Peripherals {
	t.Helper()
	var o Once
	return o.Initialize(cfg)
}

func TestF1PlanRegisters(t *testing.T) {
	bus := regs.NewFake()
	// Reset value of CFGR with stale prescaler bits that must be replaced.
	bus.Poke(f1CFGR, 7<<8|7<<11|0x3)
	board := &types.Board{Family: types.FamilySTM32F1, DisableSWJ: true}

	run(t, Config{Board: board, Bus: bus, Plan: PlanF1})

	if got := bus.Load(f1APB2ENR); got != 0x3FD {
		t.Fatalf("APB2ENR = %#x, want 0x3FD", got)
	}
	if got := bus.Load(f1APB1ENR); got&pwrEN == 0 {
		t.Fatalf("PWR clock not enabled: %#x", got)
	}
	if got := bus.Load(f1CFGR); got != 4<<8|5<<11|0x3 {
		t.Fatalf("CFGR = %#x", got)
	}
	if got := bus.Load(f1AFIOMAPR) >> 24 & 7; got != 4 {
		t.Fatalf("SWJ_CFG = %b, want 100", got)
	}
	if got := bus.Load(AIRCR); got != 0x05FA0300 {
		t.Fatalf("AIRCR = %#x", got)
	}
}

func TestSWJLeftAloneUnlessBoardAsks(t *testing.T) {
	bus := regs.NewFake()
	run(t, Config{Board: &types.Board{}, Bus: bus, Plan: PlanF1})
	if len(bus.WritesTo(f1AFIOMAPR)) != 0 {
		t.Fatal("AFIO_MAPR written without DisableSWJ")
	}
}

func TestF4PlanRegisters(t *testing.T) {
	bus := regs.NewFake()
	run(t, Config{Board: &types.Board{}, Bus: bus, Plan: PlanF4})

	if got := bus.Load(f4AHB1ENR); got&0xFF != 0xFF {
		t.Fatalf("AHB1ENR = %#x", got)
	}
	if got := bus.Load(f4APB2ENR); got&(1<<14) == 0 {
		t.Fatalf("SYSCFG clock not enabled: %#x", got)
	}
	if got := bus.Load(f4CFGR); got != 4<<10|5<<13 {
		t.Fatalf("CFGR = %#x", got)
	}
}

func TestSysTickSequence(t *testing.T) {
	bus := regs.NewFake()
	bus.Poke(SHPR3, 0xF0<<24|0x1234)
	run(t, Config{Bus: bus, Plan: PlanF3})

	ctrl := bus.WritesTo(SysTickCTRL)
	if len(ctrl) != 2 || ctrl[0] != 0 || ctrl[1] != sysTickEnable {
		t.Fatalf("CTRL writes = %#v", ctrl)
	}
	if ctrl[1]&sysTickInt != 0 {
		t.Fatal("TICKINT set: the reserved vector must stay unarmed")
	}
	if got := bus.Load(SysTickLOAD); got != 0xFFFFFF {
		t.Fatalf("LOAD = %#x", got)
	}
	if got := bus.Load(SHPR3); got != 0x1234 {
		t.Fatalf("SHPR3 = %#x, want priority 0 with other bytes kept", got)
	}

	// Enable must precede the counter start.
	var enableAt, tickAt = -1, -1
	for i, w := range bus.Writes() {
		if w.Addr == f3AHBENR && enableAt < 0 {
			enableAt = i
		}
		if w.Addr == SysTickCTRL && w.Value == sysTickEnable {
			tickAt = i
		}
	}
	if enableAt < 0 || tickAt < enableAt {
		t.Fatalf("order: enable=%d systick=%d", enableAt, tickAt)
	}
}

func TestRP2PlanWritesNothing(t *testing.T) {
	bus := regs.NewFake()
	run(t, Config{Bus: bus, Plan: PlanFor(types.FamilyRP2)})
	if n := len(bus.Writes()); n != 0 {
		t.Fatalf("%d register writes on rp2", n)
	}
}

func TestControllerInitialisedWithEndpoint(t *testing.T) {
	ctrl := &recordingCtrl{}
	ep := nopEndpoint{}
	run(t, Config{Plan: PlanHost, Controller: ctrl, Endpoint: ep})
	if ctrl.inits != 1 || ctrl.ep != ep {
		t.Fatalf("inits=%d ep=%v", ctrl.inits, ctrl.ep)
	}
	if ctrl.starts != 0 {
		t.Fatal("bring-up must leave the controller stopped")
	}
}

func TestDeclaredI2CBuses(t *testing.T) {
	board := &types.Board{I2C: []string{"i2c0", "i2c3"}}
	p := run(t, Config{Board: board, Plan: PlanHost, I2C: DefaultI2CFactory()})

	bus, ok := p.I2C["i2c0"]
	if !ok {
		t.Fatal("i2c0 missing")
	}
	if err := bus.Tx(0x38, []byte{0xBA}, nil); err != nil {
		t.Fatal(err)
	}
	if h := bus.(*HostI2C); h.LastTx.Addr != 0x38 || h.Count != 1 {
		t.Fatalf("last tx = %+v", h.LastTx)
	}
	if len(p.Missing) != 1 || p.Missing[0] != "i2c3" {
		t.Fatalf("Missing = %v", p.Missing)
	}
}

func TestProbeUsesResolvedBus(t *testing.T) {
	eeprom := types.I2CDevice{Bus: "i2c0", Addr: 0x50}
	pmic := types.I2CDevice{Bus: "i2c0", Addr: 0x68}
	offBus := types.I2CDevice{Bus: "i2c1", Addr: 0x50}
	h := &HostI2C{Absent: map[uint16]bool{0x68: true}}
	board := &types.Board{
		I2C:   []string{"i2c0"},
		Probe: []types.I2CDevice{eeprom, pmic, offBus},
	}

	p := run(t, Config{Board: board, Plan: PlanHost, I2C: MapI2C{"i2c0": h}})

	if len(p.Present) != 1 || p.Present[0] != eeprom {
		t.Fatalf("Present = %+v", p.Present)
	}
	if h.LastTx.Addr != 0x50 || h.LastTx.Rn != 1 || len(h.LastTx.W) != 0 {
		t.Fatalf("probe tx = %+v", h.LastTx)
	}
}

func TestSecondCallPanics(t *testing.T) {
	var o Once
	o.Initialize(Config{Plan: PlanHost})
	defer func() {
		if r := recover(); r != errcode.AlreadyInitialised {
			t.Fatalf("recover() = %v", r)
		}
	}()
	o.Initialize(Config{Plan: PlanHost})
}

func TestPlanFor(t *testing.T) {
	cases := map[types.Family]string{
		types.FamilySTM32F1: "stm32f1",
		types.FamilySTM32F3: "stm32f3",
		types.FamilySTM32F4: "stm32f4",
		types.FamilyRP2:     "rp2",
		types.FamilyHost:    "host",
	}
	for f, want := range cases {
		if got := PlanFor(f).Name; got != want {
			t.Errorf("PlanFor(%v) = %q, want %q", f, got, want)
		}
	}
}
