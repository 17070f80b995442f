// Package boot runs the bootloader: bring the hardware up, sample the boot
// button, then either hand control to the application image or stay and
// serve the update protocol over the transport rings.
package boot

import (
	"context"
	"errors"

	"bootstage-go/services/boot/internal/bridge"
	"bootstage-go/services/boot/internal/bringup"
	"bootstage-go/services/boot/internal/gate"
	"bootstage-go/services/boot/internal/jump"
	"bootstage-go/services/boot/internal/link"
	"bootstage-go/services/boot/internal/platform"
	"bootstage-go/types"
	"bootstage-go/x/conv"
	"bootstage-go/x/shmring"
)

type Config struct {
	Platform platform.Platform
	Protocol Protocol
	// JumpOptions are passed to jump.New (e.g. jump.WithVectorRelocation).
	JumpOptions []jump.Option
}

// Result reports what Run did. A real jump never produces one.
type Result struct {
	Decision    types.BootDecision
	Outcome     types.JumpOutcome
	Peripherals bringup.Peripherals
}

// Loader owns the static storage of both transport rings. One Loader serves
// one reset.
type Loader struct {
	rxBuf [types.RingSize]byte
	txBuf [types.RingSize]byte
	rx    shmring.Ring
	tx    shmring.Ring

	once   bringup.Once
	bridge *bridge.Bridge
	link   *link.Link
}

// Bridge returns the interrupt-side endpoint once Run has started.
func (l *Loader) Bridge() *bridge.Bridge { return l.bridge }

// Link returns the protocol-side stream once Run has started.
func (l *Loader) Link() *link.Link { return l.link }

// Run executes the boot sequence. When the application image is valid and
// the button is released, Run does not return on hardware.
func (l *Loader) Run(ctx context.Context, cfg Config) (Result, error) {
	p := cfg.Platform
	board := p.Board

	rxP, rxC := l.rx.Init(l.rxBuf[:])
	txP, txC := l.tx.Init(l.txBuf[:])
	l.bridge = bridge.New(bridge.Config{
		RX:         rxP,
		TX:         txC,
		Bus:        p.Bus,
		Wakeup:     p.Wakeup,
		Controller: p.Controller,
	})
	l.link = link.New(txP, rxC)

	var res Result
	res.Peripherals = l.once.Initialize(bringup.Config{
		Board:      board,
		Bus:        p.Bus,
		Plan:       p.Plan,
		I2C:        p.I2C,
		Controller: p.Controller,
		Endpoint:   l.bridge,
	})

	p.GPIO.ConfigureOutput(types.PinLED, true)
	p.GPIO.ConfigureInput(types.PinButton, board.ButtonPull)

	res.Decision = gate.Decide(p.GPIO, board.ButtonActive)
	println("[boot]", board.Name, "decision:", res.Decision.String())

	if res.Decision == types.ResumeApplication {
		res.Outcome = jump.New(p.Flash, p.Transfer, cfg.JumpOptions...).Attempt(board.Image)
		if res.Outcome.Attempted() {
			return res, nil
		}
		println("[boot] no image at", conv.Hex32(board.Image.EntrySlot()), "- staying")
		res.Decision = types.StayInBootloader
	}

	if p.Bind != nil {
		p.Bind(l.bridge)
	}
	l.bridge.Controller().Start()
	proto := cfg.Protocol
	if proto == nil {
		proto = Echo{}
	}
	err := proto.Serve(ctx, l.link)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return res, err
}

var loader Loader

// Main is the target entry point: run the selected platform with the echo
// protocol, then reset.
func Main() {
	p := platform.Selected()
	if _, err := loader.Run(context.Background(), Config{Platform: p, Protocol: Echo{}}); err != nil {
		println("[boot] protocol:", err.Error())
	}
	println("[boot] reset")
	p.Reset()
}
