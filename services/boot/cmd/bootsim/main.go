// Command bootsim runs the bootloader on the host. The board's registers
// are simulated, the application image comes from an Intel HEX file and
// the transport is a real serial port.
//
//	bootsim -scenario sim.yaml -logtostderr
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bootstage-go/services/boot"
	"bootstage-go/services/boot/internal/flashsim"
	"bootstage-go/services/boot/internal/jump"
	"bootstage-go/services/boot/internal/pins"
	"bootstage-go/services/boot/internal/platform"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/services/boot/internal/transport"
	"bootstage-go/types"

	"github.com/golang/glog"
	"github.com/inhies/go-bytesize"
)

var (
	scenarioPath = flag.String("scenario", "", "scenario YAML file")
	button       = flag.Bool("button", false, "hold the boot button (overrides the scenario when set)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		glog.Fatalf("%v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "button" {
			sc.Button = *button
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, sc); err != nil {
		glog.Fatalf("%v", err)
	}
}

func run(ctx context.Context, sc Scenario) error {
	p := platform.Selected()

	if sc.Button {
		pressButton(p)
	}

	flash := flashsim.Erased()
	if sc.Image != "" {
		f, err := os.Open(sc.Image)
		if err != nil {
			return fmt.Errorf("image: %w", err)
		}
		flash, err = flashsim.LoadHex(f)
		f.Close()
		if err != nil {
			return err
		}
		glog.Infof("image %s at %#08x, %s, crc16 %04x",
			sc.Image, flash.Base(), bytesize.New(float64(flash.Size())), flash.CRC16())
	}
	p.Flash = flash
	p.Transfer = func(entry uint32) { glog.Infof("transfer to %#08x", entry) }

	var opts []jump.Option
	if sc.Relocate {
		opts = append(opts, jump.WithVectorRelocation(p.Bus, func(sp, entry uint32) {
			glog.Infof("transfer to %#08x with msp %#08x", entry, sp)
		}))
	}

	if sc.Port != "" {
		s, err := transport.OpenSerial(sc.Port, sc.Baud)
		if err != nil {
			return err
		}
		defer func() {
			if err := s.Close(); err != nil {
				glog.Warningf("close %s: %v", sc.Port, err)
			}
			if n := s.RxDrops(); n > 0 {
				glog.Warningf("%d host bytes dropped on a full ring", n)
			}
		}()
		p.Controller = s
		glog.Infof("transport %s @ %d", sc.Port, sc.Baud)
	}

	var l boot.Loader
	res, err := l.Run(ctx, boot.Config{
		Platform:    p,
		Protocol:    boot.Echo{Limit: sc.EchoLimit},
		JumpOptions: opts,
	})
	if err != nil {
		return err
	}

	glog.Infof("decision %s", res.Decision)
	switch {
	case res.Outcome.Attempted():
		glog.Info("application would now be running")
	case res.Decision == types.StayInBootloader:
		if glog.V(2) {
			glog.Infof("rx overflows %d, register writes %d",
				l.Bridge().RxOverflows(), len(p.Bus.(*regs.Fake).Writes()))
		}
		glog.Info("protocol complete, reset")
	}
	return nil
}

// pressButton drives the button's input data bit to its engaged level.
func pressButton(p platform.Platform) {
	g, ok := p.GPIO.(*pins.RegGPIO)
	fake, fok := p.Bus.(*regs.Fake)
	if !ok || !fok {
		return
	}
	d := p.Board.Pin(types.PinButton)
	idr := g.Base(types.PinButton) + pins.IDROffset(p.Board.Family)
	if p.Board.ButtonActive == types.ActiveHigh {
		fake.Poke(idr, 1<<d.Bit)
	} else {
		fake.Poke(idr, 0)
	}
}
