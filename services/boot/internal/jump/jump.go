// Package jump validates an application image and hands control to it.
package jump

import (
	"bootstage-go/errcode"
	"bootstage-go/services/boot/internal/core"
	"bootstage-go/services/boot/internal/regs"
	"bootstage-go/types"
)

// Values an unprogrammed or zeroed vector slot holds.
const (
	SentinelErased uint32 = 0xFFFFFFFF
	SentinelZero   uint32 = 0x00000000
)

// VTOR is the Cortex-M vector table offset register.
const VTOR uint32 = 0xE000ED08

// StackTransfer loads the main stack pointer and branches in one step.
type StackTransfer func(sp, entry uint32)

type Option func(*Jumper)

// WithVectorRelocation points VTOR at the image and starts it on its own
// initial stack. Without it the image inherits the bootloader's vector
// table and stack pointer.
func WithVectorRelocation(bus regs.Bus, transfer StackTransfer) Option {
	return func(j *Jumper) {
		j.vtor = bus
		j.stackTransfer = transfer
	}
}

type Jumper struct {
	mem      core.Memory
	transfer core.Transfer

	vtor          regs.Bus
	stackTransfer StackTransfer
}

func New(mem core.Memory, transfer core.Transfer, opts ...Option) *Jumper {
	j := &Jumper{mem: mem, transfer: transfer}
	for _, o := range opts {
		o(j)
	}
	return j
}

// IsSentinel reports whether v marks an absent image.
func IsSentinel(v uint32) bool { return v == SentinelZero || v == SentinelErased }

// Attempt reads the image's entry slot and, unless it holds a sentinel,
// transfers control to it. On hardware a successful transfer never returns.
func (j *Jumper) Attempt(image types.ImageDescriptor) types.JumpOutcome {
	entry := j.mem.Load32(image.EntrySlot())
	if IsSentinel(entry) {
		return types.JumpOutcome{Kind: types.NotAttempted, Reason: errcode.NoImageFlashed, Target: entry}
	}

	if j.vtor != nil && j.stackTransfer != nil {
		sp := j.mem.Load32(image.Base)
		j.vtor.Store(VTOR, image.Base)
		j.stackTransfer(sp, entry)
	} else {
		j.transfer(entry)
	}
	return types.JumpOutcome{Kind: types.Unreachable, Target: entry}
}
