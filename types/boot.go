package types

import "bootstage-go/errcode"

// BootDecision is computed once per reset from the boot button.
type BootDecision uint8

const (
	ResumeApplication BootDecision = iota
	StayInBootloader
)

func (d BootDecision) String() string {
	if d == StayInBootloader {
		return "stay"
	}
	return "resume"
}

type OutcomeKind uint8

const (
	NotAttempted OutcomeKind = iota
	// Unreachable is what a real jump "returns": the caller never sees it
	// on hardware. Test transfers that return surface it.
	Unreachable
)

// JumpOutcome reports what AttemptJump did.
type JumpOutcome struct {
	Kind   OutcomeKind
	Reason errcode.Code // set when Kind == NotAttempted
	Target uint32       // entry point handed to the transfer
}

func (o JumpOutcome) Attempted() bool { return o.Kind == Unreachable }
