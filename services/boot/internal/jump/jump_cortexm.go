//go:build tinygo && cortexm

package jump

import "device/arm"

// Branch jumps to entry (Thumb bit already set in the vector slot).
func Branch(entry uint32) {
	arm.AsmFull("bx {entry}", map[string]interface{}{"entry": entry})
	for {
	}
}

// BranchWithStack loads MSP and jumps without touching the old stack.
func BranchWithStack(sp, entry uint32) {
	arm.AsmFull(`
		msr msp, {sp}
		bx {entry}
	`, map[string]interface{}{"sp": sp, "entry": entry})
	for {
	}
}
