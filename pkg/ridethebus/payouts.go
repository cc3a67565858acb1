package ridethebus

import "fmt"

// Payouts maps a guess stage to its payout multiplier.
// The mapping is built once at startup and must not be mutated afterwards.
type Payouts map[Stage]int

// DefaultPayouts returns the standard payout table
func DefaultPayouts() Payouts {
	return Payouts{
		StageGuessColor:         2,
		StageGuessHigherLower:   4,
		StageGuessInsideOutside: 8,
		StageGuessSuit:          32,
	}
}

// Multiplier returns the multiplier for the stage
func (p Payouts) Multiplier(stage Stage) int {
	multiplier, ok := p[stage]
	if !ok {
		panic(fmt.Sprintf("no payout multiplier for stage: %s", stage))
	}

	return multiplier
}

func (p Payouts) validate() error {
	for _, stage := range []Stage{StageGuessColor, StageGuessHigherLower, StageGuessInsideOutside, StageGuessSuit} {
		multiplier, ok := p[stage]
		if !ok {
			return fmt.Errorf("missing payout multiplier for stage: %s", stage)
		}

		if multiplier <= 0 {
			return fmt.Errorf("payout multiplier for stage %s must be > 0", stage)
		}
	}

	return nil
}
