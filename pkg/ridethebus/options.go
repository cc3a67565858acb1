package ridethebus

// Options contains options for creating a new game of Ride the Bus
type Options struct {
	StartingBalance int
	DefaultBet      int
	Payouts         Payouts
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingBalance: 100,
		DefaultBet:      10,
		Payouts:         DefaultPayouts(),
	}
}
