package ridethebus

// Player is the wallet for the single player riding the bus.
// The balance is debited when a bet is placed; winnings accrue as pending
// until they are cashed out or the round is lost.
type Player struct {
	balance         int
	currentBet      int
	pendingWinnings int
	highScore       int

	startingBalance int
	startingBet     int
	defaultBet      int
}

// NewPlayer returns a new player with the starting balance
func NewPlayer(startingBalance, defaultBet int) *Player {
	return &Player{
		balance:         startingBalance,
		highScore:       startingBalance,
		startingBalance: startingBalance,
		startingBet:     defaultBet,
		defaultBet:      defaultBet,
	}
}

// Seed adopts a persisted balance and high score.
// The high score is floored at the balance so a stale save can never report
// a high score below the money on hand.
func (p *Player) Seed(balance, highScore int) {
	p.balance = balance
	if highScore > balance {
		p.highScore = highScore
	} else {
		p.highScore = balance
	}
}

// PlaceBet stakes the amount for the round.
// The amount is debited from the balance immediately.
func (p *Player) PlaceBet(amount int) error {
	if amount <= 0 {
		return ErrInvalidBet
	}

	if amount > p.balance {
		return ErrInsufficientFunds
	}

	p.balance -= amount
	p.currentBet = amount
	return nil
}

// RecordStageWin records the payout for a completed stage.
// Each stage replaces the previous stage's pending winnings; only the most
// recently completed stage's payout is bankable.
func (p *Player) RecordStageWin(multiplier int) {
	p.pendingWinnings = p.currentBet * multiplier
}

// CashOut credits the pending winnings to the balance and clears the round
func (p *Player) CashOut() {
	p.balance += p.pendingWinnings
	if p.balance > p.highScore {
		p.highScore = p.balance
	}

	p.pendingWinnings = 0
	p.currentBet = 0
}

// ResetRound forfeits the current bet and any pending winnings.
// The balance was already debited at bet time and is not restored.
func (p *Player) ResetRound() {
	p.currentBet = 0
	p.pendingWinnings = 0
}

// ResetBankrupt restores the wallet to its starting conditions.
// The high score survives bankruptcy.
func (p *Player) ResetBankrupt() {
	p.balance = p.startingBalance
	p.defaultBet = p.startingBet
	p.currentBet = 0
	p.pendingWinnings = 0
}

// Balance returns the available funds
func (p *Player) Balance() int {
	return p.balance
}

// CurrentBet returns the amount staked on the in-progress round
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// PendingWinnings returns the payout for the most recently completed stage
func (p *Player) PendingWinnings() int {
	return p.pendingWinnings
}

// HighScore returns the highest balance ever observed
func (p *Player) HighScore() int {
	return p.highScore
}

// DefaultBet returns the suggested bet amount
func (p *Player) DefaultBet() int {
	return p.defaultBet
}
