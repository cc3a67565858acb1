package ridethebus

import "errors"

// ErrInvalidBet is an error when a non-positive bet is placed
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrInsufficientFunds is an error when the bet exceeds the available balance
var ErrInsufficientFunds = errors.New("bet exceeds available balance")
