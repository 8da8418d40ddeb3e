package chainhash

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when an insert would grow the bucket
	// array past the configured maximum capacity.
	ErrCapacityExceeded = errors.New("chainhash: capacity exceeded")

	// ErrDestroyed is returned by mutating calls on a destroyed table.
	ErrDestroyed = errors.New("chainhash: table destroyed")

	// ErrInvalidOption is returned by New when an option value is rejected.
	ErrInvalidOption = errors.New("chainhash: invalid option")
)

// GrowthError describes a rejected capacity doubling.
//
// The underlying sentinel can be matched with errors.Is(err, ErrCapacityExceeded).
type GrowthError struct {
	From int
	To   int
	Max  int
}

func (e *GrowthError) Error() string {
	return fmt.Sprintf("chainhash: cannot grow from %d to %d buckets (max %d)", e.From, e.To, e.Max)
}

func (e *GrowthError) Unwrap() error { return ErrCapacityExceeded }

// OptionError describes an option rejected by New.
type OptionError struct {
	Option string
	Value  int
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("chainhash: invalid %s %d: %s", e.Option, e.Value, e.Reason)
}

func (e *OptionError) Unwrap() error { return ErrInvalidOption }
