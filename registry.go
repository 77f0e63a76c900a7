package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType reports a sensor package code outside the registry.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArityMismatch reports a sensor package whose reading count does not
	// match the resolved variant.
	ErrArityMismatch = errors.New("wrong number of readings")
)

type variant struct {
	arity int
	build func(readings []float64) Training
}

// Registry of supported workout codes. Built once, never mutated.
var registry = map[string]variant{
	"RUN": {
		arity: 3,
		build: func(r []float64) Training {
			return Running{Action: int(r[0]), Duration: r[1], Weight: r[2]}
		},
	},
	"WLK": {
		arity: 4,
		build: func(r []float64) Training {
			return SportsWalking{Action: int(r[0]), Duration: r[1], Weight: r[2], Height: r[3]}
		},
	},
	"SWM": {
		arity: 5,
		build: func(r []float64) Training {
			return Swimming{Action: int(r[0]), Duration: r[1], Weight: r[2], LengthPool: r[3], CountPool: int(r[4])}
		},
	},
}

// ReadPackage resolves one sensor package into its workout variant.
// Readings are assigned positionally: base readings (action count, duration
// in hours, weight in kg) first, then the variant-specific ones.
func ReadPackage(code string, readings []float64) (Training, error) {
	v, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
	if len(readings) != v.arity {
		return nil, fmt.Errorf("%w for %s: got %d, want %d", ErrArityMismatch, code, len(readings), v.arity)
	}
	return v.build(readings), nil
}
