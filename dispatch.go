package ftracker

import (
	"fmt"
	"math"
)

const (
	TagSwimming = "SWM"
	TagRunning  = "RUN"
	TagWalking  = "WLK"
)

type builder struct {
	arity int
	build func(fields []float64) Workout
}

var builders = map[string]builder{
	TagSwimming: {arity: 5, build: func(f []float64) Workout {
		return Swimming{Reading: newReading(f), PoolLength: f[3], PoolLaps: f[4]}
	}},
	TagRunning: {arity: 3, build: func(f []float64) Workout {
		return Running{Reading: newReading(f)}
	}},
	TagWalking: {arity: 4, build: func(f []float64) Workout {
		return Walking{Reading: newReading(f), Height: f[3]}
	}},
}

func newReading(f []float64) Reading {
	return Reading{Action: int(f[0]), Duration: f[1], Weight: f[2]}
}

// Build returns the workout for the tag from the raw sensor fields.
//
// The fields are ordered as action, duration and weight followed by
// the activity extras: height for WLK, pool length and pool laps for SWM.
func Build(tag string, fields []float64) (Workout, error) {
	b, ok := builders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, tag)
	}
	if len(fields) != b.arity {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrArityMismatch, tag, b.arity, len(fields))
	}
	if a := fields[0]; a != math.Trunc(a) || a < 0 || a >= float64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %s action count %v is not a count", ErrInvalidField, tag, a)
	}
	return b.build(fields), nil
}
