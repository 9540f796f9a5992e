package ftracker

import (
	"fmt"
	"math"
)

const (
	lenStep         = 0.65
	swimmingLenStep = 1.38
	mInKm           = 1000
	minInH          = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Workout is a single training reading; it is one of Running, Walking or Swimming
type Workout interface {
	reading() Reading
}

// Reading holds the values every activity reports
type Reading struct {
	// Action is the number of steps or strokes
	Action   int
	Duration float64
	Weight   float64
}

func (r Reading) reading() Reading { return r }

type Running struct {
	Reading
}

type Walking struct {
	Reading
	Height float64
}

type Swimming struct {
	Reading
	PoolLength float64
	PoolLaps   float64
}

// Name returns the activity name used in summaries
func Name(w Workout) string {
	switch w.(type) {
	case Running:
		return "Running"
	case Walking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	default:
		return fmt.Sprintf("%T", w)
	}
}

// Distance returns the covered distance in kilometers
func Distance(w Workout) float64 {
	step := lenStep
	if _, ok := w.(Swimming); ok {
		step = swimmingLenStep
	}
	return float64(w.reading().Action) * step / mInKm
}

// MeanSpeed returns the average speed over the whole workout in km/h
func MeanSpeed(w Workout) (float64, error) {
	r := w.reading()
	if r.Duration == 0 {
		return 0, fmt.Errorf("%w: duration is zero", ErrDivisionByZero)
	}
	switch v := w.(type) {
	case Swimming:
		return v.PoolLength * v.PoolLaps / mInKm / r.Duration, nil
	default:
		return Distance(w) / r.Duration, nil
	}
}

// Calories returns the spent calories in kcal
func Calories(w Workout) (float64, error) {
	speed, err := MeanSpeed(w)
	if err != nil {
		return 0, err
	}
	r := w.reading()
	switch v := w.(type) {
	case Running:
		return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) *
			r.Weight / mInKm * r.Duration * minInH, nil
	case Walking:
		// height is used in whatever unit the reading carries
		if v.Height == 0 {
			return 0, fmt.Errorf("%w: height is zero", ErrDivisionByZero)
		}
		return (walkingCaloriesWeightMultiplier*r.Weight +
			math.Floor(math.Pow(speed, 2)/v.Height)*walkingSpeedHeightMultiplier*r.Weight) *
			r.Duration * minInH, nil
	case Swimming:
		return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * r.Weight, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownActivity, w)
	}
}
