package ftracker

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "workouts_total",
		Help:      "Number of workouts summarized by activity.",
	}, []string{"activity"})
	workoutErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Name:      "workout_errors_total",
		Help:      "Number of rejected workout packages by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(workoutsTotal, workoutErrorsTotal)
}

func reason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownActivity):
		return "unknown_activity"
	case errors.Is(err, ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrInvalidField):
		return "invalid_field"
	default:
		return "other"
	}
}

func recordWorkout(s *Summary) {
	workoutsTotal.WithLabelValues(s.Activity).Inc()
}

func recordError(err error) {
	workoutErrorsTotal.WithLabelValues(reason(err)).Inc()
}
