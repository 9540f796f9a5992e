package ftracker

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	a := assert.New(t)
	_, err := Build("XYZ", nil)
	a.Equal("unknown_activity", reason(err))
	_, err = Build("RUN", nil)
	a.Equal("arity_mismatch", reason(err))
	_, err = MeanSpeed(Running{})
	a.Equal("division_by_zero", reason(err))
	_, err = Build("RUN", []float64{0.5, 1, 75})
	a.Equal("invalid_field", reason(err))
	a.Equal("other", reason(errors.New("boom")))
}

func TestTrackRecordsMetrics(t *testing.T) {
	a := assert.New(t)
	swims := testutil.ToFloat64(workoutsTotal.WithLabelValues("Swimming"))
	arity := testutil.ToFloat64(workoutErrorsTotal.WithLabelValues("arity_mismatch"))

	_, err := NewTracker(1).Track(context.Background(), []*Package{{Type: TagSwimming, Data: []float64{720, 1, 80, 25, 40}}})
	a.NoError(err)
	_, err = NewTracker(1).Track(context.Background(), []*Package{{Type: TagSwimming, Data: []float64{720, 1, 80}}})
	a.ErrorIs(err, ErrArityMismatch)

	a.Equal(swims+1, testutil.ToFloat64(workoutsTotal.WithLabelValues("Swimming")))
	a.Equal(arity+1, testutil.ToFloat64(workoutErrorsTotal.WithLabelValues("arity_mismatch")))
}
