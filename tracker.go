package ftracker

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type Tracker struct {
	concurrency int
}

func NewTracker(concurrency int) *Tracker {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Tracker{concurrency: concurrency}
}

func (t *Tracker) summarize(pkg *Package) (*Summary, error) {
	if pkg == nil {
		err := fmt.Errorf("%w: empty package", ErrArityMismatch)
		recordError(err)
		return nil, err
	}
	log.Debug().Str("type", pkg.Type).Floats64("data", pkg.Data).Msg("summarize")
	w, err := Build(pkg.Type, pkg.Data)
	if err != nil {
		recordError(err)
		return nil, err
	}
	s, err := Summarize(w)
	if err != nil {
		recordError(err)
		return nil, err
	}
	recordWorkout(s)
	return s, nil
}

// Track summarizes the packages, returning the summaries in the same order
func (t *Tracker) Track(c context.Context, pkgs []*Package) ([]*Summary, error) {
	idx := make(chan int)
	res := make([]*Summary, len(pkgs))

	grp, ctx := errgroup.WithContext(c)
	for n := 0; n < t.concurrency; n++ {
		grp.Go(func() error {
			for i := range idx {
				if err := ctx.Err(); err != nil {
					return err
				}
				s, err := t.summarize(pkgs[i])
				if err != nil {
					return fmt.Errorf("package %d: %w", i, err)
				}
				res[i] = s
			}
			return nil
		})
	}

	grp.Go(func() error {
		defer close(idx)
		for i := range pkgs {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case idx <- i:
			}
		}
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
