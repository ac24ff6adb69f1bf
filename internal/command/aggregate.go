package command

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Aggregate joins the promises of every handler invoked by one HandleCommand
// call.
type Aggregate struct {
	promises []Promise
}

func newAggregate(promises []Promise) *Aggregate {
	return &Aggregate{promises: promises}
}

// Len returns the number of handlers that were invoked.
func (a *Aggregate) Len() int {
	return len(a.promises)
}

// Wait blocks until every promise has settled and returns nil, or returns the
// first failure as soon as it is observed. If ctx ends while a promise is
// still pending, Wait returns ctx.Err(). The handlers themselves are never cancelled.
func (a *Aggregate) Wait(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range a.promises {
		g.Go(func() error {
			// A settled promise reports its own outcome even if ctx is done.
			select {
			case <-p.Done():
				return p.Err()
			default:
			}

			select {
			case <-p.Done():
				return p.Err()
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}

// Done returns a channel that is closed once every promise has settled,
// whether it succeeded or failed.
func (a *Aggregate) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, p := range a.promises {
			<-p.Done()
		}
	}()
	return done
}
