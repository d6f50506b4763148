package cli

import (
	"context"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// ctxPolicy stops a search once ctx is done. Announcements reach the wrapped
// policy unchanged.
type ctxPolicy struct {
	shortestpath.SearchPolicy
	ctx context.Context
}

// withContext wraps p so that it honors cancellation of ctx.
func withContext(ctx context.Context, p shortestpath.SearchPolicy) shortestpath.SearchPolicy {
	if ctx == nil {
		return p
	}
	return ctxPolicy{SearchPolicy: p, ctx: ctx}
}

func (p ctxPolicy) ContinueSearch() bool {
	return p.ctx.Err() == nil && p.SearchPolicy.ContinueSearch()
}

func (p ctxPolicy) Announce(message string, a, b mtg.NodeID) {
	if an, ok := p.SearchPolicy.(shortestpath.Announcer); ok {
		an.Announce(message, a, b)
	}
}

// contextErr returns the error of a done ctx, nil otherwise.
func contextErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
