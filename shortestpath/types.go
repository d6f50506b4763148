package shortestpath

import (
	"errors"
	"math"

	"github.com/katalvlaran/meshpath/mtg"
)

// Sentinel errors returned by the shortestpath package.
var (
	// ErrNilGraph indicates that NewContext received a nil graph.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrContextClosed indicates use of a Context after Close.
	ErrContextClosed = errors.New("shortestpath: context is closed")

	// ErrUnreached indicates a node whose vertex was not reached by the last search.
	ErrUnreached = errors.New("shortestpath: vertex not reached")
)

// UnreachedDistance is reported for vertices the last search did not reach.
const UnreachedDistance = math.MaxFloat64

// nullVertexIndex marks a node whose vertex has no record yet.
const nullVertexIndex = -1

// VertexData is the record kept for one reached vertex (or, in the multi-loop
// search, one vertex sector).
//
//	NodeA    – a representative node of the vertex (the sector start in loop mode).
//	NodeB    – the back-edge: node at this vertex pointing toward the seed;
//	           mtg.NullNode for seeds.
//	Distance – best known distance from the seed(s).
//	Cluster  – union-find cluster id in loop mode; -1 for single-source searches.
type VertexData struct {
	NodeA    mtg.NodeID
	NodeB    mtg.NodeID
	Distance float64
	Cluster  int
}

// Observer receives diagnostic announcements from a search.
// a and b are the nodes involved; either may be mtg.NullNode.
type Observer func(message string, a, b mtg.NodeID)

// Options configures a Context.
type Options struct {
	// Observer is called for every announcement. Defaults to a no-op.
	Observer Observer

	// Capacity preallocates room for this many vertex records and queue entries.
	Capacity int
}

// Option represents a functional option for configuring a Context.
type Option func(*Options)

// WithObserver registers a diagnostic callback. A nil fn is ignored.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithCapacity preallocates internal storage. Panics on a negative value.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("shortestpath: WithCapacity(n < 0)")
	}
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns Options with a no-op observer and no preallocation.
func DefaultOptions() Options {
	return Options{
		Observer: func(string, mtg.NodeID, mtg.NodeID) {},
		Capacity: 0,
	}
}
