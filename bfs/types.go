package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
)

var (
	// ErrStartNodeInvalid: the start node is not a node of the graph.
	ErrStartNodeInvalid = errors.New("bfs: start node invalid")

	// ErrGraphNil: BFS was called with a nil *mtg.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation: an Option was given a value outside its domain.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a BFS call. A bad value is remembered and reported as
// ErrOptionViolation by BFS.
type Option func(*BFSOptions)

// BFSOptions configures a traversal. Hooks receive the representative node of
// a vertex and its hop depth.
type BFSOptions struct {
	Ctx context.Context

	OnEnqueue func(vertex mtg.NodeID, depth int)
	OnDequeue func(vertex mtg.NodeID, depth int)
	// OnVisit aborts the traversal by returning an error.
	OnVisit func(vertex mtg.NodeID, depth int) error

	// MaxDepth > 0 keeps vertices deeper than MaxDepth out of the queue.
	MaxDepth int

	// FilterEdge is asked once per outbound half-edge; false skips it.
	FilterEdge func(node mtg.NodeID) bool

	err error
}

// DefaultOptions walks every edge with no depth limit, no-op hooks and a
// background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(mtg.NodeID, int) {},
		OnDequeue:  func(mtg.NodeID, int) {},
		OnVisit:    func(mtg.NodeID, int) error { return nil },
		FilterEdge: func(mtg.NodeID) bool { return true },
	}
}

// WithContext checks ctx once per dequeued vertex. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets the enqueue hook. nil is ignored.
func WithOnEnqueue(fn func(vertex mtg.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets the dequeue hook. nil is ignored.
func WithOnDequeue(fn func(vertex mtg.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets the visit hook. nil is ignored.
func WithOnVisit(fn func(vertex mtg.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d hops; 0 means unlimited.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge restricts the walk to half-edges accepted by fn, e.g. those
// carrying a mask. nil is ignored.
func WithFilterEdge(fn func(node mtg.NodeID) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult is keyed by vertex representative. Depth counts edges from the
// start; Parent and Via give the previous vertex and the half-edge leaving it.
type BFSResult struct {
	Order  []mtg.NodeID
	Depth  map[mtg.NodeID]int
	Parent map[mtg.NodeID]mtg.NodeID
	Via    map[mtg.NodeID]mtg.NodeID
}

// PathTo returns the vertices from the start to dest.
func (r *BFSResult) PathTo(dest mtg.NodeID) ([]mtg.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to vertex %d", dest)
	}
	var path []mtg.NodeID
	for cur, ok := dest, true; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
