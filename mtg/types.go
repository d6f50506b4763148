package mtg

import (
	"errors"
	"math"
)

// Sentinel errors for graph operations.
var (
	// ErrMaskPoolExhausted indicates that every pool bit is currently grabbed.
	ErrMaskPoolExhausted = errors.New("mtg: mask pool exhausted")

	// ErrMaskNotGrabbed indicates DropMask was called with bits that are not
	// currently held, or with reserved bits.
	ErrMaskNotGrabbed = errors.New("mtg: mask was not grabbed from the pool")

	// ErrNodeOutOfRange indicates a node id outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("mtg: node id out of range")
)

// NodeID identifies one half-edge of a Graph.
type NodeID int

// NullNode is the "no node" sentinel.
const NullNode NodeID = -1

// Mask is a set of boolean attribute bits attached to a node.
type Mask uint32

// Reserved masks. They are never handed out by GrabMask.
const (
	// ExteriorMask marks nodes on the unbounded (outer) face.
	ExteriorMask Mask = 1 << iota
	// BoundaryMask marks nodes on a boundary edge.
	BoundaryMask
	// PrimaryEdgeMask marks original (non-derived) edges.
	PrimaryEdgeMask
	// SectionEdgeMask marks edges produced by sectioning.
	SectionEdgeMask
)

const (
	// NullMask is the empty mask.
	NullMask Mask = 0

	// reservedMaskBits covers the low byte.
	reservedMaskBits Mask = 0x000000FF

	// poolMaskBits are available through GrabMask.
	poolMaskBits Mask = ^reservedMaskBits

	// AllMaskBits selects every bit of the mask word.
	AllMaskBits Mask = 0xFFFFFFFF
)

// Point3 is a coordinate triple.
type Point3 struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Length returns the Euclidean norm.
func (p Point3) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// LengthXY returns the norm of the projection onto the XY plane.
func (p Point3) LengthXY() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the 3D distance between p and q.
func (p Point3) DistanceTo(q Point3) float64 {
	return q.Sub(p).Length()
}

// DistanceXY returns the planar distance between p and q.
func (p Point3) DistanceXY(q Point3) float64 {
	return q.Sub(p).LengthXY()
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates storage for n nodes (n/2 edges).
// Panics on a negative value.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("mtg: WithCapacity(n < 0)")
	}
	return func(g *Graph) {
		g.fSucc = make([]NodeID, 0, n)
		g.fPred = make([]NodeID, 0, n)
		g.masks = make([]Mask, 0, n)
		g.coords = make([]Point3, 0, n)
	}
}

// Graph is a half-edge topology graph.
//
// Storage is struct-of-arrays indexed by NodeID. Nodes are never removed.
// freeMasks holds the pool bits not currently grabbed.
type Graph struct {
	fSucc  []NodeID // face successor
	fPred  []NodeID // face predecessor
	masks  []Mask   // per-node mask word
	coords []Point3 // start-vertex coordinates per node

	freeMasks Mask
}

// NewGraph creates an empty Graph with a full mask pool.
// Complexity: O(1) plus any preallocation requested by options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{freeMasks: poolMaskBits}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
