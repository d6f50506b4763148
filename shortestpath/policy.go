package shortestpath

import (
	"github.com/katalvlaran/meshpath/mtg"
)

// SearchPolicy customizes a search.
//
//	EdgeLength     – cost of traversing the half-edge node. Must be >= 0.
//	CanPush        – called before a node is admitted at the given tentative
//	                 distance; false vetoes the edge and leaves the destination
//	                 unvisited.
//	ContinueSearch – polled once per queue pop; false stops the search and
//	                 leaves partial results in place.
type SearchPolicy interface {
	EdgeLength(g *mtg.Graph, node mtg.NodeID) float64
	CanPush(g *mtg.Graph, node mtg.NodeID, distance float64) bool
	ContinueSearch() bool
}

// Announcer is implemented by policies that want the search's diagnostic
// announcements. It is optional.
type Announcer interface {
	Announce(message string, a, b mtg.NodeID)
}

// BasePolicy provides the default behavior: unit edge length, every push
// admitted, never stop early. Embed it and override what differs.
type BasePolicy struct{}

// EdgeLength returns 1.
func (BasePolicy) EdgeLength(*mtg.Graph, mtg.NodeID) float64 { return 1 }

// CanPush always admits.
func (BasePolicy) CanPush(*mtg.Graph, mtg.NodeID, float64) bool { return true }

// ContinueSearch always continues.
func (BasePolicy) ContinueSearch() bool { return true }

// UnitPolicy counts edges; no coordinates are needed.
type UnitPolicy struct{ BasePolicy }

// XYDistancePolicy weighs each edge by its length projected to the XY plane.
type XYDistancePolicy struct{ BasePolicy }

// EdgeLength returns the planar length of node.
func (XYDistancePolicy) EdgeLength(g *mtg.Graph, node mtg.NodeID) float64 {
	return g.EdgeVector(node).LengthXY()
}

// XYZDistancePolicy weighs each edge by its 3D length.
type XYZDistancePolicy struct{ BasePolicy }

// EdgeLength returns the 3D length of node.
func (XYZDistancePolicy) EdgeLength(g *mtg.Graph, node mtg.NodeID) float64 {
	return g.EdgeVector(node).Length()
}

// MaxDistancePolicy vetoes every push beyond Max (branch and bound).
// A nil Inner behaves as UnitPolicy.
type MaxDistancePolicy struct {
	Inner SearchPolicy
	Max   float64
}

func (p MaxDistancePolicy) inner() SearchPolicy {
	if p.Inner == nil {
		return UnitPolicy{}
	}
	return p.Inner
}

// EdgeLength delegates to Inner.
func (p MaxDistancePolicy) EdgeLength(g *mtg.Graph, node mtg.NodeID) float64 {
	return p.inner().EdgeLength(g, node)
}

// CanPush admits distance <= Max when Inner does.
func (p MaxDistancePolicy) CanPush(g *mtg.Graph, node mtg.NodeID, distance float64) bool {
	return distance <= p.Max && p.inner().CanPush(g, node, distance)
}

// ContinueSearch delegates to Inner.
func (p MaxDistancePolicy) ContinueSearch() bool { return p.inner().ContinueSearch() }

// MaskFilterPolicy only admits nodes carrying any bit of Mask.
// A nil Inner behaves as UnitPolicy.
type MaskFilterPolicy struct {
	Inner SearchPolicy
	Mask  mtg.Mask
}

func (p MaskFilterPolicy) inner() SearchPolicy {
	if p.Inner == nil {
		return UnitPolicy{}
	}
	return p.Inner
}

// EdgeLength delegates to Inner.
func (p MaskFilterPolicy) EdgeLength(g *mtg.Graph, node mtg.NodeID) float64 {
	return p.inner().EdgeLength(g, node)
}

// CanPush admits node when it carries Mask and Inner admits it.
func (p MaskFilterPolicy) CanPush(g *mtg.Graph, node mtg.NodeID, distance float64) bool {
	return g.HasMaskAt(node, p.Mask) && p.inner().CanPush(g, node, distance)
}

// ContinueSearch delegates to Inner.
func (p MaskFilterPolicy) ContinueSearch() bool { return p.inner().ContinueSearch() }

// MaskHitPolicy stops the search when a vertex carrying Target somewhere
// around it is popped, so Hit is the target nearest to the seed under Inner's
// edge lengths and HitDistance its final distance. The seed itself counts at
// distance 0.
//
// The policy listens to the search's "seed" and "pop" announcements and may be
// reused across searches. Use a pointer: it records state. A nil Inner
// behaves as UnitPolicy.
type MaskHitPolicy struct {
	Inner       SearchPolicy
	Graph       *mtg.Graph
	Target      mtg.Mask
	Hit         mtg.NodeID
	HitDistance float64

	found   bool
	pending map[mtg.NodeID]float64 // last admitted distance per pushed node
}

// NewMaskHitPolicy returns a policy looking for target in g on top of inner.
func NewMaskHitPolicy(g *mtg.Graph, inner SearchPolicy, target mtg.Mask) *MaskHitPolicy {
	return &MaskHitPolicy{
		Inner:       inner,
		Graph:       g,
		Target:      target,
		Hit:         mtg.NullNode,
		HitDistance: UnreachedDistance,
	}
}

func (p *MaskHitPolicy) inner() SearchPolicy {
	if p.Inner == nil {
		return UnitPolicy{}
	}
	return p.Inner
}

// Found reports whether a hit was recorded.
func (p *MaskHitPolicy) Found() bool { return p.found }

// EdgeLength delegates to Inner.
func (p *MaskHitPolicy) EdgeLength(g *mtg.Graph, node mtg.NodeID) float64 {
	return p.inner().EdgeLength(g, node)
}

// CanPush delegates to Inner and remembers the distance of admitted nodes.
func (p *MaskHitPolicy) CanPush(g *mtg.Graph, node mtg.NodeID, distance float64) bool {
	if !p.inner().CanPush(g, node, distance) {
		return false
	}
	if p.pending == nil {
		p.pending = make(map[mtg.NodeID]float64)
	}
	p.pending[node] = distance

	return true
}

// ContinueSearch stops once a hit is recorded.
func (p *MaskHitPolicy) ContinueSearch() bool {
	return !p.found && p.inner().ContinueSearch()
}

// Announce resets the policy on "seed" and checks popped vertices for Target.
// Announcements are forwarded to Inner when it is an Announcer.
func (p *MaskHitPolicy) Announce(message string, a, b mtg.NodeID) {
	if an, ok := p.inner().(Announcer); ok {
		an.Announce(message, a, b)
	}

	switch message {
	case "seed":
		p.found = false
		p.Hit = mtg.NullNode
		p.HitDistance = UnreachedDistance
		p.pending = map[mtg.NodeID]float64{a: 0}
	case "pop":
		if p.found || p.Graph == nil || p.Graph.FindMaskAroundVertex(a, p.Target) == mtg.NullNode {
			return
		}
		d, ok := p.pending[a]
		if !ok {
			return
		}
		p.found = true
		p.Hit = a
		p.HitDistance = d
	}
}
