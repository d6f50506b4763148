package unionfind

// Set is a disjoint-set forest. The zero value is an empty set ready to use.
type Set struct {
	parent []int
	rank   []uint8
}

// New returns an empty Set with room for capacity clusters.
func New(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		parent: make([]int, 0, capacity),
		rank:   make([]uint8, 0, capacity),
	}
}

// NewCluster creates a singleton cluster and returns its id.
func (s *Set) NewCluster() int {
	id := len(s.parent)
	s.parent = append(s.parent, id)
	s.rank = append(s.rank, 0)

	return id
}

// Len returns the number of clusters ever created.
func (s *Set) Len() int { return len(s.parent) }

// Find returns the root of cluster i, or -1 if i is out of range.
// Iterative, with path halving: every visited node is re-pointed to its
// grandparent.
func (s *Set) Find(i int) int {
	if i < 0 || i >= len(s.parent) {
		return -1
	}
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}

	return i
}

// Union merges the clusters of a and b.
// It returns the resulting root and whether a merge happened; merged is false
// when a and b already share a root or either id is out of range (root is -1
// in the latter case).
func (s *Set) Union(a, b int) (root int, merged bool) {
	ra, rb := s.Find(a), s.Find(b)
	if ra < 0 || rb < 0 {
		return -1, false
	}
	if ra == rb {
		return ra, false
	}
	// Attach the shallower tree under the deeper one.
	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}

	return ra, true
}

// Same reports whether a and b are valid ids in the same cluster.
func (s *Set) Same(a, b int) bool {
	ra := s.Find(a)
	return ra >= 0 && ra == s.Find(b)
}

// Roots returns the number of distinct clusters.
func (s *Set) Roots() int {
	count := 0
	for i, p := range s.parent {
		if i == p {
			count++
		}
	}

	return count
}

// Reset drops every cluster, keeping storage.
func (s *Set) Reset() {
	s.parent = s.parent[:0]
	s.rank = s.rank[:0]
}
