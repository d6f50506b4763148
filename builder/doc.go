// Package builder lays out deterministic planar meshes and embeds them into an
// mtg.Graph, for tests, examples and the command-line tool.
//
// Constructors append points and segments to a shared Layout; BuildMesh runs
// them in order and embeds the result once:
//
//   - Grid(rows, cols):            orthogonal grid, optional diagonals.
//   - Ring(n, radius, center):     closed n-gon.
//   - Wheel(n, radius, center):    ring of n-1 points plus a hub with spokes.
//   - Path(points):                open polyline.
//   - Segments(points, segments):  arbitrary drawing.
//
// Options (BuilderOption) tune the layout: WithSpacing, WithOrigin,
// WithHeightFn and WithDiagonals. Option constructors panic on meaningless
// values; constructors return sentinel errors wrapped with %w.
//
// Embedding orders every point's outbound half-edges clockwise by XY angle, so
// every face is traced counter-clockwise with the face on the left of its
// nodes. Segments must not cross; crossings are not detected.
//
// The Mesh keeps the link between points and nodes: VertexNode, EdgeNode,
// VertexOf and NodeBetween.
package builder
