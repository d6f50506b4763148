package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/meshpath/builder"
	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// ErrScenario indicates a scenario that cannot be turned into a mesh.
var ErrScenario = errors.New("invalid scenario")

// Metric names accepted by --metric and the scenario file.
const (
	MetricUnit = "unit"
	MetricXY   = "xy"
	MetricXYZ  = "xyz"
)

// Scenario is a mesh plus search settings, decoded from TOML:
//
//	metric  = "xy"
//	seed    = 0
//	points  = [[0, 0], [1, 0], [1, 1, 0.5]]
//	segments = [[0, 1], [1, 2], [2, 0]]
//	loops   = [[0, 1, 2]]
//
// A [grid] table may replace points and segments. Loops list the points of a
// face counter-clockwise.
type Scenario struct {
	Metric   string      `toml:"metric"`
	Seed     int         `toml:"seed"`
	Max      float64     `toml:"max"`
	Targets  []int       `toml:"targets"`
	Grid     *GridSpec   `toml:"grid"`
	Points   [][]float64 `toml:"points"`
	Segments [][]int     `toml:"segments"`
	Loops    [][]int     `toml:"loops"`
}

// GridSpec describes a generated grid.
type GridSpec struct {
	Rows      int     `toml:"rows"`
	Cols      int     `toml:"cols"`
	Spacing   float64 `toml:"spacing"`
	Diagonals bool    `toml:"diagonals"`
}

// LoadScenario decodes a scenario file. Unknown keys are rejected.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return finishDecode(&s, md)
}

// DecodeScenario decodes a scenario from TOML text.
func DecodeScenario(data string) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return finishDecode(&s, md)
}

func finishDecode(s *Scenario, md toml.MetaData) (*Scenario, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrScenario, strings.Join(keys, ", "))
	}
	if s.Metric == "" {
		s.Metric = MetricXY
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// GridScenario returns a scenario for a grid given as "RxC", e.g. "3x4".
func GridScenario(spec string, diagonals bool) (*Scenario, error) {
	r, c, ok := strings.Cut(strings.ToLower(spec), "x")
	if !ok {
		return nil, fmt.Errorf("%w: grid %q is not RxC", ErrScenario, spec)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return nil, fmt.Errorf("%w: grid rows %q", ErrScenario, r)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return nil, fmt.Errorf("%w: grid cols %q", ErrScenario, c)
	}

	s := &Scenario{
		Metric: MetricXY,
		Grid:   &GridSpec{Rows: rows, Cols: cols, Spacing: 1, Diagonals: diagonals},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NumPoints returns the number of points the scenario lays out.
func (s *Scenario) NumPoints() int {
	if s.Grid != nil {
		return s.Grid.Rows * s.Grid.Cols
	}
	return len(s.Points)
}

// Validate checks everything that does not need the embedded mesh.
func (s *Scenario) Validate() error {
	switch s.Metric {
	case MetricUnit, MetricXY, MetricXYZ:
	default:
		return fmt.Errorf("%w: metric %q (want unit, xy or xyz)", ErrScenario, s.Metric)
	}
	if s.Max < 0 {
		return fmt.Errorf("%w: max %g is negative", ErrScenario, s.Max)
	}

	if s.Grid != nil {
		if len(s.Points) > 0 || len(s.Segments) > 0 {
			return fmt.Errorf("%w: grid and points are exclusive", ErrScenario)
		}
		if s.Grid.Rows < 1 || s.Grid.Cols < 1 {
			return fmt.Errorf("%w: grid %dx%d", ErrScenario, s.Grid.Rows, s.Grid.Cols)
		}
		if s.Grid.Spacing < 0 {
			return fmt.Errorf("%w: grid spacing %g", ErrScenario, s.Grid.Spacing)
		}
	} else {
		if len(s.Points) == 0 {
			return fmt.Errorf("%w: no points", ErrScenario)
		}
		for i, p := range s.Points {
			if len(p) != 2 && len(p) != 3 {
				return fmt.Errorf("%w: point %d has %d coordinates", ErrScenario, i, len(p))
			}
		}
		for i, seg := range s.Segments {
			if len(seg) != 2 {
				return fmt.Errorf("%w: segment %d has %d endpoints", ErrScenario, i, len(seg))
			}
		}
	}

	n := s.NumPoints()
	if err := s.checkPoint("seed", s.Seed, n); err != nil {
		return err
	}
	for _, t := range s.Targets {
		if err := s.checkPoint("target", t, n); err != nil {
			return err
		}
	}
	for i, loop := range s.Loops {
		if len(loop) < 3 {
			return fmt.Errorf("%w: loop %d has %d points", ErrScenario, i, len(loop))
		}
		for _, v := range loop {
			if err := s.checkPoint("loop point", v, n); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Scenario) checkPoint(what string, v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %s %d outside [0,%d)", ErrScenario, what, v, n)
	}
	return nil
}

// Build embeds the scenario's drawing.
func (s *Scenario) Build() (*builder.Mesh, error) {
	if s.Grid != nil {
		var opts []builder.BuilderOption
		if s.Grid.Spacing > 0 {
			opts = append(opts, builder.WithSpacing(s.Grid.Spacing))
		}
		if s.Grid.Diagonals {
			opts = append(opts, builder.WithDiagonals())
		}
		return builder.BuildMesh(opts, builder.Grid(s.Grid.Rows, s.Grid.Cols))
	}

	points := make([]mtg.Point3, len(s.Points))
	for i, p := range s.Points {
		points[i] = mtg.Point3{X: p[0], Y: p[1]}
		if len(p) == 3 {
			points[i].Z = p[2]
		}
	}
	segments := make([][2]int, len(s.Segments))
	for i, seg := range s.Segments {
		segments[i] = [2]int{seg[0], seg[1]}
	}

	return builder.BuildMesh(nil, builder.Segments(points, segments))
}

// MarkLoops sets mask around the face of every scenario loop. Each loop must
// match its face exactly, starting anywhere but in counter-clockwise order.
func (s *Scenario) MarkLoops(m *builder.Mesh, mask mtg.Mask) error {
	for i, loop := range s.Loops {
		start := m.NodeBetween(loop[0], loop[1])
		if start == mtg.NullNode {
			return fmt.Errorf("%w: loop %d: no segment %d-%d", ErrScenario, i, loop[0], loop[1])
		}
		face := m.Graph.CollectFaceLoop(start)
		if len(face) != len(loop) {
			return fmt.Errorf("%w: loop %d has %d points, its face has %d", ErrScenario, i, len(loop), len(face))
		}
		for j, n := range face {
			if m.VertexOf(n) != loop[j] {
				return fmt.Errorf("%w: loop %d is not a counter-clockwise face", ErrScenario, i)
			}
		}
		m.Graph.SetMaskAroundFace(start, mask)
	}

	return nil
}

// Policy returns the search policy for the scenario's metric and distance cap.
func (s *Scenario) Policy() shortestpath.SearchPolicy {
	var p shortestpath.SearchPolicy
	switch s.Metric {
	case MetricUnit:
		p = shortestpath.UnitPolicy{}
	case MetricXYZ:
		p = shortestpath.XYZDistancePolicy{}
	default:
		p = shortestpath.XYDistancePolicy{}
	}
	if s.Max > 0 {
		p = shortestpath.MaxDistancePolicy{Inner: p, Max: s.Max}
	}

	return p
}
