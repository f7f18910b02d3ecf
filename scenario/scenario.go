// Package scenario loads chest-collection worlds from YAML files.
//
// A scenario describes the grid either as a text map:
//
//	name: corridor
//	energy: 12
//	goal: 2
//	map:
//	  - "S..#C"
//	  - ".#..."
//	  - "..C.."
//
// using the gridgraph legend, or as an explicit cost matrix:
//
//	energy: 5
//	goal: 1
//	costs: [[1, 1], [0, 1]]
//	start: {row: 0, col: 0}
//	chests: [{row: 1, col: 1}]
//
// Unknown keys are rejected so that typos do not silently drop settings.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chestpath/gridgraph"
)

var (
	// ErrNoMap indicates a scenario with neither map nor costs.
	ErrNoMap = errors.New("scenario: no map or costs given")

	// ErrAmbiguousMap indicates a text map combined with costs, start or chests.
	ErrAmbiguousMap = errors.New("scenario: map cannot be combined with costs, start or chests")
)

// Cell is a YAML-friendly grid coordinate.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Point converts c to a gridgraph.Point.
func (c Cell) Point() gridgraph.Point { return gridgraph.Point{Row: c.Row, Col: c.Col} }

// Scenario is one world description.
type Scenario struct {
	Name   string   `yaml:"name,omitempty"`
	Energy int      `yaml:"energy"`
	Goal   int      `yaml:"goal"`
	Map    []string `yaml:"map,omitempty"`
	Costs  [][]int  `yaml:"costs,omitempty"`
	Start  *Cell    `yaml:"start,omitempty"`
	Chests []Cell   `yaml:"chests,omitempty"`
}

// ParseError is a scenario error with file context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	return parse(data, path)
}

// Parse parses a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}
	if _, err := s.World(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &s, nil
}

// World builds the grid world the scenario describes.
//
// Errors: ErrNoMap, ErrAmbiguousMap, gridgraph.ErrNoStart when costs come
// without a start, and any error from gridgraph.ParseRows or NewGridGraph.
func (s *Scenario) World() (*gridgraph.GridGraph, error) {
	hasMap := len(s.Map) > 0
	hasCosts := len(s.Costs) > 0
	switch {
	case hasMap && (hasCosts || s.Start != nil || len(s.Chests) > 0):
		return nil, ErrAmbiguousMap
	case hasMap:
		return gridgraph.ParseRows(s.Map, s.Energy, s.Goal)
	case !hasCosts:
		return nil, ErrNoMap
	case s.Start == nil:
		return nil, gridgraph.ErrNoStart
	}

	chests := make([]gridgraph.Point, len(s.Chests))
	for i, c := range s.Chests {
		chests[i] = c.Point()
	}

	return gridgraph.NewGridGraph(s.Costs, gridgraph.GridOptions{
		Start:  s.Start.Point(),
		Chests: chests,
		Energy: s.Energy,
		Goal:   s.Goal,
	})
}

// Marshal renders s back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// FromGrid describes gg as a scenario. Grids whose costs all fit the text
// legend are written as a map; others fall back to an explicit cost matrix.
func FromGrid(name string, gg *gridgraph.GridGraph) *Scenario {
	s := &Scenario{Name: name, Energy: gg.Energy(), Goal: gg.Goal()}
	if fitsLegend(gg) {
		s.Map = gg.Rows()
		return s
	}

	s.Costs = gg.Costs
	start := gg.Start()
	s.Start = &Cell{Row: start.Row, Col: start.Col}
	for _, c := range gg.Targets() {
		s.Chests = append(s.Chests, Cell{Row: c.Row, Col: c.Col})
	}

	return s
}

// fitsLegend reports whether Rows renders gg without loss: every cost is at
// most 9, the start and every chest sit on cost-1 cells, and no chest shares
// the start cell.
func fitsLegend(gg *gridgraph.GridGraph) bool {
	for _, row := range gg.Costs {
		for _, c := range row {
			if c > 9 {
				return false
			}
		}
	}
	for _, p := range append(gg.Targets(), gg.Start()) {
		if gg.Cost(p) != 1 {
			return false
		}
	}
	for _, c := range gg.Targets() {
		if c == gg.Start() {
			return false
		}
	}

	return true
}
