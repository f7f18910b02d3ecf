package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/chestpath/gridgraph"
	"github.com/katalvlaran/chestpath/planner"
)

// OutputFormat selects how a plan is printed.
type OutputFormat string

const (
	// FormatText is human-readable text with the route drawn on the map.
	FormatText OutputFormat = "text"
	// FormatJSON is structured JSON output.
	FormatJSON OutputFormat = "json"
	// FormatGeoJSON is a FeatureCollection with x = column and y = row.
	FormatGeoJSON OutputFormat = "geojson"
)

// ParseOutputFormat validates a --format value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatGeoJSON:
		return f, nil
	}

	return "", fmt.Errorf("unknown output format %q (want text, json or geojson)", s)
}

// report is everything printed for one plan.
type report struct {
	RunID     string
	Scenario  string
	Algorithm string
	World     *gridgraph.GridGraph
	Result    planner.Result
}

func (r report) write(w io.Writer, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return r.writeJSON(w)
	case FormatGeoJSON:
		return r.writeGeoJSON(w)
	default:
		return r.writeText(w)
	}
}

func (r report) writeText(w io.Writer) error {
	var b strings.Builder
	if r.Scenario != "" {
		fmt.Fprintf(&b, "scenario:  %s\n", r.Scenario)
	}
	fmt.Fprintf(&b, "algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(&b, "collected: %d/%d chests\n", len(r.Result.Collected), r.World.Goal())
	fmt.Fprintf(&b, "cost:      %d/%d energy\n", r.Result.Cost, r.World.Energy())
	fmt.Fprintf(&b, "steps:     %d\n", len(r.Result.Path))
	b.WriteString("\n")
	for _, row := range drawRoute(r.World, r.Result.Path) {
		b.WriteString(row)
		b.WriteString("\n")
	}
	if len(r.Result.Path) > 0 {
		b.WriteString("\n")
		b.WriteString(joinPoints(r.Result.Path))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// drawRoute renders the map with '*' on route cells that are neither the
// start nor a chest.
func drawRoute(gg *gridgraph.GridGraph, path []gridgraph.Point) []string {
	rows := gg.Rows()
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(row)
	}
	for _, p := range path {
		if ch := grid[p.Row][p.Col]; ch != 'S' && ch != 'C' {
			grid[p.Row][p.Col] = '*'
		}
	}
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}

	return out
}

func joinPoints(ps []gridgraph.Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}

// cell is the JSON form of a grid point.
type cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func cells(ps []gridgraph.Point) []cell {
	out := make([]cell, len(ps))
	for i, p := range ps {
		out[i] = cell{Row: p.Row, Col: p.Col}
	}

	return out
}

// planJSON is the JSON document written by --format json.
type planJSON struct {
	RunID     string `json:"run_id"`
	Scenario  string `json:"scenario,omitempty"`
	Algorithm string `json:"algorithm"`
	Energy    int    `json:"energy"`
	Goal      int    `json:"goal"`
	Start     cell   `json:"start"`
	Cost      int    `json:"cost"`
	Collected []cell `json:"collected"`
	Path      []cell `json:"path"`
}

func (r report) writeJSON(w io.Writer) error {
	start := r.World.Start()
	doc := planJSON{
		RunID:     r.RunID,
		Scenario:  r.Scenario,
		Algorithm: r.Algorithm,
		Energy:    r.World.Energy(),
		Goal:      r.World.Goal(),
		Start:     cell{Row: start.Row, Col: start.Col},
		Cost:      r.Result.Cost,
		Collected: cells(r.Result.Collected),
		Path:      cells(r.Result.Path),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// orbPoint maps a grid cell to planar coordinates: x = column, y = row.
func orbPoint(p gridgraph.Point) orb.Point {
	return orb.Point{float64(p.Col), float64(p.Row)}
}

// featureCollection builds the GeoJSON view of the plan: the start, the
// route as a LineString starting at the start cell, and one Point per
// collected chest in visiting order.
func (r report) featureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	start := geojson.NewFeature(orbPoint(r.World.Start()))
	start.Properties["kind"] = "start"
	start.Properties["energy"] = r.World.Energy()
	fc.Append(start)

	if len(r.Result.Path) > 0 {
		line := make(orb.LineString, 0, len(r.Result.Path)+1)
		line = append(line, orbPoint(r.World.Start()))
		for _, p := range r.Result.Path {
			line = append(line, orbPoint(p))
		}
		route := geojson.NewFeature(line)
		route.Properties["kind"] = "route"
		route.Properties["algorithm"] = r.Algorithm
		route.Properties["cost"] = r.Result.Cost
		route.Properties["run_id"] = r.RunID
		fc.Append(route)
	}

	for i, c := range r.Result.Collected {
		chest := geojson.NewFeature(orbPoint(c))
		chest.Properties["kind"] = "chest"
		chest.Properties["order"] = i + 1
		fc.Append(chest)
	}

	return fc
}

func (r report) writeGeoJSON(w io.Writer) error {
	data, err := r.featureCollection().MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}
