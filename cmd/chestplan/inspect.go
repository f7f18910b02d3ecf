package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chestpath/dijkstra"
	"github.com/katalvlaran/chestpath/gridgraph"
	"github.com/katalvlaran/chestpath/scenario"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scenario.yaml>",
		Short: "Describe a scenario: size, regions and chest reachability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return WrapError(ExitError, "failed to load scenario", err)
			}
			w, err := sc.World()
			if err != nil {
				return WrapError(ExitError, "invalid scenario", err)
			}
			a.log.Debug("inspecting", "scenario", args[0])

			return writeInspection(cmd.OutOrStdout(), sc.Name, w)
		},
	}
}

// writeInspection prints the world summary and one row per chest with its
// cheapest cost from the start, or "-" when it cannot be reached.
func writeInspection(out io.Writer, name string, w *gridgraph.GridGraph) error {
	start := w.Start()
	costs := make(map[gridgraph.Point]int, len(w.Targets()))
	for p := range dijkstra.FindPaths(w, start, w.Targets()) {
		costs[p.Destination()] = p.Cost
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "scenario: %s\n", name)
	}
	fmt.Fprintf(&b, "size:     %dx%d\n", w.Width, w.Height)
	fmt.Fprintf(&b, "start:    %s\n", start)
	fmt.Fprintf(&b, "energy:   %d\n", w.Energy())
	fmt.Fprintf(&b, "goal:     %d of %d chests\n", w.Goal(), len(w.Targets()))
	fmt.Fprintf(&b, "regions:  %d (start region %d cells)\n", len(w.Regions()), w.ReachableFrom(start).Size())
	fmt.Fprintf(&b, "reachable within energy: %d\n", countWithin(costs, w.Energy()))
	b.WriteString("\n")
	if _, err := io.WriteString(out, b.String()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHEST\tREACHABLE\tSTART COST")
	for _, c := range w.Targets() {
		cost, ok := costs[c]
		reach, shown := "no", "-"
		if ok {
			reach, shown = "yes", strconv.Itoa(cost)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c, reach, shown)
	}

	return tw.Flush()
}

func countWithin(costs map[gridgraph.Point]int, energy int) int {
	n := 0
	for _, c := range costs {
		if c <= energy {
			n++
		}
	}

	return n
}
