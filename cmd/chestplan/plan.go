package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chestpath/planner"
	"github.com/katalvlaran/chestpath/scenario"
)

// planFlags are the options of the plan command.
type planFlags struct {
	algo       string
	format     string
	maxTargets int
}

func newPlanCmd(a *app) *cobra.Command {
	f := &planFlags{}
	cmd := &cobra.Command{
		Use:   "plan <scenario.yaml>",
		Short: "Plan a route that collects the scenario's chests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, a, f, args[0])
		},
	}
	cmd.Flags().StringVar(&f.algo, "algo", "greedy", "Planning algorithm (greedy|exhaustive)")
	cmd.Flags().StringVarP(&f.format, "format", "f", string(FormatText), "Output format (text|json|geojson)")
	cmd.Flags().IntVar(&f.maxTargets, "max-targets", planner.DefaultMaxTargets, "Largest number of reachable chests exhaustive search accepts (1-64)")

	return cmd
}

// noPlanErrors are the planner failures that mean "no feasible plan", as
// opposed to bad input.
var noPlanErrors = []error{
	planner.ErrInsufficientTargets,
	planner.ErrUnreachable,
	planner.ErrEnergyExhausted,
}

func runPlan(cmd *cobra.Command, a *app, f *planFlags, path string) error {
	format, err := ParseOutputFormat(f.format)
	if err != nil {
		return WrapError(ExitError, "invalid --format", err)
	}
	algo, err := planner.ParseAlgorithm(f.algo)
	if err != nil {
		return WrapError(ExitError, "invalid --algo", err)
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return WrapError(ExitError, "failed to load scenario", err)
	}
	w, err := sc.World()
	if err != nil {
		return WrapError(ExitError, "invalid scenario", err)
	}

	opts := planner.DefaultOptions()
	opts.Algo = algo
	opts.MaxTargets = f.maxTargets
	opts.Logger = a.log.With("scenario", sc.Name)

	a.log.Info("planning", "scenario", path, "algo", algo.String(),
		"size", fmt.Sprintf("%dx%d", w.Width, w.Height), "chests", len(w.Targets()),
		"energy", w.Energy(), "goal", w.Goal())

	res, err := planner.Solve(cmd.Context(), w, opts)
	if err != nil {
		for _, target := range noPlanErrors {
			if errors.Is(err, target) {
				a.log.Info("no feasible plan", "reason", err.Error())
				return WrapError(ExitNoPlan, "no feasible plan", err)
			}
		}
		return WrapError(ExitError, "planning failed", err)
	}
	a.log.Info("planned", "collected", len(res.Collected), "cost", res.Cost, "steps", len(res.Path))

	out := report{
		RunID:     a.runID,
		Scenario:  sc.Name,
		Algorithm: algo.String(),
		World:     w,
		Result:    res,
	}
	if err := out.write(cmd.OutOrStdout(), format); err != nil {
		return WrapError(ExitError, "failed to write output", err)
	}

	if len(res.Collected) < w.Goal() {
		return &CLIError{
			Code:    ExitNoPlan,
			Message: fmt.Sprintf("best plan collects %d of %d chests", len(res.Collected), w.Goal()),
		}
	}

	return nil
}
