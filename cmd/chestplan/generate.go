package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chestpath/gridgraph"
	"github.com/katalvlaran/chestpath/scenario"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed int64
		name string
		cfg  = gridgraph.RandomConfig{
			Height: 10, Width: 10, WallPercent: 20, MaxCost: 1,
			Chests: 5, Energy: 30, Goal: 3,
		}
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random scenario as YAML",
		Long: `generate prints a pseudo-random scenario. The same seed and
settings always produce the same scenario.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gg, err := gridgraph.RandomGridGraph(seed, cfg)
			if err != nil {
				return WrapError(ExitError, "failed to generate scenario", err)
			}
			data, err := scenario.FromGrid(name, gg).Marshal()
			if err != nil {
				return WrapError(ExitError, "failed to encode scenario", err)
			}
			a.log.Debug("generated", "seed", seed, "chests", len(gg.Targets()))
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed (0 behaves like 1)")
	cmd.Flags().StringVar(&name, "name", "random", "Scenario name")
	cmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "Grid rows")
	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Grid columns")
	cmd.Flags().IntVar(&cfg.WallPercent, "walls", cfg.WallPercent, "Chance in percent that a cell is a wall")
	cmd.Flags().IntVar(&cfg.MaxCost, "max-cost", cfg.MaxCost, "Largest cell cost")
	cmd.Flags().IntVar(&cfg.Chests, "chests", cfg.Chests, "Number of chests")
	cmd.Flags().IntVar(&cfg.Energy, "energy", cfg.Energy, "Energy budget")
	cmd.Flags().IntVar(&cfg.Goal, "goal", cfg.Goal, "Chests to collect")

	return cmd
}
