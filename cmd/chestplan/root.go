package main

import (
	"context"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds state shared by every subcommand of one invocation.
type app struct {
	verbose bool
	runID   string
	log     *slog.Logger
}

// setup builds the run logger. Every record carries the run ID.
func (a *app) setup(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.runID = uuid.New().String()
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With("run_id", a.runID)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "chestplan",
		Short: "Plan chest-collection routes on weighted grids",
		Long: `chestplan loads a grid scenario (a map, an energy budget and a goal)
and plans a walk that collects chests within the budget, either greedily
(nearest chest first) or exhaustively (every feasible visiting order).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setup(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newPlanCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("chestplan", version)
		},
	})

	return cmd
}

// Execute runs cmd with SIGINT and SIGTERM cancelling its context.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}
