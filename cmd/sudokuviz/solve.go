// Solve command: generate a puzzle and animate solving it.
package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudokuviz/internal/adapters/cli"
	"svw.info/sudokuviz/internal/generator"
	"svw.info/sudokuviz/internal/solver"
	"svw.info/sudokuviz/internal/usecase"
	"svw.info/sudokuviz/internal/validator"
)

var (
	flagDelay   time.Duration
	flagQuiet   bool
	flagProfile bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate a puzzle and animate solving it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagProfile {
			defer profile.Start().Stop()
		}

		opts, err := puzzleOptions(cmd)
		if err != nil {
			return err
		}
		s := solver.NewBacktrackingSolver()
		gen, err := generator.New(s, opts)
		if err != nil {
			return err
		}
		uc := usecase.NewService(s, gen, validator.New())

		r := &cli.Runner{
			UC:            uc,
			Out:           cmd.OutOrStdout(),
			Logger:        logger,
			DisableColors: resolvedNoColor(cmd),
			Quiet:         flagQuiet,
			PlaceDelay:    resolvedDelay(cmd),
			StartPause:    2 * time.Second,
			InitPause:     time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return r.Run(ctx)
	},
}

func init() {
	solveCmd.Flags().DurationVar(&flagDelay, "delay", 100*time.Millisecond, "pause after each placement (retractions take half)")
	solveCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip the animation, print only first and last boards")
	solveCmd.Flags().BoolVar(&flagProfile, "profile", false, "write a CPU profile")
}
