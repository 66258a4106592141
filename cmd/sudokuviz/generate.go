// Generate command: emit a puzzle and its solution without solving.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokuviz/internal/generator"
	"svw.info/sudokuviz/internal/render"
	"svw.info/sudokuviz/internal/solver"
	"svw.info/sudokuviz/internal/usecase"
	"svw.info/sudokuviz/internal/validator"
)

var flagJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle and print it with its solution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		p, st, err := uc.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		logger.Info("puzzle generated",
			"size", p.Puzzle.Size,
			"filled", p.Puzzle.CountFilled(),
			"seed", p.Seed,
			"steps", st.Steps,
			"dur", st.Duration.Round(time.Millisecond),
		)

		out := cmd.OutOrStdout()
		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		// One painter for both boards: carved cells show up colored
		// on the solution because they are not givens.
		painter := render.New(p.Puzzle, resolvedNoColor(cmd))
		fmt.Fprintln(out, "Puzzle:")
		fmt.Fprint(out, painter.Board(p.Puzzle))
		fmt.Fprintln(out, "\nSolution:")
		fmt.Fprint(out, painter.Board(p.Solution))
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
}
