// Root command for the sudokuviz CLI.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/sudokuviz/internal/generator"
)

const version = "1.0.0"

// Global flag values.
var (
	flagConfigDir  string
	flagLogLevel   string
	flagNoColor    bool
	flagSize       int
	flagDifficulty float64
	flagLevel      string
	flagSeed       int64
)

// cfg holds file-backed defaults; logger writes to stderr so board
// frames own stdout. Both are set by PersistentPreRunE.
var (
	cfg    *viper.Viper
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:          "sudokuviz",
	Short:        "sudokuviz generates Sudoku puzzles and animates solving them",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		v, err := loadConfig(resolveConfigDir())
		if err != nil {
			return err
		}
		cfg = v
		logger = newLogger(resolvedLogLevel(cmd))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.sudokuviz)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 9, "grid edge length (perfect square)")
	rootCmd.PersistentFlags().Float64Var(&flagDifficulty, "difficulty", generator.DefaultDifficulty, "fraction of cells to carve, 0..1")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "easy|medium|hard|expert, a preset for --difficulty")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = clock)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
