// Config loading for the sudokuviz CLI. Every puzzle parameter
// resolves flag > config file > default.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/sudokuviz/internal/domain"
	"svw.info/sudokuviz/internal/generator"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeySize       = "size"
	cfgKeyDifficulty = "difficulty"
	cfgKeyLevel      = "level"
	cfgKeySeed       = "seed"
	cfgKeyDelay      = "delay"
	cfgKeyLogLevel   = "log_level"
	cfgKeyNoColor    = "no_color"
)

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySize, 9)
	v.SetDefault(cfgKeyDifficulty, generator.DefaultDifficulty)
	v.SetDefault(cfgKeyLevel, "")
	v.SetDefault(cfgKeySeed, 0)
	v.SetDefault(cfgKeyDelay, "100ms")
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyNoColor, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveConfigDir follows the precedence
// --config-dir flag > SUDOKUVIZ_CONFIG_DIR env > $(CWD)/.sudokuviz.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if env := os.Getenv("SUDOKUVIZ_CONFIG_DIR"); env != "" {
		return env
	}
	return filepath.Join(".", ".sudokuviz")
}

// The resolved* helpers take the command being run instead of reading
// rootCmd or solveCmd; referencing those here would place each command
// variable inside its own initialization cycle.
func resolvedSize(cmd *cobra.Command) int {
	if cmd.Root().PersistentFlags().Changed("size") {
		return flagSize
	}
	return cfg.GetInt(cfgKeySize)
}

func resolvedDifficulty(cmd *cobra.Command) float64 {
	if cmd.Root().PersistentFlags().Changed("difficulty") {
		return flagDifficulty
	}
	return cfg.GetFloat64(cfgKeyDifficulty)
}

func resolvedLevel(cmd *cobra.Command) string {
	if cmd.Root().PersistentFlags().Changed("level") {
		return flagLevel
	}
	return cfg.GetString(cfgKeyLevel)
}

func resolvedSeed(cmd *cobra.Command) int64 {
	if cmd.Root().PersistentFlags().Changed("seed") {
		return flagSeed
	}
	return cfg.GetInt64(cfgKeySeed)
}

func resolvedDelay(cmd *cobra.Command) time.Duration {
	if cmd.Flags().Changed("delay") {
		return flagDelay
	}
	return cfg.GetDuration(cfgKeyDelay)
}

func resolvedLogLevel(cmd *cobra.Command) string {
	if cmd.Root().PersistentFlags().Changed("log-level") {
		return flagLogLevel
	}
	return cfg.GetString(cfgKeyLogLevel)
}

func resolvedNoColor(cmd *cobra.Command) bool {
	if cmd.Root().PersistentFlags().Changed("no-color") {
		return flagNoColor
	}
	return cfg.GetBool(cfgKeyNoColor)
}

// puzzleOptions assembles generator options from the resolved values.
// A named level stands in for the difficulty ratio unless --difficulty
// was given explicitly.
func puzzleOptions(cmd *cobra.Command) (generator.Options, error) {
	opts := generator.Options{
		Size:       resolvedSize(cmd),
		Difficulty: resolvedDifficulty(cmd),
		Seed:       resolvedSeed(cmd),
	}
	if name := resolvedLevel(cmd); name != "" && !cmd.Root().PersistentFlags().Changed("difficulty") {
		lvl, err := domain.ParseLevel(name)
		if err != nil {
			return generator.Options{}, err
		}
		opts.Difficulty = lvl.Ratio()
	}
	return opts, nil
}
