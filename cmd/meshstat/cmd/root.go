package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/meshstat/internal/config"
	"github.com/dbsmedya/meshstat/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "meshstat",
	Short: "Mesh traversal benchmark reporter",
	Long: `Summarize the per-vertex and per-face measurements written by the mesh
traversal benchmark and produce a fixed-layout text report.

Features:
  - Mean, min, max and sample standard deviation per measured quantity
  - Negative sentinel values excluded from every statistic
  - Explicit failures for missing totals and empty quantities
  - Optional YAML config with environment variable substitution`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "meshstat.yaml",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
}

// loadRuntime loads the optional config file, applies the positional input,
// the output flag and the logging overrides, validates the result and builds
// the logger.
func loadRuntime(inputPath, outputPath string, requireOutput bool) (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadOptional(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(inputPath, outputPath, overrides.LogLevel, overrides.LogFormat)

	if err := cfg.Validate(requireOutput); err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// inputArg returns the positional input path, if any.
func inputArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
