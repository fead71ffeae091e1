// Package cli provides the happygraph commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/happygraph/analysis"
	"github.com/katalvlaran/happygraph/internal/config"
	"github.com/katalvlaran/happygraph/internal/logger"
)

// =============================================================================
// Global Flags
// =============================================================================

var (
	configPath string
	logLevel   string
	envName    string

	// cfg is resolved by the root pre-run and read by every subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "happygraph",
	Short: "happygraph - graph analysis of world happiness data",
	Long: `happygraph loads a per-country happiness CSV, connects countries that share
a region or have similar happiness scores, and reports BFS order, betweenness
centrality, node degrees, connected components and a DOT description.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "Environment (development or production)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup resolves configuration and initializes the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if f := cmd.Flags(); f.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if cmd.Flags().Changed("env") {
		c.Env = envName
	}
	applyAnalyzeFlags(cmd.Flags(), c)

	if err := c.Validate(); err != nil {
		return err
	}
	if err := logger.Init(c.IsProduction(), c.LogLevel); err != nil {
		return err
	}
	cfg = c

	return nil
}

// =============================================================================
// Shared Helpers
// =============================================================================

// analyzeFlags holds flag values shared by analyze and dot.
type analyzeFlags struct {
	input         string
	start         string
	maxIterations int
	threshold     float64
	normalized    bool
	dedupe        bool
}

var af analyzeFlags

// addAnalyzeFlags registers the analysis flags on cmd.
func addAnalyzeFlags(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.Flags()
	f.StringVarP(&af.input, "input", "i", d.Input, "Path to the happiness CSV")
	f.StringVarP(&af.start, "start", "s", "", "BFS start country (default: first country by name)")
	f.IntVar(&af.maxIterations, "max-iterations", d.MaxIterations, "Max betweenness source nodes (0 = all)")
	f.Float64Var(&af.threshold, "threshold", d.Threshold, "Similarity threshold on happiness score")
	f.BoolVar(&af.normalized, "normalized", false, "Normalize betweenness scores")
	f.BoolVar(&af.dedupe, "dedupe", false, "Collapse duplicate edges between the same pair")
}

// applyAnalyzeFlags copies explicitly set flags onto c.
func applyAnalyzeFlags(f *pflag.FlagSet, c *config.Config) {
	if f.Lookup("input") == nil {
		return
	}
	if f.Changed("input") {
		c.Input = af.input
	}
	if f.Changed("start") {
		c.Start = af.start
	}
	if f.Changed("max-iterations") {
		c.MaxIterations = af.maxIterations
	}
	if f.Changed("threshold") {
		c.Threshold = af.threshold
	}
	if f.Changed("normalized") {
		c.Normalized = af.normalized
	}
	if f.Changed("dedupe") {
		c.Dedupe = af.dedupe
	}
}

// runAnalysis executes the pipeline described by cfg.
func runAnalysis() (*analysis.Result, error) {
	log := logger.Get()
	log.Info("starting analysis", zap.String("input", cfg.Input), zap.String("env", cfg.Env))

	res, err := analysis.RunFile(cfg.Input,
		analysis.WithLogger(log),
		analysis.WithColumns(cfg.Columns),
		analysis.WithStart(cfg.Start),
		analysis.WithThreshold(cfg.Threshold),
		analysis.WithMaxIterations(cfg.MaxIterations),
		analysis.WithNormalized(cfg.Normalized),
		analysis.WithDedupe(cfg.Dedupe),
		analysis.WithGraphName(cfg.GraphName),
	)
	if err != nil {
		log.Error("analysis failed", zap.Error(err))
		return nil, fmt.Errorf("failed to analyze %s: %w", cfg.Input, err)
	}

	return res, nil
}
