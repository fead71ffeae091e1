package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/happygraph/report"
)

// analyzeCmd prints the full report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build the graph and print the full report",
	Long: `Build the happiness graph and print, in order: the country listing, BFS
order from the start country, betweenness centrality, the DOT description,
node degrees and connected components.

Examples:
  happygraph analyze --input 2015.csv
  happygraph analyze --start Norway --max-iterations 0 --normalized
  happygraph analyze --threshold 0.5 --dedupe`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	res, err := runAnalysis()
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), res)
}
