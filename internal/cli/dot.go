package cli

import (
	"github.com/spf13/cobra"
)

// dotCmd prints only the DOT description.
var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Print the graph in Graphviz DOT format",
	Long: `Build the happiness graph and print only its DOT description.

Examples:
  happygraph dot --input 2015.csv | dot -Tsvg > graph.svg`,
	Args: cobra.NoArgs,
	RunE: runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)
	addAnalyzeFlags(dotCmd)
}

func runDot(cmd *cobra.Command, _ []string) error {
	res, err := runAnalysis()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(res.DOT); err != nil {
		return err
	}
	if n := len(res.DOT); n > 0 && res.DOT[n-1] != '\n' {
		_, err = out.Write([]byte{'\n'})
	}

	return err
}
