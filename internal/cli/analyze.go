package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <word>...",
	Short: "Decompose words into stem and suffixes",
	Long: `Analyze finds every stem of the lexicon and every paradigm cell that
reproduces the word. Words without an analysis are reported with an
unknown reading.

Example:
  turkmenfst analyze kitaplarymdan
  turkmenfst analyze geldim atlar --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	views := make([]analysisView, 0, len(args))
	for _, word := range args {
		views = append(views, toAnalysisView(e.Analyze(word)))
	}
	return render(cmd.OutOrStdout(), views, func(w io.Writer) {
		for _, v := range views {
			writeAnalysis(w, v)
		}
	})
}

func writeAnalysis(w io.Writer, v analysisView) {
	fmt.Fprintln(w, v.Word)
	for i, r := range v.Results {
		line := fmt.Sprintf("  %d. %s [%s]", i+1, r.Breakdown, r.POS)
		if r.Meaning != "" {
			line += " " + r.Meaning
		}
		fmt.Fprintln(w, line)
	}
}
