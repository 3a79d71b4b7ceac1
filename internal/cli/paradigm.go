package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var paradigmType string

var paradigmCmd = &cobra.Command{
	Use:   "paradigm <stem>",
	Short: "Print the full declension or conjugation of a stem",
	Long: `Print a paradigm table. Nouns get every case with and without the
singular-possessor suffixes, in both numbers; homonyms get one table per
sense. Verbs get every finite tense in all persons, positive and
negative, followed by the non-finite forms. Cells the grammar does not
allow are shown as —.

Example:
  turkmenfst paradigm kitap
  turkmenfst paradigm gel --type verb`,
	Args: cobra.ExactArgs(1),
	RunE: runParadigm,
}

func init() {
	rootCmd.AddCommand(paradigmCmd)
	paradigmCmd.Flags().StringVarP(&paradigmType, "type", "t", "noun", "paradigm type: noun or verb")
}

func runParadigm(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch paradigmType {
	case "noun", "n":
		var views []nounParadigmView
		for _, p := range e.NounParadigms(args[0]) {
			views = append(views, toNounParadigmView(p))
		}
		return render(out, views, func(w io.Writer) {
			for _, v := range views {
				writeNounParadigm(w, v)
			}
		})
	case "verb", "v":
		v := toVerbParadigmView(e.VerbParadigm(args[0]))
		return render(out, v, func(w io.Writer) {
			writeVerbParadigm(w, v)
		})
	default:
		return fmt.Errorf("unknown paradigm type %q (supported: noun, verb)", paradigmType)
	}
}

func writeNounParadigm(w io.Writer, v nounParadigmView) {
	title := v.Stem
	if v.Meaning != "" {
		title += " " + v.Meaning
	}
	fmt.Fprintln(w, title)
	for _, block := range []struct {
		name string
		rows []nounRowView
	}{{"Birlik", v.Singular}, {"Köplük", v.Plural}} {
		fmt.Fprintf(w, "\n%s\n", block.name)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "\t\tA1\tA2\tA3")
		for _, r := range block.rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Case, r.Bare, r.Poss1, r.Poss2, r.Poss3)
		}
		tw.Flush()
	}
	fmt.Fprintln(w)
}

func writeVerbParadigm(w io.Writer, v verbParadigmView) {
	fmt.Fprintln(w, v.Stem)
	for _, t := range v.Finite {
		fmt.Fprintf(w, "\n%s %s\n", t.Tense, t.Name)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range t.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Person, r.Positive, r.Negative)
		}
		tw.Flush()
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range v.NonFinite {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Tense, r.Name, r.Positive, r.Negative)
	}
	tw.Flush()
}
