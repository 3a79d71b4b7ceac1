package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/turkmen-nlp/turkmenfst"
)

var lexiconPOS string

var lexiconCmd = &cobra.Command{
	Use:   "lexicon [word]",
	Short: "Look up lexicon entries",
	Long: `Show the entries and homonym senses of a word, or list every word
with a given part-of-speech tag.

Example:
  turkmenfst lexicon at
  turkmenfst lexicon --pos v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLexicon,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
	lexiconCmd.Flags().StringVar(&lexiconPOS, "pos", "", "list words tagged with this part of speech")
}

type entryView struct {
	Word    string   `json:"word" yaml:"word"`
	Entries []string `json:"entries" yaml:"entries"`
	Senses  []string `json:"senses,omitempty" yaml:"senses,omitempty"`
}

func runLexicon(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if lexiconPOS == "" {
			return fmt.Errorf("give a word or --pos")
		}
		words := e.Lexicon().ByPOS(turkmenfst.PartOfSpeech(lexiconPOS))
		return render(out, words, func(w io.Writer) {
			for _, word := range words {
				fmt.Fprintln(w, word)
			}
		})
	}

	v := entryView{Word: args[0], Entries: e.Describe(args[0])}
	if senses, ok := e.Lexicon().Homonyms(args[0]); ok {
		for _, s := range senses {
			v.Senses = append(v.Senses, fmt.Sprintf("%s. %s", s.Key, s.Gloss))
		}
	}
	if len(v.Entries) == 0 {
		return fmt.Errorf("%q is not in the lexicon", args[0])
	}
	return render(out, v, func(w io.Writer) {
		for _, line := range v.Entries {
			fmt.Fprintln(w, line)
		}
		for _, s := range v.Senses {
			fmt.Fprintf(w, "  %s\n", s)
		}
	})
}
