package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turkmen-nlp/turkmenfst"
)

var (
	spellFile string
	spellHTML bool
)

var spellCmd = &cobra.Command{
	Use:   "spell [text]",
	Short: "Spell-check Turkmen text",
	Long: `Spell-check text given as arguments, read from --file, or read from
standard input. A word is correct when it has an analysis on a lexicon
stem; misspelled words get up to five suggestions.

Example:
  turkmenfst spell "men kitabym okadym"
  turkmenfst spell --file page.html --html`,
	RunE: runSpell,
}

func init() {
	rootCmd.AddCommand(spellCmd)
	spellCmd.Flags().StringVar(&spellFile, "file", "", "read text from a file")
	spellCmd.Flags().BoolVar(&spellHTML, "html", false, "input is an HTML document")
}

func spellInput(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case spellFile != "":
		data, err := os.ReadFile(spellFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", spellFile, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func runSpell(cmd *cobra.Command, args []string) error {
	text, err := spellInput(cmd, args)
	if err != nil {
		return err
	}
	e, err := loadEngine()
	if err != nil {
		return err
	}

	var report turkmenfst.SpellReport
	if spellHTML {
		if report, err = e.SpellcheckHTML(text); err != nil {
			return err
		}
	} else {
		report = e.Spellcheck(text)
	}

	v := toSpellView(report)
	return render(cmd.OutOrStdout(), v, func(w io.Writer) {
		writeSpell(w, v)
	})
}

func writeSpell(w io.Writer, v spellView) {
	for _, word := range v.Words {
		switch {
		case !word.Correct:
			fmt.Fprintf(w, "✗ %s [%d:%d]", word.Word, word.Start, word.End)
			if len(word.Suggestions) > 0 {
				fmt.Fprintf(w, " → %s", strings.Join(word.Suggestions, ", "))
			}
			fmt.Fprintln(w)
		case verbose:
			fmt.Fprintf(w, "✓ %s  %s\n", word.Word, word.Analysis)
		}
	}
	fmt.Fprintf(w, "%d words, %d errors\n", v.WordCount, v.ErrorCount)
}
