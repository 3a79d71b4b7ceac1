package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turkmen-nlp/turkmenfst"
)

const replHelp = `Each line is one of:

  <word> [<word>...]                  analyze words
  noun <stem> [poss] [case] [pl]      decline a noun, e.g. noun kitap A1 A6 pl
  verb <stem> <tense> [person] [neg]  conjugate a verb, e.g. verb gel 7 A1 neg
  spell <text>                        spell-check text
  help                                show this help
  quit                                leave`

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Analyze and generate words in an interactive session",
	Long:    "Start an interactive session. " + replHelp,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}
	return repl(e, cmd.InOrStdin(), cmd.OutOrStdout())
}

// repl reads commands from in until quit or end of input.
func repl(e *turkmenfst.Engine, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				return nil
			}
			if err := replLine(e, fields, out); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func replLine(e *turkmenfst.Engine, fields []string, out io.Writer) error {
	switch fields[0] {
	case "help":
		fmt.Fprintln(out, replHelp)
	case "noun":
		if len(fields) < 2 {
			return fmt.Errorf("usage: noun <stem> [poss] [case] [pl]")
		}
		var codes []string
		plural := false
		for _, f := range fields[2:] {
			if f == "pl" {
				plural = true
				continue
			}
			codes = append(codes, f)
		}
		codes = append(codes, "", "")
		f, err := parseNounForm(plural, codes[0], codes[1])
		if err != nil {
			return err
		}
		for _, sr := range e.InflectNoun(fields[1], f) {
			if !sr.Result.Valid {
				return sr.Result.Err
			}
			writeForm(out, toFormView(sr.Result, sr.Sense.Gloss))
		}
	case "verb":
		if len(fields) < 3 {
			return fmt.Errorf("usage: verb <stem> <tense> [person] [neg]")
		}
		person, negative := "", false
		for _, f := range fields[3:] {
			if f == "neg" {
				negative = true
			} else {
				person = f
			}
		}
		f, err := parseVerbForm(fields[2], person, negative)
		if err != nil {
			return err
		}
		r := e.GenerateVerb(fields[1], f)
		if !r.Valid {
			return r.Err
		}
		writeForm(out, toFormView(r, ""))
	case "spell":
		writeSpell(out, toSpellView(e.Spellcheck(strings.Join(fields[1:], " "))))
	default:
		for _, word := range fields {
			writeAnalysis(out, toAnalysisView(e.Analyze(word)))
		}
	}
	return nil
}
