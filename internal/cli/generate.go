package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turkmen-nlp/turkmenfst"
)

var (
	genPlural      bool
	genPossessive  string
	genCase        string
	genNoSoftening bool

	genTense    string
	genPerson   string
	genNegative bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an inflected form",
}

var generateNounCmd = &cobra.Command{
	Use:   "noun <stem>",
	Short: "Decline a noun",
	Long: `Decline a noun stem for number, possessor and case.

Possessive codes: A1 A2 A3 (singular possessor), B1 B2 B3 (plural).
Case codes: A1 (nominative) … A6 (ablative), or nom gen dat acc loc abl.

Example:
  turkmenfst generate noun kitap --plural --possessive A1 --case A6
  turkmenfst generate noun at --possessive A1`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateNoun,
}

var generateVerbCmd = &cobra.Command{
	Use:   "verb <stem>",
	Short: "Conjugate a verb",
	Long: `Conjugate a verb stem in one tense and person.

Tenses are given by number (1-18) or display code (Ö1, H1, G2, Ş1, …).
Persons: A1 A2 A3 B1 B2 B3, or 1sg … 3pl.

Example:
  turkmenfst generate verb gel --tense 1 --person A1
  turkmenfst generate verb gel --tense G2 --person 1sg --negative`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerateVerb,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateNounCmd)
	generateCmd.AddCommand(generateVerbCmd)

	generateNounCmd.Flags().BoolVar(&genPlural, "plural", false, "plural number")
	generateNounCmd.Flags().StringVar(&genPossessive, "possessive", "", "possessive code (A1-A3, B1-B3)")
	generateNounCmd.Flags().StringVar(&genCase, "case", "A1", "case code (A1-A6)")
	generateNounCmd.Flags().BoolVar(&genNoSoftening, "no-softening", false, "keep a final p/ç/t/k hard")

	generateVerbCmd.Flags().StringVar(&genTense, "tense", "1", "tense number or code")
	generateVerbCmd.Flags().StringVar(&genPerson, "person", "", "person code (A1-A3, B1-B3)")
	generateVerbCmd.Flags().BoolVar(&genNegative, "negative", false, "negative form")
}

// parseNounForm builds a NounForm from the generate noun flags.
func parseNounForm(plural bool, possessive, kase string) (turkmenfst.NounForm, error) {
	poss, num, err := turkmenfst.ParsePossessive(possessive)
	if err != nil {
		return turkmenfst.NounForm{}, err
	}
	c, err := turkmenfst.ParseCase(kase)
	if err != nil {
		return turkmenfst.NounForm{}, err
	}
	return turkmenfst.NounForm{Plural: plural, Possessive: poss, Number: num, Case: c}, nil
}

// parseVerbForm builds a VerbForm. An empty person is left unset for
// the personless forms.
func parseVerbForm(tense, person string, negative bool) (turkmenfst.VerbForm, error) {
	t, err := turkmenfst.ParseTense(tense)
	if err != nil {
		return turkmenfst.VerbForm{}, err
	}
	f := turkmenfst.VerbForm{Tense: t, Negative: negative}
	if person != "" {
		if f.Person, err = turkmenfst.ParsePerson(person); err != nil {
			return turkmenfst.VerbForm{}, err
		}
	}
	return f, nil
}

func runGenerateNoun(cmd *cobra.Command, args []string) error {
	f, err := parseNounForm(genPlural, genPossessive, genCase)
	if err != nil {
		return err
	}
	f.NoSoftening = genNoSoftening

	e, err := loadEngine()
	if err != nil {
		return err
	}
	var views []formView
	for _, sr := range e.InflectNoun(args[0], f) {
		if !sr.Result.Valid {
			return sr.Result.Err
		}
		views = append(views, toFormView(sr.Result, sr.Sense.Gloss))
	}
	return render(cmd.OutOrStdout(), views, func(w io.Writer) {
		for _, v := range views {
			writeForm(w, v)
		}
	})
}

func runGenerateVerb(cmd *cobra.Command, args []string) error {
	f, err := parseVerbForm(genTense, genPerson, genNegative)
	if err != nil {
		return err
	}
	r := turkmenfst.GenerateVerb(args[0], f)
	if !r.Valid {
		return r.Err
	}
	v := toFormView(r, "")
	return render(cmd.OutOrStdout(), v, func(w io.Writer) {
		writeForm(w, v)
	})
}

func writeForm(w io.Writer, v formView) {
	if v.Meaning != "" {
		fmt.Fprintf(w, "%s\t%s\t(%s)\n", v.Meaning, v.Word, strings.Join(v.Breakdown, " + "))
		return
	}
	fmt.Fprintf(w, "%s\t(%s)\n", v.Word, strings.Join(v.Breakdown, " + "))
}
