package turkmenfst

// Missing fills paradigm cells the generator rejects.
const Missing = "—"

// NounRow is one case of a noun paradigm. Poss holds the 1sg, 2sg and
// 3sg possessive forms.
type NounRow struct {
	Case Case
	Bare string
	Poss [3]string
}

// NounParadigm is the declension of a noun stem in both numbers.
type NounParadigm struct {
	Stem     string
	// Meaning is the homonym gloss the table was built for, if any.
	Meaning  string
	Singular []NounRow
	Plural   []NounRow
}

// VerbRow is one person of a finite tense.
type VerbRow struct {
	Person   Person
	Positive string
	Negative string
}

// VerbTable is the conjugation of one finite tense.
type VerbTable struct {
	Tense Tense
	Rows  []VerbRow
}

// NonFiniteRow is a personless form: a converb, participle or voice.
type NonFiniteRow struct {
	Tense    Tense
	Positive string
	Negative string
}

// VerbParadigm is the conjugation of a verb stem.
type VerbParadigm struct {
	Stem      string
	Finite    []VerbTable
	NonFinite []NonFiniteRow
}

// BuildNounParadigm declines stem in every case with and without the
// singular-possessor suffixes.
func BuildNounParadigm(stem string, noSoftening bool) *NounParadigm {
	p := &NounParadigm{Stem: stem}
	for _, plural := range pluralOptions {
		rows := make([]NounRow, 0, len(AllCases))
		for _, c := range AllCases {
			f := NounForm{Plural: plural, Case: c, NoSoftening: noSoftening}
			row := NounRow{Case: c, Bare: cell(nounCell(stem, f))}
			for i, poss := range []Possessive{Poss1, Poss2, Poss3} {
				f.Possessive = poss
				row.Poss[i] = cell(GenerateNoun(stem, f))
			}
			rows = append(rows, row)
		}
		if plural {
			p.Plural = rows
		} else {
			p.Singular = rows
		}
	}
	return p
}

// nounCell generates f; the bare nominative is the stem itself.
func nounCell(stem string, f NounForm) GenerationResult {
	if !f.Plural && f.Possessive == PossNone && f.Case == Nominative {
		return GenerationResult{Word: stem, Stem: stem, Valid: true}
	}
	return GenerateNoun(stem, f)
}

// BuildVerbParadigm conjugates stem in every finite tense and lists
// its non-finite forms.
func BuildVerbParadigm(stem string) *VerbParadigm {
	p := &VerbParadigm{Stem: stem}
	for _, t := range AllTenses {
		if !t.Finite() {
			p.NonFinite = append(p.NonFinite, NonFiniteRow{
				Tense:    t,
				Positive: cell(GenerateVerb(stem, VerbForm{Tense: t})),
				Negative: cell(GenerateVerb(stem, VerbForm{Tense: t, Negative: true})),
			})
			continue
		}
		table := VerbTable{Tense: t}
		for _, person := range AllPersons {
			table.Rows = append(table.Rows, VerbRow{
				Person:   person,
				Positive: cell(GenerateVerb(stem, VerbForm{Tense: t, Person: person})),
				Negative: cell(GenerateVerb(stem, VerbForm{Tense: t, Person: person, Negative: true})),
			})
		}
		p.Finite = append(p.Finite, table)
	}
	return p
}

func cell(r GenerationResult) string {
	if !r.Valid {
		return Missing
	}
	return r.Word
}
