package cli

import "github.com/turkmen-nlp/turkmenfst"

// The view types give the json and yaml renderings stable field names
// and turn enums into their codes.

type formView struct {
	Word      string   `json:"word" yaml:"word"`
	Stem      string   `json:"stem" yaml:"stem"`
	Meaning   string   `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Breakdown []string `json:"breakdown" yaml:"breakdown"`
}

func toFormView(r turkmenfst.GenerationResult, meaning string) formView {
	return formView{Word: r.Word, Stem: r.Stem, Meaning: meaning, Breakdown: r.Breakdown}
}

type suffixView struct {
	Text string `json:"text" yaml:"text"`
	Slot string `json:"slot" yaml:"slot"`
	Code string `json:"code" yaml:"code"`
}

type resultView struct {
	Stem      string       `json:"stem" yaml:"stem"`
	POS       string       `json:"pos" yaml:"pos"`
	Meaning   string       `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Breakdown string       `json:"breakdown" yaml:"breakdown"`
	Suffixes  []suffixView `json:"suffixes" yaml:"suffixes"`
	Known     bool         `json:"known" yaml:"known"`
}

type analysisView struct {
	Word    string       `json:"word" yaml:"word"`
	Results []resultView `json:"results" yaml:"results"`
}

func toAnalysisView(a turkmenfst.Analysis) analysisView {
	out := analysisView{Word: a.Original, Results: make([]resultView, 0, len(a.Results))}
	for _, r := range a.Results {
		rv := resultView{
			Stem:      r.Stem,
			POS:       string(r.POS),
			Meaning:   r.Meaning,
			Breakdown: r.Breakdown,
			Suffixes:  make([]suffixView, 0, len(r.Suffixes)),
			Known:     r.Known(),
		}
		for _, s := range r.Suffixes {
			rv.Suffixes = append(rv.Suffixes, suffixView{s.Text, string(s.Slot), s.Code})
		}
		out.Results = append(out.Results, rv)
	}
	return out
}

type nounRowView struct {
	Case  string `json:"case" yaml:"case"`
	Bare  string `json:"bare" yaml:"bare"`
	Poss1 string `json:"poss1" yaml:"poss1"`
	Poss2 string `json:"poss2" yaml:"poss2"`
	Poss3 string `json:"poss3" yaml:"poss3"`
}

type nounParadigmView struct {
	Stem     string        `json:"stem" yaml:"stem"`
	Meaning  string        `json:"meaning,omitempty" yaml:"meaning,omitempty"`
	Singular []nounRowView `json:"singular" yaml:"singular"`
	Plural   []nounRowView `json:"plural" yaml:"plural"`
}

func nounRows(rows []turkmenfst.NounRow) []nounRowView {
	out := make([]nounRowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, nounRowView{r.Case.Code(), r.Bare, r.Poss[0], r.Poss[1], r.Poss[2]})
	}
	return out
}

func toNounParadigmView(p *turkmenfst.NounParadigm) nounParadigmView {
	return nounParadigmView{
		Stem:     p.Stem,
		Meaning:  p.Meaning,
		Singular: nounRows(p.Singular),
		Plural:   nounRows(p.Plural),
	}
}

type verbRowView struct {
	Person   string `json:"person" yaml:"person"`
	Positive string `json:"positive" yaml:"positive"`
	Negative string `json:"negative" yaml:"negative"`
}

type verbTableView struct {
	Tense string        `json:"tense" yaml:"tense"`
	Name  string        `json:"name" yaml:"name"`
	Rows  []verbRowView `json:"rows" yaml:"rows"`
}

type nonFiniteView struct {
	Tense    string `json:"tense" yaml:"tense"`
	Name     string `json:"name" yaml:"name"`
	Positive string `json:"positive" yaml:"positive"`
	Negative string `json:"negative" yaml:"negative"`
}

type verbParadigmView struct {
	Stem      string          `json:"stem" yaml:"stem"`
	Finite    []verbTableView `json:"finite" yaml:"finite"`
	NonFinite []nonFiniteView `json:"non_finite" yaml:"non_finite"`
}

func toVerbParadigmView(p *turkmenfst.VerbParadigm) verbParadigmView {
	out := verbParadigmView{Stem: p.Stem}
	for _, t := range p.Finite {
		tv := verbTableView{Tense: t.Tense.Display(), Name: t.Tense.Name()}
		for _, r := range t.Rows {
			tv.Rows = append(tv.Rows, verbRowView{r.Person.Code(), r.Positive, r.Negative})
		}
		out.Finite = append(out.Finite, tv)
	}
	for _, r := range p.NonFinite {
		out.NonFinite = append(out.NonFinite, nonFiniteView{r.Tense.Display(), r.Tense.Name(), r.Positive, r.Negative})
	}
	return out
}

type wordCheckView struct {
	Word        string   `json:"word" yaml:"word"`
	Start       int      `json:"start" yaml:"start"`
	End         int      `json:"end" yaml:"end"`
	Correct     bool     `json:"correct" yaml:"correct"`
	Analysis    string   `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

type spellView struct {
	WordCount  int             `json:"word_count" yaml:"word_count"`
	ErrorCount int             `json:"error_count" yaml:"error_count"`
	Words      []wordCheckView `json:"words" yaml:"words"`
}

func toSpellView(r turkmenfst.SpellReport) spellView {
	out := spellView{WordCount: r.WordCount, ErrorCount: r.ErrorCount, Words: make([]wordCheckView, 0, len(r.Words))}
	for _, w := range r.Words {
		out.Words = append(out.Words, wordCheckView{w.Word, w.Start, w.End, w.Correct, w.Analysis, w.Suggestions})
	}
	return out
}
