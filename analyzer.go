package turkmenfst

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/turkmen-nlp/turkmenfst/internal/cache"
	"github.com/turkmen-nlp/turkmenfst/internal/worker"
)

// Label returns the Turkmen grammatical term for the slot.
func (s Slot) Label() string {
	switch s {
	case SlotPlural:
		return "San"
	case SlotPossessive:
		return "Degişlilik"
	case SlotCase:
		return "Düşüm"
	case SlotNegation:
		return "Olumsuzluk"
	case SlotTense:
		return "Zaman"
	case SlotPerson:
		return "Şahıs"
	}
	return string(s)
}

// Suffix is one morpheme of an analysis.
type Suffix struct {
	Text string
	Slot Slot
	// Code is the grammar code shown in breakdowns (S2, D₁b, A₃, Ö1, B3).
	Code string
}

// AnalysisResult is one decomposition of a surface word.
type AnalysisResult struct {
	Original string
	Stem     string
	POS      PartOfSpeech
	// Meaning is the gloss of the homonym sense, if any.
	Meaning   string
	Suffixes  []Suffix
	Breakdown string
	// Noun or Verb holds the paradigm cell that regenerates the word.
	Noun *NounForm
	Verb *VerbForm
}

// Known reports whether r decomposes the word on a lexicon stem, as
// opposed to the fallback reading of an unexplained word.
func (r AnalysisResult) Known() bool {
	return r.Noun != nil || r.Verb != nil
}

// Analysis holds every decomposition found for a word.
type Analysis struct {
	Original string
	Results  []AnalysisResult
}

// Count returns the number of results.
func (a Analysis) Count() int { return len(a.Results) }

// Success reports whether any result was found.
func (a Analysis) Success() bool { return len(a.Results) > 0 }

// clone deep-copies a so that callers never share suffixes or forms
// with the cached analysis.
func (a Analysis) clone(original string) Analysis {
	out := Analysis{Original: original, Results: make([]AnalysisResult, len(a.Results))}
	for i, r := range a.Results {
		r.Original = original
		r.Suffixes = append([]Suffix(nil), r.Suffixes...)
		if r.Noun != nil {
			n := *r.Noun
			r.Noun = &n
		}
		if r.Verb != nil {
			v := *r.Verb
			r.Verb = &v
		}
		out.Results[i] = r
	}
	return out
}

// AnalyzerOptions tune the search.
type AnalyzerOptions struct {
	// Workers shards candidate stems; 0 or 1 evaluates them in turn.
	Workers int
	// MaxCandidates keeps only the longest stems; 0 means no limit.
	MaxCandidates int
	// CacheTTL enables the result cache when positive.
	CacheTTL     time.Duration
	CacheCleanup time.Duration
}

// Analyzer decomposes surface words by regenerating every candidate
// stem with every paradigm cell and keeping the cells that reproduce
// the input.
type Analyzer struct {
	lex   *Lexicon
	opts  AnalyzerOptions
	pool  *worker.Pool
	cache cache.Cache[Analysis]
}

// NewAnalyzer returns an analyzer over lex.
func NewAnalyzer(lex *Lexicon, opts AnalyzerOptions) *Analyzer {
	a := &Analyzer{lex: lex, opts: opts, pool: worker.NewPool(opts.Workers)}
	if opts.CacheTTL > 0 {
		cleanup := opts.CacheCleanup
		if cleanup <= 0 {
			cleanup = 2 * opts.CacheTTL
		}
		a.cache = cache.NewMemory[Analysis](opts.CacheTTL, cleanup)
	}
	return a
}

// Workers returns the number of goroutines sharing the candidate search.
func (a *Analyzer) Workers() int { return a.pool.Workers() }

// Parse returns the noun and verb analyses of word. A word nothing
// explains yields one "unknown" result whose stem is the word itself;
// an empty word yields none.
func (a *Analyzer) Parse(word string) Analysis {
	return a.ParseContext(context.Background(), word)
}

// ParseContext is Parse with cancellation of the candidate search.
func (a *Analyzer) ParseContext(ctx context.Context, word string) Analysis {
	w := NormalizeKey(word)
	if w == "" {
		return Analysis{Original: word}
	}
	if a.cache != nil {
		if cached, ok := a.cache.Get(cache.Key(w)); ok {
			return cached.clone(word)
		}
	}

	stems := a.Candidates(w)
	nouns, verbs, complete := a.search(ctx, w, stems)

	var results []AnalysisResult
	seen := make(map[string]bool)
	for _, r := range append(nouns, verbs...) {
		key := r.Breakdown + "|" + r.Meaning + "|" + string(r.POS)
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, r)
	}
	if len(results) == 0 {
		results = []AnalysisResult{{
			Stem:      w,
			POS:       POSUnknown,
			Breakdown: Capitalize(w) + " (Kök)",
		}}
	}

	out := Analysis{Original: word, Results: results}
	for i := range out.Results {
		out.Results[i].Original = word
	}
	if a.cache != nil && complete {
		a.cache.Set(cache.Key(w), out, 0)
	}
	return out.clone(word)
}

// ParseNoun returns the noun analyses of word.
func (a *Analyzer) ParseNoun(word string) []AnalysisResult {
	w := NormalizeKey(word)
	if w == "" {
		return nil
	}
	nouns, _, _ := a.search(context.Background(), w, a.Candidates(w))
	return withOriginal(nouns, word)
}

// ParseVerb returns the verb analyses of word.
func (a *Analyzer) ParseVerb(word string) []AnalysisResult {
	w := NormalizeKey(word)
	if w == "" {
		return nil
	}
	_, verbs, _ := a.search(context.Background(), w, a.Candidates(w))
	return withOriginal(verbs, word)
}

func withOriginal(rs []AnalysisResult, original string) []AnalysisResult {
	for i := range rs {
		rs[i].Original = original
	}
	return rs
}

// stemJob evaluates one candidate stem for one word class.
type stemJob struct {
	a    *Analyzer
	word string
	stem string
	verb bool
}

type stemResult struct {
	results []AnalysisResult
	err     error
}

func (r *stemResult) GetError() error { return r.err }

func (j *stemJob) Execute(ctx context.Context) worker.Result {
	if err := ctx.Err(); err != nil {
		return &stemResult{err: err}
	}
	if j.verb {
		return &stemResult{results: j.a.verbResults(j.word, j.stem)}
	}
	return &stemResult{results: j.a.nounResults(j.word, j.stem)}
}

// search runs the noun and verb cross products over stems and returns
// the sorted noun results and the verb results in candidate order.
// complete is false when cancellation skipped some stems.
func (a *Analyzer) search(ctx context.Context, w string, stems []string) (nouns, verbs []AnalysisResult, complete bool) {
	var jobs []worker.Job
	for _, stem := range stems {
		if a.lex.hasNominal(stem) {
			jobs = append(jobs, &stemJob{a: a, word: w, stem: stem})
		}
		if a.lex.HasPOS(stem, POSVerb) {
			jobs = append(jobs, &stemJob{a: a, word: w, stem: stem, verb: true})
		}
	}

	results := a.pool.Run(ctx, jobs)
	complete = len(worker.Errors(results)) == 0
	for i, res := range results {
		r, ok := res.(*stemResult)
		if !ok {
			complete = false
			continue
		}
		if jobs[i].(*stemJob).verb {
			verbs = append(verbs, r.results...)
		} else {
			nouns = append(nouns, r.results...)
		}
	}

	sort.SliceStable(nouns, func(i, j int) bool {
		if len(nouns[i].Suffixes) != len(nouns[j].Suffixes) {
			return len(nouns[i].Suffixes) > len(nouns[j].Suffixes)
		}
		return nouns[i].Stem < nouns[j].Stem
	})
	return nouns, verbs, complete
}

var (
	pluralOptions     = []bool{false, true}
	possessiveOptions = []Possessive{PossNone, Poss1, Poss2, Poss3}
	numberOptions     = []PossessorNumber{Singular, Plural}
	negativeOptions   = []bool{false, true}
)

// nounResults tries every noun cell of stem, once per homonym sense.
func (a *Analyzer) nounResults(w, stem string) []AnalysisResult {
	pos, ok := a.lex.nominalPOS(stem)
	if !ok {
		return nil
	}
	senses := []HomonymSense{{AllowsSoftening: true}}
	if group, ok := a.lex.Homonyms(stem); ok {
		senses = group
	}

	var out []AnalysisResult
	seen := make(map[string]bool)
	for _, sense := range senses {
		for _, plural := range pluralOptions {
			for _, poss := range possessiveOptions {
				for _, num := range numberOptions {
					if poss == PossNone && num == Plural {
						continue
					}
					for _, c := range AllCases {
						f := NounForm{
							Plural:      plural,
							Possessive:  poss,
							Number:      num,
							Case:        c,
							NoSoftening: !sense.AllowsSoftening,
						}
						bare := !plural && poss == PossNone && c == Nominative
						var gen GenerationResult
						if bare {
							if stem != w {
								continue
							}
						} else {
							gen = GenerateNoun(stem, f)
							if !gen.Valid || !roundingEquivalent(strings.ToLower(gen.Word), w) {
								continue
							}
						}

						// the 3rd person possessive has one form for both numbers
						possCode := poss.Code(num)
						if poss == Poss3 {
							possCode = poss.Code(Singular)
						}
						sig := strings.Join([]string{stem, boolKey(plural), possCode, c.Code(), sense.Gloss}, "|")
						if seen[sig] {
							continue
						}
						seen[sig] = true

						suffixes := nounSuffixes(gen.Morphemes, f)
						out = append(out, AnalysisResult{
							Stem:      stem,
							POS:       pos,
							Meaning:   sense.Gloss,
							Suffixes:  suffixes,
							Breakdown: breakdown(stem, suffixes),
							Noun:      &f,
						})
					}
				}
			}
		}
	}
	return out
}

func nounSuffixes(ms []Morpheme, f NounForm) []Suffix {
	var out []Suffix
	for _, m := range ms {
		s := Suffix{Text: m.Text, Slot: m.Slot}
		switch m.Slot {
		case SlotPlural:
			s.Code = "S2"
		case SlotPossessive:
			s.Code = f.Possessive.Display(f.Number)
		case SlotCase:
			s.Code = f.Case.Display()
		}
		out = append(out, s)
	}
	return out
}

// verbResults tries every verb cell of stem.
func (a *Analyzer) verbResults(w, stem string) []AnalysisResult {
	var out []AnalysisResult
	seen := make(map[string]bool)
	for _, t := range AllTenses {
		for _, p := range AllPersons {
			for _, neg := range negativeOptions {
				f := VerbForm{Tense: t, Person: p, Negative: neg}
				gen := GenerateVerb(stem, f)
				if !gen.Valid {
					continue
				}
				surface := strings.ToLower(gen.Word)
				if gen.Pronoun != "" {
					surface = strings.TrimPrefix(surface, strings.ToLower(gen.Pronoun)+" ")
				}
				if !roundingEquivalent(surface, w) {
					continue
				}

				// persons sharing one surface form are reported once
				key := strings.Join([]string{stem, t.Code(), boolKey(neg), surface}, "|")
				if seen[key] {
					continue
				}
				seen[key] = true

				suffixes := verbSuffixes(gen.Morphemes, f)
				out = append(out, AnalysisResult{
					Stem:      stem,
					POS:       POSVerb,
					Suffixes:  suffixes,
					Breakdown: breakdown(stem, suffixes),
					Verb:      &f,
				})
			}
		}
	}
	return out
}

func verbSuffixes(ms []Morpheme, f VerbForm) []Suffix {
	var out []Suffix
	for _, m := range ms {
		s := Suffix{Text: m.Text, Slot: m.Slot}
		switch m.Slot {
		case SlotNegation:
			s.Code = "Olumsuz"
		case SlotTense:
			s.Code = f.Tense.Display()
		case SlotPerson, SlotPlural:
			s.Code = f.Person.Code()
		}
		out = append(out, s)
	}
	return out
}

// breakdown renders "Kitap (Kök) + lar (S2) + ym (D₁b)".
func breakdown(stem string, suffixes []Suffix) string {
	var sb strings.Builder
	sb.WriteString(Capitalize(stem))
	sb.WriteString(" (Kök)")
	for _, s := range suffixes {
		sb.WriteString(" + ")
		sb.WriteString(s.Text)
		sb.WriteString(" (")
		sb.WriteString(s.Code)
		sb.WriteString(")")
	}
	return sb.String()
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
