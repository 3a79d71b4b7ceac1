package turkmenfst

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestAnalyzer(t *testing.T, opts AnalyzerOptions) *Analyzer {
	t.Helper()
	return NewAnalyzer(loadTestLexicon(t), opts)
}

func hasSuffixCode(r AnalysisResult, code string) bool {
	for _, s := range r.Suffixes {
		if s.Code == code {
			return true
		}
	}
	return false
}

func TestParseNoun(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	tests := []struct {
		word string
		stem string
		code string
	}{
		{"kitaplar", "kitap", "S2"},
		{"kitabym", "kitap", "D₁b"},
		{"kitabymyz", "kitap", "D₁k"},
		{"kitabyň", "kitap", "A₂"},
		{"kitapa", "kitap", "A₃"},
		{"kitapda", "kitap", "A₅"},
		{"kitapdan", "kitap", "A₆"},
		{"burny", "burun", "D₃b"},
		{"agzy", "agyz", "D₃b"},
		{"guzusu", "guzy", "D₃b"},
		{"guzular", "guzy", "S2"},
		{"okuwça", "okuwçy", "A₃"},
		{"enä", "ene", "A₃"},
		{"ýüregiň", "ýürek", "A₂"},
		{"gelni", "gelin", "D₃b"},
		{"atlarynyň", "at", "A₂"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			results := a.ParseNoun(tt.word)
			if len(results) == 0 {
				t.Fatalf("ParseNoun(%q) returned nothing", tt.word)
			}
			found := false
			for _, r := range results {
				if r.Stem == tt.stem && hasSuffixCode(r, tt.code) {
					found = true
					break
				}
			}
			if !found {
				for _, r := range results {
					t.Logf("  %s", r.Breakdown)
				}
				t.Errorf("ParseNoun(%q): no %s reading with %s", tt.word, tt.stem, tt.code)
			}
		})
	}
}

func TestParseBareStem(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	results := a.ParseNoun("kitap")
	if len(results) != 1 {
		t.Fatalf("ParseNoun(kitap) = %d results, want 1", len(results))
	}
	r := results[0]
	if r.Stem != "kitap" || len(r.Suffixes) != 0 || r.Breakdown != "Kitap (Kök)" {
		t.Errorf("bare reading = %+v", r)
	}
	if r.Noun == nil || *r.Noun != (NounForm{}) {
		t.Errorf("bare reading cell = %+v", r.Noun)
	}
}

func TestParseBreakdown(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	results := a.ParseNoun("kitaplarymdan")
	if len(results) == 0 {
		t.Fatal("no results")
	}
	want := "Kitap (Kök) + lar (S2) + ym (D₁b) + dan (A₆)"
	if results[0].Breakdown != want {
		t.Errorf("Breakdown = %q, want %q", results[0].Breakdown, want)
	}
	if results[0].Suffixes[1].Slot != SlotPossessive {
		t.Errorf("second suffix slot = %s", results[0].Suffixes[1].Slot)
	}
}

func TestParseAmbiguous(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})

	// accusative and 3rd person possessive
	multi := a.Parse("kitaplary")
	if multi.Count() < 2 {
		t.Fatalf("Parse(kitaplary) = %d results, want at least 2", multi.Count())
	}
	var acc, poss bool
	for _, r := range multi.Results {
		acc = acc || hasSuffixCode(r, "A₄")
		poss = poss || hasSuffixCode(r, "D₃b")
	}
	if !acc || !poss {
		t.Errorf("kitaplary: accusative %v, possessive %v", acc, poss)
	}
}

func TestParseHomonyms(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	multi := a.Parse("atlar")
	glosses := map[string]bool{}
	for _, r := range multi.Results {
		if r.Stem == "at" {
			glosses[r.Meaning] = true
		}
	}
	if !glosses["A:T (name)"] || !glosses["AT (horse)"] {
		t.Errorf("Parse(atlar) glosses = %v, want both senses", glosses)
	}

	// the voiced form belongs to the softening sense only
	for _, r := range a.Parse("adym").Results {
		if r.Stem == "at" && r.Meaning != "A:T (name)" {
			t.Errorf("adym analysed with sense %q", r.Meaning)
		}
	}
	var horse bool
	for _, r := range a.Parse("atym").Results {
		if r.Stem == "at" && r.Meaning == "AT (horse)" {
			horse = true
		}
	}
	if !horse {
		t.Error("atym has no horse reading")
	}
}

func TestParseVerb(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	tests := []struct {
		word  string
		stem  string
		tense Tense
		neg   bool
	}{
		{"geldim", "gel", DefinitePast, false},
		{"gelmedi", "gel", DefinitePast, true},
		{"gelýär", "gel", Present, false},
		{"gelmerin", "gel", IndefiniteFuture, true},
		{"işlärin", "işle", IndefiniteFuture, false},
		{"aýdýarsyň", "aýt", Present, false},
		{"görüp", "gör", Converb, false},
		{"okat", "oka", Causative, false},
		{"otyryn", "otyr", DefinitePresent, false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			results := a.ParseVerb(tt.word)
			found := false
			for _, r := range results {
				if r.Stem == tt.stem && r.Verb != nil && r.Verb.Tense == tt.tense && r.Verb.Negative == tt.neg {
					found = true
				}
				if r.POS != POSVerb {
					t.Errorf("verb result with POS %q", r.POS)
				}
			}
			if !found {
				t.Errorf("ParseVerb(%q): no %s %s reading in %d results", tt.word, tt.stem, tt.tense, len(results))
			}
		})
	}

	results := a.ParseVerb("geldim")
	if len(results) == 0 || results[0].Breakdown != "Gel (Kök) + di (Ö1) + m (A1)" {
		t.Errorf("geldim breakdown = %v", results)
	}
}

func TestParseVerbOnlyVerbStems(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	// kitap is not a verb: its bare form must not read as an imperative
	if got := a.ParseVerb("kitap"); len(got) != 0 {
		t.Errorf("ParseVerb(kitap) = %v, want none", got)
	}
	for _, r := range a.Parse("kitap").Results {
		if r.POS == POSVerb {
			t.Errorf("kitap analysed as a verb: %s", r.Breakdown)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	multi := a.Parse("xyzqwerty")
	if multi.Count() != 1 {
		t.Fatalf("Parse(xyzqwerty) = %d results, want 1", multi.Count())
	}
	r := multi.Results[0]
	if r.POS != POSUnknown || r.Stem != "xyzqwerty" || r.Known() {
		t.Errorf("unknown reading = %+v", r)
	}
	if r.Breakdown != "Xyzqwerty (Kök)" {
		t.Errorf("Breakdown = %q", r.Breakdown)
	}
}

func TestParseEmpty(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	if multi := a.Parse("   "); multi.Success() {
		t.Errorf("Parse(blank) = %v", multi.Results)
	}
	if got := a.ParseNoun(""); len(got) != 0 {
		t.Errorf("ParseNoun(\"\") = %v", got)
	}
	if got := a.ParseVerb(""); len(got) != 0 {
		t.Errorf("ParseVerb(\"\") = %v", got)
	}
}

func TestParseKeepsOriginal(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	multi := a.Parse("Kitaplar")
	if multi.Original != "Kitaplar" {
		t.Errorf("Original = %q", multi.Original)
	}
	for _, r := range multi.Results {
		if r.Original != "Kitaplar" {
			t.Errorf("result Original = %q", r.Original)
		}
	}
}

func TestCandidates(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{})
	tests := []struct {
		word string
		want string
	}{
		{"kitabym", "kitap"},
		{"burny", "burun"},
		{"guzusu", "guzy"},
		{"okuwçular", "okuwçy"},
		{"enä", "ene"},
		{"işlärin", "işle"},
	}
	for _, tt := range tests {
		got := a.Candidates(tt.word)
		if !contains(got, tt.want) {
			t.Errorf("Candidates(%q) = %v, missing %q", tt.word, got, tt.want)
		}
	}

	// longest first
	got := a.Candidates("gelinler")
	if len(got) < 2 || got[0] != "gelin" {
		t.Errorf("Candidates(gelinler) = %v, want gelin first", got)
	}

	limited := newTestAnalyzer(t, AnalyzerOptions{MaxCandidates: 1})
	if got := limited.Candidates("gelinler"); len(got) != 1 || got[0] != "gelin" {
		t.Errorf("limited Candidates(gelinler) = %v", got)
	}
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func TestParseWorkersMatchSerial(t *testing.T) {
	serial := newTestAnalyzer(t, AnalyzerOptions{Workers: 1})
	parallel := newTestAnalyzer(t, AnalyzerOptions{Workers: 4})
	for _, w := range []string{"kitaplary", "atlar", "gelinler", "geldim", "gelin", "xyz"} {
		s, p := serial.Parse(w), parallel.Parse(w)
		if s.Count() != p.Count() {
			t.Errorf("%s: serial %d results, parallel %d", w, s.Count(), p.Count())
			continue
		}
		for i := range s.Results {
			if s.Results[i].Breakdown != p.Results[i].Breakdown || s.Results[i].Meaning != p.Results[i].Meaning {
				t.Errorf("%s: result %d differs: %q vs %q", w, i, s.Results[i].Breakdown, p.Results[i].Breakdown)
			}
		}
	}
}

func TestParseCache(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{CacheTTL: time.Minute})
	first := a.Parse("kitaplary")
	if a.cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", a.cache.Len())
	}

	// a cached analysis is returned as a copy
	first.Results[0].Stem = "changed"
	second := a.Parse("KITAPLARY")
	if second.Results[0].Stem == "changed" {
		t.Error("cache returned a shared slice")
	}
	if second.Original != "KITAPLARY" {
		t.Errorf("Original = %q", second.Original)
	}
	if a.cache.Len() != 1 {
		t.Errorf("cache holds %d entries after a normalized hit", a.cache.Len())
	}
}

func TestParseCacheDeepCopy(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{CacheTTL: time.Minute})
	first := a.Parse("kitaplary")
	idx := -1
	for i, r := range first.Results {
		if r.Noun != nil && len(r.Suffixes) > 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatalf("no noun reading with suffixes: %v", first.Results)
	}
	want := first.Results[idx]
	wantSuffix, wantNoun := want.Suffixes[0], *want.Noun

	first.Results[idx].Suffixes[0].Text = "changed"
	first.Results[idx].Noun.Plural = !wantNoun.Plural
	first.Results[idx].Noun.Case = Ablative + 1

	got := a.Parse("kitaplary").Results[idx]
	if got.Suffixes[0] != wantSuffix {
		t.Errorf("cached suffix = %+v, want %+v", got.Suffixes[0], wantSuffix)
	}
	if *got.Noun != wantNoun {
		t.Errorf("cached noun form = %+v, want %+v", *got.Noun, wantNoun)
	}
}

func TestParseDeterministic(t *testing.T) {
	for _, workers := range []int{1, 4} {
		a := newTestAnalyzer(t, AnalyzerOptions{Workers: workers})
		for _, w := range []string{"kitaplary", "atlar", "gelin", "adym", "geldim", "burny"} {
			first, second := a.Parse(w), a.Parse(w)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("workers=%d %s: results differ between runs:\n%v\n%v", workers, w, first.Results, second.Results)
			}
		}
	}
}

func TestSearchComplete(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{Workers: 2})
	if got := a.Workers(); got != 2 {
		t.Errorf("Workers() = %d, want 2", got)
	}
	stems := a.Candidates("kitaplary")
	if _, _, complete := a.search(context.Background(), "kitaplary", stems); !complete {
		t.Error("uncancelled search reported incomplete")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, complete := a.search(ctx, "kitaplary", stems); complete {
		t.Error("cancelled search reported complete")
	}
}

func TestParseContextCancelled(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{Workers: 2, CacheTTL: time.Minute})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	multi := a.ParseContext(ctx, "kitaplary")
	if multi.Count() != 1 || multi.Results[0].Known() {
		t.Errorf("cancelled parse = %v, want the fallback reading", multi.Results)
	}
	if a.cache.Len() != 0 {
		t.Error("cancelled parse was cached")
	}
}

// Every noun form the generator builds must be analysed back to its
// stem and cell.
func TestNounRoundTrip(t *testing.T) {
	lex := loadTestLexicon(t)
	e, err := NewWithLexicon(lex, AnalyzerOptions{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	stems := []string{"kitap", "burun", "guzy", "okuwçy", "gelin", "at", "ene", "ýürek", "asyl", "göl", "agaç", "ogul"}
	for _, stem := range stems {
		for _, plural := range pluralOptions {
			for _, poss := range possessiveOptions {
				for _, num := range numberOptions {
					if poss == PossNone && num == Plural {
						continue
					}
					for _, c := range AllCases {
						f := NounForm{Plural: plural, Possessive: poss, Number: num, Case: c}
						for _, sr := range e.InflectNoun(stem, f) {
							checkNounRoundTrip(t, e, stem, sr, f)
						}
					}
				}
			}
		}
	}
}

func checkNounRoundTrip(t *testing.T, e *Engine, stem string, sr SenseResult, f NounForm) {
	t.Helper()
	if !sr.Result.Valid {
		t.Errorf("%s %+v: %v", stem, f, sr.Result.Err)
		return
	}
	word := sr.Result.Word
	for _, r := range e.Analyze(word).Results {
		if r.Stem != stem || r.Noun == nil || r.Meaning != sr.Sense.Gloss {
			continue
		}
		got := *r.Noun
		if got.Plural != f.Plural || got.Possessive != f.Possessive || got.Case != f.Case {
			continue
		}
		if (f.Possessive == Poss1 || f.Possessive == Poss2) && got.Number != f.Number {
			continue
		}
		return
	}
	t.Errorf("%s %+v -> %q: not analysed back", stem, f, word)
}

func TestVerbRoundTrip(t *testing.T) {
	a := newTestAnalyzer(t, AnalyzerOptions{Workers: 4})
	for _, stem := range []string{"gel", "oka", "gör", "aýt", "işle", "otyr", "al", "git"} {
		for _, tense := range AllTenses {
			for _, p := range AllPersons {
				for _, neg := range negativeOptions {
					gen := GenerateVerb(stem, VerbForm{Tense: tense, Person: p, Negative: neg})
					if !gen.Valid {
						continue
					}
					surface := strings.TrimPrefix(gen.Word, gen.Pronoun+" ")
					if strings.Contains(surface, " ") {
						continue
					}
					found := false
					for _, r := range a.ParseVerb(surface) {
						if r.Stem == stem && r.Verb.Tense == tense && r.Verb.Negative == neg {
							found = true
							break
						}
					}
					if !found {
						t.Errorf("%s %s %s neg=%v -> %q: not analysed back", stem, tense, p, neg, surface)
					}
				}
			}
		}
	}
}
