package turkmenfst

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/turkmen-nlp/turkmenfst/internal/htmltext"
)

// wordRe matches a run of Turkmen letters, apostrophes and hyphens.
var wordRe = regexp.MustCompile(`[a-zA-ZçÇäÄöÖüÜňŇýÝşŞžŽîÎ'-]+`)

const (
	// maxEditDistance bounds how far a suggestion may be from the input.
	maxEditDistance = 2
	// maxSimilarRoots bounds the lexicon roots expanded into suggestions.
	maxSimilarRoots = 15
	// DefaultSuggestions is the number of suggestions per misspelling.
	DefaultSuggestions = 5
)

// Token is a word of a text with its byte offsets.
type Token struct {
	Word  string
	Start int
	End   int
}

// Tokenize splits text into words.
func Tokenize(text string) []Token {
	locs := wordRe.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, len(locs))
	for _, loc := range locs {
		tokens = append(tokens, Token{Word: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	return tokens
}

// WordCheck is the spell-check verdict for one word.
type WordCheck struct {
	Word    string
	Start   int
	End     int
	Correct bool
	// Analysis is the breakdown of the first reading of a correct word.
	Analysis    string
	Suggestions []string
}

// SpellReport is the spell-check of a whole text.
type SpellReport struct {
	Text       string
	WordCount  int
	ErrorCount int
	Words      []WordCheck
}

// CheckWord reports whether word has any analysis on a lexicon stem,
// and suggests corrections when it has none.
func (e *Engine) CheckWord(word string) WordCheck {
	wc := WordCheck{Word: word, End: len(word)}
	for _, r := range e.analyzer.Parse(word).Results {
		if r.Known() {
			wc.Correct = true
			wc.Analysis = r.Breakdown
			return wc
		}
	}
	wc.Suggestions = e.Suggest(word, DefaultSuggestions)
	return wc
}

// Spellcheck checks every word of text.
func (e *Engine) Spellcheck(text string) SpellReport {
	tokens := Tokenize(text)
	report := SpellReport{Text: text, WordCount: len(tokens)}
	for _, tok := range tokens {
		wc := e.CheckWord(tok.Word)
		wc.Start, wc.End = tok.Start, tok.End
		if !wc.Correct {
			report.ErrorCount++
		}
		report.Words = append(report.Words, wc)
	}
	return report
}

// SpellcheckWords checks a list of words. Offsets refer to the words
// joined by single spaces, which is also the report text.
func (e *Engine) SpellcheckWords(words []string) SpellReport {
	report := SpellReport{Text: strings.Join(words, " "), WordCount: len(words)}
	offset := 0
	for _, w := range words {
		wc := e.CheckWord(w)
		wc.Start, wc.End = offset, offset+len(w)
		if !wc.Correct {
			report.ErrorCount++
		}
		report.Words = append(report.Words, wc)
		offset += len(w) + 1
	}
	return report
}

// SpellcheckHTML checks the visible text of an HTML document.
func (e *Engine) SpellcheckHTML(doc string) (SpellReport, error) {
	text, err := htmltext.FromString(doc)
	if err != nil {
		return SpellReport{}, err
	}
	return e.Spellcheck(text), nil
}

// Suggest returns up to limit corrections for word: lexicon roots within
// two edits and the plural and possessive forms of those roots, nearest
// first.
func (e *Engine) Suggest(word string, limit int) []string {
	w := NormalizeKey(word)
	if w == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		text string
		dist int
	}
	var ranked []scored
	seen := make(map[string]bool)
	add := func(s string, always bool) {
		if seen[s] || s == w {
			return
		}
		d := EditDistance(s, w)
		if !always && d > maxEditDistance {
			return
		}
		seen[s] = true
		ranked = append(ranked, scored{s, d})
	}

	for _, root := range e.similarRoots(w) {
		add(root, true)
		if !e.lexicon.hasNominal(root) {
			continue
		}
		for _, f := range []NounForm{{Plural: true}, {Possessive: Poss3}} {
			if r := e.GenerateNoun(root, f); r.Valid {
				add(r.Word, false)
			}
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].text < ranked[j].text
	})
	out := make([]string, 0, min(limit, len(ranked)))
	for _, s := range ranked {
		if len(out) == limit {
			break
		}
		out = append(out, s.text)
	}
	return out
}

// similarRoots returns the lexicon keys one or two edits away from w.
func (e *Engine) similarRoots(w string) []string {
	n := utf8.RuneCountInString(w)
	type scored struct {
		key  string
		dist int
	}
	var found []scored
	for _, key := range e.lexicon.Words() {
		if abs(utf8.RuneCountInString(key)-n) > maxEditDistance {
			continue
		}
		if d := EditDistance(w, key); d > 0 && d <= maxEditDistance {
			found = append(found, scored{key, d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })
	if len(found) > maxSimilarRoots {
		found = found[:maxSimilarRoots]
	}
	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.key
	}
	return out
}

// EditDistance is the Levenshtein distance between a and b in runes.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
