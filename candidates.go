package turkmenfst

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// maxSuffixRunes bounds how many trailing letters are stripped when
// guessing stems. The longest noun ending (-larymyzdan) has ten.
const maxSuffixRunes = 12

// finalVowelSources maps a word-final a/ä back to the vowels that the
// dative and the future e→ä raising turn into it.
var finalVowelSources = map[rune][]rune{
	'a': {'y'},
	'ä': {'e', 'i', 'o', 'u', 'ö', 'ü'},
}

// Candidates lists the lexicon stems that word could be built on,
// longest first. Each stripped prefix is also tried with its final
// consonant hardened, its dropped vowel restored and its rounding
// undone.
func (a *Analyzer) Candidates(word string) []string {
	w := NormalizeKey(word)
	if w == "" {
		return nil
	}
	seen := make(map[string]struct{})
	add := func(s string) {
		if s != "" {
			seen[s] = struct{}{}
		}
	}

	add(w)
	restoreFinalVowel(w, add)

	runes := []rune(w)
	limit := min(maxSuffixRunes, len(runes)-1)
	for n := 1; n <= limit; n++ {
		rem := string(runes[:len(runes)-n])
		add(rem)

		hard := HardenFinalConsonant(rem)
		add(hard)
		if s, ok := ReverseVowelDrop(rem); ok {
			add(s)
		}
		if s, ok := ReverseVowelDrop(hard); ok {
			add(s)
		}

		for stem, rounded := range roundingStems {
			if strings.HasPrefix(rem, rounded) {
				add(stem + rem[len(rounded):])
			}
		}
		switch lastRune(rem) {
		case 'u':
			add(replaceLastRune(rem, 'y'))
		case 'ü':
			add(replaceLastRune(rem, 'i'))
		}
		restoreFinalVowel(rem, add)
	}

	var out []string
	for s := range seen {
		if a.lex.Exists(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})
	if a.opts.MaxCandidates > 0 && len(out) > a.opts.MaxCandidates {
		out = out[:a.opts.MaxCandidates]
	}
	return out
}

func restoreFinalVowel(s string, add func(string)) {
	for _, v := range finalVowelSources[lastRune(s)] {
		add(replaceLastRune(s, v))
	}
}
