package turkmenfst

import (
	"strings"
	"unicode/utf8"
)

// Harmony is the back/front vowel class of a word.
type Harmony uint8

const (
	Back  Harmony = iota // yogyn: a o u y
	Front                // ince: e ä ö i ü
)

func (h Harmony) String() string {
	if h == Front {
		return "front"
	}
	return "back"
}

// pick returns back or front according to h.
func (h Harmony) pick(back, front string) string {
	if h == Front {
		return front
	}
	return back
}

const (
	backVowels    = "aouy"
	frontVowels   = "eäöiü"
	roundedVowels = "oöuü"
)

// softening maps a hard stem-final consonant to its voiced counterpart.
var softening = map[rune]rune{
	'p': 'b',
	'ç': 'j',
	't': 'd',
	'k': 'g',
}

// hardening is the inverse of softening.
var hardening = map[rune]rune{
	'b': 'p',
	'j': 'ç',
	'd': 't',
	'g': 'k',
}

// vowelDropExceptions lists stems whose dropped form is irregular.
var vowelDropExceptions = map[string]string{
	"asyl":  "asl",
	"pasyl": "pasl",
	"nesil": "nesl",
	"ylym":  "ylm",
	"mähir": "mähr",
}

// vowelDropCandidates lists stems that lose their second-to-last letter
// before a vowel-initial suffix.
var vowelDropCandidates = map[string]struct{}{
	"burun": {}, "alyn": {}, "agyz": {}, "gobek": {}, "ogul": {},
	"erin": {}, "bagyr": {}, "sabyr": {}, "kömür": {}, "sygyr": {},
	"deňiz": {}, "goýun": {}, "boýun": {}, "howuz": {}, "tomus": {},
	"tizir": {}, "köwüş": {}, "orun": {}, "garyn": {}, "gelin": {},
}

// vowelDropReverse maps every dropped form back to its stem.
var vowelDropReverse = func() map[string]string {
	m := make(map[string]string, len(vowelDropExceptions)+len(vowelDropCandidates))
	for stem := range vowelDropCandidates {
		m[ApplyVowelDrop(stem, "a")] = stem
	}
	for stem, dropped := range vowelDropExceptions {
		m[dropped] = stem
	}
	return m
}()

// roundingStems lists stems whose final high vowel rounds before
// the plural and 3rd person possessive suffixes.
var roundingStems = map[string]string{
	"guzy": "guzu",
	"süri": "sürü",
	"guýy": "guýu",
}

// verbSofteningMonosyllables are the monosyllabic verbs whose final
// k/t still voices before the present and indefinite future suffixes.
var verbSofteningMonosyllables = map[string]struct{}{
	"aýt": {}, "gaýt": {}, "et": {}, "git": {},
}

func isVowel(r rune) bool {
	return strings.ContainsRune(backVowels, r) || strings.ContainsRune(frontVowels, r)
}

func isRoundedVowel(r rune) bool {
	return strings.ContainsRune(roundedVowels, r)
}

// lastRune returns the final rune of s, or utf8.RuneError for "".
func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// trimLastRune returns s without its final rune.
func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// replaceLastRune swaps the final rune of s for r.
func replaceLastRune(s string, r rune) string {
	if s == "" {
		return s
	}
	return trimLastRune(s) + string(r)
}

// ClassifyHarmony returns the class of the rightmost vowel in word.
// Words without vowels are back.
func ClassifyHarmony(word string) Harmony {
	runes := []rune(strings.ToLower(word))
	for i := len(runes) - 1; i >= 0; i-- {
		if strings.ContainsRune(frontVowels, runes[i]) {
			return Front
		}
		if strings.ContainsRune(backVowels, runes[i]) {
			return Back
		}
	}
	return Back
}

// IsRounded reports whether word contains any rounded vowel.
func IsRounded(word string) bool {
	return strings.ContainsAny(strings.ToLower(word), roundedVowels)
}

// EndsInVowel reports whether the last letter of word is a vowel.
func EndsInVowel(word string) bool {
	if word == "" {
		return false
	}
	return isVowel(lastRune(strings.ToLower(word)))
}

// VowelCount returns the number of vowels in word, i.e. its syllables.
func VowelCount(word string) int {
	n := 0
	for _, r := range strings.ToLower(word) {
		if isVowel(r) {
			n++
		}
	}
	return n
}

// isMonoRounded reports whether word has exactly one vowel and that
// vowel is rounded (gör, dur, göz).
func isMonoRounded(word string) bool {
	var count int
	var v rune
	for _, r := range word {
		if isVowel(r) {
			count++
			v = r
		}
	}
	return count == 1 && isRoundedVowel(v)
}

// endsInHighUnrounded reports whether word ends in y or i.
func endsInHighUnrounded(word string) bool {
	r := lastRune(word)
	return r == 'y' || r == 'i'
}

// SoftenFinalConsonant voices a final p, ç, t or k.
func SoftenFinalConsonant(stem string) string {
	if soft, ok := softening[lastRune(stem)]; ok {
		return replaceLastRune(stem, soft)
	}
	return stem
}

// HardenFinalConsonant undoes SoftenFinalConsonant.
func HardenFinalConsonant(stem string) string {
	if hard, ok := hardening[lastRune(stem)]; ok {
		return replaceLastRune(stem, hard)
	}
	return stem
}

// CanSoften reports whether stem ends in a consonant that voices.
func CanSoften(stem string) bool {
	_, ok := softening[lastRune(strings.ToLower(stem))]
	return ok
}

// softenVerb voices a final k/t of a verb stem before the present and
// indefinite future suffixes.
func softenVerb(stem string) string {
	r := lastRune(stem)
	if r != 'k' && r != 't' {
		return stem
	}
	if _, ok := verbSofteningMonosyllables[stem]; ok || VowelCount(stem) > 1 {
		return SoftenFinalConsonant(stem)
	}
	return stem
}

// ApplyVowelDrop removes the unstressed stem vowel before a
// vowel-initial suffix: burun+y → burny, asyl+y → asly.
func ApplyVowelDrop(stem, suffix string) string {
	stem = strings.ToLower(stem)
	if suffix == "" || !isVowel(firstRune(suffix)) {
		return stem
	}
	if dropped, ok := vowelDropExceptions[stem]; ok {
		return dropped
	}
	if _, ok := vowelDropCandidates[stem]; ok {
		runes := []rune(stem)
		if len(runes) >= 2 {
			return string(runes[:len(runes)-2]) + string(runes[len(runes)-1])
		}
	}
	return stem
}

// ReverseVowelDrop recovers the full stem from a dropped form.
// It reports false when no known stem drops to form.
func ReverseVowelDrop(form string) (string, bool) {
	form = strings.ToLower(form)
	stem, ok := vowelDropReverse[form]
	return stem, ok
}

// ApplyRoundingHarmony rounds a trailing y/i to u/ü when the stem
// already carries a rounded vowel.
func ApplyRoundingHarmony(stem string, h Harmony) string {
	if !IsRounded(stem) || !endsInHighUnrounded(stem) {
		return stem
	}
	return trimLastRune(stem) + h.pick("u", "ü")
}

// IsVowelDropCandidate reports whether stem is a declared vowel-drop stem.
func IsVowelDropCandidate(stem string) bool {
	_, ok := vowelDropCandidates[strings.ToLower(stem)]
	return ok
}

// VowelDropException returns the irregular dropped form of stem.
func VowelDropException(stem string) (string, bool) {
	form, ok := vowelDropExceptions[strings.ToLower(stem)]
	return form, ok
}

// RoundedStem returns the irregularly rounded form of a closed-list stem.
func RoundedStem(stem string) (string, bool) {
	form, ok := roundingStems[strings.ToLower(stem)]
	return form, ok
}

// roundingEquivalent compares two words letter by letter, treating the
// harmonic pairs y/u and i/ü as interchangeable.
func roundingEquivalent(a, b string) bool {
	if a == b {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if ra[i] == rb[i] {
			continue
		}
		switch {
		case ra[i] == 'u' && rb[i] == 'y', ra[i] == 'y' && rb[i] == 'u':
		case ra[i] == 'ü' && rb[i] == 'i', ra[i] == 'i' && rb[i] == 'ü':
		default:
			return false
		}
	}
	return true
}
