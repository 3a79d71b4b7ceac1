package turkmenfst

import (
	"sort"
	"sync"
)

// PartOfSpeech is a lexicon POS code. The tag set is open, so unlike
// the grammatical axes it stays a string.
type PartOfSpeech string

const (
	POSNoun         PartOfSpeech = "n"
	POSVerb         PartOfSpeech = "v"
	POSAdjective    PartOfSpeech = "adj"
	POSAdverb       PartOfSpeech = "adv"
	POSConjunction  PartOfSpeech = "conj"
	POSDeterminer   PartOfSpeech = "det"
	POSInterjection PartOfSpeech = "interj"
	POSNumeral      PartOfSpeech = "num"
	POSPhrase       PartOfSpeech = "phr"
	POSPostposition PartOfSpeech = "postp"
	POSPreposition  PartOfSpeech = "prep"
	POSPronoun      PartOfSpeech = "pro"
	POSProperNoun   PartOfSpeech = "np"
	POSSuffix       PartOfSpeech = "suf"
	POSUnknown      PartOfSpeech = "unk"
	// POSProbableNoun marks entries imported without a reliable tag.
	POSProbableNoun PartOfSpeech = "n?"
)

var posDisplay = map[PartOfSpeech]string{
	POSNoun:         "At (İsim)",
	POSVerb:         "İşlik (Fiil)",
	POSAdjective:    "Sypat (Sıfat)",
	POSAdverb:       "Hal (Zarf)",
	POSConjunction:  "Baglanyşyk (Bağlaç)",
	POSDeterminer:   "Belgilik (Belirteç)",
	POSInterjection: "Ündew (Ünlem)",
	POSNumeral:      "San (Sayı)",
	POSPhrase:       "Söz düzümi (Deyim)",
	POSPostposition: "Sözsoňy (Son edat)",
	POSPreposition:  "Sözöňi (Ön edat)",
	POSPronoun:      "Çalyşma (Zamir)",
	POSProperNoun:   "Özel at (Özel isim)",
	POSSuffix:       "Goşulma (Ek)",
	POSUnknown:      "Näbelli (Bilinmiyor)",
	POSProbableNoun: "At? (Muhtemel isim)",
}

// DisplayName returns the Turkmen (Turkish) label of the tag.
func (p PartOfSpeech) DisplayName() string {
	if name, ok := posDisplay[p]; ok {
		return name
	}
	return string(p)
}

// nominal reports whether words of this class take noun inflection.
func (p PartOfSpeech) nominal() bool {
	return p != POSVerb
}

// Features are the morphological properties of a lexicon entry.
type Features struct {
	AllowsSoftening    bool
	VowelDropCandidate bool
	ExceptionDrop      bool
	DroppedForm        string
	// Homonyms is set when the entry declares its own homonym group.
	Homonyms []HomonymSense
}

// Entry is one lexicon record. Homographs share a key but not an Entry.
type Entry struct {
	Word     string
	POS      PartOfSpeech
	Features Features
}

// Lexicon maps lowercased words to their entries. It is filled by Load
// and read-only afterwards; Load may be called again to replace the
// contents.
type Lexicon struct {
	mu      sync.RWMutex
	entries map[string][]*Entry
	count   int
	loaded  bool
}

// NewLexicon returns an empty lexicon.
func NewLexicon() *Lexicon {
	return &Lexicon{entries: make(map[string][]*Entry)}
}

// Lookup returns every entry for word, or nil.
func (l *Lexicon) Lookup(word string) []*Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[NormalizeKey(word)]
}

// Exists reports whether word has at least one entry.
func (l *Lexicon) Exists(word string) bool {
	return len(l.Lookup(word)) > 0
}

// POS returns the distinct tags of word in file order.
func (l *Lexicon) POS(word string) []PartOfSpeech {
	var out []PartOfSpeech
	seen := make(map[PartOfSpeech]bool)
	for _, e := range l.Lookup(word) {
		if !seen[e.POS] {
			seen[e.POS] = true
			out = append(out, e.POS)
		}
	}
	return out
}

// HasPOS reports whether any entry of word carries one of the tags.
func (l *Lexicon) HasPOS(word string, tags ...PartOfSpeech) bool {
	for _, e := range l.Lookup(word) {
		for _, t := range tags {
			if e.POS == t {
				return true
			}
		}
	}
	return false
}

// hasNominal reports whether word has an entry that inflects as a noun.
func (l *Lexicon) hasNominal(word string) bool {
	_, ok := l.nominalPOS(word)
	return ok
}

// nominalPOS returns the tag of the first entry of word that inflects
// as a noun.
func (l *Lexicon) nominalPOS(word string) (PartOfSpeech, bool) {
	for _, e := range l.Lookup(word) {
		if e.POS.nominal() {
			return e.POS, true
		}
	}
	return "", false
}

// Homonyms returns the homonym group of word. The built-in groups take
// precedence over groups declared in the lexicon file.
func (l *Lexicon) Homonyms(word string) ([]HomonymSense, bool) {
	key := NormalizeKey(word)
	if g, ok := homonymGroups[key]; ok {
		return append([]HomonymSense(nil), g...), true
	}
	for _, e := range l.Lookup(key) {
		if len(e.Features.Homonyms) > 0 {
			return append([]HomonymSense(nil), e.Features.Homonyms...), true
		}
	}
	return nil, false
}

// IsHomonym reports whether word belongs to a homonym group.
func (l *Lexicon) IsHomonym(word string) bool {
	_, ok := l.Homonyms(word)
	return ok
}

// ByPOS returns the sorted keys having an entry tagged with one of tags.
func (l *Lexicon) ByPOS(tags ...PartOfSpeech) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	want := make(map[PartOfSpeech]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []string
	for key, entries := range l.entries {
		for _, e := range entries {
			if want[e.POS] {
				out = append(out, key)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// Nouns returns all nouns, including the untagged probable nouns.
func (l *Lexicon) Nouns() []string { return l.ByPOS(POSNoun, POSProbableNoun) }

// Verbs returns all verb stems.
func (l *Lexicon) Verbs() []string { return l.ByPOS(POSVerb) }

// Words returns every key in sorted order.
func (l *Lexicon) Words() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.entries))
	for key := range l.entries {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of entries loaded, homographs counted apart.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// Loaded reports whether Load has completed at least once.
func (l *Lexicon) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}
