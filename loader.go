package turkmenfst

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// posTags maps the markup tags of the word list to POS codes.
var posTags = map[string]PartOfSpeech{
	"%<n%>":      POSNoun,
	"%<v%>":      POSVerb,
	"%<adj%>":    POSAdjective,
	"%<adv%>":    POSAdverb,
	"%<conj%>":   POSConjunction,
	"%<det%>":    POSDeterminer,
	"%<interj%>": POSInterjection,
	"%<num%>":    POSNumeral,
	"%<phr%>":    POSPhrase,
	"%<postp%>":  POSPostposition,
	"%<prep%>":   POSPreposition,
	"%<pro%>":    POSPronoun,
	"%<np%>":     POSProperNoun,
	"%<suf%>":    POSSuffix,
	"%<unk%>":    POSUnknown,
	"%<n?%>":     POSProbableNoun,
}

// ParsePOSTag converts a %<tag%> token; unknown tags map to POSUnknown.
func ParsePOSTag(tag string) PartOfSpeech {
	if pos, ok := posTags[strings.TrimSpace(tag)]; ok {
		return pos
	}
	return POSUnknown
}

// Load reads a word list from path, replacing the current contents,
// and returns the number of entries read.
func (l *Lexicon) Load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	n, err := l.Read(f)
	if err != nil {
		return n, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}

// Read is Load for an already opened source.
//
// Each line is word<TAB>%<pos%>[<TAB>features]. Blank lines, lines
// starting with # or = and tag header lines ("%<adj%>  ! Adjective")
// are skipped.
func (l *Lexicon) Read(r io.Reader) (int, error) {
	entries := make(map[string][]*Entry)
	count := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "=") {
			continue
		}
		if strings.HasPrefix(line, "%<") && strings.Contains(line, "!") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		word := Compose(strings.TrimSpace(parts[0]))
		if word == "" {
			continue
		}
		pos := ParsePOSTag(parts[1])

		var feat Features
		if len(parts) >= 3 {
			feat = declaredFeatures(word, pos, parts[2])
		} else {
			feat = computedFeatures(word, pos)
		}

		key := strings.ToLower(word)
		entries[key] = append(entries[key], &Entry{Word: word, POS: pos, Features: feat})
		count++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}

	l.mu.Lock()
	l.entries = entries
	l.count = count
	l.loaded = true
	l.mu.Unlock()
	return count, nil
}

// computedFeatures derives features from the phonology tables.
func computedFeatures(word string, pos PartOfSpeech) Features {
	w := strings.ToLower(word)
	var f Features
	if dropped, ok := vowelDropExceptions[w]; ok {
		f.VowelDropCandidate = true
		f.ExceptionDrop = true
		f.DroppedForm = dropped
	} else if _, ok := vowelDropCandidates[w]; ok {
		f.VowelDropCandidate = true
	}
	switch pos {
	case POSNoun, POSProperNoun, POSProbableNoun:
		f.AllowsSoftening = CanSoften(w)
	}
	return f
}

// declaredFeatures parses the ";"-separated features column on top of
// computedFeatures, so a column that declares nothing yields the same
// features as a line without one.
func declaredFeatures(word string, pos PartOfSpeech, column string) Features {
	f := computedFeatures(word, pos)

	inHomonym := false
	for _, tok := range strings.Split(column, ";") {
		tok = strings.TrimSpace(tok)
		switch {
		case tok == "":
		case tok == "vowel_drop":
			f.VowelDropCandidate = true
		case tok == "softening":
			f.AllowsSoftening = true
		case strings.HasPrefix(tok, "exception_drop:"):
			f.VowelDropCandidate = true
			f.ExceptionDrop = true
			f.DroppedForm = strings.TrimPrefix(tok, "exception_drop:")
		case strings.HasPrefix(tok, "homonym:"):
			inHomonym = true
			if s, ok := parseHomonymSense(strings.TrimPrefix(tok, "homonym:")); ok {
				f.Homonyms = append(f.Homonyms, s)
			}
			continue
		case inHomonym:
			// later members of the group follow as "2=...|no"
			if s, ok := parseHomonymSense(tok); ok {
				f.Homonyms = append(f.Homonyms, s)
				continue
			}
		}
		inHomonym = false
	}
	return f
}
