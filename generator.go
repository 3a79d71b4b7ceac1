package turkmenfst

import "strings"

// Slot names the position a morpheme fills in a generated word.
type Slot string

const (
	SlotPlural     Slot = "PLURAL"
	SlotPossessive Slot = "POSSESSIVE"
	SlotCase       Slot = "CASE"
	SlotNegation   Slot = "NEGATION"
	SlotTense      Slot = "TENSE"
	SlotPerson     Slot = "PERSON"
)

// Morpheme is one suffix of a generated word.
type Morpheme struct {
	Slot Slot
	Text string
}

// NounForm selects a cell of the noun paradigm.
type NounForm struct {
	Plural     bool
	Possessive Possessive
	Number     PossessorNumber
	Case       Case
	// NoSoftening keeps a final p/ç/t/k hard before vowel-initial
	// suffixes, for homonym senses that resist voicing (at "horse").
	NoSoftening bool
}

// VerbForm selects a cell of the verb paradigm.
type VerbForm struct {
	Tense    Tense
	Person   Person
	Negative bool
}

// GenerationResult is the surface form of one paradigm cell together
// with its morpheme trace.
type GenerationResult struct {
	Word string
	Stem string
	// Pronoun is set when Word starts with a free-standing pronoun.
	Pronoun   string
	Breakdown []string
	Morphemes []Morpheme
	Valid     bool
	Err       error
}

// BreakdownString joins the breakdown with " + ".
func (r GenerationResult) BreakdownString() string {
	return strings.Join(r.Breakdown, " + ")
}

func invalid(stem string, err error) GenerationResult {
	return GenerationResult{Stem: stem, Err: err}
}

// GenerateNoun inflects a noun stem. Forms rejected by the noun
// morphotactics come back with Valid false and Err set.
func GenerateNoun(stem string, f NounForm) GenerationResult {
	if err := ValidateNounParams(f); err != nil {
		return invalid(stem, err)
	}

	word := strings.ToLower(stem)
	path := []string{stem}
	var morphemes []Morpheme
	soften := !f.NoSoftening

	listRounded := false
	if r, ok := roundingStems[word]; ok && (f.Plural || f.Possessive == Poss3) {
		word = r
		listRounded = true
	}
	stemHarmony := ClassifyHarmony(word)

	if f.Plural {
		if !listRounded {
			word = ApplyRoundingHarmony(word, stemHarmony)
		}
		suffix := ClassifyHarmony(word).pick("lar", "ler")
		word += suffix
		path = append(path, suffix)
		morphemes = append(morphemes, Morpheme{SlotPlural, suffix})
	}

	if f.Possessive != PossNone {
		suffix := possessiveSuffix(&word, f, listRounded)
		word = ApplyVowelDrop(word, suffix)
		if soften {
			word = SoftenFinalConsonant(word)
		}
		word += suffix
		path = append(path, suffix)
		morphemes = append(morphemes, Morpheme{SlotPossessive, suffix})
	}

	if f.Case != Nominative {
		h := ClassifyHarmony(word)
		vowelFinal := EndsInVowel(word)
		rounded := IsRounded(word)
		linked := f.Possessive == Poss3
		if linked && rounded && endsInHighUnrounded(word) {
			word = trimLastRune(word) + h.pick("u", "ü")
		}

		var suffix, shown string
		switch f.Case {
		case Genitive:
			switch {
			case linked, vowelFinal:
				suffix = h.pick("nyň", "niň")
			default:
				if len([]rune(stem)) <= 4 && rounded {
					suffix = h.pick("uň", "üň")
				} else {
					suffix = h.pick("yň", "iň")
				}
				word = ApplyVowelDrop(word, suffix)
				if soften {
					word = SoftenFinalConsonant(word)
				}
			}
		case Dative:
			switch {
			case linked:
				suffix = h.pick("na", "ne")
			case vowelFinal:
				// the final vowel itself turns into the case marker
				last := lastRune(word)
				shown = "ä"
				if last == 'a' || last == 'y' {
					shown = "a"
				}
				word = trimLastRune(word) + shown
			default:
				suffix = h.pick("a", "e")
				word = ApplyVowelDrop(word, suffix)
			}
		case Accusative:
			if linked || vowelFinal {
				suffix = h.pick("ny", "ni")
			} else {
				suffix = h.pick("y", "i")
				word = ApplyVowelDrop(word, suffix)
				if soften {
					word = SoftenFinalConsonant(word)
				}
			}
		case Locative:
			suffix = h.pick("da", "de")
			if linked {
				suffix = "n" + suffix
			}
		case Ablative:
			suffix = h.pick("dan", "den")
			if linked {
				suffix = "n" + suffix
			}
		}
		if shown == "" {
			shown = suffix
		}
		word += suffix
		path = append(path, shown)
		morphemes = append(morphemes, Morpheme{SlotCase, shown})
	}

	return GenerationResult{
		Word:      word,
		Stem:      stem,
		Breakdown: path,
		Morphemes: morphemes,
		Valid:     true,
	}
}

// possessiveSuffix picks the possessive ending for *word. The 3rd
// person may round the stem-final vowel in place.
func possessiveSuffix(word *string, f NounForm, listRounded bool) string {
	w := *word
	h := ClassifyHarmony(w)
	vowelFinal := EndsInVowel(w)
	rounded := IsRounded(w)
	plural := f.Number == Plural

	switch f.Possessive {
	case Poss1:
		if vowelFinal {
			if plural {
				return h.pick("myz", "miz")
			}
			return "m"
		}
		base := h.pick("ym", "im")
		if rounded {
			base = h.pick("um", "üm")
		}
		if plural {
			return base + h.pick("yz", "iz")
		}
		return base
	case Poss2:
		if vowelFinal {
			if plural {
				return h.pick("ňyz", "ňiz")
			}
			return "ň"
		}
		base := h.pick("yň", "iň")
		if rounded {
			base = h.pick("uň", "üň")
		}
		if plural {
			return base + h.pick("yz", "iz")
		}
		return base
	case Poss3:
		roundedNow := false
		if !listRounded && rounded && endsInHighUnrounded(w) {
			*word = trimLastRune(w) + h.pick("u", "ü")
			roundedNow = true
		}
		if vowelFinal {
			if roundedNow || listRounded {
				return h.pick("su", "sü")
			}
			return h.pick("sy", "si")
		}
		if listRounded && rounded {
			return h.pick("u", "ü")
		}
		return h.pick("y", "i")
	}
	return ""
}
