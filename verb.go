package turkmenfst

import (
	"fmt"
	"strings"
)

// personEndings is a person suffix table indexed by Person, each cell a
// back/front pair.
type personEndings [7][2]string

// standardEndings follow the past tenses, the conditional and the optative.
var standardEndings = personEndings{
	{},
	{"m", "m"},
	{"ň", "ň"},
	{"", ""},
	{"k", "k"},
	{"ňyz", "ňiz"},
	{"lar", "ler"},
}

// extendedEndings follow the present, the indefinite future and the
// evidential.
var extendedEndings = personEndings{
	{},
	{"yn", "in"},
	{"syň", "siň"},
	{"", ""},
	{"ys", "is"},
	{"syňyz", "siňiz"},
	{"lar", "ler"},
}

func (t *personEndings) get(p Person, h Harmony) string {
	if !p.valid() {
		return ""
	}
	return h.pick(t[p][0], t[p][1])
}

// definitePresent holds the only four verbs with a definite present
// (otyr, ýatyr, dur, ýör), indexed by Person.
var definitePresent = map[string][7]string{
	"otyr":  {"", "yn", "syň", "", "ys", "syňyz", "lar"},
	"ýatyr": {"", "yn", "syň", "", "ys", "syňyz", "lar"},
	"dur":   {"", "un", "suň", "", "us", "suňyz", "lar"},
	"ýör":   {"", "ün", "siň", "", "üs", "siňiz", "ler"},
}

// verbBuilder accumulates the pieces of a verb form.
type verbBuilder struct {
	stem      string
	word      string
	breakdown []string
	morphemes []Morpheme
}

func (b *verbBuilder) add(slot Slot, text string) {
	if text == "" {
		return
	}
	b.word += text
	b.breakdown = append(b.breakdown, text)
	b.morphemes = append(b.morphemes, Morpheme{slot, text})
}

// person appends a person ending, marking an empty one with "(0)" in
// the breakdown.
func (b *verbBuilder) person(text string) {
	if text == "" {
		b.breakdown = append(b.breakdown, "(0)")
		return
	}
	b.add(SlotPerson, text)
}

func (b *verbBuilder) result() GenerationResult {
	return GenerationResult{
		Word:      b.word,
		Stem:      b.stem,
		Breakdown: b.breakdown,
		Morphemes: b.morphemes,
		Valid:     true,
	}
}

// GenerateVerb conjugates a verb stem. Forms rejected by the verb
// morphotactics, and forms the stem has no paradigm for, come back with
// Valid false and Err set.
func GenerateVerb(stem string, f VerbForm) GenerationResult {
	if err := ValidateVerbParams(f); err != nil {
		return invalid(stem, err)
	}

	root := strings.ToLower(stem)
	h := ClassifyHarmony(root)
	neg := ""
	if f.Negative {
		neg = h.pick("ma", "me")
	}
	b := &verbBuilder{stem: stem, word: root, breakdown: []string{stem}}

	switch f.Tense {
	case DefiniteFuture:
		return definiteFuture(b, f, h)
	case DefinitePresent:
		return definitePresentForm(b, f)
	case Imperative:
		return imperative(b, f, h)
	case Necessitative:
		b.add(SlotTense, h.pick("maly", "meli"))
		if f.Negative {
			b.word += " däl"
			b.breakdown = append(b.breakdown, "däl")
			b.morphemes = append(b.morphemes, Morpheme{SlotNegation, "däl"})
		}
		return b.result()
	}

	switch f.Tense {
	case DefinitePast:
		b.add(SlotNegation, neg)
		if !f.Negative && isMonoRounded(root) && f.Person != Person3Sg {
			b.add(SlotTense, h.pick("du", "dü"))
		} else {
			b.add(SlotTense, h.pick("dy", "di"))
		}
		b.person(standardEndings.get(f.Person, h))
	case RemotePast:
		if f.Negative {
			b.add(SlotNegation, h.pick("man", "män"))
			b.add(SlotTense, h.pick("dy", "di"))
		} else if EndsInVowel(root) {
			b.add(SlotTense, h.pick("pdy", "pdi"))
		} else {
			b.add(SlotTense, h.pick("ypdy", "ipdi"))
		}
		b.person(standardEndings.get(f.Person, h))
	case PastContinuous:
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("ýardy", "ýärdi"))
		b.person(standardEndings.get(f.Person, h))
	case Present:
		if !f.Negative {
			b.word = softenVerb(root)
		}
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("ýar", "ýär"))
		b.person(extendedEndings.get(f.Person, h))
	case IndefiniteFuture:
		if f.Negative {
			// the negative fuses with the tense: -mar for 1st/2nd person,
			// -maz for the 3rd
			if f.Person == Person3Sg || f.Person == Person3Pl {
				b.add(SlotTense, h.pick("maz", "mez"))
			} else {
				b.add(SlotTense, h.pick("mar", "mer"))
			}
		} else {
			vowelFinal := EndsInVowel(root)
			b.word = softenVerb(root)
			if lastRune(b.word) == 'e' {
				b.word = replaceLastRune(b.word, 'ä')
			}
			if vowelFinal {
				b.add(SlotTense, "r")
			} else {
				b.add(SlotTense, h.pick("ar", "er"))
			}
		}
		b.person(extendedEndings.get(f.Person, h))
	case Conditional:
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("sa", "se"))
		b.person(standardEndings.get(f.Person, h))
	case Evidential:
		if f.Negative {
			b.add(SlotNegation, h.pick("man", "män"))
		} else {
			b.add(SlotTense, converbSuffix(root, h))
		}
		b.add(SlotTense, h.pick("dyr", "dir"))
		b.person(extendedEndings.get(f.Person, h))
	case Optative:
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("sady", "sedi"))
		b.person(standardEndings.get(f.Person, h))
	case Converb:
		if f.Negative {
			b.add(SlotNegation, h.pick("man", "män"))
		} else {
			b.add(SlotTense, converbSuffix(root, h))
		}
	case PastParticiple:
		switch {
		case f.Negative:
			b.add(SlotNegation, neg)
			b.add(SlotTense, h.pick("dyk", "dik"))
		case EndsInVowel(root):
			b.add(SlotTense, "n")
		default:
			b.add(SlotTense, h.pick("an", "en"))
		}
	case PresentParticiple:
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("ýan", "ýän"))
	case FutureParticiple:
		b.add(SlotNegation, neg)
		b.add(SlotTense, h.pick("jak", "jek"))
	case Causative:
		switch {
		case EndsInVowel(root):
			b.add(SlotTense, "t")
		case isMonoRounded(root):
			b.add(SlotTense, h.pick("dur", "dür"))
		default:
			b.add(SlotTense, h.pick("dyr", "dir"))
		}
	case Passive:
		switch {
		case EndsInVowel(root):
			b.add(SlotTense, "l")
		case lastRune(root) == 'l' && isMonoRounded(root):
			b.add(SlotTense, h.pick("un", "ün"))
		case lastRune(root) == 'l':
			b.add(SlotTense, h.pick("yn", "in"))
		case isMonoRounded(root):
			b.add(SlotTense, h.pick("ul", "ül"))
		default:
			b.add(SlotTense, h.pick("yl", "il"))
		}
	}
	return b.result()
}

// converbSuffix is -yp/-ip, rounded after a single rounded vowel and
// reduced to -p after a vowel.
func converbSuffix(root string, h Harmony) string {
	switch {
	case EndsInVowel(root):
		return "p"
	case isMonoRounded(root):
		return h.pick("up", "üp")
	}
	return h.pick("yp", "ip")
}

// definiteFuture is analytic: the pronoun stands before the participle
// and the negative is the copula "däl".
func definiteFuture(b *verbBuilder, f VerbForm, h Harmony) GenerationResult {
	pronoun := f.Person.Pronoun()
	b.breakdown = append([]string{pronoun}, b.breakdown...)
	b.add(SlotTense, h.pick("jak", "jek"))
	if f.Person == Person3Pl && !f.Negative {
		b.add(SlotPlural, h.pick("lar", "ler"))
	}
	if f.Negative {
		b.word += " däl"
		b.breakdown = append(b.breakdown, "däl")
		b.morphemes = append(b.morphemes, Morpheme{SlotNegation, "däl"})
	}
	r := b.result()
	r.Word = pronoun + " " + r.Word
	r.Pronoun = pronoun
	return r
}

func definitePresentForm(b *verbBuilder, f VerbForm) GenerationResult {
	endings, ok := definitePresent[b.word]
	if !ok {
		return invalid(b.stem, fmt.Errorf("%w: %q has no definite present", ErrUnsupportedForm, b.stem))
	}
	if f.Negative {
		return invalid(b.stem, fmt.Errorf("%w: definite present has no negative", ErrUnsupportedForm))
	}
	b.person(endings[f.Person])
	return b.result()
}

// imperative builds the Buýruk forms. After the negative -ma/-me every
// ending takes its post-vowel shape and loses rounding.
func imperative(b *verbBuilder, f VerbForm, h Harmony) GenerationResult {
	root := b.word
	var vowelFinal, round bool
	if f.Negative {
		b.add(SlotNegation, h.pick("ma", "me"))
		vowelFinal = true
	} else {
		vowelFinal = EndsInVowel(root)
		round = isMonoRounded(root)
	}

	third := h.pick("syn", "sin")
	if round {
		third = h.pick("sun", "sün")
	}

	var ending string
	switch f.Person {
	case Person1Sg:
		ending = h.pick("ýyn", "ýin")
		if !vowelFinal {
			ending = h.pick("aýyn", "eýin")
		}
	case Person2Sg:
	case Person3Sg:
		ending = third
	case Person1Pl:
		ending = h.pick("ly", "li")
		if !vowelFinal {
			ending = h.pick("aly", "eli")
		}
	case Person2Pl:
		switch {
		case vowelFinal:
			ending = "ň"
		case round:
			ending = h.pick("uň", "üň")
		default:
			ending = h.pick("yň", "iň")
		}
	case Person3Pl:
		ending = third + h.pick("lar", "ler")
	}
	b.person(ending)
	return b.result()
}
