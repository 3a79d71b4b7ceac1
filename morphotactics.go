package turkmenfst

import "strconv"

// MorphCategory labels one morpheme on a morphotactic path.
type MorphCategory string

const (
	CatPlural MorphCategory = "PLURAL"

	CatPoss1Sg MorphCategory = "POSS_1SG"
	CatPoss2Sg MorphCategory = "POSS_2SG"
	CatPoss3Sg MorphCategory = "POSS_3SG"
	CatPoss1Pl MorphCategory = "POSS_1PL"
	CatPoss2Pl MorphCategory = "POSS_2PL"

	CatGenitive   MorphCategory = "CASE_GEN"
	CatDative     MorphCategory = "CASE_DAT"
	CatAccusative MorphCategory = "CASE_ACC"
	CatLocative   MorphCategory = "CASE_LOC"
	CatAblative   MorphCategory = "CASE_ABL"

	CatNegation MorphCategory = "NEGATION"

	CatPast1       MorphCategory = "TENSE_PAST1"
	CatPast2       MorphCategory = "TENSE_PAST2"
	CatPast3       MorphCategory = "TENSE_PAST3"
	CatPresent1    MorphCategory = "TENSE_PRES1"
	CatPresent2    MorphCategory = "TENSE_PRES2"
	CatFuture1     MorphCategory = "TENSE_FUT1"
	CatFuture2     MorphCategory = "TENSE_FUT2"
	CatConditional MorphCategory = "MOOD_COND"
	CatImperative  MorphCategory = "MOOD_IMP"
	CatNecessity   MorphCategory = "MOOD_NEC"
	CatEvidential  MorphCategory = "TENSE_EVID"
	CatOptative    MorphCategory = "MOOD_OPT"

	CatConverb           MorphCategory = "CONVERB"
	CatPastParticiple    MorphCategory = "PART_PAST"
	CatPresentParticiple MorphCategory = "PART_PRES"
	CatFutureParticiple  MorphCategory = "PART_FUT"
	CatCausative         MorphCategory = "VOICE_CAUS"
	CatPassive           MorphCategory = "VOICE_PASS"

	CatPerson1Sg MorphCategory = "PERSON_1SG"
	CatPerson2Sg MorphCategory = "PERSON_2SG"
	CatPerson3Sg MorphCategory = "PERSON_3SG"
	CatPerson1Pl MorphCategory = "PERSON_1PL"
	CatPerson2Pl MorphCategory = "PERSON_2PL"
	CatPerson3Pl MorphCategory = "PERSON_3PL"
)

// State is a node of the suffix automaton.
type State uint8

const (
	NounStem State = iota
	NounPlural
	NounPossessive
	NounCase
	VerbStem
	VerbNegation
	VerbTense
	VerbPerson
	VerbNonFinite
	VerbVoice
)

var stateNames = [...]string{
	"STEM", "PLURAL", "POSSESSIVE", "CASE",
	"V_STEM", "NEGATION", "TENSE", "PERSON", "NONFINITE", "VOICE",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Terminal reports whether a word may end in state s.
func (s State) Terminal() bool {
	switch s {
	case VerbStem, VerbNegation:
		return false
	}
	return int(s) < len(stateNames)
}

// Transition is one labelled edge of the automaton.
type Transition struct {
	From     State
	To       State
	Category MorphCategory
}

// Morphotactics is an immutable suffix automaton for one word class.
type Morphotactics struct {
	start       State
	transitions []Transition
	edges       map[State]map[MorphCategory]State
}

func newMorphotactics(start State, ts []Transition) *Morphotactics {
	m := &Morphotactics{
		start:       start,
		transitions: ts,
		edges:       make(map[State]map[MorphCategory]State),
	}
	for _, t := range ts {
		if m.edges[t.From] == nil {
			m.edges[t.From] = make(map[MorphCategory]State)
		}
		m.edges[t.From][t.Category] = t.To
	}
	return m
}

// fanOut builds one transition per (source, category) pair.
func fanOut(from []State, to State, cats ...MorphCategory) []Transition {
	var out []Transition
	for _, f := range from {
		for _, c := range cats {
			out = append(out, Transition{From: f, To: to, Category: c})
		}
	}
	return out
}

var (
	possessiveCats = []MorphCategory{CatPoss1Sg, CatPoss2Sg, CatPoss3Sg, CatPoss1Pl, CatPoss2Pl}
	caseCats       = []MorphCategory{CatGenitive, CatDative, CatAccusative, CatLocative, CatAblative}
	finiteCats     = []MorphCategory{
		CatPast1, CatPast2, CatPast3, CatPresent1, CatPresent2, CatFuture1, CatFuture2,
		CatConditional, CatImperative, CatNecessity, CatEvidential, CatOptative,
	}
	nonFiniteCats = []MorphCategory{CatConverb, CatPastParticiple, CatPresentParticiple, CatFutureParticiple}
	personCats    = []MorphCategory{CatPerson1Sg, CatPerson2Sg, CatPerson3Sg, CatPerson1Pl, CatPerson2Pl, CatPerson3Pl}
)

// NounMorphotactics orders plural, possessive and case suffixes.
var NounMorphotactics = newMorphotactics(NounStem, concat(
	fanOut([]State{NounStem}, NounPlural, CatPlural),
	fanOut([]State{NounStem, NounPlural}, NounPossessive, possessiveCats...),
	fanOut([]State{NounStem, NounPlural, NounPossessive}, NounCase, caseCats...),
))

// VerbMorphotactics orders negation, tense/mood and person suffixes.
// Non-finite forms end the word without a person; voices attach to the
// bare stem only.
var VerbMorphotactics = newMorphotactics(VerbStem, concat(
	fanOut([]State{VerbStem}, VerbNegation, CatNegation),
	fanOut([]State{VerbStem, VerbNegation}, VerbTense, finiteCats...),
	fanOut([]State{VerbTense}, VerbPerson, personCats...),
	fanOut([]State{VerbStem, VerbNegation}, VerbNonFinite, nonFiniteCats...),
	fanOut([]State{VerbStem}, VerbVoice, CatCausative, CatPassive),
))

func concat(groups ...[]Transition) []Transition {
	var out []Transition
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Transitions returns a copy of the transition table.
func (m *Morphotactics) Transitions() []Transition {
	return append([]Transition(nil), m.transitions...)
}

// IsValidSequence walks cats from the stem state and reports whether
// every step has an edge and the walk ends in a terminal state.
func (m *Morphotactics) IsValidSequence(cats []MorphCategory) bool {
	state := m.start
	for _, c := range cats {
		next, ok := m.edges[state][c]
		if !ok {
			return false
		}
		state = next
	}
	return state.Terminal()
}

// NounCategories maps a noun form to its category sequence.
func NounCategories(f NounForm) ([]MorphCategory, error) {
	var cats []MorphCategory
	if f.Plural {
		cats = append(cats, CatPlural)
	}
	if f.Number > Plural {
		return nil, &ParamError{Axis: "possessive number", Code: strconv.Itoa(int(f.Number))}
	}
	switch f.Possessive {
	case PossNone:
	case Poss1:
		cats = append(cats, pick(f.Number == Plural, CatPoss1Pl, CatPoss1Sg))
	case Poss2:
		cats = append(cats, pick(f.Number == Plural, CatPoss2Pl, CatPoss2Sg))
	case Poss3:
		cats = append(cats, CatPoss3Sg)
	default:
		return nil, &ParamError{Axis: "possessive", Code: strconv.Itoa(int(f.Possessive))}
	}
	switch f.Case {
	case Nominative:
	case Genitive, Dative, Accusative, Locative, Ablative:
		cats = append(cats, caseCats[f.Case-Genitive])
	default:
		return nil, &ParamError{Axis: "case", Code: strconv.Itoa(int(f.Case))}
	}
	return cats, nil
}

// VerbCategories maps a verb form to its category sequence. The person
// is only checked for forms that carry one.
func VerbCategories(f VerbForm) ([]MorphCategory, error) {
	if !f.Tense.valid() {
		return nil, &ParamError{Axis: "tense", Code: f.Tense.Code()}
	}
	var cats []MorphCategory
	if f.Negative {
		cats = append(cats, CatNegation)
	}
	switch {
	case f.Tense.Finite():
		cats = append(cats, finiteCats[f.Tense-DefinitePast])
	case f.Tense.nonFinite():
		cats = append(cats, nonFiniteCats[f.Tense-Converb])
	case f.Tense == Causative:
		cats = append(cats, CatCausative)
	case f.Tense == Passive:
		cats = append(cats, CatPassive)
	}
	if f.Tense.personless() {
		return cats, nil
	}
	if !f.Person.valid() {
		return nil, &ParamError{Axis: "person", Code: strconv.Itoa(int(f.Person))}
	}
	return append(cats, personCats[f.Person-Person1Sg]), nil
}

// ValidateNounParams rejects unknown codes and illegal suffix orders.
func ValidateNounParams(f NounForm) error {
	cats, err := NounCategories(f)
	if err != nil {
		return err
	}
	if !NounMorphotactics.IsValidSequence(cats) {
		return sequenceError(cats)
	}
	return nil
}

// ValidateVerbParams rejects unknown codes and illegal suffix orders.
func ValidateVerbParams(f VerbForm) error {
	cats, err := VerbCategories(f)
	if err != nil {
		return err
	}
	if !VerbMorphotactics.IsValidSequence(cats) {
		return sequenceError(cats)
	}
	return nil
}

func pick[T any](cond bool, yes, no T) T {
	if cond {
		return yes
	}
	return no
}
