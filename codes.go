package turkmenfst

import (
	"strconv"
	"strings"
)

// Possessive is the person of a possessive suffix.
type Possessive uint8

const (
	PossNone Possessive = iota
	Poss1
	Poss2
	Poss3
)

// PossessorNumber distinguishes "my" from "our".
type PossessorNumber uint8

const (
	Singular PossessorNumber = iota
	Plural
)

// Code returns the grammar code of the possessive, A1…A3 for a single
// possessor and B1…B3 for several.
func (p Possessive) Code(n PossessorNumber) string {
	if p == PossNone || p > Poss3 {
		return ""
	}
	prefix := "A"
	if n == Plural {
		prefix = "B"
	}
	return prefix + strconv.Itoa(int(p))
}

// Display returns the possessive label used in analysis breakdowns.
// The 3rd person has a single form for both numbers.
func (p Possessive) Display(n PossessorNumber) string {
	switch {
	case p == Poss1 && n == Plural:
		return "D₁k"
	case p == Poss2 && n == Plural:
		return "D₂k"
	case p == Poss1:
		return "D₁b"
	case p == Poss2:
		return "D₂b"
	case p == Poss3:
		return "D₃b"
	}
	return ""
}

var possessiveCodes = map[string]struct {
	p Possessive
	n PossessorNumber
}{
	"":     {PossNone, Singular},
	"none": {PossNone, Singular},
	"a1":   {Poss1, Singular},
	"a2":   {Poss2, Singular},
	"a3":   {Poss3, Singular},
	"b1":   {Poss1, Plural},
	"b2":   {Poss2, Plural},
	"b3":   {Poss3, Plural},
	"1sg":  {Poss1, Singular},
	"2sg":  {Poss2, Singular},
	"3sg":  {Poss3, Singular},
	"1pl":  {Poss1, Plural},
	"2pl":  {Poss2, Plural},
	"3pl":  {Poss3, Plural},
}

// ParsePossessive maps a possessive code (A1, B2, 3sg, …) to its value.
func ParsePossessive(code string) (Possessive, PossessorNumber, error) {
	v, ok := possessiveCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return PossNone, Singular, &ParamError{Axis: "possessive", Code: code}
	}
	return v.p, v.n, nil
}

// Case is a noun case. The zero value is the unmarked nominative.
type Case uint8

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Locative
	Ablative
)

// AllCases lists every case in paradigm order.
var AllCases = []Case{Nominative, Genitive, Dative, Accusative, Locative, Ablative}

// Code returns A1…A6.
func (c Case) Code() string {
	if c > Ablative {
		return ""
	}
	return "A" + strconv.Itoa(int(c)+1)
}

// Display returns the case label used in analysis breakdowns.
func (c Case) Display() string {
	if c > Ablative {
		return ""
	}
	return "A" + string('₁'+rune(c))
}

// Name returns the Turkmen grammatical name of the case.
func (c Case) Name() string {
	switch c {
	case Nominative:
		return "Baş düşüm"
	case Genitive:
		return "Eýelik düşüm"
	case Dative:
		return "Ýöneliş düşüm"
	case Accusative:
		return "Ýeňiş düşüm"
	case Locative:
		return "Wagt-orun düşüm"
	case Ablative:
		return "Çykyş düşüm"
	}
	return ""
}

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nominative"
	case Genitive:
		return "genitive"
	case Dative:
		return "dative"
	case Accusative:
		return "accusative"
	case Locative:
		return "locative"
	case Ablative:
		return "ablative"
	}
	return "case(" + strconv.Itoa(int(c)) + ")"
}

var caseCodes = map[string]Case{
	"": Nominative, "a1": Nominative, "h1": Nominative, "nom": Nominative,
	"a2": Genitive, "h2": Genitive, "gen": Genitive,
	"a3": Dative, "h3": Dative, "dat": Dative,
	"a4": Accusative, "h4": Accusative, "acc": Accusative,
	"a5": Locative, "h5": Locative, "loc": Locative,
	"a6": Ablative, "h6": Ablative, "abl": Ablative,
}

// ParseCase maps a case code (A2, gen, …) to its value.
func ParseCase(code string) (Case, error) {
	c, ok := caseCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Nominative, &ParamError{Axis: "case", Code: code}
	}
	return c, nil
}

// Person is the subject person of a verb form.
type Person uint8

const (
	Person1Sg Person = iota + 1
	Person2Sg
	Person3Sg
	Person1Pl
	Person2Pl
	Person3Pl
)

// AllPersons lists every person in paradigm order.
var AllPersons = []Person{Person1Sg, Person2Sg, Person3Sg, Person1Pl, Person2Pl, Person3Pl}

func (p Person) valid() bool { return p >= Person1Sg && p <= Person3Pl }

func (p Person) plural() bool { return p >= Person1Pl }

// Code returns A1…A3 for singular persons and B1…B3 for plural ones.
func (p Person) Code() string {
	if !p.valid() {
		return ""
	}
	if p.plural() {
		return "B" + strconv.Itoa(int(p-Person1Pl)+1)
	}
	return "A" + strconv.Itoa(int(p))
}

var pronouns = [...]string{"", "Men", "Sen", "Ol", "Biz", "Siz", "Olar"}

// Pronoun returns the personal pronoun of p.
func (p Person) Pronoun() string {
	if !p.valid() {
		return ""
	}
	return pronouns[p]
}

func (p Person) String() string {
	if !p.valid() {
		return "person(" + strconv.Itoa(int(p)) + ")"
	}
	return [...]string{"", "1sg", "2sg", "3sg", "1pl", "2pl", "3pl"}[p]
}

var personCodes = map[string]Person{
	"a1": Person1Sg, "1sg": Person1Sg,
	"a2": Person2Sg, "2sg": Person2Sg,
	"a3": Person3Sg, "3sg": Person3Sg,
	"b1": Person1Pl, "1pl": Person1Pl,
	"b2": Person2Pl, "2pl": Person2Pl,
	"b3": Person3Pl, "3pl": Person3Pl,
}

// ParsePerson maps a person code (A1, 3pl, …) to its value.
func ParsePerson(code string) (Person, error) {
	p, ok := personCodes[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return 0, &ParamError{Axis: "person", Code: code}
	}
	return p, nil
}

// Tense covers tenses, moods, non-finite forms and voices of the verb.
type Tense uint8

const (
	DefinitePast Tense = iota + 1
	RemotePast
	PastContinuous
	Present
	DefinitePresent
	DefiniteFuture
	IndefiniteFuture
	Conditional
	Imperative
	Necessitative
	Evidential
	Optative
	Converb
	PastParticiple
	PresentParticiple
	FutureParticiple
	Causative
	Passive
)

// AllTenses lists every tense code in numeric order.
var AllTenses = func() []Tense {
	out := make([]Tense, 0, Passive)
	for t := DefinitePast; t <= Passive; t++ {
		out = append(out, t)
	}
	return out
}()

var tenseInfo = [...]struct {
	display string
	name    string
}{
	{},
	{"Ö1", "Anyk Öten"},
	{"Ö2", "Daş Öten"},
	{"Ö3", "Dowamly Öten"},
	{"H1", "Umumy Häzirki"},
	{"H2", "Anyk Häzirki"},
	{"G1", "Mälim Geljek"},
	{"G2", "Nämälim Geljek"},
	{"Ş1", "Şert formasy"},
	{"B1K", "Buýruk"},
	{"HK", "Hökmanlyk"},
	{"NÖ", "Nätanyş Öten"},
	{"AÖ", "Arzuw-Ökünç"},
	{"FH", "Hal işlik"},
	{"FÖ", "Öten ortak işlik"},
	{"FÄ", "Häzirki ortak işlik"},
	{"FG", "Geljek ortak işlik"},
	{"ETT", "Ettirgen"},
	{"EDL", "Edilgen"},
}

func (t Tense) valid() bool { return t >= DefinitePast && t <= Passive }

// Code returns the numeric code "1"…"18".
func (t Tense) Code() string { return strconv.Itoa(int(t)) }

// Display returns the short grammar code (Ö1, H2, FH, …).
func (t Tense) Display() string {
	if !t.valid() {
		return ""
	}
	return tenseInfo[t].display
}

// Name returns the Turkmen name of the tense or form.
func (t Tense) Name() string {
	if !t.valid() {
		return ""
	}
	return tenseInfo[t].name
}

func (t Tense) String() string {
	if !t.valid() {
		return "tense(" + t.Code() + ")"
	}
	return t.Display()
}

// Finite reports whether t takes person endings.
func (t Tense) Finite() bool { return t >= DefinitePast && t <= Optative }

func (t Tense) nonFinite() bool { return t >= Converb && t <= FutureParticiple }

func (t Tense) voice() bool { return t == Causative || t == Passive }

// personless reports whether the surface form ignores the person.
func (t Tense) personless() bool {
	return t.nonFinite() || t.voice() || t == Necessitative
}

// ParseTense accepts a numeric code ("1"…"18") or a display code ("Ö1").
func ParseTense(code string) (Tense, error) {
	code = strings.TrimSpace(code)
	if n, err := strconv.Atoi(code); err == nil {
		if n >= int(DefinitePast) && n <= int(Passive) {
			return Tense(n), nil
		}
		return 0, &ParamError{Axis: "tense", Code: code}
	}
	upper := strings.ToUpper(code)
	for t := DefinitePast; t <= Passive; t++ {
		if tenseInfo[t].display == upper {
			return t, nil
		}
	}
	return 0, &ParamError{Axis: "tense", Code: code}
}
