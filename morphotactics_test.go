package turkmenfst

import (
	"errors"
	"testing"
)

func TestNounMorphotactics(t *testing.T) {
	tests := []struct {
		name string
		cats []MorphCategory
		want bool
	}{
		{"bare stem", nil, true},
		{"plural", []MorphCategory{CatPlural}, true},
		{"plural case", []MorphCategory{CatPlural, CatDative}, true},
		{"plural possessive case", []MorphCategory{CatPlural, CatPoss3Sg, CatGenitive}, true},
		{"possessive case", []MorphCategory{CatPoss1Pl, CatAblative}, true},
		{"case before plural", []MorphCategory{CatDative, CatPlural}, false},
		{"case before possessive", []MorphCategory{CatLocative, CatPoss1Sg}, false},
		{"two cases", []MorphCategory{CatGenitive, CatDative}, false},
		{"double plural", []MorphCategory{CatPlural, CatPlural}, false},
		{"verb category", []MorphCategory{CatPast1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NounMorphotactics.IsValidSequence(tt.cats); got != tt.want {
				t.Errorf("IsValidSequence(%v) = %v, want %v", tt.cats, got, tt.want)
			}
		})
	}
}

func TestVerbMorphotactics(t *testing.T) {
	tests := []struct {
		name string
		cats []MorphCategory
		want bool
	}{
		{"bare stem", nil, false},
		{"negation only", []MorphCategory{CatNegation}, false},
		{"tense", []MorphCategory{CatPast1}, true},
		{"tense person", []MorphCategory{CatPast1, CatPerson1Sg}, true},
		{"negative tense person", []MorphCategory{CatNegation, CatFuture2, CatPerson3Pl}, true},
		{"person before tense", []MorphCategory{CatPerson1Sg, CatPast1}, false},
		{"negation after tense", []MorphCategory{CatPast1, CatNegation}, false},
		{"converb", []MorphCategory{CatConverb}, true},
		{"negative participle", []MorphCategory{CatNegation, CatPastParticiple}, true},
		{"participle person", []MorphCategory{CatFutureParticiple, CatPerson1Sg}, false},
		{"causative", []MorphCategory{CatCausative}, true},
		{"negative passive", []MorphCategory{CatNegation, CatPassive}, false},
		{"noun category", []MorphCategory{CatPlural}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbMorphotactics.IsValidSequence(tt.cats); got != tt.want {
				t.Errorf("IsValidSequence(%v) = %v, want %v", tt.cats, got, tt.want)
			}
		})
	}
}

func TestTransitionsCopy(t *testing.T) {
	ts := NounMorphotactics.Transitions()
	if len(ts) == 0 {
		t.Fatal("no noun transitions")
	}
	ts[0].Category = CatNegation
	if NounMorphotactics.Transitions()[0].Category == CatNegation {
		t.Error("Transitions exposed the internal table")
	}
	if !VerbTense.Terminal() || VerbNegation.Terminal() || VerbStem.Terminal() {
		t.Error("unexpected terminal states")
	}
}

func TestNounCategories(t *testing.T) {
	cats, err := NounCategories(NounForm{Plural: true, Possessive: Poss1, Number: Plural, Case: Locative})
	if err != nil {
		t.Fatal(err)
	}
	want := []MorphCategory{CatPlural, CatPoss1Pl, CatLocative}
	if len(cats) != len(want) {
		t.Fatalf("NounCategories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("cats[%d] = %s, want %s", i, cats[i], want[i])
		}
	}

	// the 3rd person possessive has no plural category
	cats, _ = NounCategories(NounForm{Possessive: Poss3, Number: Plural})
	if len(cats) != 1 || cats[0] != CatPoss3Sg {
		t.Errorf("NounCategories(3pl possessive) = %v", cats)
	}
}

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name string
		err  error
		axis string
	}{
		{"bad possessive", ValidateNounParams(NounForm{Possessive: 7}), "possessive"},
		{"bad case", ValidateNounParams(NounForm{Case: 9}), "case"},
		{"bad number", ValidateNounParams(NounForm{Possessive: Poss1, Number: 5}), "possessive number"},
		{"bad tense", ValidateVerbParams(VerbForm{Tense: 0, Person: Person1Sg}), "tense"},
		{"tense too large", ValidateVerbParams(VerbForm{Tense: 19, Person: Person1Sg}), "tense"},
		{"missing person", ValidateVerbParams(VerbForm{Tense: DefinitePast}), "person"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrInvalidParameter) {
				t.Fatalf("error %v is not ErrInvalidParameter", tt.err)
			}
			var pe *ParamError
			if !errors.As(tt.err, &pe) {
				t.Fatalf("error %v is not a *ParamError", tt.err)
			}
			if pe.Axis != tt.axis {
				t.Errorf("Axis = %q, want %q", pe.Axis, tt.axis)
			}
		})
	}

	if err := ValidateVerbParams(VerbForm{Tense: Causative, Negative: true}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative causative: err = %v, want ErrInvalidParameter", err)
	}
	if err := ValidateVerbParams(VerbForm{Tense: Converb}); err != nil {
		t.Errorf("converb without person: %v", err)
	}
	if err := ValidateNounParams(NounForm{}); err != nil {
		t.Errorf("bare noun: %v", err)
	}
}

func TestParseCodes(t *testing.T) {
	poss, num, err := ParsePossessive("B1")
	if err != nil || poss != Poss1 || num != Plural {
		t.Errorf("ParsePossessive(B1) = %v, %v, %v", poss, num, err)
	}
	if poss, _, err := ParsePossessive(""); err != nil || poss != PossNone {
		t.Errorf("ParsePossessive(\"\") = %v, %v", poss, err)
	}
	if _, _, err := ParsePossessive("C1"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParsePossessive(C1) err = %v", err)
	}

	for code, want := range map[string]Case{"A1": Nominative, "a3": Dative, "H6": Ablative, "gen": Genitive} {
		if got, err := ParseCase(code); err != nil || got != want {
			t.Errorf("ParseCase(%q) = %v, %v; want %v", code, got, err, want)
		}
	}
	if _, err := ParseCase("A7"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseCase(A7) err = %v", err)
	}

	for code, want := range map[string]Person{"A1": Person1Sg, "b3": Person3Pl, "2sg": Person2Sg} {
		if got, err := ParsePerson(code); err != nil || got != want {
			t.Errorf("ParsePerson(%q) = %v, %v; want %v", code, got, err, want)
		}
	}

	for code, want := range map[string]Tense{"1": DefinitePast, "18": Passive, "ö1": DefinitePast, "FH": Converb, "B1K": Imperative} {
		if got, err := ParseTense(code); err != nil || got != want {
			t.Errorf("ParseTense(%q) = %v, %v; want %v", code, got, err, want)
		}
	}
	for _, code := range []string{"0", "19", "300", "-1", "X1"} {
		if _, err := ParseTense(code); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseTense(%q) err = %v", code, err)
		}
	}
}

func TestCodeLabels(t *testing.T) {
	if got := Poss2.Code(Plural); got != "B2" {
		t.Errorf("Poss2.Code(Plural) = %q", got)
	}
	if got := Poss1.Display(Plural); got != "D₁k" {
		t.Errorf("Poss1.Display(Plural) = %q", got)
	}
	if got := Poss3.Display(Plural); got != "D₃b" {
		t.Errorf("Poss3.Display(Plural) = %q", got)
	}
	if got := Ablative.Display(); got != "A₆" {
		t.Errorf("Ablative.Display() = %q", got)
	}
	if got := Genitive.Code(); got != "A2" {
		t.Errorf("Genitive.Code() = %q", got)
	}
	if got := Person2Pl.Code(); got != "B2" {
		t.Errorf("Person2Pl.Code() = %q", got)
	}
	if got := Person3Pl.Pronoun(); got != "Olar" {
		t.Errorf("Person3Pl.Pronoun() = %q", got)
	}
	if got := IndefiniteFuture.Display(); got != "G2" {
		t.Errorf("IndefiniteFuture.Display() = %q", got)
	}
	if got := Evidential.Name(); got != "Nätanyş Öten" {
		t.Errorf("Evidential.Name() = %q", got)
	}
	if len(AllTenses) != 18 || AllTenses[17] != Passive {
		t.Errorf("AllTenses = %v", AllTenses)
	}
}
