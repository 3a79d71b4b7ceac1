package turkmenfst

import (
	"errors"
	"testing"
)

func TestGenerateNoun(t *testing.T) {
	tests := []struct {
		stem string
		form NounForm
		want string
	}{
		{"kitap", NounForm{}, "kitap"},
		{"kitap", NounForm{Plural: true}, "kitaplar"},
		{"kitap", NounForm{Possessive: Poss1}, "kitabym"},
		{"kitap", NounForm{Possessive: Poss1, Number: Plural}, "kitabymyz"},
		{"kitap", NounForm{Possessive: Poss2}, "kitabyň"},
		{"kitap", NounForm{Possessive: Poss2, Number: Plural}, "kitabyňyz"},
		{"kitap", NounForm{Possessive: Poss3}, "kitaby"},
		{"kitap", NounForm{Possessive: Poss3, Number: Plural}, "kitaby"},
		{"kitap", NounForm{Case: Genitive}, "kitabyň"},
		{"kitap", NounForm{Case: Dative}, "kitapa"},
		{"kitap", NounForm{Case: Accusative}, "kitaby"},
		{"kitap", NounForm{Case: Locative}, "kitapda"},
		{"kitap", NounForm{Case: Ablative}, "kitapdan"},
		{"kitap", NounForm{Possessive: Poss3, Case: Dative}, "kitabyna"},
		{"kitap", NounForm{Possessive: Poss3, Case: Accusative}, "kitabyny"},
		{"kitap", NounForm{Possessive: Poss3, Case: Locative}, "kitabynda"},
		{"kitap", NounForm{Possessive: Poss3, Case: Ablative}, "kitabyndan"},
		{"kitap", NounForm{Plural: true, Possessive: Poss1, Case: Ablative}, "kitaplarymdan"},
		{"mekdep", NounForm{Possessive: Poss1}, "mekdebim"},
		{"mekdep", NounForm{Case: Locative}, "mekdepde"},
		{"burun", NounForm{Possessive: Poss3}, "burny"},
		{"burun", NounForm{Possessive: Poss2}, "burnuň"},
		{"burun", NounForm{Plural: true}, "burunlar"},
		{"burun", NounForm{Case: Accusative}, "burny"},
		{"burun", NounForm{Case: Locative}, "burunda"},
		{"burun", NounForm{Case: Dative}, "burna"},
		{"burun", NounForm{Possessive: Poss3, Case: Dative}, "burnuna"},
		{"agyz", NounForm{Possessive: Poss3}, "agzy"},
		{"ogul", NounForm{Possessive: Poss1}, "oglum"},
		{"asyl", NounForm{Possessive: Poss3}, "asly"},
		{"gelin", NounForm{Possessive: Poss3}, "gelni"},
		{"at", NounForm{Plural: true, Possessive: Poss3, Case: Genitive}, "atlarynyň"},
		{"at", NounForm{Possessive: Poss1}, "adym"},
		{"at", NounForm{Possessive: Poss1, NoSoftening: true}, "atym"},
		{"göl", NounForm{Plural: true}, "göller"},
		{"göl", NounForm{Case: Genitive}, "gölüň"},
		{"guzy", NounForm{Possessive: Poss3}, "guzusu"},
		{"guzy", NounForm{Plural: true}, "guzular"},
		{"guzy", NounForm{Possessive: Poss1}, "guzym"},
		{"süri", NounForm{Plural: true}, "sürüler"},
		{"okuwçy", NounForm{Plural: true}, "okuwçular"},
		{"okuwçy", NounForm{Possessive: Poss3}, "okuwçusu"},
		{"okuwçy", NounForm{Case: Dative}, "okuwça"},
		{"alma", NounForm{Possessive: Poss1}, "almam"},
		{"alma", NounForm{Possessive: Poss3}, "almasy"},
		{"alma", NounForm{Possessive: Poss1, Number: Plural}, "almamyz"},
		{"ene", NounForm{Case: Dative}, "enä"},
		{"ene", NounForm{Possessive: Poss3, Case: Dative}, "enesine"},
		{"agaç", NounForm{Possessive: Poss1}, "agajym"},
		{"ýürek", NounForm{Case: Genitive}, "ýüregiň"},
		{"Kitap", NounForm{Plural: true}, "kitaplar"},
	}
	for _, tt := range tests {
		got := GenerateNoun(tt.stem, tt.form)
		if !got.Valid {
			t.Errorf("GenerateNoun(%q, %+v) invalid: %v", tt.stem, tt.form, got.Err)
			continue
		}
		if got.Word != tt.want {
			t.Errorf("GenerateNoun(%q, %+v) = %q, want %q", tt.stem, tt.form, got.Word, tt.want)
		}
	}
}

func TestGenerateNounBreakdown(t *testing.T) {
	got := GenerateNoun("kitap", NounForm{Plural: true, Possessive: Poss1, Case: Ablative})
	if got.BreakdownString() != "kitap + lar + ym + dan" {
		t.Errorf("BreakdownString() = %q", got.BreakdownString())
	}
	want := []Morpheme{{SlotPlural, "lar"}, {SlotPossessive, "ym"}, {SlotCase, "dan"}}
	if len(got.Morphemes) != len(want) {
		t.Fatalf("Morphemes = %v, want %v", got.Morphemes, want)
	}
	for i := range want {
		if got.Morphemes[i] != want[i] {
			t.Errorf("Morphemes[%d] = %v, want %v", i, got.Morphemes[i], want[i])
		}
	}

	// the vowel-final dative shows its replaced vowel as the marker
	dat := GenerateNoun("ene", NounForm{Case: Dative})
	if dat.BreakdownString() != "ene + ä" {
		t.Errorf("BreakdownString() = %q", dat.BreakdownString())
	}
}

func TestGenerateNounInvalid(t *testing.T) {
	got := GenerateNoun("kitap", NounForm{Case: 12})
	if got.Valid {
		t.Fatal("case 12 accepted")
	}
	if !errors.Is(got.Err, ErrInvalidParameter) {
		t.Errorf("Err = %v, want ErrInvalidParameter", got.Err)
	}
	if got.Word != "" || got.Stem != "kitap" {
		t.Errorf("invalid result = %+v", got)
	}
}
