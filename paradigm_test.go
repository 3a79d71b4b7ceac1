package turkmenfst

import "testing"

func TestBuildNounParadigm(t *testing.T) {
	p := BuildNounParadigm("kitap", false)
	if len(p.Singular) != len(AllCases) || len(p.Plural) != len(AllCases) {
		t.Fatalf("rows = %d/%d, want %d", len(p.Singular), len(p.Plural), len(AllCases))
	}

	nom := p.Singular[0]
	if nom.Case != Nominative || nom.Bare != "kitap" {
		t.Errorf("nominative row = %+v", nom)
	}
	want := [3]string{"kitabym", "kitabyň", "kitaby"}
	if nom.Poss != want {
		t.Errorf("nominative possessives = %v, want %v", nom.Poss, want)
	}

	for _, row := range p.Plural {
		if row.Case == Dative && row.Bare != "kitaplara" {
			t.Errorf("plural dative = %q, want kitaplara", row.Bare)
		}
		if row.Case == Nominative && row.Bare != "kitaplar" {
			t.Errorf("plural nominative = %q, want kitaplar", row.Bare)
		}
	}
}

func TestBuildNounParadigmNoSoftening(t *testing.T) {
	p := BuildNounParadigm("at", true)
	if got := p.Singular[0].Poss[0]; got != "atym" {
		t.Errorf("1sg possessive = %q, want atym", got)
	}
}

func TestBuildVerbParadigm(t *testing.T) {
	p := BuildVerbParadigm("gel")
	if len(p.Finite) != 12 {
		t.Fatalf("finite tables = %d, want 12", len(p.Finite))
	}
	if len(p.NonFinite) != 6 {
		t.Fatalf("non-finite rows = %d, want 6", len(p.NonFinite))
	}

	past := p.Finite[0]
	if past.Tense != DefinitePast || len(past.Rows) != len(AllPersons) {
		t.Fatalf("first table = %+v", past)
	}
	if past.Rows[0].Positive != "geldim" || past.Rows[0].Negative != "gelmedim" {
		t.Errorf("1sg definite past = %+v", past.Rows[0])
	}

	for _, table := range p.Finite {
		if table.Tense != DefinitePresent {
			continue
		}
		// gel has no definite present
		for _, row := range table.Rows {
			if row.Positive != Missing || row.Negative != Missing {
				t.Errorf("definite present %s = %+v", row.Person, row)
			}
		}
	}

	for _, row := range p.NonFinite {
		switch row.Tense {
		case Converb:
			if row.Positive != "gelip" || row.Negative != "gelmän" {
				t.Errorf("converb = %+v", row)
			}
		case Causative:
			if row.Positive != "geldir" || row.Negative != Missing {
				t.Errorf("causative = %+v", row)
			}
		case Passive:
			if row.Positive != "gelin" || row.Negative != Missing {
				t.Errorf("passive = %+v", row)
			}
		}
	}
}
