package turkmenfst

import (
	"reflect"
	"testing"
)

func loadTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(testLexicon, AnalyzerOptions{})
	if err != nil {
		t.Fatalf("New(%q): %v", testLexicon, err)
	}
	return e
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []Token
	}{
		{"men kitabym kitab", []Token{{"men", 0, 3}, {"kitabym", 4, 11}, {"kitab", 12, 17}}},
		{"Men, kitabym!", []Token{{"Men", 0, 3}, {"kitabym", 5, 12}}},
		{"göl at", []Token{{"göl", 0, 4}, {"at", 5, 7}}},
		{"  12 ... ", []Token{}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitap", "kitap", 0},
		{"kitap", "kitab", 1},
		{"göl", "gol", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"at", "adam", 2},
		{"göl", "gül", 1},
		{"ýürek", "yurek", 2},
	}
	for _, tt := range tests {
		if got := EditDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := EditDistance(tt.b, tt.a); got != tt.want {
			t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestSpellcheck(t *testing.T) {
	e := loadTestEngine(t)
	report := e.Spellcheck("men kitabym kitab")
	if report.WordCount != 3 || report.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 3/1", report.WordCount, report.ErrorCount)
	}
	if !report.Words[1].Correct || report.Words[1].Analysis == "" {
		t.Errorf("kitabym = %+v", report.Words[1])
	}
	bad := report.Words[2]
	if bad.Correct || bad.Start != 12 || bad.End != 17 {
		t.Errorf("kitab = %+v", bad)
	}
	if len(bad.Suggestions) == 0 || bad.Suggestions[0] != "kitaby" {
		t.Errorf("suggestions = %v", bad.Suggestions)
	}
}

func TestSuggest(t *testing.T) {
	e := loadTestEngine(t)
	got := e.Suggest("kitab", DefaultSuggestions)
	want := []string{"kitaby", "kitap"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(kitab) = %v, want %v", got, want)
	}
	if got := e.Suggest("kitab", 1); len(got) != 1 {
		t.Errorf("Suggest(kitab, 1) = %v", got)
	}
	if got := e.Suggest("", DefaultSuggestions); got != nil {
		t.Errorf("Suggest(\"\") = %v", got)
	}
	for _, s := range e.Suggest("kitap", DefaultSuggestions) {
		if s == "kitap" {
			t.Error("Suggest returned the input itself")
		}
	}
}

func TestSpellcheckWords(t *testing.T) {
	e := loadTestEngine(t)
	report := e.SpellcheckWords([]string{"men", "kitab"})
	if report.Text != "men kitab" || report.ErrorCount != 1 {
		t.Fatalf("report = %+v", report)
	}
	if w := report.Words[1]; w.Start != 4 || w.End != 9 {
		t.Errorf("offsets = %d-%d, want 4-9", w.Start, w.End)
	}
}

func TestSpellcheckHTML(t *testing.T) {
	e := loadTestEngine(t)
	report, err := e.SpellcheckHTML("<p>men <b>kitabym</b></p><script>kitab()</script>")
	if err != nil {
		t.Fatal(err)
	}
	if report.Text != "men kitabym" || report.WordCount != 2 || report.ErrorCount != 0 {
		t.Errorf("report = %+v", report)
	}
}
