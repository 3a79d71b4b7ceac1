// Package turkmenfst provides Turkmen morphological generation and
// analysis: noun declension, verb conjugation and generate-and-compare
// decomposition of surface words against a stem lexicon.
package turkmenfst

import "fmt"

// Engine holds a loaded lexicon and the analyzer built on it, and
// provides the public API used by the CLI and the server.
type Engine struct {
	lexicon  *Lexicon
	analyzer *Analyzer
}

// New loads the lexicon at lexiconPath and returns a ready-to-use
// Engine.
func New(lexiconPath string, opts AnalyzerOptions) (*Engine, error) {
	lex := NewLexicon()
	if _, err := lex.Load(lexiconPath); err != nil {
		return nil, err
	}
	return NewWithLexicon(lex, opts)
}

// NewWithLexicon wraps an already loaded lexicon.
func NewWithLexicon(lex *Lexicon, opts AnalyzerOptions) (*Engine, error) {
	if lex == nil || !lex.Loaded() {
		return nil, ErrLexiconNotLoaded
	}
	return &Engine{lexicon: lex, analyzer: NewAnalyzer(lex, opts)}, nil
}

// Lexicon returns the engine's lexicon.
func (e *Engine) Lexicon() *Lexicon { return e.lexicon }

// Analyzer returns the engine's analyzer.
func (e *Engine) Analyzer() *Analyzer { return e.analyzer }

// Analyze decomposes a surface word.
func (e *Engine) Analyze(word string) Analysis {
	return e.analyzer.Parse(word)
}

// GenerateNoun inflects stem with the lexicon's softening rule. For a
// homonym stem it uses the first sense; see InflectNoun for all of them.
func (e *Engine) GenerateNoun(stem string, f NounForm) GenerationResult {
	if senses, ok := e.lexicon.Homonyms(stem); ok && len(senses) > 0 {
		f.NoSoftening = f.NoSoftening || !senses[0].AllowsSoftening
	}
	return GenerateNoun(stem, f)
}

// GenerateVerb conjugates stem.
func (e *Engine) GenerateVerb(stem string, f VerbForm) GenerationResult {
	return GenerateVerb(stem, f)
}

// SenseResult is the generation of one homonym sense.
type SenseResult struct {
	Sense  HomonymSense
	Result GenerationResult
}

// InflectNoun inflects stem once per homonym sense, each with its own
// softening rule. A stem outside any homonym group yields one result
// with a zero Sense.
func (e *Engine) InflectNoun(stem string, f NounForm) []SenseResult {
	senses, ok := e.lexicon.Homonyms(stem)
	if !ok {
		return []SenseResult{{Result: GenerateNoun(stem, f)}}
	}
	out := make([]SenseResult, 0, len(senses))
	for _, s := range senses {
		sf := f
		sf.NoSoftening = f.NoSoftening || !s.AllowsSoftening
		out = append(out, SenseResult{Sense: s, Result: GenerateNoun(stem, sf)})
	}
	return out
}

// NounParadigms returns the declension of stem, one table per homonym
// sense.
func (e *Engine) NounParadigms(stem string) []*NounParadigm {
	senses, ok := e.lexicon.Homonyms(stem)
	if !ok {
		return []*NounParadigm{BuildNounParadigm(stem, false)}
	}
	out := make([]*NounParadigm, 0, len(senses))
	for _, s := range senses {
		p := BuildNounParadigm(stem, !s.AllowsSoftening)
		p.Meaning = s.Gloss
		out = append(out, p)
	}
	return out
}

// VerbParadigm returns the conjugation of stem.
func (e *Engine) VerbParadigm(stem string) *VerbParadigm {
	return BuildVerbParadigm(stem)
}

// Describe summarizes the lexicon entries of word, one line per entry.
func (e *Engine) Describe(word string) []string {
	var out []string
	for _, entry := range e.lexicon.Lookup(word) {
		line := fmt.Sprintf("%s [%s]", entry.Word, entry.POS.DisplayName())
		if entry.Features.ExceptionDrop {
			line += " drop:" + entry.Features.DroppedForm
		} else if entry.Features.VowelDropCandidate {
			line += " vowel_drop"
		}
		if entry.Features.AllowsSoftening {
			line += " softening"
		}
		out = append(out, line)
	}
	return out
}
