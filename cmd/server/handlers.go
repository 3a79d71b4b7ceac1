package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rs/cors"

	"github.com/turkmen-nlp/turkmenfst"
	"github.com/turkmen-nlp/turkmenfst/internal/config"
)

const apiVersion = "1.0.0"

// ---- JSON request types -------------------------------------------------

type nounRequest struct {
	Stem       string `json:"stem"`
	Plural     bool   `json:"plural"`
	Possessive string `json:"possessive"`
	Case       string `json:"case"`
}

type verbRequest struct {
	Stem     string `json:"stem"`
	Tense    string `json:"tense"`
	Person   string `json:"person"`
	Negative bool   `json:"negative"`
}

type generateRequest struct {
	Type string `json:"type"`
	nounRequest
	Tense    string `json:"tense"`
	Person   string `json:"person"`
	Negative bool   `json:"negative"`
}

type spellcheckRequest struct {
	Text  string   `json:"text"`
	Words []string `json:"words"`
	HTML  bool     `json:"html"`
}

// ---- JSON response types ------------------------------------------------

type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	LexiconLoaded bool   `json:"lexicon_loaded"`
	LexiconWords  int    `json:"lexicon_words"`
}

type morphemeJSON struct {
	Type   string `json:"type"`
	Suffix string `json:"suffix"`
}

type senseJSON struct {
	Meaning   string `json:"meaning"`
	Result    string `json:"result"`
	Breakdown string `json:"breakdown"`
}

type generateResponse struct {
	Result    string         `json:"result"`
	Stem      string         `json:"stem"`
	Breakdown string         `json:"breakdown"`
	Pronoun   string         `json:"pronoun,omitempty"`
	Morphemes []morphemeJSON `json:"morphemes"`
	Valid     bool           `json:"valid"`
	// Senses lists every homonym reading when the stem has several.
	Senses []senseJSON `json:"senses,omitempty"`
}

type suffixJSON struct {
	Suffix string `json:"suffix"`
	Type   string `json:"type"`
	Code   string `json:"code"`
}

type analysisResultJSON struct {
	Stem      string       `json:"stem"`
	WordType  string       `json:"word_type"`
	Breakdown string       `json:"breakdown"`
	Suffixes  []suffixJSON `json:"suffixes"`
	Meaning   string       `json:"meaning,omitempty"`
}

type analyzeResponse struct {
	Word    string               `json:"word"`
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Results []analysisResultJSON `json:"results"`
}

type featuresJSON struct {
	Softening   bool   `json:"softening"`
	VowelDrop   bool   `json:"vowel_drop"`
	DroppedForm string `json:"dropped_form,omitempty"`
}

type entryJSON struct {
	Word     string       `json:"word"`
	POS      string       `json:"pos"`
	Features featuresJSON `json:"features"`
}

type homonymJSON struct {
	Key       string `json:"key"`
	Meaning   string `json:"meaning"`
	Softening bool   `json:"softening"`
}

type lexiconResponse struct {
	Word       string        `json:"word"`
	Found      bool          `json:"found"`
	Entries    []entryJSON   `json:"entries"`
	POSDisplay string        `json:"pos_display,omitempty"`
	Homonyms   []homonymJSON `json:"homonyms,omitempty"`
}

type wordCheckJSON struct {
	Word        string   `json:"word"`
	Correct     bool     `json:"correct"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Suggestions []string `json:"suggestions"`
	Analysis    string   `json:"analysis,omitempty"`
}

type spellcheckResponse struct {
	Text       string          `json:"text"`
	WordCount  int             `json:"word_count"`
	ErrorCount int             `json:"error_count"`
	Results    []wordCheckJSON `json:"results"`
}

type nounRowJSON struct {
	Case  string `json:"case"`
	Bare  string `json:"bare"`
	Poss1 string `json:"poss_1sg"`
	Poss2 string `json:"poss_2sg"`
	Poss3 string `json:"poss_3sg"`
}

type nounTableJSON struct {
	Meaning  string        `json:"meaning,omitempty"`
	Singular []nounRowJSON `json:"singular"`
	Plural   []nounRowJSON `json:"plural"`
}

type verbRowJSON struct {
	Person   string `json:"person"`
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

type verbTableJSON struct {
	Tense string        `json:"tense"`
	Name  string        `json:"name"`
	Rows  []verbRowJSON `json:"rows"`
}

type paradigmResponse struct {
	Stem      string          `json:"stem"`
	Type      string          `json:"type"`
	Tables    []nounTableJSON `json:"tables,omitempty"`
	Finite    []verbTableJSON `json:"finite,omitempty"`
	NonFinite []verbTableJSON `json:"non_finite,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// errorStatus maps generation errors to HTTP statuses.
func errorStatus(err error) int {
	if errors.Is(err, turkmenfst.ErrUnsupportedForm) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func toGenerateResponse(r turkmenfst.GenerationResult) generateResponse {
	out := generateResponse{
		Result:    r.Word,
		Stem:      r.Stem,
		Breakdown: r.BreakdownString(),
		Pronoun:   r.Pronoun,
		Morphemes: make([]morphemeJSON, 0, len(r.Morphemes)),
		Valid:     r.Valid,
	}
	for _, m := range r.Morphemes {
		out.Morphemes = append(out.Morphemes, morphemeJSON{Type: string(m.Slot), Suffix: m.Text})
	}
	return out
}

func toAnalyzeResponse(a turkmenfst.Analysis) analyzeResponse {
	out := analyzeResponse{
		Word:    a.Original,
		Success: a.Success(),
		Count:   a.Count(),
		Results: make([]analysisResultJSON, 0, len(a.Results)),
	}
	for _, r := range a.Results {
		rj := analysisResultJSON{
			Stem:      r.Stem,
			WordType:  string(r.POS),
			Breakdown: r.Breakdown,
			Suffixes:  make([]suffixJSON, 0, len(r.Suffixes)),
			Meaning:   r.Meaning,
		}
		for _, s := range r.Suffixes {
			rj.Suffixes = append(rj.Suffixes, suffixJSON{Suffix: s.Text, Type: string(s.Slot), Code: s.Code})
		}
		out.Results = append(out.Results, rj)
	}
	return out
}

func toSpellcheckResponse(rep turkmenfst.SpellReport) spellcheckResponse {
	out := spellcheckResponse{
		Text:       rep.Text,
		WordCount:  rep.WordCount,
		ErrorCount: rep.ErrorCount,
		Results:    make([]wordCheckJSON, 0, len(rep.Words)),
	}
	for _, w := range rep.Words {
		suggestions := w.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		out.Results = append(out.Results, wordCheckJSON{
			Word:        w.Word,
			Correct:     w.Correct,
			Start:       w.Start,
			End:         w.End,
			Suggestions: suggestions,
			Analysis:    w.Analysis,
		})
	}
	return out
}

func nounRowsJSON(rows []turkmenfst.NounRow) []nounRowJSON {
	out := make([]nounRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, nounRowJSON{r.Case.Code(), r.Bare, r.Poss[0], r.Poss[1], r.Poss[2]})
	}
	return out
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// ---- handlers -----------------------------------------------------------

func handleHealth(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:        "ok",
			Version:       apiVersion,
			LexiconLoaded: e.Lexicon().Loaded(),
			LexiconWords:  e.Lexicon().Len(),
		})
	}
}

func generateNoun(w http.ResponseWriter, e *turkmenfst.Engine, req nounRequest) {
	if req.Stem == "" {
		writeError(w, http.StatusBadRequest, "'stem' is required")
		return
	}
	poss, num, err := turkmenfst.ParsePossessive(req.Possessive)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := turkmenfst.ParseCase(req.Case)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := turkmenfst.NounForm{Plural: req.Plural, Possessive: poss, Number: num, Case: c}

	senses := e.InflectNoun(req.Stem, f)
	first := senses[0].Result
	if !first.Valid {
		writeError(w, errorStatus(first.Err), first.Err.Error())
		return
	}
	resp := toGenerateResponse(first)
	if len(senses) > 1 {
		for _, s := range senses {
			resp.Senses = append(resp.Senses, senseJSON{
				Meaning:   s.Sense.Gloss,
				Result:    s.Result.Word,
				Breakdown: s.Result.BreakdownString(),
			})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func generateVerb(w http.ResponseWriter, e *turkmenfst.Engine, req verbRequest) {
	if req.Stem == "" || req.Tense == "" {
		writeError(w, http.StatusBadRequest, "'stem' and 'tense' are required")
		return
	}
	t, err := turkmenfst.ParseTense(req.Tense)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f := turkmenfst.VerbForm{Tense: t, Negative: req.Negative}
	if req.Person != "" {
		if f.Person, err = turkmenfst.ParsePerson(req.Person); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	res := e.GenerateVerb(req.Stem, f)
	if !res.Valid {
		writeError(w, errorStatus(res.Err), res.Err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGenerateResponse(res))
}

func handleGenerateNoun(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req nounRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		generateNoun(w, e, req)
	}
}

func handleGenerateVerb(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req verbRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		generateVerb(w, e, req)
	}
}

func handleGenerate(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req generateRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		switch req.Type {
		case "noun":
			generateNoun(w, e, req.nounRequest)
		case "verb":
			if req.Person == "" {
				writeError(w, http.StatusBadRequest, "'tense' and 'person' are required for verbs")
				return
			}
			generateVerb(w, e, verbRequest{req.Stem, req.Tense, req.Person, req.Negative})
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid type %q (use noun or verb)", req.Type))
		}
	}
}

func handleAnalyze(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var word string
		switch r.Method {
		case http.MethodGet:
			word = r.URL.Query().Get("word")
		case http.MethodPost:
			var body struct {
				Word string `json:"word"`
			}
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			word = body.Word
		default:
			writeError(w, http.StatusMethodNotAllowed, "GET or POST required")
			return
		}
		if strings.TrimSpace(word) == "" {
			writeError(w, http.StatusBadRequest, "missing 'word'")
			return
		}
		writeJSON(w, http.StatusOK, toAnalyzeResponse(e.Analyzer().ParseContext(r.Context(), word)))
	}
}

func handleLexicon(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		lex := e.Lexicon()
		entries := lex.Lookup(word)
		resp := lexiconResponse{Word: word, Found: len(entries) > 0, Entries: make([]entryJSON, 0, len(entries))}
		for _, entry := range entries {
			resp.Entries = append(resp.Entries, entryJSON{
				Word: entry.Word,
				POS:  string(entry.POS),
				Features: featuresJSON{
					Softening:   entry.Features.AllowsSoftening,
					VowelDrop:   entry.Features.VowelDropCandidate || entry.Features.ExceptionDrop,
					DroppedForm: entry.Features.DroppedForm,
				},
			})
			if resp.POSDisplay == "" {
				resp.POSDisplay = entry.POS.DisplayName()
			}
		}
		if senses, ok := lex.Homonyms(word); ok && resp.Found {
			for _, s := range senses {
				resp.Homonyms = append(resp.Homonyms, homonymJSON{s.Key, s.Gloss, s.AllowsSoftening})
			}
		}
		status := http.StatusOK
		if !resp.Found {
			status = http.StatusNotFound
		}
		writeJSON(w, status, resp)
	}
}

func handleSpellcheck(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req spellcheckRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		switch {
		case len(req.Words) > 0:
			writeJSON(w, http.StatusOK, toSpellcheckResponse(e.SpellcheckWords(req.Words)))
		case req.Text == "":
			writeError(w, http.StatusBadRequest, "body must carry a non-empty 'text' or 'words'")
		case req.HTML:
			rep, err := e.SpellcheckHTML(req.Text)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeJSON(w, http.StatusOK, toSpellcheckResponse(rep))
		default:
			writeJSON(w, http.StatusOK, toSpellcheckResponse(e.Spellcheck(req.Text)))
		}
	}
}

func handleParadigm(e *turkmenfst.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		stem := r.URL.Query().Get("stem")
		if stem == "" {
			writeError(w, http.StatusBadRequest, "missing 'stem' query parameter")
			return
		}
		kind := r.URL.Query().Get("type")
		if kind == "" {
			kind = "noun"
		}

		resp := paradigmResponse{Stem: stem, Type: kind}
		switch kind {
		case "noun":
			for _, p := range e.NounParadigms(stem) {
				resp.Tables = append(resp.Tables, nounTableJSON{
					Meaning:  p.Meaning,
					Singular: nounRowsJSON(p.Singular),
					Plural:   nounRowsJSON(p.Plural),
				})
			}
		case "verb":
			p := e.VerbParadigm(stem)
			for _, t := range p.Finite {
				tj := verbTableJSON{Tense: t.Tense.Display(), Name: t.Tense.Name()}
				for _, row := range t.Rows {
					tj.Rows = append(tj.Rows, verbRowJSON{row.Person.Code(), row.Positive, row.Negative})
				}
				resp.Finite = append(resp.Finite, tj)
			}
			for _, row := range p.NonFinite {
				resp.NonFinite = append(resp.NonFinite, verbTableJSON{
					Tense: row.Tense.Display(),
					Name:  row.Tense.Name(),
					Rows:  []verbRowJSON{{Positive: row.Positive, Negative: row.Negative}},
				})
			}
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid type %q (use noun or verb)", kind))
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// newHandler builds the API mux wrapped in CORS and rate limiting.
func newHandler(e *turkmenfst.Engine, sc config.ServerConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(e))
	mux.HandleFunc("/api/generate/noun", handleGenerateNoun(e))
	mux.HandleFunc("/api/generate/verb", handleGenerateVerb(e))
	mux.HandleFunc("/api/generate", handleGenerate(e))
	mux.HandleFunc("/api/analyze", handleAnalyze(e))
	mux.HandleFunc("/api/lexicon", handleLexicon(e))
	mux.HandleFunc("/api/spellcheck", handleSpellcheck(e))
	mux.HandleFunc("/api/paradigm", handleParadigm(e))

	var h http.Handler = mux
	if sc.RateLimit > 0 {
		h = newClientLimiter(sc.RateLimit, sc.RateBurst).Middleware(h)
	}
	origins := sc.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(h)
}
