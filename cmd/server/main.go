// Command server exposes the Turkmen morphological engine as a JSON
// REST API.
//
// Endpoints:
//
//	GET  /api/health
//	POST /api/generate/noun   body: {"stem":"kitap","plural":true,"possessive":"A1","case":"A6"}
//	POST /api/generate/verb   body: {"stem":"gel","tense":"1","person":"A1","negative":false}
//	POST /api/generate        body: {"type":"noun"|"verb", ...}
//	GET  /api/analyze?word=<word>   (or POST body: {"word":"..."})
//	GET  /api/lexicon?word=<word>
//	POST /api/spellcheck      body: {"text":"..."} | {"words":[...]} | {"text":"<p>...","html":true}
//	GET  /api/paradigm?stem=<stem>&type=noun|verb
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/turkmen-nlp/turkmenfst"
	"github.com/turkmen-nlp/turkmenfst/internal/config"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default: $HOME/.turkmenfst/config.yaml)")
	lexicon := flag.String("lexicon", "", "path to the lexicon file (overrides config)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *lexicon != "" {
		cfg.Lexicon = *lexicon
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log.Printf("loading lexicon from %s …", cfg.Lexicon)
	engine, err := turkmenfst.New(cfg.Lexicon, cfg.Options())
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Printf("lexicon loaded: %d entries, %d analyzer workers", engine.Lexicon().Len(), engine.Analyzer().Workers())

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(engine, cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
