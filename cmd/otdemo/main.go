// Command otdemo builds a small document, exercises the caret and
// word-scan conventions against it, then starts a websocket relay so
// further collaborators can connect and exchange operations. It mirrors
// the teacher's cmd/main.go in spirit — load config, wire components,
// log what's happening, shut down gracefully on signal — scoped down to
// this module's tree-shaped OT core instead of a full sync server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/coreseekdev/inkweave/pkg/caret"
	"github.com/coreseekdev/inkweave/pkg/ot"
	"github.com/coreseekdev/inkweave/pkg/transport"
)

func main() {
	configPath := flag.String("config", "otdemo.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("otdemo: %v", err)
	}

	doc := ot.Span{ot.DocChars{Text: cfg.Document}}
	doc = demoCaretAndWordScan(doc, cfg.Clients)

	var mu sync.Mutex
	srv := transport.NewServer(cfg.Addr)
	srv.Handler = func(clientID string, op ot.Operation) {
		mu.Lock()
		defer mu.Unlock()
		doc = ot.ApplyOperation(doc, op)
		log.Printf("[otdemo] applied operation from %s, document now %d atoms", clientID, len(doc))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("otdemo: start relay: %v", err)
	}

	log.Println("==========================================")
	log.Println("  inkweave OT core demo")
	log.Println("==========================================")
	log.Printf("Relay listening on ws://localhost%s/ws", cfg.Addr)
	log.Println("Press Ctrl+C to stop")

	<-ctx.Done()
	log.Println("Shutting down...")
	if err := srv.Close(); err != nil {
		log.Printf("otdemo: close relay: %v", err)
	}
	os.Exit(0)
}

// demoCaretAndWordScan walks every configured client through joining the
// document (caret.Init), selecting the word under their caret
// (caret.WordSelect), and printing the resulting document — a quick,
// observable exercise of the walker/writer/caret stack before the relay
// takes over.
func demoCaretAndWordScan(doc ot.Span, clientNames []string) ot.Span {
	for _, name := range clientNames {
		client := uuid.New()
		op := caret.Init(doc, client)
		doc = ot.ApplyOperation(doc, op)
		log.Printf("[otdemo] %s (%s) joined: %s", name, client, describe(doc))

		// caret.Init always inserts exactly two groups (focus, then
		// anchor) at the front, so position 2 is just past them. For the
		// first client that is the start of the text, where WordSelect
		// finds the enclosing word; for later clients it sits on the
		// caret groups earlier clients left there, and no word is
		// selected.
		w := ot.NewWalker(doc)
		if !w.GotoPos(2) {
			continue
		}

		selectOp := caret.WordSelect(w, client)
		doc = ot.ApplyOperation(doc, selectOp)
		log.Printf("[otdemo] %s ran word select at position 2: %s", name, describe(doc))
	}
	return doc
}

// describe renders a document span as a compact debug string, good enough
// for demo log output.
func describe(doc ot.Span) string {
	out := ""
	for _, atom := range doc {
		switch v := atom.(type) {
		case ot.DocChars:
			out += v.Text
		case ot.DocGroup:
			if caret.IsCaret(v) {
				if caret.IsFocus(v) {
					out += "|"
				} else {
					out += "["
				}
			} else {
				out += "{group}"
			}
		}
	}
	return out
}
