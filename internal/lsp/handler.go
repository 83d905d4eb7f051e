// Package lsp implements editor diagnostics for the cost-model
// configuration DSL: syntax errors and duplicate-declaration warnings,
// published on open and on every change.
package lsp

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"greedydag/grammar"
)

// Handler implements the LSP server handlers for the cost-model DSL.
type Handler struct {
	mu      sync.RWMutex
	content map[string]string
	models  map[string]*grammar.Program
}

// NewHandler creates a new Handler instance.
func NewHandler() *Handler {
	return &Handler{
		content: make(map[string]string),
		models:  make(map[string]*grammar.Program),
	}
}

// Initialize responds to the client's initialize request.
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called after the client completes initialization.
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Println("LSP Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	return h.publishDiagnostics(ctx, params.TextDocument.URI)
}

// TextDocumentDidClose handles file close notifications.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.models, path)
	return nil
}

// TextDocumentDidChange handles file change notifications.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)
	return h.publishDiagnostics(ctx, params.TextDocument.URI)
}

func (h *Handler) publishDiagnostics(ctx *glsp.Context, rawURI protocol.DocumentUri) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	prog, parseErr := grammar.ParseString(path, string(content))
	if parseErr != nil {
		sendDiagnosticNotification(ctx, rawURI, ConvertParseError(parseErr))
		return nil
	}

	h.mu.Lock()
	h.content[path] = string(content)
	h.models[path] = prog
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, ConvertDuplicateDeclarations(prog))
	return nil
}

func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
