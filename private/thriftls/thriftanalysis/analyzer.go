// Package thriftanalysis is the incremental analyzer orchestrator: it owns
// every document's text, syntax tree, symbol table and derived diagnostics,
// and exposes the query surface an editor integration drives (diagnostics,
// semantic tokens, go-to-definition, completion). The package never talks
// JSON-RPC; it is consumed by a thin transport shell.
package thriftanalysis

import (
	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis/symbol"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftio"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
)

// Analyzer holds every document known to it. It is not safe for concurrent
// use: the host is expected to serialize calls the way an LSP server
// serializes client requests.
type Analyzer struct {
	reader thriftio.Reader

	documents map[string]string
	asts      map[string]*ast.DocumentNode
	tables    map[string]*symbol.Table
	errs      map[string][]diag.Error
	tokens    map[string][]uint32
}

// New creates an empty Analyzer. A nil reader falls back to reading
// directly from the native filesystem.
func New(reader thriftio.Reader) *Analyzer {
	if reader == nil {
		reader = thriftio.OS{}
	}
	return &Analyzer{
		reader:    reader,
		documents: make(map[string]string),
		asts:      make(map[string]*ast.DocumentNode),
		tables:    make(map[string]*symbol.Table),
		errs:      make(map[string][]diag.Error),
		tokens:    make(map[string][]uint32),
	}
}

// SyncDocument registers or replaces a document's text and re-analyzes it:
// parsing, include resolution, type checking, and semantic-token
// derivation. It is idempotent per path.
func (a *Analyzer) SyncDocument(path, content string) {
	a.clear(path)
	a.documents[path] = content
	a.parseDocument(path, make(map[string]bool), nil)
}

// RemoveDocument drops all cached state for path: text, AST, symbol table,
// errors, and semantic tokens.
func (a *Analyzer) RemoveDocument(path string) {
	a.clear(path)
}

func (a *Analyzer) clear(path string) {
	delete(a.documents, path)
	delete(a.asts, path)
	delete(a.tables, path)
	delete(a.errs, path)
	delete(a.tokens, path)
}

// Errors returns the latest diagnostics for every document the analyzer
// has parsed, directly or as a discovered dependency.
func (a *Analyzer) Errors() map[string][]diag.Error {
	result := make(map[string][]diag.Error, len(a.errs))
	for path, errs := range a.errs {
		result[path] = errs
	}
	return result
}

// SemanticTokens returns the LSP-encoded delta stream for path, or false
// if path is not known to the analyzer.
func (a *Analyzer) SemanticTokens(path string) ([]uint32, bool) {
	tokens, ok := a.tokens[path]
	return tokens, ok
}

// SemanticTokenTypes returns the fixed token-type legend.
func SemanticTokenTypes() []string {
	return []string{"type", "function"}
}

// SemanticTokenModifiers returns the fixed token-modifier legend, which is
// empty: this analyzer does not distinguish token modifiers.
func SemanticTokenModifiers() []string {
	return nil
}
