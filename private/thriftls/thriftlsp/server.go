// Package thriftlsp implements the JSON-RPC front end for the Thrift
// analyzer: it translates LSP requests into analyzer operations and
// analyzer results into wire positions and diagnostics.
//
// The main entry point is Serve, which binds a server to a connection.
package thriftlsp

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// semanticTokensLegend mirrors thriftanalysis.SemanticTokenTypes/Modifiers;
// the protocol library's SemanticTokensOptions omits the legend field, so
// Initialize constructs it from a local shadow type.
type semanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type semanticTokensOptions struct {
	protocol.WorkDoneProgressOptions
	Legend semanticTokensLegend `json:"legend"`
	Full   bool                 `json:"full"`
}

// server is the protocol.Server implementation backing a single client
// connection. Every method not overridden here returns "not implemented"
// via the embedded noopServer.
type server struct {
	noopServer

	conn      jsonrpc2.Conn
	logger    *zap.Logger
	analyzer  *thriftanalysis.Analyzer
	sessionID uuid.UUID
}

// newServer constructs a server wired to analyzer, publishing diagnostics
// and replying to requests over conn. Each connection gets a random session
// id purely so its log lines can be told apart when several clients connect
// to the same process (e.g. multiple editor windows dialing the same pipe).
func newServer(conn jsonrpc2.Conn, logger *zap.Logger, analyzer *thriftanalysis.Analyzer) protocol.Server {
	return &server{conn: conn, logger: logger, analyzer: analyzer, sessionID: uuid.Must(uuid.NewV4())}
}

func (s *server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Sugar().Infof("session %s: initializing for %d workspace folder(s)", s.sessionID, len(params.WorkspaceFolders))
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"."},
			},
			DefinitionProvider: true,
			SemanticTokensProvider: &semanticTokensOptions{
				Legend: semanticTokensLegend{
					TokenTypes:     thriftanalysis.SemanticTokenTypes(),
					TokenModifiers: thriftanalysis.SemanticTokenModifiers(),
				},
				Full: true,
			},
		},
		ServerInfo: &protocol.ServerInfo{Name: "thriftls"},
	}, nil
}

func (s *server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *server) Exit(ctx context.Context) error {
	return s.conn.Close()
}

func (s *server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	path := uriToFilePath(params.TextDocument.URI)
	s.analyzer.SyncDocument(path, params.TextDocument.Text)
	return s.publishDiagnostics(ctx, path)
}

func (s *server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	path := uriToFilePath(params.TextDocument.URI)
	s.analyzer.SyncDocument(path, params.ContentChanges[0].Text)
	return s.publishDiagnostics(ctx, path)
}

func (s *server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	path := uriToFilePath(params.TextDocument.URI)
	s.analyzer.RemoveDocument(path)
	return s.conn.Notify(ctx, "textDocument/publishDiagnostics", &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

func (s *server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	path := uriToFilePath(params.TextDocument.URI)
	pos := positionFromProtocol(params.Position)

	loc, ok := s.analyzer.Definition(path, pos)
	if !ok {
		return nil, nil
	}
	return []protocol.Location{{
		URI:   filePathToURI(loc.Path),
		Range: rangeToProtocol(loc.Range),
	}}, nil
}

func (s *server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	path := uriToFilePath(params.TextDocument.URI)
	pos := positionFromProtocol(params.Position)

	names := s.analyzer.TypesForCompletion(path, pos)
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		items = append(items, protocol.CompletionItem{Label: name})
	}
	return &protocol.CompletionList{Items: items}, nil
}

func (s *server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	path := uriToFilePath(params.TextDocument.URI)
	data, ok := s.analyzer.SemanticTokens(path)
	if !ok {
		return &protocol.SemanticTokens{}, nil
	}
	return &protocol.SemanticTokens{Data: data}, nil
}

// positionFromProtocol converts zero-based UTF-16 wire coordinates to the
// analyzer's one-based internal Position. The analyzer operates over
// code-point columns; LSP clients that send astral characters before the
// cursor on the same line will see a column slightly off from the true
// code-point offset, a known simplification shared with the teacher's own
// position handling.
func positionFromProtocol(p protocol.Position) position.Position {
	return position.Position{Line: p.Line + 1, Column: p.Character + 1}
}

func positionToProtocol(p position.Position) protocol.Position {
	return protocol.Position{Line: p.Line - 1, Character: p.Column - 1}
}

func rangeToProtocol(r position.Range) protocol.Range {
	return protocol.Range{
		Start: positionToProtocol(r.Start),
		End:   positionToProtocol(r.End),
	}
}
