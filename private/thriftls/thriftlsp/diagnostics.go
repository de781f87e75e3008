package thriftlsp

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
)

const diagnosticSource = "thriftls"

// publishDiagnostics sends the current error set for path to the client.
// An empty slice (not nil) clears previously reported diagnostics.
func (s *server) publishDiagnostics(ctx context.Context, path string) error {
	errs := s.analyzer.Errors()[path]
	diagnostics := make([]protocol.Diagnostic, len(errs))
	for i, e := range errs {
		diagnostics[i] = errorToDiagnostic(e)
	}
	return s.conn.Notify(ctx, "textDocument/publishDiagnostics", &protocol.PublishDiagnosticsParams{
		URI:         filePathToURI(path),
		Diagnostics: diagnostics,
	})
}

func errorToDiagnostic(e diag.Error) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range:    rangeToProtocol(e.Range),
		Severity: protocol.DiagnosticSeverityError,
		Source:   diagnosticSource,
		Message:  e.Message,
	}
}
