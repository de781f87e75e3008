package thriftlsp

import (
	"context"
	"io"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis"
)

// Serve starts an LSP server over rwc (a pipe, socket, or stdio) and returns
// once the connection is established. Callers should wait on the returned
// Conn's Done channel and inspect Err() to detect connection close.
func Serve(ctx context.Context, rwc io.ReadWriteCloser, logger *zap.Logger, analyzer *thriftanalysis.Analyzer) jsonrpc2.Conn {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)
	server := newServer(conn, logger, analyzer)
	conn.Go(ctx, protocol.Handlers(
		protocol.ServerHandler(server, jsonrpc2.MethodNotFoundHandler),
	))
	return conn
}
