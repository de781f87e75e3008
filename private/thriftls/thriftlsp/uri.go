package thriftlsp

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// filePathToURI converts a native file path to a file:// document URI.
func filePathToURI(path string) protocol.DocumentURI {
	return protocol.DocumentURI(uri.File(path))
}

// uriToFilePath converts a file:// document URI back to a native path, the
// form the analyzer indexes documents by.
func uriToFilePath(u protocol.DocumentURI) string {
	return uri.URI(u).Filename()
}
