// Package diag defines the uniform error shape produced by every analysis
// phase: scanning, parsing, include resolution, and symbol checking.
package diag

import (
	"fmt"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// Error is a single diagnostic. Severity is uniform here; the LSP shell
// assigns presentation severity when translating to the wire protocol.
type Error struct {
	Range   position.Range
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Message)
}
