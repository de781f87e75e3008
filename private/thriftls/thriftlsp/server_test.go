package thriftlsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lsp.dev/protocol"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

func TestPositionFromProtocolConvertsZeroBasedToOneBased(t *testing.T) {
	t.Parallel()

	got := positionFromProtocol(protocol.Position{Line: 0, Character: 0})
	assert.Equal(t, position.Position{Line: 1, Column: 1}, got)

	got = positionFromProtocol(protocol.Position{Line: 4, Character: 9})
	assert.Equal(t, position.Position{Line: 5, Column: 10}, got)
}

func TestPositionToProtocolConvertsOneBasedToZeroBased(t *testing.T) {
	t.Parallel()

	got := positionToProtocol(position.Position{Line: 1, Column: 1})
	assert.Equal(t, protocol.Position{Line: 0, Character: 0}, got)

	got = positionToProtocol(position.Position{Line: 5, Column: 10})
	assert.Equal(t, protocol.Position{Line: 4, Character: 9}, got)
}

func TestPositionConversionRoundTrips(t *testing.T) {
	t.Parallel()

	original := position.Position{Line: 3, Column: 7}
	assert.Equal(t, original, positionFromProtocol(positionToProtocol(original)))
}

func TestRangeToProtocol(t *testing.T) {
	t.Parallel()

	r := position.Range{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 1, Column: 5},
	}
	got := rangeToProtocol(r)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 4},
	}, got)
}

func TestErrorToDiagnosticShape(t *testing.T) {
	t.Parallel()

	e := diag.Error{
		Range: position.Range{
			Start: position.Position{Line: 2, Column: 3},
			End:   position.Position{Line: 2, Column: 8},
		},
		Message: "Undefined type: Bar",
	}
	got := errorToDiagnostic(e)

	assert.Equal(t, protocol.DiagnosticSeverityError, got.Severity)
	assert.Equal(t, "thriftls", got.Source)
	assert.Equal(t, "Undefined type: Bar", got.Message)
	assert.Equal(t, protocol.Position{Line: 1, Character: 2}, got.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 7}, got.Range.End)
}
