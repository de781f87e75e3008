package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

func TestPositionCompare(t *testing.T) {
	t.Parallel()

	a := position.Position{Line: 1, Column: 5}
	b := position.Position{Line: 1, Column: 10}
	c := position.Position{Line: 2, Column: 1}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, b.Compare(c))

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.LessEqual(a))
	assert.True(t, a.LessEqual(b))
	assert.False(t, b.LessEqual(a))
}

func TestPositionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3:7", position.Position{Line: 3, Column: 7}.String())
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := position.Range{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 1, Column: 10},
	}

	assert.True(t, r.Contains(position.Position{Line: 1, Column: 1}))
	assert.True(t, r.Contains(position.Position{Line: 1, Column: 10}))
	assert.True(t, r.Contains(position.Position{Line: 1, Column: 5}))
	assert.False(t, r.Contains(position.Position{Line: 1, Column: 11}))
	assert.False(t, r.Contains(position.Position{Line: 0, Column: 1}))
}

func TestRangeContainsRange(t *testing.T) {
	t.Parallel()

	outer := position.Range{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 5, Column: 1},
	}
	inner := position.Range{
		Start: position.Position{Line: 2, Column: 1},
		End:   position.Position{Line: 3, Column: 1},
	}
	overlapping := position.Range{
		Start: position.Position{Line: 4, Column: 1},
		End:   position.Position{Line: 6, Column: 1},
	}

	assert.True(t, outer.ContainsRange(inner))
	assert.False(t, outer.ContainsRange(overlapping))
	assert.False(t, inner.ContainsRange(outer))
}

func TestRangeJoin(t *testing.T) {
	t.Parallel()

	a := position.Range{
		Start: position.Position{Line: 1, Column: 5},
		End:   position.Position{Line: 1, Column: 10},
	}
	b := position.Range{
		Start: position.Position{Line: 2, Column: 1},
		End:   position.Position{Line: 2, Column: 3},
	}

	joined := a.Join(b)
	assert.Equal(t, a.Start, joined.Start)
	assert.Equal(t, b.End, joined.End)

	// Joining is symmetric regardless of argument order.
	assert.Equal(t, joined, b.Join(a))
}

func TestRangeString(t *testing.T) {
	t.Parallel()

	sameLine := position.Range{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 1, Column: 5},
	}
	assert.Equal(t, "1:1-5", sameLine.String())

	multiLine := position.Range{
		Start: position.Position{Line: 1, Column: 1},
		End:   position.Position{Line: 2, Column: 5},
	}
	assert.Equal(t, "1:1-2:5", multiLine.String())
}
