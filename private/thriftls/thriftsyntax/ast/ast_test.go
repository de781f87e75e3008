package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

func identifierAt(line, startCol, endCol uint32, name string) *ast.IdentifierNode {
	return &ast.IdentifierNode{
		Rng: position.Range{
			Start: position.Position{Line: line, Column: startCol},
			End:   position.Position{Line: line, Column: endCol},
		},
		Name: name,
	}
}

func TestSplitByFirstDot(t *testing.T) {
	t.Parallel()

	id := identifierAt(1, 1, 14, "shared.Thing")
	prefix, rest, ok := id.SplitByFirstDot()
	require.True(t, ok)
	assert.Equal(t, "shared", prefix.Name)
	assert.Equal(t, "Thing", rest.Name)

	// Sub-ranges tile the original range exactly: prefix ends where the dot
	// is, rest starts just past it, and together they span the original.
	assert.Equal(t, id.Rng.Start, prefix.Rng.Start)
	assert.Equal(t, rest.Rng.End, id.Rng.End)
	assert.Equal(t, prefix.Rng.End.Column+1, rest.Rng.Start.Column)
}

func TestSplitByFirstDotUnqualified(t *testing.T) {
	t.Parallel()

	id := identifierAt(1, 1, 5, "Thing")
	_, _, ok := id.SplitByFirstDot()
	assert.False(t, ok)
}

func TestPositionInNamespace(t *testing.T) {
	t.Parallel()

	id := identifierAt(1, 1, 14, "shared.Thing")

	assert.True(t, id.PositionInNamespace(position.Position{Line: 1, Column: 3}))
	assert.False(t, id.PositionInNamespace(position.Position{Line: 1, Column: 10}))

	unqualified := identifierAt(1, 1, 5, "Thing")
	assert.False(t, unqualified.PositionInNamespace(position.Position{Line: 1, Column: 2}))
}

// Every node's Children() are contained within its own range: this holds
// for every concrete node type that carries children, checked here on a
// representative struct with a single field.
func TestChildrenContainedInParentRange(t *testing.T) {
	t.Parallel()

	docStart := position.Position{Line: 1, Column: 1}
	docEnd := position.Position{Line: 5, Column: 1}

	field := &ast.FieldNode{
		Rng:        position.Range{Start: position.Position{Line: 2, Column: 3}, End: position.Position{Line: 2, Column: 20}},
		FieldID:    &ast.FieldIDNode{Rng: position.Range{Start: position.Position{Line: 2, Column: 3}, End: position.Position{Line: 2, Column: 5}}, ID: 1},
		Type:       &ast.BaseTypeNode{Rng: position.Range{Start: position.Position{Line: 2, Column: 6}, End: position.Position{Line: 2, Column: 9}}, Name: "i32"},
		Identifier: identifierAt(2, 10, 11, "x"),
	}
	strct := &ast.StructNode{
		Rng:    position.Range{Start: docStart, End: docEnd},
		Fields: []*ast.FieldNode{field},
	}
	strct.Ident = identifierAt(1, 8, 11, "Foo")

	for _, child := range strct.Children() {
		require.NotNil(t, child)
		assert.True(t, strct.Range().ContainsRange(child.Range()), "child %#v not contained in parent", child)
	}
	for _, child := range field.Children() {
		require.NotNil(t, child)
		assert.True(t, field.Range().ContainsRange(child.Range()))
	}
}

func TestDefinitionBaseNameAndIdentifier(t *testing.T) {
	t.Parallel()

	ident := identifierAt(1, 8, 11, "Foo")
	strct := &ast.StructNode{Rng: position.Range{Start: ident.Rng.Start, End: ident.Rng.End}}
	strct.Ident = ident

	assert.Equal(t, "Foo", strct.Name())
	assert.Same(t, ident, strct.Identifier())

	var def ast.DefinitionNode = strct
	assert.Equal(t, "Foo", def.Name())
}
