package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis/symbol"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/parser"
)

func mustParse(t *testing.T, src string) *ast.DocumentNode {
	t.Helper()
	doc, errs := parser.Parse([]rune(src))
	require.Empty(t, errs)
	return doc
}

func TestNewFromDocumentExcludesConst(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `const i32 MaxSize = 100
struct Foo {}`)
	table := symbol.NewFromDocument("foo.thrift", doc)

	_, hasConst := table.Types["MaxSize"]
	assert.False(t, hasConst, "const definitions must not appear in the type table")

	_, hasStruct := table.Types["Foo"]
	assert.True(t, hasStruct)
}

func TestNewFromDocumentDuplicateDefinition(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `struct Foo {}
struct Foo {}`)
	table := symbol.NewFromDocument("foo.thrift", doc)

	require.Len(t, table.Errors(), 1)
	assert.Contains(t, table.Errors()[0].Message, "Duplicate definition")
	// The first occurrence wins; its fields are still well-formed.
	_, ok := table.Types["Foo"]
	assert.True(t, ok)
}

func TestCheckDocumentTypesUndefinedType(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `struct Foo {
  1: Bar b
}`)
	table := symbol.NewFromDocument("foo.thrift", doc)
	table.CheckDocumentTypes(doc)

	require.Len(t, table.Errors(), 1)
	assert.Contains(t, table.Errors()[0].Message, "Undefined type: Bar")
}

func TestCheckDocumentTypesResolvesLocalAndNested(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `struct Bar {}
struct Foo {
  1: Bar b
  2: list<Bar> bars
  3: map<string, Bar> byName
}`)
	table := symbol.NewFromDocument("foo.thrift", doc)
	table.CheckDocumentTypes(doc)

	assert.Empty(t, table.Errors())
}

func TestCheckDocumentTypesAcrossIncludeDependency(t *testing.T) {
	t.Parallel()

	sharedDoc := mustParse(t, `struct Thing {}`)
	sharedTable := symbol.NewFromDocument("shared.thrift", sharedDoc)

	mainDoc := mustParse(t, `include "shared.thrift"
struct Foo {
  1: shared.Thing t
}`)
	mainTable := symbol.NewFromDocument("main.thrift", mainDoc)

	var includeHeader ast.HeaderNode
	for _, h := range mainDoc.Headers {
		if inc, ok := h.(*ast.IncludeNode); ok {
			includeHeader = inc
			_ = inc
		}
	}
	require.NotNil(t, includeHeader)
	mainTable.AddDependency("shared", "shared.thrift", includeHeader, sharedTable)

	mainTable.CheckDocumentTypes(mainDoc)
	assert.Empty(t, mainTable.Errors())
}

func TestCheckDocumentTypesUnresolvedNamespace(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `struct Foo {
  1: shared.Thing t
}`)
	table := symbol.NewFromDocument("main.thrift", doc)
	table.CheckDocumentTypes(doc)

	require.Len(t, table.Errors(), 1)
	assert.Contains(t, table.Errors()[0].Message, "Undefined type")
}

func TestFindDefinitionOfIdentifierType(t *testing.T) {
	t.Parallel()

	sharedDoc := mustParse(t, `struct Thing {}`)
	sharedTable := symbol.NewFromDocument("shared.thrift", sharedDoc)

	mainDoc := mustParse(t, `include "shared.thrift"
struct Foo {
  1: shared.Thing t
}`)
	mainTable := symbol.NewFromDocument("main.thrift", mainDoc)
	var includeHeader ast.HeaderNode
	for _, h := range mainDoc.Headers {
		if inc, ok := h.(*ast.IncludeNode); ok {
			includeHeader = inc
		}
	}
	mainTable.AddDependency("shared", "shared.thrift", includeHeader, sharedTable)

	fooStruct := mainDoc.Definitions[0].(*ast.StructNode)
	qualified := fooStruct.Fields[0].Type.(*ast.IdentifierNode)

	path, def, ok := mainTable.FindDefinitionOfIdentifierType("main.thrift", qualified)
	require.True(t, ok)
	assert.Equal(t, "shared.thrift", path)
	assert.Equal(t, "Thing", def.Name())

	unqualified := &ast.IdentifierNode{Name: "Foo"}
	path, def, ok = mainTable.FindDefinitionOfIdentifierType("main.thrift", unqualified)
	require.True(t, ok)
	assert.Equal(t, "main.thrift", path)
	assert.Equal(t, "Foo", def.Name())

	missingNamespace := &ast.IdentifierNode{Name: "other.Thing"}
	_, _, ok = mainTable.FindDefinitionOfIdentifierType("main.thrift", missingNamespace)
	assert.False(t, ok)
}

func TestCheckFunctionTypeAcceptsVoid(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `service Greeter {
  void ping()
}`)
	table := symbol.NewFromDocument("foo.thrift", doc)
	table.CheckDocumentTypes(doc)
	assert.Empty(t, table.Errors())
}
