// Package symbol builds and queries the per-document symbol table: the set
// of top-level definitions a file declares, the table's links to the
// symbol tables of its direct includes, and the type-checking walk that
// validates every field/type reference against that combined view.
package symbol

import (
	"fmt"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
)

// Table is a single document's symbol table. It is built once per parse and
// replaced wholesale on re-sync; once constructed it is treated as
// immutable and may be shared (by pointer) across every file that includes
// it.
type Table struct {
	Path            string
	Types           map[string]ast.DefinitionNode
	IncludeNodes    map[string]ast.HeaderNode
	Includes        map[string]*Table
	NamespaceToPath map[string]string
	errors          []diag.Error
}

// New creates an empty table rooted at path.
func New(path string) *Table {
	return &Table{
		Path:            path,
		Types:           make(map[string]ast.DefinitionNode),
		IncludeNodes:    make(map[string]ast.HeaderNode),
		Includes:        make(map[string]*Table),
		NamespaceToPath: make(map[string]string),
	}
}

// NewFromDocument builds a table from a parsed document's top-level
// definitions. Const definitions are intentionally excluded from the type
// table: a const's name is a value, not a type.
func NewFromDocument(path string, document *ast.DocumentNode) *Table {
	table := New(path)
	for _, definition := range document.Definitions {
		table.processDefinition(definition)
	}
	return table
}

func (t *Table) processDefinition(definition ast.DefinitionNode) {
	if _, ok := definition.(*ast.ConstNode); ok {
		return
	}

	name := definition.Name()
	if _, exists := t.Types[name]; exists {
		t.errors = append(t.errors, diag.Error{
			Range:   definition.Range(),
			Message: "Duplicate definition: " + name,
		})
		return
	}
	t.Types[name] = definition
}

// AddDependency records a resolved include: namespace is the file stem of
// dependency's path. header is the Include/CppInclude/Namespace node in
// this document that introduced the dependency, if any.
func (t *Table) AddDependency(namespace string, path string, header ast.HeaderNode, dependency *Table) {
	t.Includes[namespace] = dependency
	t.NamespaceToPath[namespace] = path
	if _, ok := header.(*ast.IncludeNode); ok {
		t.IncludeNodes[namespace] = header
	}
}

// Errors returns the errors accumulated while building this table (so far,
// only duplicate-definition errors; type-check errors are appended
// separately by CheckDocumentTypes).
func (t *Table) Errors() []diag.Error {
	return t.errors
}

// FindDefinitionOfIdentifierType resolves identifier against this table,
// descending into an included table when identifier is namespace-qualified.
// It returns the path owning the definition, the definition itself, and
// whether resolution succeeded.
func (t *Table) FindDefinitionOfIdentifierType(path string, identifier *ast.IdentifierNode) (string, ast.DefinitionNode, bool) {
	if prefix, rest, ok := identifier.SplitByFirstDot(); ok {
		included, ok := t.Includes[prefix.Name]
		if !ok {
			return "", nil, false
		}
		depPath, ok := t.NamespaceToPath[prefix.Name]
		if !ok {
			return "", nil, false
		}
		return included.FindDefinitionOfIdentifierType(depPath, rest)
	}

	def, ok := t.Types[identifier.Name]
	if !ok {
		return "", nil, false
	}
	return path, def, true
}

// CheckDocumentTypes walks every field/return/throws/extends type in
// document and records an error for each reference that does not resolve
// or is not a valid type shape. It appends to the table's error list.
func (t *Table) CheckDocumentTypes(document *ast.DocumentNode) {
	for _, definition := range document.Definitions {
		switch def := definition.(type) {
		case *ast.ConstNode:
			t.checkFieldType(def.Type)
		case *ast.StructNode:
			t.checkFields(def.Fields)
		case *ast.UnionNode:
			t.checkFields(def.Fields)
		case *ast.ExceptionNode:
			t.checkFields(def.Fields)
		case *ast.ServiceNode:
			if def.Extends != nil {
				t.checkFieldType(def.Extends)
			}
			for _, fn := range def.Functions {
				t.checkFunctionType(fn.FunctionType)
				t.checkFields(fn.Fields)
				t.checkFields(fn.Throws)
			}
		}
	}
}

func (t *Table) checkFields(fields []*ast.FieldNode) {
	for _, field := range fields {
		t.checkFieldType(field.Type)
	}
}

func (t *Table) checkFunctionType(n ast.Node) {
	if _, ok := n.(*ast.VoidTypeNode); ok {
		return
	}
	typ, ok := n.(ast.FieldTypeNode)
	if !ok {
		t.errors = append(t.errors, diag.Error{Range: n.Range(), Message: "Invalid field type"})
		return
	}
	t.checkFieldType(typ)
}

func (t *Table) checkFieldType(typ ast.FieldTypeNode) {
	switch n := typ.(type) {
	case *ast.BaseTypeNode:
		// always valid
	case *ast.IdentifierNode:
		if _, _, ok := t.FindDefinitionOfIdentifierType(t.Path, n); !ok {
			t.errors = append(t.errors, diag.Error{
				Range:   n.Range(),
				Message: fmt.Sprintf("Undefined type: %s", n.Name),
			})
		}
	case *ast.ListTypeNode:
		t.checkFieldType(n.Elem)
	case *ast.SetTypeNode:
		t.checkFieldType(n.Elem)
	case *ast.MapTypeNode:
		t.checkFieldType(n.Key)
		t.checkFieldType(n.Value)
	default:
		t.errors = append(t.errors, diag.Error{Range: typ.Range(), Message: "Invalid field type"})
	}
}
