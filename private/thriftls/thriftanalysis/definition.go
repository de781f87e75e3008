package thriftanalysis

import (
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// Location names a range within a specific document; it is the result of a
// successful go-to-definition query.
type Location struct {
	Path  string
	Range position.Range
}

// Definition resolves go-to-definition at pos within path: it finds the
// innermost identifier containing pos, and if that identifier is
// namespace-qualified and pos falls within the prefix, returns the
// matching include header's range in the current file; otherwise it
// resolves the (possibly qualified) identifier against the symbol table.
func (a *Analyzer) Definition(path string, pos position.Position) (Location, bool) {
	doc, ok := a.asts[path]
	if !ok {
		return Location{}, false
	}
	identifier := findInnermostIdentifier(doc, pos)
	if identifier == nil {
		return Location{}, false
	}

	table, ok := a.tables[path]
	if !ok {
		return Location{}, false
	}

	if identifier.PositionInNamespace(pos) {
		prefix, _, _ := identifier.SplitByFirstDot()
		header, ok := table.IncludeNodes[prefix.Name]
		if !ok {
			return Location{}, false
		}
		return Location{Path: path, Range: header.Range()}, true
	}

	owningPath, def, ok := table.FindDefinitionOfIdentifierType(path, identifier)
	if !ok {
		return Location{}, false
	}
	return Location{Path: owningPath, Range: def.Identifier().Range()}, true
}

// findInnermostIdentifier walks node's subtree depth-first looking for the
// deepest IdentifierNode whose range contains pos.
func findInnermostIdentifier(node ast.Node, pos position.Position) *ast.IdentifierNode {
	if node == nil || !node.Range().Contains(pos) {
		return nil
	}

	for _, child := range node.Children() {
		if found := findInnermostIdentifier(child, pos); found != nil {
			return found
		}
	}

	if identifier, ok := node.(*ast.IdentifierNode); ok {
		return identifier
	}
	return nil
}
