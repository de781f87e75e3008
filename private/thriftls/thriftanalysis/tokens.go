package thriftanalysis

import (
	"sort"
	"unicode/utf16"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
)

const (
	tokenTypeType     = uint32(0)
	tokenTypeFunction = uint32(1)
)

type tokenEntry struct {
	identifier *ast.IdentifierNode
	typeIndex  uint32
}

// computeSemanticTokens derives the LSP semantic-tokens delta stream for a
// parsed document: every identifier used as a type (recursing through
// map/set/list element types, service extends targets, const and typedef
// types) tagged "type", and every service function name tagged "function".
func computeSemanticTokens(document *ast.DocumentNode) []uint32 {
	var entries []tokenEntry

	collectType := func(t ast.FieldTypeNode) {
		var walk func(ast.FieldTypeNode)
		walk = func(t ast.FieldTypeNode) {
			switch n := t.(type) {
			case *ast.IdentifierNode:
				entries = append(entries, tokenEntry{identifier: n, typeIndex: tokenTypeType})
			case *ast.MapTypeNode:
				walk(n.Key)
				walk(n.Value)
			case *ast.SetTypeNode:
				walk(n.Elem)
			case *ast.ListTypeNode:
				walk(n.Elem)
			}
		}
		if t != nil {
			walk(t)
		}
	}

	for _, definition := range document.Definitions {
		switch def := definition.(type) {
		case *ast.ConstNode:
			collectType(def.Type)
		case *ast.TypedefNode:
			collectType(def.Type)
		case *ast.StructNode:
			for _, field := range def.Fields {
				collectType(field.Type)
			}
		case *ast.UnionNode:
			for _, field := range def.Fields {
				collectType(field.Type)
			}
		case *ast.ExceptionNode:
			for _, field := range def.Fields {
				collectType(field.Type)
			}
		case *ast.ServiceNode:
			if def.Extends != nil {
				entries = append(entries, tokenEntry{identifier: def.Extends, typeIndex: tokenTypeType})
			}
			for _, fn := range def.Functions {
				entries = append(entries, tokenEntry{identifier: fn.Identifier, typeIndex: tokenTypeFunction})
				if ft, ok := fn.FunctionType.(ast.FieldTypeNode); ok {
					collectType(ft)
				}
				for _, field := range fn.Fields {
					collectType(field.Type)
				}
				for _, field := range fn.Throws {
					collectType(field.Type)
				}
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].identifier.Range().Start.Less(entries[j].identifier.Range().Start)
	})

	return encodeTokens(entries)
}

func encodeTokens(entries []tokenEntry) []uint32 {
	result := make([]uint32, 0, len(entries)*5)
	var prevLine, prevCol uint32
	first := true

	for _, e := range entries {
		start := e.identifier.Range().Start
		line0 := start.Line - 1
		col0 := start.Column - 1

		var deltaLine, deltaStart uint32
		if first {
			deltaLine, deltaStart = line0, col0
		} else if line0 > prevLine {
			deltaLine = line0 - prevLine
			deltaStart = col0
		} else {
			deltaStart = col0 - prevCol
		}

		length := uint32(len(utf16.Encode([]rune(e.identifier.Name))))
		result = append(result, deltaLine, deltaStart, length, e.typeIndex, 0)

		prevLine, prevCol = line0, col0
		first = false
	}
	return result
}
