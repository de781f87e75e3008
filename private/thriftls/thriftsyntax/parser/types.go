package parser

import (
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// parseDefinitionType parses the type that follows 'typedef', which may
// itself reference a not-yet-declared identifier.
func (p *Parser) parseDefinitionType() ast.FieldTypeNode {
	return p.parseFieldType()
}

// parseFieldType parses any type usable as a field, const, or typedef
// type: a base type, a qualified identifier, or a container type.
func (p *Parser) parseFieldType() ast.FieldTypeNode {
	next := p.peek()
	switch next.Kind {
	case token.KindBaseType:
		p.eat()
		return &ast.BaseTypeNode{Rng: next.Range(), Name: next.Text}
	case token.KindIdentifier:
		p.eat()
		return &ast.IdentifierNode{Rng: next.Range(), Name: next.Text}
	case token.KindMap, token.KindSet, token.KindList:
		return p.parseContainerType()
	default:
		p.addError("Expected a type, but got "+next.String(), next.Range())
		return nil
	}
}

func (p *Parser) parseContainerType() ast.FieldTypeNode {
	switch p.peek().Kind {
	case token.KindMap:
		return p.parseMapType()
	case token.KindSet:
		return p.parseSetType()
	case token.KindList:
		return p.parseListType()
	default:
		next := p.peek()
		p.addError("Expected a container type, but got "+next.String(), next.Range())
		return nil
	}
}

// optParseCppType parses an optional `cpp_type "literal"` annotation used
// on map/set/list declarations.
func (p *Parser) optParseCppType() *ast.IdentifierNode {
	if p.peek().Kind != token.KindCppType {
		return nil
	}
	p.eat()
	tok := p.next()
	if tok.Kind != token.KindLiteral {
		p.addError("Expected literal, but got "+tok.String(), tok.Range())
		return nil
	}
	return &ast.IdentifierNode{Rng: tok.Range(), Name: tok.Text}
}

func (p *Parser) parseMapType() ast.FieldTypeNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindMap, "'map'") {
		return nil
	}
	cppType := p.optParseCppType()
	if !p.expect(token.KindLess, "'<'") {
		return nil
	}
	key := p.parseFieldType()
	if key == nil {
		return nil
	}
	if !p.expect(token.KindListSeparator, "','") {
		return nil
	}
	value := p.parseFieldType()
	if value == nil {
		return nil
	}
	if !p.expect(token.KindGreater, "'>'") {
		return nil
	}
	return &ast.MapTypeNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		CppType: cppType,
		Key:     key,
		Value:   value,
	}
}

func (p *Parser) parseSetType() ast.FieldTypeNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindSet, "'set'") {
		return nil
	}
	cppType := p.optParseCppType()
	if !p.expect(token.KindLess, "'<'") {
		return nil
	}
	elem := p.parseFieldType()
	if elem == nil {
		return nil
	}
	if !p.expect(token.KindGreater, "'>'") {
		return nil
	}
	return &ast.SetTypeNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		CppType: cppType,
		Elem:    elem,
	}
}

func (p *Parser) parseListType() ast.FieldTypeNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindList, "'list'") {
		return nil
	}
	cppType := p.optParseCppType()
	if !p.expect(token.KindLess, "'<'") {
		return nil
	}
	elem := p.parseFieldType()
	if elem == nil {
		return nil
	}
	if !p.expect(token.KindGreater, "'>'") {
		return nil
	}
	return &ast.ListTypeNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		CppType: cppType,
		Elem:    elem,
	}
}
