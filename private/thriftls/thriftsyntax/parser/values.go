package parser

import (
	"strings"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// parseConstValue parses any Thrift constant expression: a literal, an
// int or double constant, an identifier reference (to an enum value or
// another const), or a bracketed list/map. The resulting node keeps only
// the source range and a rendered textual form; the analyzer does not
// evaluate constants.
func (p *Parser) parseConstValue() *ast.ConstValueNode {
	start := p.peek().Range().Start
	next := p.peek()

	switch next.Kind {
	case token.KindIntConstant, token.KindDoubleConstant:
		p.eat()
		return &ast.ConstValueNode{Rng: next.Range(), Value: next.Text}
	case token.KindLiteral:
		p.eat()
		return &ast.ConstValueNode{Rng: next.Range(), Value: `"` + next.Text + `"`}
	case token.KindIdentifier:
		p.eat()
		return &ast.ConstValueNode{Rng: next.Range(), Value: next.Text}
	case token.KindLbrack:
		return p.parseConstList(start)
	case token.KindLbrace:
		return p.parseConstMap(start)
	default:
		p.addError("Expected a constant value, but got "+next.String(), next.Range())
		return nil
	}
}

func (p *Parser) parseConstList(start position.Position) *ast.ConstValueNode {
	p.eat() // '['
	var items []string
	for {
		if p.breakOnCloseOrEOF(token.KindRbrack) {
			break
		}
		value := p.parseConstValue()
		if value == nil {
			return nil
		}
		items = append(items, value.Value)
		p.optListSeparator()
	}
	return &ast.ConstValueNode{
		Rng:   position.Range{Start: start, End: p.prevRange().End},
		Value: "[" + strings.Join(items, ", ") + "]",
	}
}

func (p *Parser) parseConstMap(start position.Position) *ast.ConstValueNode {
	p.eat() // '{'
	var items []string
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		key := p.parseConstValue()
		if key == nil {
			return nil
		}
		if !p.expect(token.KindColon, "':'") {
			return nil
		}
		value := p.parseConstValue()
		if value == nil {
			return nil
		}
		items = append(items, key.Value+": "+value.Value)
		p.optListSeparator()
	}
	return &ast.ConstValueNode{
		Rng:   position.Range{Start: start, End: p.prevRange().End},
		Value: "{" + strings.Join(items, ", ") + "}",
	}
}
