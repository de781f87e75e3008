package parser

import (
	"strconv"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// parseField parses `FieldID? FieldReq? FieldType Identifier ('=' ConstValue)? Ext?`,
// used inside struct/union/exception bodies and function parameter/throws lists.
func (p *Parser) parseField() *ast.FieldNode {
	start := p.peek().Range().Start

	fieldID := p.parseOptFieldID()

	fieldReq := ast.FieldReqNone
	switch p.peek().Kind {
	case token.KindRequired:
		p.eat()
		fieldReq = ast.FieldReqRequired
	case token.KindOptional:
		p.eat()
		fieldReq = ast.FieldReqOptional
	}

	typ := p.parseFieldType()
	if typ == nil {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}

	var def *ast.ConstValueNode
	if p.peek().Kind == token.KindAssign {
		p.eat()
		def = p.parseConstValue()
		if def == nil {
			return nil
		}
	}

	ext := p.optParseExt()
	p.optListSeparator()

	return &ast.FieldNode{
		Rng:        position.Range{Start: start, End: p.prevRange().End},
		FieldID:    fieldID,
		FieldReq:   fieldReq,
		Type:       typ,
		Identifier: identifier,
		Default:    def,
		Ext:        ext,
	}
}

// parseOptFieldID parses the `<int> ':'` prefix of a field, if present. It
// requires two-token lookahead: an int constant alone does not commit to a
// FieldID unless it is immediately followed by ':'.
func (p *Parser) parseOptFieldID() *ast.FieldIDNode {
	if p.peek().Kind != token.KindIntConstant {
		return nil
	}

	state := p.scanner.SaveState()
	idTok := p.next()

	if p.peek().Kind != token.KindColon {
		p.scanner.RestoreState(state)
		return nil
	}
	p.eat() // ':'

	id, err := strconv.ParseInt(idTok.Text, 10, 32)
	if err != nil {
		id = 0
	}
	return &ast.FieldIDNode{
		Rng: position.Range{Start: idTok.Range().Start, End: p.prevRange().End},
		ID:  int32(id),
	}
}

// optParseExt parses an optional trailing `(key = "literal", ...)`
// annotation block.
func (p *Parser) optParseExt() *ast.ExtNode {
	if p.peek().Kind != token.KindLparen {
		return nil
	}
	start := p.peek().Range().Start
	p.eat() // '('

	var pairs []ast.ExtKV
	for {
		if p.breakOnCloseOrEOF(token.KindRparen) {
			break
		}
		pair, ok := p.parseExtKV()
		if !ok {
			return nil
		}
		pairs = append(pairs, pair)
		p.optListSeparator()
	}

	return &ast.ExtNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		KVPairs: pairs,
	}
}

func (p *Parser) parseExtKV() (ast.ExtKV, bool) {
	keyTok := p.next()
	if keyTok.Kind != token.KindIdentifier {
		p.addError("Expected identifier, but got "+keyTok.String(), keyTok.Range())
		return ast.ExtKV{}, false
	}
	if !p.expect(token.KindAssign, "'='") {
		return ast.ExtKV{}, false
	}
	litTok := p.next()
	if litTok.Kind != token.KindLiteral {
		p.addError("Expected literal, but got "+litTok.String(), litTok.Range())
		return ast.ExtKV{}, false
	}
	return ast.ExtKV{Key: keyTok.Text, Literal: litTok.Text}, true
}
