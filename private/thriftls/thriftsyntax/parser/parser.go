// Package parser implements a recoverable recursive-descent parser for
// Thrift IDL files. It never aborts on malformed input: syntax errors are
// recorded and parsing resumes at a well-known boundary, so that every
// call to Parse produces a maximal syntax tree alongside whatever errors
// were found.
package parser

import (
	"strconv"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/scanner"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// Parser parses a single document. It holds no state beyond the current
// scanner cursor, the errors collected so far, and the previously returned
// token (used to compute a node's end position).
type Parser struct {
	scanner *scanner.Scanner
	errors  []diag.Error
	prev    token.Token
	hasPrev bool
}

// New creates a Parser over the given code points.
func New(input []rune) *Parser {
	return &Parser{scanner: scanner.New(input)}
}

// Parse consumes the entire input and returns the resulting document along
// with every diagnostic collected along the way. Parse never panics on
// malformed input.
func Parse(input []rune) (*ast.DocumentNode, []diag.Error) {
	p := New(input)
	return p.parse()
}

func (p *Parser) parse() (*ast.DocumentNode, []diag.Error) {
	start := p.peek().Range().Start
	headers := p.parseHeaders()
	definitions := p.parseDefinitions()
	end := p.prevRange().End

	doc := &ast.DocumentNode{
		Rng:         position.Range{Start: start, End: end},
		Headers:     headers,
		Definitions: definitions,
	}
	return doc, p.errors
}

// --- token plumbing ------------------------------------------------------

func (p *Parser) next() token.Token {
	p.skipComments()
	tok, err := p.scanner.Scan()
	if err != nil {
		p.errors = append(p.errors, diag.Error{Range: err.Range, Message: err.Message})
	}
	p.prev = tok
	p.hasPrev = true
	return tok
}

func (p *Parser) peek() token.Token {
	p.skipComments()
	state := p.scanner.SaveState()
	tok, _ := p.scanner.Scan()
	p.scanner.RestoreState(state)
	return tok
}

func (p *Parser) eat() {
	p.next()
}

func (p *Parser) skipComments() {
	for {
		state := p.scanner.SaveState()
		tok, _ := p.scanner.Scan()
		if !tok.IsComment() {
			p.scanner.RestoreState(state)
			return
		}
	}
}

func (p *Parser) prevRange() position.Range {
	if !p.hasPrev {
		return position.Range{Start: position.Default, End: position.Default}
	}
	return p.prev.Range()
}

func (p *Parser) addError(message string, rng position.Range) {
	p.errors = append(p.errors, diag.Error{Range: rng, Message: message})
}

// expect consumes the next token and records an error if it is not of the
// given kind. It reports whether the token matched.
func (p *Parser) expect(kind token.Kind, description string) bool {
	tok := p.next()
	if tok.Kind != kind {
		p.addError("Expected "+description+", but got "+tok.String(), tok.Range())
		return false
	}
	return true
}

// optListSeparator consumes a trailing ',' or ';' if present.
func (p *Parser) optListSeparator() {
	if p.peek().IsListSeparator() {
		p.eat()
	}
}

// breakOnCloseOrEOF consumes a matching closing token if present and
// reports that the caller's loop should stop; it also stops (with an
// error) on EOF, which can never be consumed by a bracketed body.
func (p *Parser) breakOnCloseOrEOF(kind token.Kind) bool {
	next := p.peek()
	if next.Kind == kind {
		p.eat()
		return true
	}
	if next.IsEOF() {
		p.addError("Unexpected end of file", next.Range())
		return true
	}
	return false
}

// --- recovery --------------------------------------------------------

// recoverToNextDefinition discards tokens until one that can start a new
// top-level definition, or EOF.
func (p *Parser) recoverToNextDefinition() {
	for {
		next := p.peek()
		if next.IsEOF() {
			return
		}
		switch next.Kind {
		case token.KindConst, token.KindTypedef, token.KindEnum, token.KindStruct,
			token.KindUnion, token.KindException, token.KindService:
			return
		default:
			p.eat()
		}
	}
}

// recoverToNextLine discards the remainder of the current line, without
// regard to token boundaries.
func (p *Parser) recoverToNextLine() {
	p.scanner.SkipToNextLine()
}

// --- headers -----------------------------------------------------------

func (p *Parser) parseHeaders() []ast.HeaderNode {
	var headers []ast.HeaderNode

	for {
		switch p.peek().Kind {
		case token.KindInclude:
			if node := p.parseInclude(); node != nil {
				headers = append(headers, node)
			} else {
				p.recoverToNextLine()
			}
		case token.KindCppInclude:
			if node := p.parseCppInclude(); node != nil {
				headers = append(headers, node)
			} else {
				p.recoverToNextLine()
			}
		case token.KindNamespace:
			if node := p.parseNamespace(); node != nil {
				headers = append(headers, node)
			} else {
				p.recoverToNextLine()
			}
		default:
			return headers
		}
	}
}

func (p *Parser) parseInclude() *ast.IncludeNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindInclude, "'include'") {
		return nil
	}
	tok := p.next()
	if tok.Kind != token.KindLiteral {
		p.addError("Expected literal, but got "+tok.String(), tok.Range())
		return nil
	}
	return &ast.IncludeNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		Literal: tok.Text,
	}
}

func (p *Parser) parseCppInclude() *ast.CppIncludeNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindCppInclude, "'cpp_include'") {
		return nil
	}
	tok := p.next()
	if tok.Kind != token.KindLiteral {
		p.addError("Expected literal, but got "+tok.String(), tok.Range())
		return nil
	}
	return &ast.CppIncludeNode{
		Rng:     position.Range{Start: start, End: p.prevRange().End},
		Literal: tok.Text,
	}
}

func (p *Parser) parseNamespace() *ast.NamespaceNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindNamespace, "'namespace'") {
		return nil
	}
	scopeTok := p.next()
	if scopeTok.Kind != token.KindNamespaceScope {
		p.addError("Expected namespace scope, but got "+scopeTok.String(), scopeTok.Range())
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	ext := p.optParseExt()
	return &ast.NamespaceNode{
		Rng:        position.Range{Start: start, End: p.prevRange().End},
		Scope:      scopeTok.Text,
		Identifier: identifier,
		Ext:        ext,
	}
}

// parseIdentifier consumes an Identifier token. Thrift keywords may also
// appear where an identifier is expected (e.g. as a field name); those are
// accepted using their literal spelling.
func (p *Parser) parseIdentifier() *ast.IdentifierNode {
	tok := p.next()
	if tok.Kind == token.KindIdentifier {
		return &ast.IdentifierNode{Rng: tok.Range(), Name: tok.Text}
	}

	name := tok.String()
	if _, ok := token.FromKeyword(name); !ok {
		p.addError("Invalid identifier: "+name, tok.Range())
		return nil
	}
	return &ast.IdentifierNode{Rng: tok.Range(), Name: name}
}

// --- definitions ---------------------------------------------------------

func (p *Parser) parseDefinitions() []ast.DefinitionNode {
	var definitions []ast.DefinitionNode

	for {
		next := p.peek()
		switch next.Kind {
		case token.KindConst:
			if node := p.parseConst(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindTypedef:
			if node := p.parseTypedef(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindEnum:
			if node := p.parseEnum(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindStruct:
			if node := p.parseStruct(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindUnion:
			if node := p.parseUnion(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindException:
			if node := p.parseException(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindService:
			if node := p.parseService(); node != nil {
				definitions = append(definitions, node)
			} else {
				p.recoverToNextDefinition()
			}
		case token.KindEOF:
			return definitions
		default:
			p.addError("Unexpected token: "+next.String(), next.Range())
			p.eat()
			p.recoverToNextDefinition()
		}
	}
}

func (p *Parser) parseConst() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindConst, "'const'") {
		return nil
	}
	typ := p.parseFieldType()
	if typ == nil {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindAssign, "'='") {
		return nil
	}
	value := p.parseConstValue()
	if value == nil {
		return nil
	}
	p.optListSeparator()

	return &ast.ConstNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Type:           typ,
		Value:          value,
	}
}

func (p *Parser) parseTypedef() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindTypedef, "'typedef'") {
		return nil
	}
	typ := p.parseDefinitionType()
	if typ == nil {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	return &ast.TypedefNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Type:           typ,
	}
}

func (p *Parser) parseEnum() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindEnum, "'enum'") {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindLbrace, "'{'") {
		return nil
	}

	var values []*ast.EnumValueNode
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		if value := p.parseEnumValue(); value != nil {
			values = append(values, value)
		} else {
			p.recoverToNextLine()
		}
	}

	return &ast.EnumNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Values:         values,
	}
}

func (p *Parser) parseEnumValue() *ast.EnumValueNode {
	start := p.peek().Range().Start
	tok := p.next()
	if tok.Kind != token.KindIdentifier {
		p.addError("Expected identifier, but got "+tok.String(), tok.Range())
		return nil
	}
	name := tok.Text

	var value *int32
	if p.peek().Kind == token.KindAssign {
		p.eat()
		valueTok := p.next()
		if valueTok.Kind != token.KindIntConstant {
			p.addError("Expected integer constant, but got "+valueTok.String(), valueTok.Range())
			return nil
		}
		parsed, err := strconv.ParseInt(valueTok.Text, 10, 32)
		if err != nil {
			parsed = 0
		}
		v := int32(parsed)
		value = &v
	}

	ext := p.optParseExt()
	p.optListSeparator()

	return &ast.EnumValueNode{
		Rng:   position.Range{Start: start, End: p.prevRange().End},
		Name:  name,
		Value: value,
		Ext:   ext,
	}
}

func (p *Parser) parseStruct() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindStruct, "'struct'") {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindLbrace, "'{'") {
		return nil
	}

	var fields []*ast.FieldNode
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		if field := p.parseField(); field != nil {
			fields = append(fields, field)
		} else {
			p.recoverToNextLine()
		}
	}
	ext := p.optParseExt()

	return &ast.StructNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Fields:         fields,
		Ext:            ext,
	}
}

func (p *Parser) parseUnion() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindUnion, "'union'") {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindLbrace, "'{'") {
		return nil
	}

	var fields []*ast.FieldNode
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		if field := p.parseField(); field != nil {
			fields = append(fields, field)
		} else {
			p.recoverToNextLine()
		}
	}

	return &ast.UnionNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Fields:         fields,
	}
}

func (p *Parser) parseException() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindException, "'exception'") {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindLbrace, "'{'") {
		return nil
	}

	var fields []*ast.FieldNode
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		if field := p.parseField(); field != nil {
			fields = append(fields, field)
		} else {
			p.recoverToNextLine()
		}
	}

	return &ast.ExceptionNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Fields:         fields,
	}
}

func (p *Parser) parseService() ast.DefinitionNode {
	start := p.peek().Range().Start
	if !p.expect(token.KindService, "'service'") {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}

	var extends *ast.IdentifierNode
	if p.peek().Kind == token.KindExtends {
		p.eat()
		extendsTok := p.next()
		if extendsTok.Kind != token.KindIdentifier {
			p.addError("Expected identifier, but got "+extendsTok.String(), extendsTok.Range())
			return nil
		}
		extends = &ast.IdentifierNode{Rng: extendsTok.Range(), Name: extendsTok.Text}
	}

	if !p.expect(token.KindLbrace, "'{'") {
		return nil
	}

	var functions []*ast.FunctionNode
	for {
		if p.breakOnCloseOrEOF(token.KindRbrace) {
			break
		}
		if fn := p.parseFunction(); fn != nil {
			functions = append(functions, fn)
		} else {
			p.recoverToNextLine()
		}
	}

	return &ast.ServiceNode{
		definitionBase: newDefinitionBase(identifier),
		Rng:            position.Range{Start: start, End: p.prevRange().End},
		Extends:        extends,
		Functions:      functions,
	}
}

func (p *Parser) parseFunction() *ast.FunctionNode {
	start := p.peek().Range().Start
	isOneway := false
	if p.peek().Kind == token.KindOneway {
		isOneway = true
		p.eat()
	}

	functionType := p.parseFunctionType()
	if functionType == nil {
		return nil
	}
	identifier := p.parseIdentifier()
	if identifier == nil {
		return nil
	}
	if !p.expect(token.KindLparen, "'('") {
		return nil
	}

	var fields []*ast.FieldNode
	for {
		if p.breakOnCloseOrEOF(token.KindRparen) {
			break
		}
		field := p.parseField()
		if field == nil {
			// A parse failure inside a parameter list aborts the whole
			// function: there is no safe statement boundary to resync to
			// without risking eating the closing paren of another function.
			return nil
		}
		fields = append(fields, field)
	}

	var throws []*ast.FieldNode
	if p.peek().Kind == token.KindThrows {
		throws = p.parseThrows()
		if throws == nil {
			return nil
		}
	}
	ext := p.optParseExt()
	p.optListSeparator()

	return &ast.FunctionNode{
		Rng:          position.Range{Start: start, End: p.prevRange().End},
		IsOneway:     isOneway,
		FunctionType: functionType,
		Identifier:   identifier,
		Fields:       fields,
		Throws:       throws,
		Ext:          ext,
	}
}

func (p *Parser) parseFunctionType() ast.Node {
	next := p.peek()
	if next.Kind == token.KindVoid {
		p.eat()
		return &ast.VoidTypeNode{Rng: next.Range()}
	}
	typ := p.parseFieldType()
	if typ == nil {
		return nil
	}
	return typ
}

func (p *Parser) parseThrows() []*ast.FieldNode {
	if !p.expect(token.KindThrows, "'throws'") {
		return nil
	}
	if !p.expect(token.KindLparen, "'('") {
		return nil
	}

	var fields []*ast.FieldNode
	for {
		if p.breakOnCloseOrEOF(token.KindRparen) {
			break
		}
		field := p.parseField()
		if field == nil {
			return nil
		}
		fields = append(fields, field)
	}
	return fields
}

func newDefinitionBase(identifier *ast.IdentifierNode) definitionBase {
	return definitionBase{Ident: identifier}
}
