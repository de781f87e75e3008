// Package scanner implements the Thrift lexer. It turns a buffer of
// code points into a lazy stream of tokens with precise one-based
// positions, and supports saving and restoring its cursor so the parser
// can peek arbitrarily far ahead without consuming input.
package scanner

import (
	"fmt"
	"strings"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// Error is a lexical error discovered while scanning a single token. It is
// always returned alongside the (possibly invalid) token it occurred in.
type Error struct {
	Range   position.Range
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Range, e.Message)
}

// State is an opaque scanner cursor that can be saved and later restored,
// letting the parser look ahead without losing its place.
type State struct {
	offset int
	line   uint32
	column uint32
}

func (s State) position() position.Position {
	return position.Position{Line: s.line, Column: s.column}
}

// Scanner lexes a fixed, in-memory rune buffer.
type Scanner struct {
	input []rune
	state State
}

// New creates a Scanner positioned at the start of input.
func New(input []rune) *Scanner {
	return &Scanner{
		input: input,
		state: State{offset: 0, line: 1, column: 1},
	}
}

// SaveState returns the current cursor so it can be restored later.
func (s *Scanner) SaveState() State {
	return s.state
}

// RestoreState rewinds the scanner to a previously saved cursor.
func (s *Scanner) RestoreState(state State) {
	s.state = state
}

// Scan lexes and returns the next token, plus a lexical error if the token
// is malformed. Scanning past the end of input always returns a KindEOF
// token at the final position. Whitespace is consumed silently and never
// produces a token.
func (s *Scanner) Scan() (token.Token, *Error) {
	for s.state.offset < len(s.input) {
		ch := s.input[s.state.offset]

		switch {
		case ch == '\n':
			s.advanceNewline(false)
			continue
		case ch == '\r':
			s.advanceNewline(true)
			continue
		case ch == ' ' || ch == '\t':
			s.state.offset++
			s.state.column++
			continue
		case ch == '/':
			return s.scanSlash()
		case ch == '#':
			return s.scanPoundComment(), nil
		case isIdentStart(ch):
			return s.scanIdentifierOrKeyword(), nil
		case ch == '\'' || ch == '"':
			return s.scanLiteral(ch)
		case ch == '+' || ch == '-' || isDigit(ch):
			return s.scanNumberOrSign()
		case ch == '.':
			return s.scanLeadingDot()
		default:
			return s.scanPunctuation(ch), nil
		}
	}

	return s.eof(), nil
}

// SkipToNextLine advances the cursor past the next line terminator. It is
// used by the parser's statement-level recovery.
func (s *Scanner) SkipToNextLine() {
	for s.state.offset < len(s.input) {
		ch := s.input[s.state.offset]
		s.state.offset++

		if ch == '\n' {
			s.state.line++
			s.state.column = 1
			return
		}
		if ch == '\r' {
			if s.state.offset < len(s.input) && s.input[s.state.offset] == '\n' {
				s.state.offset++
			}
			s.state.line++
			s.state.column = 1
			return
		}
	}
}

func (s *Scanner) eof() token.Token {
	return token.Token{Kind: token.KindEOF, Position: s.state.position()}
}

func (s *Scanner) advanceNewline(cr bool) {
	s.state.offset++
	if cr && s.state.offset < len(s.input) && s.input[s.state.offset] == '\n' {
		s.state.offset++
	}
	s.state.line++
	s.state.column = 1
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentCont(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '.'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func (s *Scanner) scanIdentifierOrKeyword() token.Token {
	start := s.state.offset
	pos := s.state.position()

	offset := 1
	for start+offset < len(s.input) && isIdentCont(s.input[start+offset]) {
		offset++
	}
	text := string(s.input[start : start+offset])

	s.state.offset += offset
	s.state.column += uint32(offset)

	if kind, ok := token.FromKeyword(text); ok {
		return token.Token{Kind: kind, Position: pos, Text: text}
	}
	return token.Token{Kind: token.KindIdentifier, Position: pos, Text: text}
}

func (s *Scanner) scanPunctuation(ch rune) token.Token {
	pos := s.state.position()
	s.state.offset++
	s.state.column++

	if kind, ok := token.FromChar(ch); ok {
		text := ""
		if kind == token.KindListSeparator || kind == token.KindNamespaceScope {
			text = string(ch)
		}
		return token.Token{Kind: kind, Position: pos, Text: text}
	}
	return token.Token{Kind: token.KindInvalidChar, Position: pos, Text: string(ch)}
}

// scanSlash handles '//' line comments, '/*' block comments, and a lone
// '/' (which is invalid; Thrift has no division operator at top level).
func (s *Scanner) scanSlash() (token.Token, *Error) {
	pos := s.state.position()
	start := s.state.offset

	if start+1 >= len(s.input) {
		s.state.offset++
		s.state.column++
		return token.Token{Kind: token.KindInvalidChar, Position: pos, Text: "/"}, nil
	}

	next := s.input[start+1]
	switch next {
	case '/':
		offset := 2
		for start+offset < len(s.input) && s.input[start+offset] != '\n' {
			offset++
		}
		text := string(s.input[start+2 : start+offset])
		s.state.offset += offset
		s.state.column = 1
		s.state.line++
		// Consume the trailing newline itself, if present.
		if s.state.offset < len(s.input) && s.input[s.state.offset] == '\n' {
			s.state.offset++
		}
		return token.Token{Kind: token.KindComment, Position: pos, Text: text}, nil
	case '*':
		return s.scanBlockComment(pos, start)
	default:
		s.state.offset++
		s.state.column++
		return token.Token{Kind: token.KindInvalidChar, Position: pos, Text: "/"}, nil
	}
}

func (s *Scanner) scanBlockComment(pos position.Position, start int) (token.Token, *Error) {
	offset, lineOffset, columnOffset, ok := s.scanBlockCommentBody(start)

	if ok {
		text := string(s.input[start+2 : start+offset-2])
		s.applyMultilineAdvance(offset, lineOffset, columnOffset)
		return token.Token{Kind: token.KindBlockComment, Position: pos, Text: text}, nil
	}

	text := string(s.input[start : start+offset])
	s.applyMultilineAdvance(offset, lineOffset, columnOffset)
	tok := token.Token{Kind: token.KindInvalidString, Position: pos, Text: text}
	return tok, &Error{Range: tok.Range(), Message: "Unclosed block comment: " + text}
}

// scanBlockCommentBody scans a (possibly nested) /* ... */ comment starting
// at start, which must already point at '/'. It returns the end offset
// relative to start, the number of newlines crossed, the column offset on
// the final line, and whether a closing "*/" was found.
func (s *Scanner) scanBlockCommentBody(start int) (offset, lineOffset, columnOffset int, ok bool) {
	offset = 1
	columnOffset = 1
	if start+offset >= len(s.input) || s.input[start+offset] != '*' {
		return offset, lineOffset, columnOffset, false
	}
	offset++
	columnOffset++

	for start+offset < len(s.input) {
		ch := s.input[start+offset]
		offset++
		columnOffset++

		switch ch {
		case '\n':
			lineOffset++
			columnOffset = 1
		case '\r':
			if start+offset < len(s.input) && s.input[start+offset] == '\n' {
				offset++
			}
			lineOffset++
			columnOffset = 1
		}

		if start+offset >= len(s.input) {
			return offset, lineOffset, columnOffset, false
		}

		next := s.input[start+offset]
		if ch == '*' && next == '/' {
			offset++
			columnOffset++
			return offset, lineOffset, columnOffset, true
		}
		if ch == '/' && next == '*' {
			nestedOffset, nestedLine, nestedColumn, nestedOK := s.scanBlockCommentBody(start + offset - 1)
			offset += nestedOffset - 1
			lineOffset += nestedLine
			columnOffset += nestedColumn
			if !nestedOK {
				return offset, lineOffset, columnOffset, false
			}
		}
	}

	return offset, lineOffset, columnOffset, false
}

func (s *Scanner) scanPoundComment() token.Token {
	pos := s.state.position()
	start := s.state.offset

	offset := 1
	for start+offset < len(s.input) {
		ch := s.input[start+offset]
		offset++
		if ch == '\n' {
			break
		}
		if ch == '\r' {
			if start+offset < len(s.input) && s.input[start+offset] == '\n' {
				offset++
			}
			break
		}
	}

	text := string(s.input[start+1 : start+offset])
	text = strings.TrimRight(text, "\r\n")
	s.state.offset += offset
	s.state.column = 1
	s.state.line++
	return token.Token{Kind: token.KindPoundComment, Position: pos, Text: text}
}

func (s *Scanner) scanLiteral(delimiter rune) (token.Token, *Error) {
	pos := s.state.position()
	start := s.state.offset

	offset := 1
	lineOffset := 0
	columnOffset := 1
	prev := delimiter
	closed := false

	for start+offset < len(s.input) {
		ch := s.input[start+offset]
		offset++
		columnOffset++

		if ch == delimiter && prev != '\\' {
			closed = true
			break
		}
		if ch == '\n' {
			lineOffset++
			columnOffset = 1
		} else if ch == '\r' {
			if start+offset < len(s.input) && s.input[start+offset] == '\n' {
				offset++
			}
			lineOffset++
			columnOffset = 1
		}
		prev = ch
	}

	if closed {
		text := string(s.input[start+1 : start+offset-1])
		s.applyMultilineAdvance(offset, lineOffset, columnOffset)
		return token.Token{Kind: token.KindLiteral, Position: pos, Text: text}, nil
	}

	text := string(s.input[start+1 : start+offset])
	s.applyMultilineAdvance(offset, lineOffset, columnOffset)
	tok := token.Token{Kind: token.KindInvalidString, Position: pos, Text: text}
	return tok, &Error{Range: tok.Range(), Message: "Unclosed string: " + text}
}

func (s *Scanner) applyMultilineAdvance(offset, lineOffset, columnOffset int) {
	if lineOffset > 0 {
		s.state.column = 0
	}
	s.state.offset += offset
	s.state.column += uint32(columnOffset)
	s.state.line += uint32(lineOffset)
}

// scanNumberOrSign scans a numeric literal that begins with a digit, '+',
// or '-'. It tries an integer first, then falls back to a double when the
// character after the would-be integer continues the number (a '.', 'e',
// or 'E'), or when no integer could be formed at all.
func (s *Scanner) scanNumberOrSign() (token.Token, *Error) {
	pos := s.state.position()
	start := s.state.offset

	offset, intOK := s.scanIntConstant(start)
	doubleOK := false

	if !intOK {
		offset, doubleOK = s.scanDoubleConstant(start)
	} else if start+offset < len(s.input) {
		next := s.input[start+offset]
		if next == '.' || next == 'e' || next == 'E' {
			if dOffset, ok := s.scanDoubleConstant(start); ok {
				offset = dOffset
				doubleOK = true
				intOK = false
			}
		}
	}

	text := string(s.input[start : start+offset])
	s.state.offset += offset
	s.state.column += uint32(offset)

	switch {
	case intOK:
		return token.Token{Kind: token.KindIntConstant, Position: pos, Text: text}, nil
	case doubleOK:
		return token.Token{Kind: token.KindDoubleConstant, Position: pos, Text: text}, nil
	default:
		tok := token.Token{Kind: token.KindInvalidString, Position: pos, Text: text}
		return tok, &Error{Range: tok.Range(), Message: "Invalid numeric literal: " + text}
	}
}

func (s *Scanner) scanLeadingDot() (token.Token, *Error) {
	pos := s.state.position()
	start := s.state.offset

	offset, ok := s.scanDoubleConstant(start)
	text := string(s.input[start : start+offset])
	s.state.offset += offset
	s.state.column += uint32(offset)

	if !ok {
		tok := token.Token{Kind: token.KindInvalidString, Position: pos, Text: text}
		return tok, &Error{Range: tok.Range(), Message: "Invalid numeric literal: " + text}
	}
	return token.Token{Kind: token.KindDoubleConstant, Position: pos, Text: text}, nil
}

// scanIntConstant scans [+-]?[0-9]+ starting at start, returning the end
// offset relative to start and whether it formed a valid integer. A bare
// sign with no digits is not a valid integer.
func (s *Scanner) scanIntConstant(start int) (int, bool) {
	first := s.input[start]
	if !isDigit(first) && first != '+' && first != '-' {
		return 0, false
	}

	offset := 0
	for start+offset < len(s.input) {
		ch := s.input[start+offset]
		if offset > 0 && (ch == '+' || ch == '-') {
			break
		}
		if isDigit(ch) || ch == '+' || ch == '-' {
			offset++
			continue
		}
		break
	}

	if offset > 1 {
		return offset, true
	}
	return offset, first != '+' && first != '-'
}

// scanDoubleConstant scans an optionally-signed floating point literal:
// sign? digits? ('.' digits?)? (('e'|'E') intConstant)?. It returns the end
// offset relative to start and whether at least one digit was consumed
// anywhere in the literal (a bare "e", ".", or sign is not a double).
func (s *Scanner) scanDoubleConstant(start int) (int, bool) {
	switch s.input[start] {
	case '+', '-', '.', 'e', 'E':
	default:
		if !isDigit(s.input[start]) {
			return 0, false
		}
	}

	offset := 0
	if ch := s.input[start]; ch == '+' || ch == '-' {
		offset++
	}
	for start+offset < len(s.input) && isDigit(s.input[start+offset]) {
		offset++
	}
	if start+offset < len(s.input) && s.input[start+offset] == '.' {
		offset++
		for start+offset < len(s.input) && isDigit(s.input[start+offset]) {
			offset++
		}
	}
	if start+offset < len(s.input) && (s.input[start+offset] == 'e' || s.input[start+offset] == 'E') {
		expOffset := offset + 1
		if intOffset, ok := s.scanIntConstant(start + expOffset); ok {
			offset = expOffset + intOffset
		}
	}

	hasDigit := false
	for i := 0; i < offset; i++ {
		if isDigit(s.input[start+i]) {
			hasDigit = true
			break
		}
	}
	return offset, hasDigit
}
