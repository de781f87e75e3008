// Package token defines the closed set of lexical tokens recognized by the
// Thrift scanner, along with their printable width and source range.
package token

import (
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// Kind tags the variant a Token belongs to. Kind is a closed set: every
// case the scanner can produce has a constructor below.
type Kind int

const (
	// KindInvalid is the zero value and is never produced by the scanner.
	KindInvalid Kind = iota

	// Keywords.
	KindInclude
	KindCppInclude
	KindNamespace
	KindConst
	KindTypedef
	KindEnum
	KindStruct
	KindUnion
	KindException
	KindService
	KindRequired
	KindOptional
	KindOneway
	KindVoid
	KindThrows
	KindExtends
	KindMap
	KindSet
	KindList
	KindCppType

	// Punctuation.
	KindAssign  // =
	KindColon   // :
	KindLess    // <
	KindGreater // >
	KindLparen  // (
	KindRparen  // )
	KindLbrace  // {
	KindRbrace  // }
	KindLbrack  // [
	KindRbrack  // ]

	// ListSeparator carries the literal separator character (',' or ';').
	KindListSeparator

	// Parameterized tokens; their text is held in Token.Text.
	KindNamespaceScope
	KindBaseType
	KindLiteral
	KindIdentifier
	KindIntConstant
	KindDoubleConstant
	KindComment
	KindBlockComment
	KindPoundComment

	// Sentinels.
	KindInvalidChar   // a single unrecognized character, held in Token.Text
	KindInvalidString // a malformed multi-character lexeme, held in Token.Text
	KindEOF
)

var kindNames = map[Kind]string{
	KindInclude:    "include",
	KindCppInclude: "cpp_include",
	KindNamespace:  "namespace",
	KindConst:      "const",
	KindTypedef:    "typedef",
	KindEnum:       "enum",
	KindStruct:     "struct",
	KindUnion:      "union",
	KindException:  "exception",
	KindService:    "service",
	KindRequired:   "required",
	KindOptional:   "optional",
	KindOneway:     "oneway",
	KindVoid:       "void",
	KindThrows:     "throws",
	KindExtends:    "extends",
	KindMap:        "map",
	KindSet:        "set",
	KindList:       "list",
	KindCppType:    "cpp_type",
	KindAssign:     "=",
	KindColon:      ":",
	KindLess:       "<",
	KindGreater:    ">",
	KindLparen:     "(",
	KindRparen:     ")",
	KindLbrace:     "{",
	KindRbrace:     "}",
	KindLbrack:     "[",
	KindRbrack:     "]",
}

// keywords maps identifier text to the keyword/type kind it represents.
var keywords = map[string]Kind{
	"include":     KindInclude,
	"cpp_include": KindCppInclude,
	"namespace":   KindNamespace,
	"const":       KindConst,
	"typedef":     KindTypedef,
	"enum":        KindEnum,
	"struct":      KindStruct,
	"union":       KindUnion,
	"exception":   KindException,
	"service":     KindService,
	"required":    KindRequired,
	"optional":    KindOptional,
	"oneway":      KindOneway,
	"void":        KindVoid,
	"throws":      KindThrows,
	"extends":     KindExtends,
	"map":         KindMap,
	"set":         KindSet,
	"list":        KindList,
	"cpp_type":    KindCppType,
}

var namespaceScopes = map[string]bool{
	"c_glib": true, "cpp": true, "delphi": true, "haxe": true, "go": true,
	"java": true, "js": true, "lua": true, "netstd": true, "perl": true,
	"php": true, "py": true, "py.twisted": true, "rb": true, "st": true,
	"xsd": true, "rs": true,
}

var baseTypes = map[string]bool{
	"bool": true, "byte": true, "i8": true, "i16": true, "i32": true,
	"i64": true, "double": true, "string": true, "binary": true, "uuid": true,
}

var singleCharPunctuation = map[rune]Kind{
	'=': KindAssign,
	':': KindColon,
	'<': KindLess,
	'>': KindGreater,
	'(': KindLparen,
	')': KindRparen,
	'{': KindLbrace,
	'}': KindRbrace,
	'[': KindLbrack,
	']': KindRbrack,
	',': KindListSeparator,
	';': KindListSeparator,
}

// Token is a single lexical unit together with the position of its first
// character.
type Token struct {
	Kind     Kind
	Position position.Position
	// Text holds the payload for parameterized kinds (identifiers, literals,
	// constants, comments, namespace scopes, base types, invalid lexemes) and
	// the separator character for KindListSeparator. Keyword tokens produced
	// by the scanner carry their spelling; it is empty for punctuation.
	Text string
}

// IsEOF reports whether t is the end-of-file sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == KindEOF
}

// IsInvalid reports whether t represents a lexical error.
func (t Token) IsInvalid() bool {
	return t.Kind == KindInvalidChar || t.Kind == KindInvalidString
}

// IsComment reports whether t is any of the three comment forms.
func (t Token) IsComment() bool {
	switch t.Kind {
	case KindComment, KindBlockComment, KindPoundComment:
		return true
	default:
		return false
	}
}

// IsListSeparator reports whether t is a ',' or ';' used as a list separator.
func (t Token) IsListSeparator() bool {
	return t.Kind == KindListSeparator
}

// String renders the token the way it would appear in source, used for
// diagnostic messages such as "expected X, but got Y".
func (t Token) String() string {
	if name, ok := kindNames[t.Kind]; ok {
		return name
	}
	switch t.Kind {
	case KindComment:
		return "//" + t.Text
	case KindBlockComment:
		return "/*" + t.Text + "*/"
	case KindPoundComment:
		return "#" + t.Text
	case KindEOF:
		return "<EOF>"
	default:
		return t.Text
	}
}

// Len returns the printable width of the token: the number of code-point
// columns it spans starting at Position. Keyword lengths are fixed; literal tokens
// include their delimiters; block comments include their /* */ fences; line
// and pound comments include their lead-in but not the terminating newline.
func (t Token) Len() int {
	switch t.Kind {
	case KindComment:
		return len([]rune(t.Text)) + 2
	case KindBlockComment:
		return len([]rune(t.Text)) + 4
	case KindPoundComment:
		return len([]rune(t.Text)) + 1
	case KindLiteral:
		return len([]rune(t.Text)) + 2
	case KindIntConstant, KindDoubleConstant, KindNamespaceScope, KindBaseType,
		KindIdentifier, KindInvalidString:
		return len([]rune(t.Text))
	case KindListSeparator, KindInvalidChar:
		return 1
	case KindEOF:
		return 0
	default:
		if name, ok := kindNames[t.Kind]; ok {
			return len(name)
		}
		return 0
	}
}

// Range computes the token's source range assuming it does not span a
// newline: [Position, Position + Len on the same line].
func (t Token) Range() position.Range {
	end := t.Position
	end.Column += uint32(t.Len())
	return position.Range{Start: t.Position, End: end}
}

// FromKeyword returns the keyword/namespace-scope/base-type kind for the
// given identifier text, or (KindInvalid, false) if it is an ordinary
// identifier.
func FromKeyword(text string) (Kind, bool) {
	if kind, ok := keywords[text]; ok {
		return kind, true
	}
	if namespaceScopes[text] {
		return KindNamespaceScope, true
	}
	if baseTypes[text] {
		return KindBaseType, true
	}
	return KindInvalid, false
}

// FromChar returns the punctuation kind for a single character, or
// (KindInvalid, false) if ch is not recognized punctuation. '*' is accepted
// as the "all scopes" namespace-scope wildcard.
func FromChar(ch rune) (Kind, bool) {
	if kind, ok := singleCharPunctuation[ch]; ok {
		return kind, true
	}
	if ch == '*' {
		return KindNamespaceScope, true
	}
	return KindInvalid, false
}

// Keywords returns the fixed set of reserved words offered for completion,
// in a stable order.
func Keywords() []string {
	return []string{
		"include", "cpp_include", "namespace", "const", "typedef", "enum",
		"struct", "union", "exception", "service", "required", "optional",
		"oneway", "void", "throws", "extends", "map", "set", "list", "cpp_type",
	}
}
