// Package ast defines the Thrift document syntax tree. Every node carries
// its source Range and can report its direct children for generic
// traversal; callers that need to act on a particular shape use a type
// switch over the closed set of concrete node types below rather than
// runtime downcasting.
package ast

import (
	"strings"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// Node is the capability every AST node provides: its own range, and its
// direct children in depth-first, left-to-right order (absent optionals are
// omitted).
type Node interface {
	Range() position.Range
	Children() []Node
}

// HeaderNode is implemented by IncludeNode, CppIncludeNode and NamespaceNode.
type HeaderNode interface {
	Node
	headerNode()
}

// DefinitionNode is implemented by ConstNode, TypedefNode, EnumNode,
// StructNode, UnionNode, ExceptionNode and ServiceNode.
type DefinitionNode interface {
	Node
	definitionNode()
	// Name returns the definition's identifier text.
	Name() string
	// Identifier returns the definition's primary identifier node.
	Identifier() *IdentifierNode
}

// FieldTypeNode is implemented by BaseTypeNode, IdentifierNode, MapTypeNode,
// SetTypeNode and ListTypeNode: everything that can appear where a Thrift
// type is expected.
type FieldTypeNode interface {
	Node
	fieldTypeNode()
}

// DocumentNode is the root of a parsed file.
type DocumentNode struct {
	Rng         position.Range
	Headers     []HeaderNode
	Definitions []DefinitionNode
}

func (n *DocumentNode) Range() position.Range { return n.Rng }

func (n *DocumentNode) Children() []Node {
	children := make([]Node, 0, len(n.Headers)+len(n.Definitions))
	for _, h := range n.Headers {
		children = append(children, h)
	}
	for _, d := range n.Definitions {
		children = append(children, d)
	}
	return children
}

// --- Headers ---------------------------------------------------------

// IncludeNode is an `include "path.thrift"` header.
type IncludeNode struct {
	Rng     position.Range
	Literal string
}

func (n *IncludeNode) Range() position.Range { return n.Rng }
func (n *IncludeNode) Children() []Node      { return nil }
func (*IncludeNode) headerNode()             {}

// CppIncludeNode is a `cpp_include "path.h"` header.
type CppIncludeNode struct {
	Rng     position.Range
	Literal string
}

func (n *CppIncludeNode) Range() position.Range { return n.Rng }
func (n *CppIncludeNode) Children() []Node      { return nil }
func (*CppIncludeNode) headerNode()             {}

// NamespaceNode is a `namespace <scope> <identifier> (ext)?` header.
type NamespaceNode struct {
	Rng        position.Range
	Scope      string
	Identifier *IdentifierNode
	Ext        *ExtNode
}

func (n *NamespaceNode) Range() position.Range { return n.Rng }

func (n *NamespaceNode) Children() []Node {
	children := []Node{n.Identifier}
	if n.Ext != nil {
		children = append(children, n.Ext)
	}
	return children
}
func (*NamespaceNode) headerNode() {}

// --- Shared definition plumbing ---------------------------------------

// definitionBase supplies the Name/Identifier pair shared by every
// DefinitionNode so each concrete type only needs to embed it.
type definitionBase struct {
	Ident *IdentifierNode
}

func (d definitionBase) Name() string                { return d.Ident.Name }
func (d definitionBase) Identifier() *IdentifierNode { return d.Ident }
func (definitionBase) definitionNode()                {}

// --- Definitions -------------------------------------------------------

// ConstNode is `const <type> <identifier> = <value>`.
type ConstNode struct {
	definitionBase
	Rng   position.Range
	Type  FieldTypeNode
	Value *ConstValueNode
}

func (n *ConstNode) Range() position.Range { return n.Rng }

func (n *ConstNode) Children() []Node {
	return []Node{n.Type, n.Ident, n.Value}
}

// TypedefNode is `typedef <type> <identifier>`.
type TypedefNode struct {
	definitionBase
	Rng  position.Range
	Type FieldTypeNode
}

func (n *TypedefNode) Range() position.Range { return n.Rng }
func (n *TypedefNode) Children() []Node      { return []Node{n.Type, n.Ident} }

// EnumNode is `enum <identifier> { EnumValue* }`.
type EnumNode struct {
	definitionBase
	Rng    position.Range
	Values []*EnumValueNode
}

func (n *EnumNode) Range() position.Range { return n.Rng }

func (n *EnumNode) Children() []Node {
	children := []Node{n.Ident}
	for _, v := range n.Values {
		children = append(children, v)
	}
	return children
}

// EnumValueNode is a single `Identifier ('=' IntConstant)? Ext?` entry.
type EnumValueNode struct {
	Rng   position.Range
	Name  string
	Value *int32
	Ext   *ExtNode
}

func (n *EnumValueNode) Range() position.Range { return n.Rng }

func (n *EnumValueNode) Children() []Node {
	if n.Ext != nil {
		return []Node{n.Ext}
	}
	return nil
}

// StructNode is `struct <identifier> { Field* } Ext?`.
type StructNode struct {
	definitionBase
	Rng    position.Range
	Fields []*FieldNode
	Ext    *ExtNode
}

func (n *StructNode) Range() position.Range { return n.Rng }

func (n *StructNode) Children() []Node {
	children := []Node{n.Ident}
	for _, f := range n.Fields {
		children = append(children, f)
	}
	if n.Ext != nil {
		children = append(children, n.Ext)
	}
	return children
}

// UnionNode is `union <identifier> { Field* }`.
type UnionNode struct {
	definitionBase
	Rng    position.Range
	Fields []*FieldNode
}

func (n *UnionNode) Range() position.Range { return n.Rng }

func (n *UnionNode) Children() []Node {
	children := []Node{n.Ident}
	for _, f := range n.Fields {
		children = append(children, f)
	}
	return children
}

// ExceptionNode is `exception <identifier> { Field* }`.
type ExceptionNode struct {
	definitionBase
	Rng    position.Range
	Fields []*FieldNode
}

func (n *ExceptionNode) Range() position.Range { return n.Rng }

func (n *ExceptionNode) Children() []Node {
	children := []Node{n.Ident}
	for _, f := range n.Fields {
		children = append(children, f)
	}
	return children
}

// ServiceNode is `service <identifier> ('extends' <identifier>)? { Function* }`.
type ServiceNode struct {
	definitionBase
	Rng       position.Range
	Extends   *IdentifierNode
	Functions []*FunctionNode
}

func (n *ServiceNode) Range() position.Range { return n.Rng }

func (n *ServiceNode) Children() []Node {
	children := []Node{n.Ident}
	if n.Extends != nil {
		children = append(children, n.Extends)
	}
	for _, f := range n.Functions {
		children = append(children, f)
	}
	return children
}

// --- Types ---------------------------------------------------------------

// BaseTypeNode is one of the built-in scalar types.
type BaseTypeNode struct {
	Rng  position.Range
	Name string
}

func (n *BaseTypeNode) Range() position.Range { return n.Rng }
func (n *BaseTypeNode) Children() []Node      { return nil }
func (*BaseTypeNode) fieldTypeNode()          {}

// IdentifierNode is a bare name, optionally qualified with a namespace
// prefix ("Namespace.Type"). It is used both as a FieldTypeNode and as the
// primary identifier of headers, definitions, fields, and functions.
type IdentifierNode struct {
	Rng  position.Range
	Name string
}

func (n *IdentifierNode) Range() position.Range { return n.Rng }
func (n *IdentifierNode) Children() []Node      { return nil }
func (*IdentifierNode) fieldTypeNode()          {}

// SplitByFirstDot splits a qualified identifier "Prefix.Rest" into its two
// parts, along with their individual sub-ranges. ok is false if Name
// contains no dot.
func (n *IdentifierNode) SplitByFirstDot() (prefix, rest *IdentifierNode, ok bool) {
	idx := strings.IndexByte(n.Name, '.')
	if idx < 0 {
		return nil, nil, false
	}

	prefixText := n.Name[:idx]
	restText := n.Name[idx+1:]

	prefixEnd := n.Rng.Start
	prefixEnd.Column += uint32(idx)
	prefixRange := position.Range{Start: n.Rng.Start, End: prefixEnd}

	restStart := prefixEnd
	restStart.Column++ // skip the '.'
	restRange := position.Range{Start: restStart, End: n.Rng.End}

	return &IdentifierNode{Rng: prefixRange, Name: prefixText},
		&IdentifierNode{Rng: restRange, Name: restText},
		true
}

// PositionInNamespace reports whether pos falls within the prefix portion
// (before the dot) of a qualified identifier. It is false for unqualified
// identifiers.
func (n *IdentifierNode) PositionInNamespace(pos position.Position) bool {
	prefix, _, ok := n.SplitByFirstDot()
	if !ok {
		return false
	}
	return prefix.Range().Contains(pos)
}

// MapTypeNode is `'map' CppType? '<' key ',' value '>'`.
type MapTypeNode struct {
	Rng     position.Range
	CppType *IdentifierNode
	Key     FieldTypeNode
	Value   FieldTypeNode
}

func (n *MapTypeNode) Range() position.Range { return n.Rng }

func (n *MapTypeNode) Children() []Node {
	children := []Node{}
	if n.CppType != nil {
		children = append(children, n.CppType)
	}
	return append(children, n.Key, n.Value)
}
func (*MapTypeNode) fieldTypeNode() {}

// SetTypeNode is `'set' CppType? '<' elem '>'`.
type SetTypeNode struct {
	Rng     position.Range
	CppType *IdentifierNode
	Elem    FieldTypeNode
}

func (n *SetTypeNode) Range() position.Range { return n.Rng }

func (n *SetTypeNode) Children() []Node {
	children := []Node{}
	if n.CppType != nil {
		children = append(children, n.CppType)
	}
	return append(children, n.Elem)
}
func (*SetTypeNode) fieldTypeNode() {}

// ListTypeNode is `'list' CppType? '<' elem '>'`.
type ListTypeNode struct {
	Rng     position.Range
	CppType *IdentifierNode
	Elem    FieldTypeNode
}

func (n *ListTypeNode) Range() position.Range { return n.Rng }

func (n *ListTypeNode) Children() []Node {
	children := []Node{}
	if n.CppType != nil {
		children = append(children, n.CppType)
	}
	return append(children, n.Elem)
}
func (*ListTypeNode) fieldTypeNode() {}

// --- Fields, functions, values -----------------------------------------

// FieldIDNode is the `<int> ':'` prefix of a field.
type FieldIDNode struct {
	Rng position.Range
	ID  int32
}

func (n *FieldIDNode) Range() position.Range { return n.Rng }
func (n *FieldIDNode) Children() []Node      { return nil }

// FieldReq is the optional requiredness qualifier on a field.
type FieldReq int

const (
	// FieldReqNone means neither 'required' nor 'optional' was written.
	FieldReqNone FieldReq = iota
	FieldReqRequired
	FieldReqOptional
)

// FieldNode is `FieldID? FieldReq? FieldType Identifier ('=' ConstValue)? Ext?`.
type FieldNode struct {
	Rng        position.Range
	FieldID    *FieldIDNode
	FieldReq   FieldReq
	Type       FieldTypeNode
	Identifier *IdentifierNode
	Default    *ConstValueNode
	Ext        *ExtNode
}

func (n *FieldNode) Range() position.Range { return n.Rng }

func (n *FieldNode) Children() []Node {
	var children []Node
	if n.FieldID != nil {
		children = append(children, n.FieldID)
	}
	children = append(children, n.Type, n.Identifier)
	if n.Default != nil {
		children = append(children, n.Default)
	}
	if n.Ext != nil {
		children = append(children, n.Ext)
	}
	return children
}

// FunctionNode is a service method declaration.
type FunctionNode struct {
	Rng          position.Range
	IsOneway     bool
	FunctionType Node // FieldTypeNode or a void marker
	Identifier   *IdentifierNode
	Fields       []*FieldNode
	Throws       []*FieldNode
	Ext          *ExtNode
}

func (n *FunctionNode) Range() position.Range { return n.Rng }

func (n *FunctionNode) Children() []Node {
	children := []Node{n.FunctionType, n.Identifier}
	for _, f := range n.Fields {
		children = append(children, f)
	}
	for _, t := range n.Throws {
		children = append(children, t)
	}
	if n.Ext != nil {
		children = append(children, n.Ext)
	}
	return children
}

// VoidTypeNode marks a function with no return value.
type VoidTypeNode struct {
	Rng position.Range
}

func (n *VoidTypeNode) Range() position.Range { return n.Rng }
func (n *VoidTypeNode) Children() []Node      { return nil }

// ConstValueNode holds the textual rendering of a constant expression.
// Lists are serialized as "[v1, v2]" and maps as "{k: v, ...}"; the analyzer
// never evaluates constants, only preserves their shape for display.
type ConstValueNode struct {
	Rng   position.Range
	Value string
}

func (n *ConstValueNode) Range() position.Range { return n.Rng }
func (n *ConstValueNode) Children() []Node      { return nil }

// ExtKV is a single `key = "value"` pair inside an ExtNode.
type ExtKV struct {
	Key     string
	Literal string
}

// ExtNode is a trailing `(key = "value", ...)` annotation, opaque beyond
// being preserved in the tree.
type ExtNode struct {
	Rng     position.Range
	KVPairs []ExtKV
}

func (n *ExtNode) Range() position.Range { return n.Rng }
func (n *ExtNode) Children() []Node      { return nil }
