package thriftanalysis

import (
	"fmt"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
)

// staticCheck performs the field/function uniqueness checks the symbol
// table does not: duplicate field IDs and names within a single
// struct/union/exception/parameter list, and duplicate function names
// within a service.
func staticCheck(document *ast.DocumentNode) []diag.Error {
	var errs []diag.Error
	for _, definition := range document.Definitions {
		switch def := definition.(type) {
		case *ast.StructNode:
			errs = append(errs, checkFieldUniqueness(def.Fields)...)
		case *ast.UnionNode:
			errs = append(errs, checkFieldUniqueness(def.Fields)...)
		case *ast.ExceptionNode:
			errs = append(errs, checkFieldUniqueness(def.Fields)...)
		case *ast.ServiceNode:
			errs = append(errs, checkFunctionUniqueness(def.Functions)...)
			for _, fn := range def.Functions {
				errs = append(errs, checkFieldUniqueness(fn.Fields)...)
			}
		}
	}
	return errs
}

func checkFieldUniqueness(fields []*ast.FieldNode) []diag.Error {
	var errs []diag.Error
	seenIDs := make(map[int32]bool)
	seenNames := make(map[string]bool)

	for _, field := range fields {
		if field.FieldID != nil {
			if seenIDs[field.FieldID.ID] {
				errs = append(errs, diag.Error{
					Range:   field.FieldID.Range(),
					Message: fmt.Sprintf("Duplicate field ID: %d", field.FieldID.ID),
				})
			} else {
				seenIDs[field.FieldID.ID] = true
			}
		}

		name := field.Identifier.Name
		if seenNames[name] {
			errs = append(errs, diag.Error{
				Range:   field.Identifier.Range(),
				Message: "Duplicate field identifier: " + name,
			})
		} else {
			seenNames[name] = true
		}
	}
	return errs
}

func checkFunctionUniqueness(functions []*ast.FunctionNode) []diag.Error {
	var errs []diag.Error
	seen := make(map[string]bool)

	for _, fn := range functions {
		name := fn.Identifier.Name
		if seen[name] {
			errs = append(errs, diag.Error{
				Range:   fn.Identifier.Range(),
				Message: "Duplicate function identifier: " + name,
			})
		} else {
			seen[name] = true
		}
	}
	return errs
}
