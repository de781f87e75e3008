package thriftanalysis

import (
	"fmt"
	"strings"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftanalysis/symbol"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/ast"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/diag"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/parser"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
)

// includeSource names the header and file that caused a dependency to be
// resolved, so a read or cycle failure can be attributed to the right
// document.
type includeSource struct {
	path   string
	header ast.HeaderNode
}

// parseDocument resolves path, recursively parsing and linking any
// `include` dependencies it names. visited tracks the current recursion
// chain only: a dependency is removed from it once its subtree finishes,
// so a DAG with repeated (non-cyclic) includes is resolved once and reused
// from cache. It reports whether path was successfully read and parsed.
func (a *Analyzer) parseDocument(path string, visited map[string]bool, source *includeSource) bool {
	if visited[path] {
		if source != nil {
			a.errs[source.path] = append(a.errs[source.path], diag.Error{
				Range:   source.header.Range(),
				Message: "Circular dependency detected: " + path,
			})
		}
		return false
	}
	visited[path] = true

	if _, ok := a.asts[path]; ok {
		return true
	}

	content, ok := a.documents[path]
	if !ok {
		read, err := a.reader.ReadFile(path)
		if err != nil {
			message := fmt.Sprintf("Failed to read file %s: %s", path, err)
			if source != nil {
				a.errs[source.path] = append(a.errs[source.path], diag.Error{Range: source.header.Range(), Message: message})
			} else {
				a.errs[path] = append(a.errs[path], diag.Error{Range: position.Range{Start: position.Default, End: position.Default}, Message: message})
			}
			return false
		}
		content = read
		a.documents[path] = content
	}

	doc, parseErrs := parser.Parse([]rune(content))
	a.asts[path] = doc
	a.errs[path] = append(a.errs[path], parseErrs...)

	table := symbol.NewFromDocument(path, doc)

	for _, header := range doc.Headers {
		include, ok := header.(*ast.IncludeNode)
		if !ok {
			continue
		}
		depPath := joinInclude(dirname(path), include.Literal)
		namespace := namespaceOf(depPath)

		if a.parseDocument(depPath, visited, &includeSource{path: path, header: header}) {
			table.AddDependency(namespace, depPath, header, a.tables[depPath])
		}
		delete(visited, depPath)
	}

	table.CheckDocumentTypes(doc)
	a.errs[path] = append(a.errs[path], table.Errors()...)
	a.errs[path] = append(a.errs[path], staticCheck(doc)...)

	a.tables[path] = table
	a.tokens[path] = computeSemanticTokens(doc)

	return true
}

// dirname returns the directory portion of path, preferring '/' as the
// separator but falling back to the last '\' so Windows-authored include
// literals resolve correctly even when the analyzer runs on a POSIX host.
func dirname(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[:idx]
	}
	if idx := strings.LastIndexByte(path, '\\'); idx >= 0 {
		return path[:idx]
	}
	return ""
}

// joinInclude resolves an include literal relative to the directory of the
// including file.
func joinInclude(dir, literal string) string {
	if dir == "" {
		return literal
	}
	sep := "/"
	if strings.Contains(dir, "\\") && !strings.Contains(dir, "/") {
		sep = "\\"
	}
	return dir + sep + literal
}

// namespaceOf returns the file stem (basename without extension) used as
// the namespace prefix for an included file's types.
func namespaceOf(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, "/\\"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	return base
}
