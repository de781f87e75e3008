package thriftanalysis

import (
	"sort"
	"strings"

	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/position"
	"github.com/thrift-tools/thriftls/private/thriftls/thriftsyntax/token"
)

// TypesForCompletion returns the names visible at pos in path. If the
// character immediately left of pos is '.', the contiguous identifier
// characters before it are read as a namespace prefix: a match against an
// included namespace returns that table's type names, anything else
// returns [""] (no completions, but the prefix was consumed). Otherwise it
// returns the union of this file's own types, its included namespaces, and
// the fixed keyword set.
func (a *Analyzer) TypesForCompletion(path string, pos position.Position) []string {
	table, ok := a.tables[path]
	if !ok {
		return nil
	}

	if prefix, ok := dotPrefix(a.documents[path], pos); ok {
		included, ok := table.Includes[prefix]
		if !ok {
			return []string{""}
		}
		names := make([]string, 0, len(included.Types))
		for name := range included.Types {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}

	var names []string
	for name := range table.Types {
		names = append(names, name)
	}
	for namespace := range table.Includes {
		names = append(names, namespace)
	}
	names = append(names, token.Keywords()...)
	sort.Strings(names)
	return names
}

// IncludesForCompletion returns the namespaces currently included by path.
func (a *Analyzer) IncludesForCompletion(path string, _ position.Position) []string {
	table, ok := a.tables[path]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(table.Includes))
	for namespace := range table.Includes {
		names = append(names, namespace)
	}
	sort.Strings(names)
	return names
}

// KeywordsForCompletion returns the fixed Thrift keyword set.
func (a *Analyzer) KeywordsForCompletion() []string {
	return token.Keywords()
}

// dotPrefix reports whether the character immediately to the left of pos
// in content is '.', and if so, the contiguous run of identifier
// characters immediately preceding that dot.
func dotPrefix(content string, pos position.Position) (string, bool) {
	lines := strings.Split(content, "\n")
	lineIdx := int(pos.Line) - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return "", false
	}
	line := []rune(strings.TrimSuffix(lines[lineIdx], "\r"))

	col := int(pos.Column) - 1 // index into line, one past the cursor's preceding character
	if col <= 0 || col > len(line) || line[col-1] != '.' {
		return "", false
	}

	start := col - 1
	for start > 0 && isIdentRune(line[start-1]) {
		start--
	}
	return string(line[start : col-1]), true
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
