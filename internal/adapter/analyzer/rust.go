package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// RustCapability extracts Rust structure. Structs and enums stand in for
// classes; methods attach through single-type impl blocks. Trait bounds and
// where clauses are ignored.
type RustCapability struct{}

func NewRustCapability() *RustCapability { return &RustCapability{} }

func (c *RustCapability) Language() string { return "rust" }

var (
	rustFnRe   = regexp.MustCompile(`(?m)^[ \t]*(?:pub(?:\([^)]*\))?\s+)?(?:default\s+)?(?:const\s+)?(async\s+)?(?:unsafe\s+)?(?:extern\s+"[^"]*"\s+)?fn\s+(\w+)(?:<[^>]*>)?\s*\(([^)]*)\)(?:\s*->\s*([^{;]+))?`)
	rustTypeRe = regexp.MustCompile(`(?m)^[ \t]*(?:pub(?:\([^)]*\))?\s+)?(?:struct|enum)\s+(\w+)`)
	rustImplRe = regexp.MustCompile(`(?m)^[ \t]*impl(?:<[^>]*>)?\s+(?:[\w:]+\s+for\s+)?(\w+)`)
)

func (c *RustCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	return rustFunctions(content, 0)
}

func rustFunctions(content string, baseOffset int) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range rustFnRe.FindAllStringSubmatchIndex(content, -1) {
		functions = append(functions, domain.FunctionSignature{
			Name:       group(content, m, 2),
			Parameters: rustParameters(group(content, m, 3)),
			ReturnType: strings.TrimSpace(group(content, m, 4)),
			IsAsync:    group(content, m, 1) != "",
			Line:       lineOfOffset(content, m[0]) + baseOffset,
		})
	}
	return functions
}

func rustParameters(raw string) []domain.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.Parameter{}
	}
	params := []domain.Parameter{}
	for _, part := range splitTopLevel(raw, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "self" || part == "&self" || part == "&mut self" || strings.HasPrefix(part, "self:") {
			params = append(params, domain.Parameter{Name: "self"})
			continue
		}
		p := domain.Parameter{Name: part}
		if name, hint, ok := cutTopLevel(part, ':'); ok {
			p.Name = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "mut "))
			p.TypeHint = strings.TrimSpace(hint)
		}
		params = append(params, p)
	}
	return params
}

func (c *RustCapability) ExtractClasses(content string) []domain.ClassInfo {
	methodsByType := make(map[string][]domain.FunctionSignature)
	for _, m := range rustImplRe.FindAllStringSubmatchIndex(content, -1) {
		if body, bodyStart, ok := braceRegion(content, m[0]); ok {
			name := group(content, m, 1)
			methodsByType[name] = append(methodsByType[name], rustFunctions(body, lineOfOffset(content, bodyStart)-1)...)
		}
	}

	var classes []domain.ClassInfo
	for _, m := range rustTypeRe.FindAllStringSubmatchIndex(content, -1) {
		name := group(content, m, 1)
		methods := methodsByType[name]
		if methods == nil {
			methods = []domain.FunctionSignature{}
		}
		classes = append(classes, domain.ClassInfo{
			Name:        name,
			BaseClasses: []string{},
			Methods:     methods,
			Line:        lineOfOffset(content, m[0]),
		})
	}
	return classes
}

func (c *RustCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// Rust Reference, Use declarations: one record per imported item, with a
// single level of brace expansion (use a::{b, c} yields a::b and a::c).
// Paths rooted at self:: or super:: are relative to the current module.
var rustUseRe = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?use\s+([^;]+);`)

func (c *RustCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		m := rustUseRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, module := range expandRustUse(strings.TrimSpace(m[1])) {
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: module,
				ImportType:     "use",
				IsRelative:     strings.HasPrefix(module, "self::") || strings.HasPrefix(module, "super::"),
				LineNumber:     i + 1,
			})
		}
	}
	return deps
}

func expandRustUse(path string) []string {
	path = strings.TrimSpace(path)
	open := strings.Index(path, "{")
	if open < 0 || !strings.HasSuffix(path, "}") {
		return []string{stripRustAlias(path)}
	}

	prefix := strings.TrimSuffix(path[:open], "::")
	var modules []string
	for _, item := range splitTopLevel(path[open+1:len(path)-1], ',') {
		item = stripRustAlias(strings.TrimSpace(item))
		switch {
		case item == "":
		case item == "self":
			modules = append(modules, prefix)
		default:
			modules = append(modules, prefix+"::"+item)
		}
	}
	return modules
}

func stripRustAlias(item string) string {
	if idx := strings.Index(item, " as "); idx >= 0 {
		return strings.TrimSpace(item[:idx])
	}
	return item
}
