package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// CSharpCapability extracts C# structure. Constructors are not matched
// (no return type position); async is read from the modifier list.
type CSharpCapability struct{}

func NewCSharpCapability() *CSharpCapability { return &CSharpCapability{} }

func (c *CSharpCapability) Language() string { return "csharp" }

var (
	csMethodRe = regexp.MustCompile(`(?m)^[ \t]*((?:(?:public|private|protected|internal|static|virtual|override|sealed|async|extern|unsafe|new|partial)\s+)*)([\w<>\[\],.?]+)\s+(\w+)\s*\(([^)]*)\)\s*(?:where[^{;=]*)?[{;=]`)
	csClassRe  = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|internal|abstract|sealed|static|partial)\s+)*(?:class|struct|record)\s+(\w+)(?:<[^>]+>)?(?:\s*:\s*([^{]+))?\s*\{`)
)

func (c *CSharpCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	return csMethods(content, 0)
}

func csMethods(content string, baseOffset int) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range csMethodRe.FindAllStringSubmatchIndex(content, -1) {
		modifiers := group(content, m, 1)
		returnType := group(content, m, 2)
		name := group(content, m, 3)
		if isKeyword(name, "if", "for", "foreach", "while", "switch", "using", "catch", "lock", "return") {
			continue
		}
		if isKeyword(returnType, "return", "new", "else", "in", "case", "var") {
			continue
		}
		functions = append(functions, domain.FunctionSignature{
			Name:       name,
			Parameters: csParameters(group(content, m, 4)),
			ReturnType: returnType,
			IsAsync:    strings.Contains(modifiers, "async"),
			Line:       lineOfOffset(content, m[0]) + baseOffset,
		})
	}
	return functions
}

func csParameters(raw string) []domain.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.Parameter{}
	}
	params := []domain.Parameter{}
	for _, part := range splitTopLevel(raw, ',') {
		part = strings.TrimSpace(part)
		for _, mod := range []string{"ref ", "out ", "in ", "params ", "this "} {
			part = strings.TrimPrefix(part, mod)
		}
		if p, ok := typedParameter(part); ok {
			params = append(params, p)
		}
	}
	return params
}

func (c *CSharpCapability) ExtractClasses(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo
	for _, m := range csClassRe.FindAllStringSubmatchIndex(content, -1) {
		info := domain.ClassInfo{
			Name:        group(content, m, 1),
			BaseClasses: []string{},
			Methods:     []domain.FunctionSignature{},
			Line:        lineOfOffset(content, m[0]),
		}
		for _, base := range strings.Split(group(content, m, 2), ",") {
			if base = strings.TrimSpace(base); base != "" {
				info.BaseClasses = append(info.BaseClasses, base)
			}
		}
		if body, bodyStart, ok := braceRegion(content, m[0]); ok {
			info.Methods = csMethods(body, lineOfOffset(content, bodyStart)-1)
		}
		classes = append(classes, info)
	}
	return classes
}

func (c *CSharpCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// ECMA-334 section 13.5: using directives, including "using static" and the
// alias form "using X = Some.Namespace;". The using statement (resource
// scope over an IDisposable) is a different construct and never matches
// here: it is followed by "(" or a declarator, not by a dotted name ending
// in ";".
var csUsingRe = regexp.MustCompile(`^\s*using\s+(?:static\s+)?(?:(\w+)\s*=\s*)?([\w.]+)\s*;`)

func (c *CSharpCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		m := csUsingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		deps = append(deps, domain.DependencyInfo{
			SourceFile:     filePath,
			ImportedModule: m[2],
			ImportType:     "using",
			LineNumber:     i + 1,
		})
	}
	return deps
}
