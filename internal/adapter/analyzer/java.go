package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// JavaCapability extracts Java structure. Constructors are not matched
// (no return type position); annotations on the signature line are skipped.
type JavaCapability struct{}

func NewJavaCapability() *JavaCapability { return &JavaCapability{} }

func (c *JavaCapability) Language() string { return "java" }

var (
	javaMethodRe = regexp.MustCompile(`(?m)^[ \t]*(?:@\w+(?:\([^)]*\))?\s+)*(?:(?:public|private|protected|static|final|abstract|synchronized|native|strictfp|default)\s+)*(?:<[^>]+>\s+)?([\w<>\[\],.?]+)\s+(\w+)\s*\(([^)]*)\)\s*(?:throws\s+[\w.,\s]+?)?\s*[{;]`)
	javaClassRe  = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|abstract|final|static|strictfp)\s+)*class\s+(\w+)(?:<[^>]*>)?(?:\s+extends\s+([\w<>.]+))?(?:\s+implements\s+([\w<>.,\s]+?))?\s*\{`)
)

func (c *JavaCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	return javaMethods(content, 0)
}

func javaMethods(content string, baseOffset int) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range javaMethodRe.FindAllStringSubmatchIndex(content, -1) {
		returnType := group(content, m, 1)
		name := group(content, m, 2)
		if isKeyword(name, "if", "for", "while", "switch", "catch", "return") {
			continue
		}
		if isKeyword(returnType, "return", "new", "else", "case", "class", "package", "import", "throw") {
			continue
		}
		functions = append(functions, domain.FunctionSignature{
			Name:       name,
			Parameters: javaParameters(group(content, m, 3)),
			ReturnType: returnType,
			Line:       lineOfOffset(content, m[0]) + baseOffset,
		})
	}
	return functions
}

func javaParameters(raw string) []domain.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.Parameter{}
	}
	params := []domain.Parameter{}
	for _, part := range splitTopLevel(raw, ',') {
		part = strings.TrimPrefix(strings.TrimSpace(part), "final ")
		if p, ok := typedParameter(part); ok {
			params = append(params, p)
		}
	}
	return params
}

func (c *JavaCapability) ExtractClasses(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo
	for _, m := range javaClassRe.FindAllStringSubmatchIndex(content, -1) {
		info := domain.ClassInfo{
			Name:        group(content, m, 1),
			BaseClasses: []string{},
			Methods:     []domain.FunctionSignature{},
			Line:        lineOfOffset(content, m[0]),
		}
		if base := group(content, m, 2); base != "" {
			info.BaseClasses = append(info.BaseClasses, base)
		}
		for _, impl := range strings.Split(group(content, m, 3), ",") {
			if impl = strings.TrimSpace(impl); impl != "" {
				info.BaseClasses = append(info.BaseClasses, impl)
			}
		}
		if body, bodyStart, ok := braceRegion(content, m[0]); ok {
			info.Methods = javaMethods(body, lineOfOffset(content, bodyStart)-1)
		}
		classes = append(classes, info)
	}
	return classes
}

func (c *JavaCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// JLS section 7.5: single-type and type-import-on-demand declarations, with
// the static form. Java imports always name packages, never files, so they
// are never relative.
var javaImportRe = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;`)

func (c *JavaCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		m := javaImportRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		deps = append(deps, domain.DependencyInfo{
			SourceFile:     filePath,
			ImportedModule: m[1],
			ImportType:     "import",
			LineNumber:     i + 1,
		})
	}
	return deps
}
