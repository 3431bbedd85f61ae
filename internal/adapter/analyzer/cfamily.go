package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// CFamilyCapability covers C and C++ with one rule set; the class rules
// simply never fire for C input. Constructors and destructors are not
// matched (they have no return type position) and default argument capture
// only sees defaults written on the signature line.
type CFamilyCapability struct {
	lang string
}

func NewCFamilyCapability(lang string) *CFamilyCapability {
	return &CFamilyCapability{lang: lang}
}

func (c *CFamilyCapability) Language() string { return c.lang }

var (
	cFunctionRe = regexp.MustCompile(`(?m)^[ \t]*((?:[\w:~<>,]+[*&\s]+)+)([\w:~]+)\s*\(([^)]*)\)\s*(?:const\s*)?(?:noexcept\s*)?(?:override\s*)?[{;]`)
	cClassRe    = regexp.MustCompile(`(?m)^[ \t]*(?:class|struct)\s+(\w+)\s*(?:final\s*)?(?::\s*([^{]+))?\{`)
)

func (c *CFamilyCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	return cFamilyFunctions(content, 0)
}

func cFamilyFunctions(content string, baseOffset int) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range cFunctionRe.FindAllStringSubmatchIndex(content, -1) {
		returnType := strings.Join(strings.Fields(group(content, m, 1)), " ")
		name := group(content, m, 2)
		if isKeyword(name, "if", "for", "while", "switch", "return", "sizeof", "catch") {
			continue
		}
		if strings.Contains(returnType, "return") || strings.Contains(returnType, "else") {
			continue
		}
		functions = append(functions, domain.FunctionSignature{
			Name:       name,
			Parameters: cFamilyParameters(group(content, m, 3)),
			ReturnType: returnType,
			Line:       lineOfOffset(content, m[0]) + baseOffset,
		})
	}
	return functions
}

func cFamilyParameters(raw string) []domain.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "void" {
		return []domain.Parameter{}
	}
	params := []domain.Parameter{}
	for _, part := range splitTopLevel(raw, ',') {
		if p, ok := typedParameter(part); ok {
			params = append(params, p)
		}
	}
	return params
}

func (c *CFamilyCapability) ExtractClasses(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo
	for _, m := range cClassRe.FindAllStringSubmatchIndex(content, -1) {
		info := domain.ClassInfo{
			Name:        group(content, m, 1),
			BaseClasses: []string{},
			Methods:     []domain.FunctionSignature{},
			Line:        lineOfOffset(content, m[0]),
		}
		for _, base := range strings.Split(group(content, m, 2), ",") {
			base = strings.TrimSpace(base)
			for _, spec := range []string{"public ", "protected ", "private ", "virtual "} {
				base = strings.TrimPrefix(base, spec)
			}
			if base = strings.TrimSpace(base); base != "" {
				info.BaseClasses = append(info.BaseClasses, base)
			}
		}

		if body, bodyStart, ok := braceRegion(content, m[0]); ok {
			info.Methods = cFamilyFunctions(body, lineOfOffset(content, bodyStart)-1)
		}
		classes = append(classes, info)
	}
	return classes
}

func (c *CFamilyCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// ISO/IEC 9899:2018 section 6.10.2: the "q-char" form #include "file.h"
// searches locally (relative), the <h-char> form names a system header.
var cIncludeRe = regexp.MustCompile(`^\s*#\s*include\s*(?:"([^"]+)"|<([^>]+)>)`)

func (c *CFamilyCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		m := cIncludeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		module, relative := m[1], true
		if module == "" {
			module, relative = m[2], false
		}
		deps = append(deps, domain.DependencyInfo{
			SourceFile:     filePath,
			ImportedModule: module,
			ImportType:     "include",
			IsRelative:     relative,
			LineNumber:     i + 1,
		})
	}
	return deps
}
