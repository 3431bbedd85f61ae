package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// JavaScriptCapability covers both JavaScript and TypeScript with the same
// rule set; TypeScript additionally splits `name: type` parameter
// annotations. Return types are intentionally never extracted for either
// language; the pattern approach cannot distinguish them reliably and
// downstream consumers depend on their absence.
type JavaScriptCapability struct {
	lang  string
	typed bool
}

func NewJavaScriptCapability(lang string) *JavaScriptCapability {
	return &JavaScriptCapability{lang: lang, typed: lang == "typescript"}
}

func (c *JavaScriptCapability) Language() string { return c.lang }

var (
	jsFunctionRe = regexp.MustCompile(`(?m)^[ \t]*(?:export\s+(?:default\s+)?)?(async\s+)?function\s*\*?\s*([A-Za-z_$][\w$]*)\s*\(([^)]*)\)`)
	jsArrowRe    = regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(async\s+)?(?:\(([^)]*)\)|([A-Za-z_$][\w$]*))\s*=>`)
	jsFuncExprRe = regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(async\s+)?function\s*\*?\s*\(([^)]*)\)`)
	jsClassRe    = regexp.MustCompile(`(?m)^[ \t]*(?:export\s+(?:default\s+)?)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)(?:\s+extends\s+([\w$.]+))?(?:\s+implements\s+([\w$.,\s]+?))?\s*\{`)
	jsMethodRe   = regexp.MustCompile(`(?m)^[ \t]*(?:static\s+)?(async\s+)?(?:get\s+|set\s+)?\*?\s*([A-Za-z_$#][\w$]*)\s*\(([^)]*)\)\s*(?::[^{\n]+)?\{`)
)

func (c *JavaScriptCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	var functions []domain.FunctionSignature

	for _, m := range jsFunctionRe.FindAllStringSubmatchIndex(content, -1) {
		functions = append(functions, domain.FunctionSignature{
			Name:       group(content, m, 2),
			Parameters: c.parameters(group(content, m, 3)),
			IsAsync:    group(content, m, 1) != "",
			Line:       lineOfOffset(content, m[0]),
		})
	}

	for _, m := range jsArrowRe.FindAllStringSubmatchIndex(content, -1) {
		params := group(content, m, 3)
		if params == "" && group(content, m, 4) != "" {
			params = group(content, m, 4) // single bare parameter
		}
		functions = append(functions, domain.FunctionSignature{
			Name:       group(content, m, 1),
			Parameters: c.parameters(params),
			IsAsync:    group(content, m, 2) != "",
			Line:       lineOfOffset(content, m[0]),
		})
	}

	for _, m := range jsFuncExprRe.FindAllStringSubmatchIndex(content, -1) {
		functions = append(functions, domain.FunctionSignature{
			Name:       group(content, m, 1),
			Parameters: c.parameters(group(content, m, 3)),
			IsAsync:    group(content, m, 2) != "",
			Line:       lineOfOffset(content, m[0]),
		})
	}

	return functions
}

func (c *JavaScriptCapability) ExtractClasses(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo

	for _, m := range jsClassRe.FindAllStringSubmatchIndex(content, -1) {
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
			for _, mm := range jsMethodRe.FindAllStringSubmatchIndex(body, -1) {
				name := group(body, mm, 2)
				if isKeyword(name, "if", "for", "while", "switch", "catch", "return", "function", "new") {
					continue
				}
				info.Methods = append(info.Methods, domain.FunctionSignature{
					Name:       name,
					Parameters: c.parameters(group(body, mm, 3)),
					IsAsync:    group(body, mm, 1) != "",
					Line:       lineOfOffset(content, bodyStart+mm[0]),
				})
			}
		}
		classes = append(classes, info)
	}

	return classes
}

// parameters splits a raw parameter list. Destructuring patterns keep their
// literal text as the name.
func (c *JavaScriptCapability) parameters(raw string) []domain.Parameter {
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
		p := domain.Parameter{Name: part}
		if c.typed {
			if name, rest, ok := cutTopLevel(part, ':'); ok {
				p.Name = strings.TrimSpace(name)
				if hint, def, hasDefault := cutTopLevel(rest, '='); hasDefault {
					p.TypeHint = strings.TrimSpace(hint)
					p.Default = strings.TrimSpace(def)
				} else {
					p.TypeHint = strings.TrimSpace(rest)
				}
				p.Name = strings.TrimSuffix(p.Name, "?")
				params = append(params, p)
				continue
			}
		}
		if name, def, ok := cutTopLevel(part, '='); ok {
			p.Name = strings.TrimSpace(name)
			p.Default = strings.TrimSpace(def)
		}
		p.Name = strings.TrimSuffix(p.Name, "?")
		params = append(params, p)
	}
	return params
}

func (c *JavaScriptCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// ECMA-262 section 16.2.2 (ImportDeclaration) for ES modules plus the
// CommonJS require() form. A module specifier starting with "." or "/" is
// a relative (project-local) import.
var (
	jsImportRe  = regexp.MustCompile(`^\s*import\s+(?:type\s+)?(?:[\w{}$*,\s]+\s+from\s+)?['"]([^'"]+)['"]`)
	jsRequireRe = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)
)

func (c *JavaScriptCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := jsImportRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: m[1],
				ImportType:     "import",
				IsRelative:     isRelativeModule(m[1]),
				LineNumber:     lineNum,
			})
			continue
		}

		for _, m := range jsRequireRe.FindAllStringSubmatch(line, -1) {
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: m[1],
				ImportType:     "require",
				IsRelative:     isRelativeModule(m[1]),
				LineNumber:     lineNum,
			})
		}
	}
	return deps
}

func isRelativeModule(module string) bool {
	return strings.HasPrefix(module, ".") || strings.HasPrefix(module, "/")
}
