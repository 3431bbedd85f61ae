package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// PHPCapability extracts PHP structure. Return types are taken from the
// ": Type" position after the parameter list when present on the same line.
type PHPCapability struct{}

func NewPHPCapability() *PHPCapability { return &PHPCapability{} }

func (c *PHPCapability) Language() string { return "php" }

var (
	phpFunctionRe = regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|static|abstract|final)\s+)*function\s+&?(\w+)\s*\(([^)]*)\)(?:\s*:\s*(\??[\w\\|]+))?`)
	phpClassRe    = regexp.MustCompile(`(?m)^[ \t]*(?:abstract\s+|final\s+)?class\s+(\w+)(?:\s+extends\s+([\w\\]+))?(?:\s+implements\s+([\w\\,\s]+?))?\s*\{?\s*$`)
)

func (c *PHPCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	return phpFunctions(content, 0)
}

func phpFunctions(content string, baseOffset int) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range phpFunctionRe.FindAllStringSubmatchIndex(content, -1) {
		functions = append(functions, domain.FunctionSignature{
			Name:       group(content, m, 1),
			Parameters: phpParameters(group(content, m, 2)),
			ReturnType: group(content, m, 3),
			Line:       lineOfOffset(content, m[0]) + baseOffset,
		})
	}
	return functions
}

// phpParameters reads "?Type $name = default" forms; the $-prefixed token
// is the name and anything before it the type hint.
func phpParameters(raw string) []domain.Parameter {
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
		p := domain.Parameter{}
		decl := part
		if head, def, ok := cutTopLevel(part, '='); ok {
			decl = strings.TrimSpace(head)
			p.Default = strings.TrimSpace(def)
		}
		tokens := strings.Fields(decl)
		for i, tok := range tokens {
			if strings.HasPrefix(tok, "$") || strings.HasPrefix(tok, "&$") || strings.HasPrefix(tok, "...$") {
				p.Name = tok
				p.TypeHint = strings.Join(tokens[:i], " ")
				break
			}
		}
		if p.Name == "" {
			p.Name = decl
		}
		params = append(params, p)
	}
	return params
}

func (c *PHPCapability) ExtractClasses(content string) []domain.ClassInfo {
	var classes []domain.ClassInfo
	for _, m := range phpClassRe.FindAllStringSubmatchIndex(content, -1) {
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
			info.Methods = phpFunctions(body, lineOfOffset(content, bodyStart)-1)
		}
		classes = append(classes, info)
	}
	return classes
}

func (c *PHPCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, phpComments)
}

// PHP manual, include/require language constructs and namespace importing
// (use). A required path is relative unless absolute or a URL; use always
// names a namespace and is never relative.
var (
	phpIncludeRe = regexp.MustCompile(`^\s*(require_once|include_once|require|include)\s*\(?\s*['"]([^'"]+)['"]`)
	phpUseRe     = regexp.MustCompile(`^\s*use\s+([\w\\]+)(?:\s+as\s+\w+)?\s*;`)
)

func (c *PHPCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := phpIncludeRe.FindStringSubmatch(line); m != nil {
			importType := strings.TrimSuffix(m[1], "_once")
			path := m[2]
			relative := !strings.HasPrefix(path, "/") && !strings.Contains(path, "://")
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: path,
				ImportType:     importType,
				IsRelative:     relative,
				LineNumber:     lineNum,
			})
			continue
		}

		if m := phpUseRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: m[1],
				ImportType:     "use",
				LineNumber:     lineNum,
			})
		}
	}
	return deps
}
