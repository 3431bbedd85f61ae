package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// GoCapability extracts Go structure with patterns. Struct types stand in
// for classes (no bases); methods attach to a struct via their receiver
// type. Multi-line signatures are not matched.
type GoCapability struct{}

func NewGoCapability() *GoCapability { return &GoCapability{} }

func (c *GoCapability) Language() string { return "go" }

var (
	goFuncRe   = regexp.MustCompile(`(?m)^func\s+(?:\(\s*\w+\s+\*?(\w+)\s*\)\s+)?(\w+)\s*\(([^)]*)\)\s*([^{]*)\{`)
	goStructRe = regexp.MustCompile(`(?m)^type\s+(\w+)\s+struct\s*\{`)

	goImportSingleRe = regexp.MustCompile(`^import\s+(?:[\w.]+\s+)?"([^"]+)"`)
	goImportLineRe   = regexp.MustCompile(`^\s*(?:[\w.]+\s+)?"([^"]+)"`)
)

func (c *GoCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for _, m := range goFuncRe.FindAllStringSubmatchIndex(content, -1) {
		functions = append(functions, c.parseFunc(content, m))
	}
	return functions
}

func (c *GoCapability) parseFunc(content string, m []int) domain.FunctionSignature {
	return domain.FunctionSignature{
		Name:       group(content, m, 2),
		Parameters: c.parameters(group(content, m, 3)),
		ReturnType: strings.TrimSpace(group(content, m, 4)),
		Line:       lineOfOffset(content, m[0]),
	}
}

// parameters handles "name type" pairs. In a grouped declaration such as
// (a, b int) only the last name carries the type; the earlier ones are
// reported without a hint.
func (c *GoCapability) parameters(raw string) []domain.Parameter {
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
		fields := strings.SplitN(part, " ", 2)
		p := domain.Parameter{Name: fields[0]}
		if len(fields) == 2 {
			p.TypeHint = strings.TrimSpace(fields[1])
		}
		params = append(params, p)
	}
	return params
}

func (c *GoCapability) ExtractClasses(content string) []domain.ClassInfo {
	methodsByRecv := make(map[string][]domain.FunctionSignature)
	for _, m := range goFuncRe.FindAllStringSubmatchIndex(content, -1) {
		if recv := group(content, m, 1); recv != "" {
			methodsByRecv[recv] = append(methodsByRecv[recv], c.parseFunc(content, m))
		}
	}

	var classes []domain.ClassInfo
	for _, m := range goStructRe.FindAllStringSubmatchIndex(content, -1) {
		name := group(content, m, 1)
		methods := methodsByRecv[name]
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

func (c *GoCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, cStyleComments)
}

// Go spec, Import declarations: the single-line form with an optional alias
// and the parenthesized block form. Only paths starting "./" are relative.
func (c *GoCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	inBlock := false
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if inBlock {
			if trimmed == ")" {
				inBlock = false
				continue
			}
			if m := goImportLineRe.FindStringSubmatch(line); m != nil {
				deps = append(deps, goImport(filePath, m[1], lineNum))
			}
			continue
		}

		if strings.HasPrefix(trimmed, "import (") {
			inBlock = true
			continue
		}
		if m := goImportSingleRe.FindStringSubmatch(trimmed); m != nil {
			deps = append(deps, goImport(filePath, m[1], lineNum))
		}
	}
	return deps
}

func goImport(filePath, path string, line int) domain.DependencyInfo {
	return domain.DependencyInfo{
		SourceFile:     filePath,
		ImportedModule: path,
		ImportType:     "import",
		IsRelative:     strings.HasPrefix(path, "./"),
		LineNumber:     line,
	}
}
