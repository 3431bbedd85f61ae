package analyzer

import (
	"regexp"
	"strings"

	"codegraph/internal/domain"
)

// RubyCapability extracts Ruby structure. Method ownership is decided by
// indentation: defs between a class line and its matching end at the same
// indent belong to the class.
type RubyCapability struct{}

func NewRubyCapability() *RubyCapability { return &RubyCapability{} }

func (c *RubyCapability) Language() string { return "ruby" }

var (
	rubyDefRe   = regexp.MustCompile(`^([ \t]*)def\s+(?:self\.)?([\w?!=\[\]]+)\s*(?:\(([^)]*)\))?`)
	rubyClassRe = regexp.MustCompile(`^([ \t]*)class\s+([A-Z]\w*)(?:\s*<\s*([\w:]+))?`)
)

func (c *RubyCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	var functions []domain.FunctionSignature
	for i, line := range strings.Split(content, "\n") {
		if m := rubyDefRe.FindStringSubmatch(line); m != nil {
			functions = append(functions, domain.FunctionSignature{
				Name:       m[2],
				Parameters: rubyParameters(m[3]),
				Line:       i + 1,
			})
		}
	}
	return functions
}

func rubyParameters(raw string) []domain.Parameter {
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
		if name, def, ok := cutTopLevel(part, '='); ok {
			p.Name = strings.TrimSpace(name)
			p.Default = strings.TrimSpace(def)
		} else if name, def, ok := cutTopLevel(part, ':'); ok {
			// keyword argument, possibly with a default after the colon
			p.Name = strings.TrimSpace(name)
			p.Default = strings.TrimSpace(def)
		}
		params = append(params, p)
	}
	return params
}

func (c *RubyCapability) ExtractClasses(content string) []domain.ClassInfo {
	lines := strings.Split(content, "\n")
	var classes []domain.ClassInfo

	for i, line := range lines {
		m := rubyClassRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		info := domain.ClassInfo{
			Name:        m[2],
			BaseClasses: []string{},
			Methods:     []domain.FunctionSignature{},
			Line:        i + 1,
		}
		if m[3] != "" {
			info.BaseClasses = append(info.BaseClasses, m[3])
		}

		indent := m[1]
		for j := i + 1; j < len(lines); j++ {
			if strings.TrimRight(lines[j], " \t") == indent+"end" {
				break
			}
			if dm := rubyDefRe.FindStringSubmatch(lines[j]); dm != nil {
				info.Methods = append(info.Methods, domain.FunctionSignature{
					Name:       dm[2],
					Parameters: rubyParameters(dm[3]),
					Line:       j + 1,
				})
			}
		}
		classes = append(classes, info)
	}
	return classes
}

func (c *RubyCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, rubyComments)
}

// Kernel#require resolves against the load path (not relative);
// Kernel#require_relative and Kernel#load take paths relative to the
// requiring file.
var (
	rubyRequireRelRe = regexp.MustCompile(`^\s*require_relative\s+['"]([^'"]+)['"]`)
	rubyRequireRe    = regexp.MustCompile(`^\s*require\s+['"]([^'"]+)['"]`)
	rubyLoadRe       = regexp.MustCompile(`^\s*load\s+['"]([^'"]+)['"]`)
)

func (c *RubyCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		if m := rubyRequireRelRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile: filePath, ImportedModule: m[1],
				ImportType: "require_relative", IsRelative: true, LineNumber: lineNum,
			})
			continue
		}
		if m := rubyRequireRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile: filePath, ImportedModule: m[1],
				ImportType: "require", LineNumber: lineNum,
			})
			continue
		}
		if m := rubyLoadRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile: filePath, ImportedModule: m[1],
				ImportType: "load", IsRelative: true, LineNumber: lineNum,
			})
		}
	}
	return deps
}
