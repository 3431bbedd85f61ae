package analyzer

import (
	"log/slog"
	"regexp"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"codegraph/internal/domain"
)

// PythonCapability extracts Python structure from a real syntax tree rather
// than patterns: parameter defaults and annotations are the literal source
// text of the corresponding AST nodes, and docstrings follow PEP 257 (first
// statement of the body when it is a string literal).
//
// A fresh parser is created per call, so the capability is safe for
// concurrent use across files.
type PythonCapability struct {
	language *tree_sitter.Language
}

func NewPythonCapability() *PythonCapability {
	return &PythonCapability{language: tree_sitter.NewLanguage(tree_sitter_python.Language())}
}

func (c *PythonCapability) Language() string { return "python" }

// parse returns nil when content does not parse cleanly. Malformed input
// degrades to an empty structure for the file; it never aborts a batch.
func (c *PythonCapability) parse(src []byte) *tree_sitter.Tree {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(c.language); err != nil {
		slog.Error("python grammar rejected by parser", "error", err)
		return nil
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil
	}
	if tree.RootNode().HasError() {
		slog.Debug("python syntax error, returning empty structure")
		tree.Close()
		return nil
	}
	return tree
}

func nodeText(n *tree_sitter.Node, src []byte) string {
	return string(src[n.StartByte():n.EndByte()])
}

func (c *PythonCapability) ExtractFunctions(content string) []domain.FunctionSignature {
	src := []byte(content)
	tree := c.parse(src)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	var functions []domain.FunctionSignature
	c.walkFunctions(tree.RootNode(), src, &functions)
	return functions
}

// walkFunctions collects module-level and nested function definitions.
// Functions defined directly in a class body are methods and belong to
// ExtractClasses instead.
func (c *PythonCapability) walkFunctions(node *tree_sitter.Node, src []byte, out *[]domain.FunctionSignature) {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "function_definition":
			fn := c.parseFunction(child, src, nil)
			*out = append(*out, fn)
			if body := child.ChildByFieldName("body"); body != nil {
				c.walkFunctions(body, src, out)
			}
		case "decorated_definition":
			decorators, def := c.unwrapDecorated(child, src)
			if def != nil && def.Kind() == "function_definition" {
				fn := c.parseFunction(def, src, decorators)
				*out = append(*out, fn)
				if body := def.ChildByFieldName("body"); body != nil {
					c.walkFunctions(body, src, out)
				}
			}
		case "class_definition":
			// methods are collected by ExtractClasses
		default:
			c.walkFunctions(child, src, out)
		}
	}
}

func (c *PythonCapability) ExtractClasses(content string) []domain.ClassInfo {
	src := []byte(content)
	tree := c.parse(src)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	var classes []domain.ClassInfo
	c.walkClasses(tree.RootNode(), src, &classes)
	return classes
}

func (c *PythonCapability) walkClasses(node *tree_sitter.Node, src []byte, out *[]domain.ClassInfo) {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "class_definition":
			*out = append(*out, c.parseClass(child, src))
			if body := child.ChildByFieldName("body"); body != nil {
				c.walkClasses(body, src, out)
			}
		case "decorated_definition":
			if _, def := c.unwrapDecorated(child, src); def != nil && def.Kind() == "class_definition" {
				*out = append(*out, c.parseClass(def, src))
			}
		default:
			c.walkClasses(child, src, out)
		}
	}
}

func (c *PythonCapability) parseClass(node *tree_sitter.Node, src []byte) domain.ClassInfo {
	info := domain.ClassInfo{
		Line:        int(node.StartPosition().Row) + 1,
		BaseClasses: []string{},
		Methods:     []domain.FunctionSignature{},
	}
	if name := node.ChildByFieldName("name"); name != nil {
		info.Name = nodeText(name, src)
	}

	// superclasses is an argument_list; keyword arguments such as
	// metaclass= are not base classes.
	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := uint(0); i < supers.NamedChildCount(); i++ {
			arg := supers.NamedChild(i)
			switch arg.Kind() {
			case "identifier", "attribute", "subscript":
				info.BaseClasses = append(info.BaseClasses, nodeText(arg, src))
			}
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return info
	}
	info.Docstring = c.docstring(body, src)

	for i := uint(0); i < body.NamedChildCount(); i++ {
		stmt := body.NamedChild(i)
		switch stmt.Kind() {
		case "function_definition":
			info.Methods = append(info.Methods, c.parseFunction(stmt, src, nil))
		case "decorated_definition":
			if decorators, def := c.unwrapDecorated(stmt, src); def != nil && def.Kind() == "function_definition" {
				info.Methods = append(info.Methods, c.parseFunction(def, src, decorators))
			}
		}
	}
	return info
}

func (c *PythonCapability) parseFunction(node *tree_sitter.Node, src []byte, decorators []string) domain.FunctionSignature {
	fn := domain.FunctionSignature{
		Line:       int(node.StartPosition().Row) + 1,
		Parameters: []domain.Parameter{},
		Decorators: decorators,
	}
	if name := node.ChildByFieldName("name"); name != nil {
		fn.Name = nodeText(name, src)
	}

	// "async" is an anonymous token child of function_definition.
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == "async" {
			fn.IsAsync = true
			break
		}
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		fn.Parameters = c.parseParameters(params, src)
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		fn.ReturnType = nodeText(ret, src)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		fn.Docstring = c.docstring(body, src)
	}
	return fn
}

func (c *PythonCapability) parseParameters(params *tree_sitter.Node, src []byte) []domain.Parameter {
	out := []domain.Parameter{}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		switch p.Kind() {
		case "identifier":
			out = append(out, domain.Parameter{Name: nodeText(p, src)})
		case "typed_parameter":
			param := domain.Parameter{}
			if p.NamedChildCount() > 0 {
				param.Name = nodeText(p.NamedChild(0), src)
			}
			if t := p.ChildByFieldName("type"); t != nil {
				param.TypeHint = nodeText(t, src)
			}
			out = append(out, param)
		case "default_parameter", "typed_default_parameter":
			param := domain.Parameter{}
			if name := p.ChildByFieldName("name"); name != nil {
				param.Name = nodeText(name, src)
			}
			if t := p.ChildByFieldName("type"); t != nil {
				param.TypeHint = nodeText(t, src)
			}
			if v := p.ChildByFieldName("value"); v != nil {
				param.Default = nodeText(v, src)
			}
			out = append(out, param)
		case "list_splat_pattern", "dictionary_splat_pattern":
			out = append(out, domain.Parameter{Name: nodeText(p, src)})
		}
		// keyword_separator (*) and positional_separator (/) carry no name
	}
	return out
}

// docstring returns the PEP 257 docstring of a block: the first statement
// when it is a bare string literal. Multi-paragraph content is preserved,
// not truncated.
func (c *PythonCapability) docstring(body *tree_sitter.Node, src []byte) string {
	if body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Kind() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Kind() != "string" {
		return ""
	}

	var text strings.Builder
	for i := uint(0); i < str.NamedChildCount(); i++ {
		part := str.NamedChild(i)
		if part.Kind() == "string_content" {
			text.WriteString(nodeText(part, src))
		}
	}
	return text.String()
}

// unwrapDecorated returns the decorator names and the wrapped definition of
// a decorated_definition node. Decorator names are the plain identifier:
// @property stays property, @app.route("/") becomes app.route.
func (c *PythonCapability) unwrapDecorated(node *tree_sitter.Node, src []byte) ([]string, *tree_sitter.Node) {
	var decorators []string
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "decorator" {
			continue
		}
		name := strings.TrimPrefix(nodeText(child, src), "@")
		if idx := strings.IndexByte(name, '('); idx >= 0 {
			name = name[:idx]
		}
		decorators = append(decorators, strings.TrimSpace(name))
	}
	return decorators, node.ChildByFieldName("definition")
}

func (c *PythonCapability) ExtractComments(content string) []domain.CommentItem {
	return extractComments(content, pythonComments)
}

// Python Language Reference section 7.11: import_stmt. Relative imports
// keep their leading dots in the module string, and the dot count drives
// IsRelative.
var (
	pyImportRe = regexp.MustCompile(`^\s*import\s+([\w.]+(?:\s+as\s+\w+)?(?:\s*,\s*[\w.]+(?:\s+as\s+\w+)?)*)\s*$`)
	pyFromRe   = regexp.MustCompile(`^\s*from\s+(\.*)([\w.]*)\s+import\s+`)
)

func (c *PythonCapability) ExtractImports(filePath, content string) []domain.DependencyInfo {
	var deps []domain.DependencyInfo
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1

		if m := pyFromRe.FindStringSubmatch(line); m != nil {
			deps = append(deps, domain.DependencyInfo{
				SourceFile:     filePath,
				ImportedModule: m[1] + m[2],
				ImportType:     "from",
				IsRelative:     len(m[1]) > 0,
				LineNumber:     lineNum,
			})
			continue
		}

		if m := pyImportRe.FindStringSubmatch(line); m != nil {
			for _, part := range strings.Split(m[1], ",") {
				module := strings.TrimSpace(part)
				if idx := strings.Index(module, " as "); idx >= 0 {
					module = strings.TrimSpace(module[:idx])
				}
				if module == "" {
					continue
				}
				deps = append(deps, domain.DependencyInfo{
					SourceFile:     filePath,
					ImportedModule: module,
					ImportType:     "import",
					LineNumber:     lineNum,
				})
			}
		}
	}
	return deps
}
