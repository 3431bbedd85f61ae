package graph

import (
	"path"
	"strings"

	"codegraph/internal/domain"
)

// Edge is a resolved dependency between two known files.
type Edge struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	ImportType string `json:"import_type"`
	LineNumber int    `json:"line_number"`
}

// DependencyGraph is a directed graph over analyzed files. Nodes are unique
// by file path; an edge exists only when an imported module string resolved
// to a known node. Unresolved imports stay visible in the raw dependency
// list but never become edges.
type DependencyGraph struct {
	nodes map[string]*domain.FileNode
	order []string // insertion order, for deterministic output
	deps  []domain.DependencyInfo
	edges []Edge
}

func New() *DependencyGraph {
	return &DependencyGraph{nodes: make(map[string]*domain.FileNode)}
}

// AddFile registers an analyzed file as a graph node. Re-adding an existing
// path only updates the language attribute.
func (g *DependencyGraph) AddFile(filePath, language string) {
	if node, ok := g.nodes[filePath]; ok {
		node.Language = language
		return
	}
	g.nodes[filePath] = &domain.FileNode{FilePath: filePath, Language: language}
	g.order = append(g.order, filePath)
}

// AddDependencies accumulates raw dependency records for the next Build.
func (g *DependencyGraph) AddDependencies(deps []domain.DependencyInfo) {
	g.deps = append(g.deps, deps...)
}

// Build recomputes the graph from the accumulated files and dependencies.
// It is a full rebuild: prior edges and imported-by lists are discarded, so
// building twice over the same data yields identical results.
func (g *DependencyGraph) Build() {
	g.edges = g.edges[:0]
	for _, p := range g.order {
		node := g.nodes[p]
		node.Dependencies = node.Dependencies[:0]
		node.ImportedBy = node.ImportedBy[:0]
	}

	edgeIndex := make(map[string]int)
	for _, dep := range g.deps {
		source, ok := g.nodes[dep.SourceFile]
		if !ok {
			continue
		}
		source.Dependencies = append(source.Dependencies, dep.ImportedModule)

		target, resolved := g.resolve(dep.ImportedModule)
		if !resolved || target == dep.SourceFile {
			continue
		}

		key := dep.SourceFile + "\x00" + target
		if i, exists := edgeIndex[key]; exists {
			// parallel import of the same file: keep the latest attributes
			g.edges[i].ImportType = dep.ImportType
			g.edges[i].LineNumber = dep.LineNumber
			continue
		}
		edgeIndex[key] = len(g.edges)
		g.edges = append(g.edges, Edge{
			Source:     dep.SourceFile,
			Target:     target,
			ImportType: dep.ImportType,
			LineNumber: dep.LineNumber,
		})
		g.nodes[target].ImportedBy = append(g.nodes[target].ImportedBy, dep.SourceFile)
	}
}

// resolutionSuffixes are the extension variants tried when an import string
// does not name a known file directly. Resolution is deliberately shallow:
// no package-manager lookup, only filename heuristics over known nodes.
var resolutionSuffixes = []string{"", ".py", ".js", ".ts", ".h", ".cpp"}

func (g *DependencyGraph) resolve(module string) (string, bool) {
	if _, ok := g.nodes[module]; ok {
		return module, true
	}

	trimmed := strings.TrimPrefix(module, "./")
	trimmed = strings.TrimLeft(trimmed, ".")
	if trimmed == "" {
		return "", false
	}

	variants := []string{trimmed}
	if !strings.Contains(trimmed, "/") && strings.Contains(trimmed, ".") {
		// dotted module path, python style
		variants = append(variants, strings.ReplaceAll(trimmed, ".", "/"))
	}

	for _, variant := range variants {
		for _, suffix := range resolutionSuffixes {
			key := variant + suffix
			if _, ok := g.nodes[key]; ok {
				return key, true
			}
			base := path.Base(key)
			for _, candidate := range g.order {
				if path.Base(candidate) == base {
					return candidate, true
				}
			}
		}
	}
	return "", false
}

// Nodes returns the graph nodes in insertion order.
func (g *DependencyGraph) Nodes() []domain.FileNode {
	nodes := make([]domain.FileNode, 0, len(g.order))
	for _, p := range g.order {
		nodes = append(nodes, *g.nodes[p])
	}
	return nodes
}

// Edges returns the resolved edges of the last Build.
func (g *DependencyGraph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Dependencies returns every accumulated raw dependency record, including
// the ones that never resolved to an edge.
func (g *DependencyGraph) Dependencies() []domain.DependencyInfo {
	return append([]domain.DependencyInfo(nil), g.deps...)
}
