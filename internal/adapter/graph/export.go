package graph

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

type exportNode struct {
	File     string `json:"file"`
	Language string `json:"language"`
}

type exportGraph struct {
	Nodes []exportNode `json:"nodes"`
	Edges []Edge       `json:"edges"`
}

// ExportJSON renders the built graph as {nodes, edges}.
func (g *DependencyGraph) ExportJSON() ([]byte, error) {
	out := exportGraph{Nodes: make([]exportNode, 0, len(g.order)), Edges: make([]Edge, 0, len(g.edges))}
	for _, p := range g.order {
		out.Nodes = append(out.Nodes, exportNode{File: p, Language: g.nodes[p].Language})
	}
	out.Edges = append(out.Edges, g.edges...)
	return json.MarshalIndent(out, "", "  ")
}

// FromJSON reconstructs a graph from ExportJSON output. The result carries
// the exported nodes and edges directly; raw dependency records are not
// part of the export and are lost in the round trip.
func FromJSON(data []byte) (*DependencyGraph, error) {
	var in exportGraph
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding graph export: %w", err)
	}

	g := New()
	for _, n := range in.Nodes {
		g.AddFile(n.File, n.Language)
	}
	for _, e := range in.Edges {
		if _, ok := g.nodes[e.Source]; !ok {
			continue
		}
		target, ok := g.nodes[e.Target]
		if !ok {
			continue
		}
		g.nodes[e.Source].Dependencies = append(g.nodes[e.Source].Dependencies, e.Target)
		target.ImportedBy = append(target.ImportedBy, e.Source)
		g.edges = append(g.edges, e)
	}
	return g, nil
}

// ExportMermaid renders a "graph TD" diagram with short synthetic node ids
// and file base names as labels.
func (g *DependencyGraph) ExportMermaid() string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	ids := make(map[string]string, len(g.order))
	for i, p := range g.order {
		id := fmt.Sprintf("n%d", i)
		ids[p] = id
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", id, path.Base(p))
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "    %s --> %s\n", ids[e.Source], ids[e.Target])
	}
	return b.String()
}

// ExportDOT renders GraphViz DOT text.
func (g *DependencyGraph) ExportDOT() string {
	var b strings.Builder
	b.WriteString("digraph dependencies {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=box];\n")

	for _, p := range g.order {
		fmt.Fprintf(&b, "    %q [label=%q];\n", p, path.Base(p))
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "    %q -> %q [label=%q];\n", e.Source, e.Target, e.ImportType)
	}
	b.WriteString("}\n")
	return b.String()
}
