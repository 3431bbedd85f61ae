package graph

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"codegraph/internal/domain"
)

// gonumView pairs a gonum directed graph with the bidirectional mapping
// between file paths and the int64 ids gonum works with.
type gonumView struct {
	directed *simple.DirectedGraph
	idByPath map[string]int64
	pathByID map[int64]string
}

func (g *DependencyGraph) toGonum() *gonumView {
	view := &gonumView{
		directed: simple.NewDirectedGraph(),
		idByPath: make(map[string]int64, len(g.order)),
		pathByID: make(map[int64]string, len(g.order)),
	}
	for i, p := range g.order {
		id := int64(i)
		view.idByPath[p] = id
		view.pathByID[id] = p
		view.directed.AddNode(simple.Node(id))
	}
	for _, e := range g.edges {
		from, to := view.idByPath[e.Source], view.idByPath[e.Target]
		if from != to {
			view.directed.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}
	return view
}

// DetectCycles returns every elementary cycle as a path of file paths; the
// implicit closing hop back to the first element is not repeated. An
// algorithmic failure on a pathological graph degrades to no cycles rather
// than propagating.
func (g *DependencyGraph) DetectCycles() (cycles [][]string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cycle detection failed", "panic", r)
			cycles = nil
		}
	}()

	if len(g.order) == 0 {
		return nil
	}
	view := g.toGonum()
	for _, cycle := range topo.DirectedCyclesIn(view.directed) {
		if len(cycle) < 2 {
			continue
		}
		paths := make([]string, 0, len(cycle)-1)
		for _, node := range cycle[:len(cycle)-1] { // last repeats the first
			paths = append(paths, view.pathByID[node.ID()])
		}
		cycles = append(cycles, paths)
	}
	return cycles
}

// StronglyConnectedComponents returns every SCC, trivial singletons
// included, each sorted for deterministic comparison.
func (g *DependencyGraph) StronglyConnectedComponents() (components [][]string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("SCC computation failed", "panic", r)
			components = nil
		}
	}()

	if len(g.order) == 0 {
		return nil
	}
	view := g.toGonum()
	for _, scc := range topo.TarjanSCC(view.directed) {
		paths := make([]string, 0, len(scc))
		for _, node := range scc {
			paths = append(paths, view.pathByID[node.ID()])
		}
		sort.Strings(paths)
		components = append(components, paths)
	}
	return components
}

// Statistics summarizes the built graph.
func (g *DependencyGraph) Statistics() domain.GraphStats {
	stats := domain.GraphStats{
		TotalFiles: len(g.order),
		TotalEdges: len(g.edges),
		CycleCount: len(g.DetectCycles()),
		SCCCount:   len(g.StronglyConnectedComponents()),
	}
	if stats.TotalFiles > 0 {
		stats.AvgOutDegree = float64(stats.TotalEdges) / float64(stats.TotalFiles)
	}

	outDegree := make(map[string]int, len(g.order))
	inDegree := make(map[string]int, len(g.order))
	for _, e := range g.edges {
		outDegree[e.Source]++
		inDegree[e.Target]++
	}
	for _, p := range g.order {
		if outDegree[p] == 0 {
			stats.LeafFiles++
		}
		if inDegree[p] == 0 {
			stats.NeverImported++
		}
	}
	return stats
}
