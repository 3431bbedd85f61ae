package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"codegraph/config"
	"codegraph/internal/adapter/graph"
	"codegraph/internal/adapter/store"
)

var graphFormat string

var graphCmd = &cobra.Command{
	Use:   "graph [path]",
	Short: "Export the stored dependency graph",
	Long: `Export the dependency graph produced by a previous analyze run.

Examples:
  codegraph graph .                  # JSON snapshot
  codegraph graph --format mermaid . # Mermaid flowchart
  codegraph graph --format dot .     # Graphviz DOT`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphFormat, "format", "f", "json", "output format: json, mermaid or dot")
	rootCmd.AddCommand(graphCmd)
}

func loadGraph(args []string) (*graph.DependencyGraph, []byte, error) {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid path: %w", err)
		}
	}

	st, err := store.NewBoltStore(config.AnalysisDBPath(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open analysis store (run analyze first): %w", err)
	}
	defer st.Close()

	snapshot, err := st.GetGraph()
	if err != nil {
		return nil, nil, fmt.Errorf("no stored graph (run analyze first): %w", err)
	}

	g, err := graph.FromJSON(snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode graph snapshot: %w", err)
	}
	return g, snapshot, nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	g, snapshot, err := loadGraph(args)
	if err != nil {
		return err
	}

	switch graphFormat {
	case "json":
		fmt.Println(string(snapshot))
	case "mermaid":
		fmt.Println(g.ExportMermaid())
	case "dot":
		fmt.Println(g.ExportDOT())
	default:
		return fmt.Errorf("unknown format %q: must be json, mermaid or dot", graphFormat)
	}
	return nil
}
