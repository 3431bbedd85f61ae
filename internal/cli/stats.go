package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Show dependency graph statistics and import cycles",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	g, _, err := loadGraph(args)
	if err != nil {
		return err
	}

	stats := g.Statistics()
	fmt.Printf("Dependency graph:\n")
	fmt.Printf("  Files:          %d\n", stats.TotalFiles)
	fmt.Printf("  Edges:          %d\n", stats.TotalEdges)
	fmt.Printf("  Avg out-degree: %.2f\n", stats.AvgOutDegree)
	fmt.Printf("  Leaf files:     %d\n", stats.LeafFiles)
	fmt.Printf("  Never imported: %d\n", stats.NeverImported)
	fmt.Printf("  SCCs:           %d\n", stats.SCCCount)
	fmt.Printf("  Import cycles:  %d\n", stats.CycleCount)

	cycles := g.DetectCycles()
	if len(cycles) > 0 {
		fmt.Printf("\nCycles:\n")
		for _, cycle := range cycles {
			fmt.Printf("  %s\n", strings.Join(cycle, " -> "))
		}
	}
	return nil
}
