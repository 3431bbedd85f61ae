package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"codegraph/config"
	"codegraph/internal/adapter/analyzer"
	"codegraph/internal/adapter/fs"
	"codegraph/internal/adapter/store"
	"codegraph/internal/domain"
	"codegraph/internal/usecase"
)

var analyzeDepth string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a source tree and build its dependency graph",
	Long: `Analyze every recognized source file under the given directory,
extract its functions, classes and comments, and build the import
dependency graph. Results are stored in .codegraph/analysis.db within
the target directory.

Examples:
  codegraph analyze .                  # Analyze current directory
  codegraph analyze --depth surface .  # Imports only, skip structure`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDepth, "depth", "", "analysis depth: surface or deep (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	depth := domain.Depth(cfg.Analyze.Depth)
	if analyzeDepth != "" {
		depth = domain.Depth(analyzeDepth)
	}
	if depth != domain.DepthSurface && depth != domain.DepthDeep {
		return fmt.Errorf("invalid depth %q: must be surface or deep", depth)
	}

	if err := config.EnsureStateDir(path); err != nil {
		return fmt.Errorf("failed to create .codegraph directory: %w", err)
	}

	dbPath := config.AnalysisDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open analysis store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Analyze.Includes, cfg.Analyze.Excludes)

	fmt.Printf("Scanning %s...\n", path)
	infos, err := walker.Walk(path)
	if err != nil {
		return fmt.Errorf("walk failed: %w", err)
	}

	files := make([]domain.SourceFile, 0, len(infos))
	for _, fi := range infos {
		content, err := fs.ReadFile(fi.Path)
		if err != nil {
			slog.Warn("skipping unreadable file", "path", fi.RelPath, "error", err)
			continue
		}
		files = append(files, domain.SourceFile{
			Path:     fi.RelPath,
			Content:  content,
			Language: fi.Language,
		})
	}

	uc := usecase.NewAnalyzeUseCase(analyzer.NewStructureExtractor(), analyzer.NewDependencyExtractor(), cfg.Analyze.Workers)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var initialized bool

	progress := func(processed, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Analyzing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := uc.Run(cmd.Context(), files, depth, progress)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear previous results: %w", err)
	}
	for _, a := range result.Analyses {
		if err := st.PutAnalysis(a); err != nil {
			return fmt.Errorf("failed to store analysis for %s: %w", a.FilePath, err)
		}
	}

	snapshot, err := result.Graph.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize graph: %w", err)
	}
	if err := st.PutGraph(snapshot); err != nil {
		return fmt.Errorf("failed to store graph: %w", err)
	}

	stats := result.Graph.Statistics()
	if err := st.PutStats(stats); err != nil {
		return fmt.Errorf("failed to store stats: %w", err)
	}

	var functions, classes, comments, imports int
	for _, a := range result.Analyses {
		functions += len(a.Structure.Functions)
		classes += len(a.Structure.Classes)
		comments += len(a.Structure.Comments)
		imports += len(a.Dependencies)
	}

	fmt.Printf("\nAnalysis complete:\n")
	fmt.Printf("  Files analyzed: %d\n", len(result.Analyses))
	fmt.Printf("  Functions:      %d\n", functions)
	fmt.Printf("  Classes:        %d\n", classes)
	fmt.Printf("  Comments:       %d\n", comments)
	fmt.Printf("  Imports found:  %d\n", imports)
	fmt.Printf("  Graph edges:    %d\n", stats.TotalEdges)
	fmt.Printf("  Import cycles:  %d\n", stats.CycleCount)

	fmt.Printf("\nResults stored at: %s\n", dbPath)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
