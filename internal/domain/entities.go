package domain

// Depth controls how much structural extraction runs for a file.
type Depth string

const (
	// DepthSurface skips structural extraction entirely; callers get an
	// empty structure for every file regardless of language.
	DepthSurface Depth = "surface"
	// DepthDeep runs full function/class/comment extraction.
	DepthDeep Depth = "deep"
)

// SourceFile is the boundary input: content has already been read and
// decoded, and the language has already been detected by the caller.
type SourceFile struct {
	Path     string
	Content  string
	Language string
}

// Parameter is a single formal parameter in source order. Default holds the
// literal source text of the default expression, never an evaluated value.
type Parameter struct {
	Name     string `json:"name"`
	TypeHint string `json:"type_hint,omitempty"`
	Default  string `json:"default,omitempty"`
}

type FunctionSignature struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
	ReturnType string      `json:"return_type,omitempty"`
	IsAsync    bool        `json:"is_async"`
	Decorators []string    `json:"decorators,omitempty"`
	Docstring  string      `json:"docstring,omitempty"`
	Line       int         `json:"line"`
}

type ClassInfo struct {
	Name        string              `json:"name"`
	BaseClasses []string            `json:"base_classes"`
	Methods     []FunctionSignature `json:"methods"`
	Docstring   string              `json:"docstring,omitempty"`
	Line        int                 `json:"line"`
}

// CommentItem is a standalone source comment. Shebang and encoding
// declaration lines are never emitted as comments.
type CommentItem struct {
	Text string `json:"text"`
	Line int    `json:"line"`
	Type string `json:"type"` // "inline" or "block"
}

// FileStructure is the per-file result of structural extraction.
type FileStructure struct {
	Functions []FunctionSignature `json:"functions"`
	Classes   []ClassInfo         `json:"classes"`
	Comments  []CommentItem       `json:"comments"`
}

// DependencyInfo records one import/include/use statement as written.
// ImportedModule is the raw textual identifier; resolution to a file node
// happens later, at graph build time.
type DependencyInfo struct {
	SourceFile     string `json:"source_file"`
	ImportedModule string `json:"imported_module"`
	ImportType     string `json:"import_type"`
	IsRelative     bool   `json:"is_relative"`
	LineNumber     int    `json:"line_number"`
}

// FileNode is one file in the dependency graph. Dependencies lists the raw
// imported module strings (resolved or not); ImportedBy is populated only
// after the graph is built and contains file paths of resolved importers.
type FileNode struct {
	FilePath     string   `json:"file_path"`
	Language     string   `json:"language"`
	Dependencies []string `json:"dependencies"`
	ImportedBy   []string `json:"imported_by"`
}

// GraphStats summarizes a built dependency graph.
type GraphStats struct {
	TotalFiles    int     `json:"total_files"`
	TotalEdges    int     `json:"total_edges"`
	CycleCount    int     `json:"cycle_count"`
	SCCCount      int     `json:"scc_count"`
	AvgOutDegree  float64 `json:"avg_out_degree"`
	LeafFiles     int     `json:"leaf_files"`     // zero out-degree
	NeverImported int     `json:"never_imported"` // zero in-degree
}

// FileAnalysis bundles everything extracted from a single file.
type FileAnalysis struct {
	FilePath     string           `json:"file_path"`
	Language     string           `json:"language"`
	Structure    FileStructure    `json:"structure"`
	Dependencies []DependencyInfo `json:"dependencies"`
}
