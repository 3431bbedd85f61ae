package analyzer

import (
	"log/slog"

	"codegraph/internal/domain"
	"codegraph/internal/port"
)

// DependencyExtractor dispatches import extraction to the capability
// registered for the file's language.
type DependencyExtractor struct {
	registry map[string]port.LanguageCapability
}

func NewDependencyExtractor() *DependencyExtractor {
	return &DependencyExtractor{registry: defaultRegistry()}
}

// AnalyzeFile returns every import/include/use statement found in content.
// Unsupported languages yield an empty list, never an error.
func (e *DependencyExtractor) AnalyzeFile(filePath, content, language string) []domain.DependencyInfo {
	capability, ok := e.registry[language]
	if !ok {
		slog.Warn("dependency extraction skipped: unsupported language",
			"language", language, "file", filePath)
		return nil
	}
	return capability.ExtractImports(filePath, content)
}
