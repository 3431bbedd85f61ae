package analyzer

import (
	"log/slog"

	"codegraph/internal/domain"
	"codegraph/internal/port"
)

// StructureExtractor dispatches structural extraction to the capability
// registered for the file's language. An unsupported language is not an
// error; it yields the empty structure.
type StructureExtractor struct {
	registry map[string]port.LanguageCapability
}

func NewStructureExtractor() *StructureExtractor {
	return &StructureExtractor{registry: defaultRegistry()}
}

// AnalyzeFile extracts functions, classes and comments from content. At
// surface depth extraction is skipped entirely for every language.
func (e *StructureExtractor) AnalyzeFile(filePath, content, language string, depth domain.Depth) domain.FileStructure {
	if depth != domain.DepthDeep {
		return domain.FileStructure{}
	}

	capability, ok := e.registry[language]
	if !ok {
		slog.Debug("structure extraction skipped: unsupported language",
			"language", language, "file", filePath)
		return domain.FileStructure{}
	}

	return domain.FileStructure{
		Functions: capability.ExtractFunctions(content),
		Classes:   capability.ExtractClasses(content),
		Comments:  capability.ExtractComments(content),
	}
}

// defaultRegistry wires one capability per supported language.
func defaultRegistry() map[string]port.LanguageCapability {
	capabilities := []port.LanguageCapability{
		NewPythonCapability(),
		NewJavaScriptCapability("javascript"),
		NewJavaScriptCapability("typescript"),
		NewCFamilyCapability("c"),
		NewCFamilyCapability("cpp"),
		NewCSharpCapability(),
		NewGoCapability(),
		NewRustCapability(),
		NewJavaCapability(),
		NewRubyCapability(),
		NewPHPCapability(),
	}

	registry := make(map[string]port.LanguageCapability, len(capabilities))
	for _, c := range capabilities {
		registry[c.Language()] = c
	}
	return registry
}
