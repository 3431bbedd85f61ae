package port

import "codegraph/internal/domain"

// LanguageCapability is the per-language extraction contract. One
// implementation exists per supported language; lookups for anything else
// fall through to the unsupported default.
type LanguageCapability interface {
	Language() string

	ExtractFunctions(content string) []domain.FunctionSignature

	ExtractClasses(content string) []domain.ClassInfo

	ExtractComments(content string) []domain.CommentItem

	ExtractImports(filePath, content string) []domain.DependencyInfo
}

// StructureAnalyzer extracts functions, classes and comments from a single
// already-loaded file. Implementations are stateless per call.
type StructureAnalyzer interface {
	AnalyzeFile(filePath, content, language string, depth domain.Depth) domain.FileStructure
}

// DependencyAnalyzer extracts import statements from a single file.
type DependencyAnalyzer interface {
	AnalyzeFile(filePath, content, language string) []domain.DependencyInfo
}
