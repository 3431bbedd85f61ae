package port

import "codegraph/internal/domain"

type AnalysisStore interface {
	PutAnalysis(a domain.FileAnalysis) error

	GetAnalysis(path string) (domain.FileAnalysis, error)

	ListAnalyses() ([]domain.FileAnalysis, error)

	PutGraph(snapshot []byte) error

	GetGraph() ([]byte, error)

	PutStats(stats domain.GraphStats) error

	GetStats() (domain.GraphStats, error)

	Clear() error

	Close() error
}
