package memstore

import (
	"fmt"
	"sort"
	"sync"

	"codegraph/internal/domain"
)

// MemoryStore is an in-memory AnalysisStore. It backs tests and throwaway
// runs where persisting to disk is unwanted.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]domain.FileAnalysis
	snapshot []byte
	stats    *domain.GraphStats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[string]domain.FileAnalysis)}
}

func (s *MemoryStore) PutAnalysis(a domain.FileAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[a.FilePath] = a
	return nil
}

func (s *MemoryStore) GetAnalysis(path string) (domain.FileAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.analyses[path]
	if !ok {
		return domain.FileAnalysis{}, fmt.Errorf("analysis not found: %s", path)
	}
	return a, nil
}

func (s *MemoryStore) ListAnalyses() ([]domain.FileAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.analyses))
	for p := range s.analyses {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	analyses := make([]domain.FileAnalysis, 0, len(paths))
	for _, p := range paths {
		analyses = append(analyses, s.analyses[p])
	}
	return analyses, nil
}

func (s *MemoryStore) PutGraph(snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = append([]byte(nil), snapshot...)
	return nil
}

func (s *MemoryStore) GetGraph() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, fmt.Errorf("no graph snapshot stored")
	}
	return append([]byte(nil), s.snapshot...), nil
}

func (s *MemoryStore) PutStats(stats domain.GraphStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &stats
	return nil
}

func (s *MemoryStore) GetStats() (domain.GraphStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return domain.GraphStats{}, fmt.Errorf("no graph stats stored")
	}
	return *s.stats, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = make(map[string]domain.FileAnalysis)
	s.snapshot = nil
	s.stats = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
