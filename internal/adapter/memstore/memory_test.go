package memstore

import (
	"testing"

	"codegraph/internal/domain"
	"codegraph/internal/port"
)

var _ port.AnalysisStore = (*MemoryStore)(nil)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()

	a := domain.FileAnalysis{FilePath: "b.py", Language: "python"}
	if err := st.PutAnalysis(a); err != nil {
		t.Fatalf("PutAnalysis: %v", err)
	}
	if err := st.PutAnalysis(domain.FileAnalysis{FilePath: "a.py", Language: "python"}); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetAnalysis("b.py")
	if err != nil || got.FilePath != "b.py" {
		t.Errorf("GetAnalysis = %+v, %v", got, err)
	}

	analyses, err := st.ListAnalyses()
	if err != nil {
		t.Fatalf("ListAnalyses: %v", err)
	}
	if len(analyses) != 2 || analyses[0].FilePath != "a.py" {
		t.Errorf("analyses = %+v, want sorted by path", analyses)
	}

	if err := st.PutStats(domain.GraphStats{TotalFiles: 2}); err != nil {
		t.Fatal(err)
	}
	stats, err := st.GetStats()
	if err != nil || stats.TotalFiles != 2 {
		t.Errorf("stats = %+v, %v", stats, err)
	}

	if err := st.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := st.GetAnalysis("b.py"); err == nil {
		t.Error("analysis survived Clear")
	}
	if _, err := st.GetStats(); err == nil {
		t.Error("stats survived Clear")
	}
}
