package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"codegraph/internal/domain"
)

var (
	bucketAnalyses = []byte("analyses")
	bucketGraph    = []byte("graph")
	bucketStats    = []byte("stats")

	keyGraph = []byte("snapshot")
	keyStats = []byte("graph_stats")
)

// BoltStore persists analysis results so the graph can be inspected and
// exported without re-analyzing the tree.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		return createBuckets(tx)
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func createBuckets(tx *bbolt.Tx) error {
	for _, b := range [][]byte{bucketAnalyses, bucketGraph, bucketStats} {
		if _, err := tx.CreateBucketIfNotExists(b); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", b, err)
		}
	}
	return nil
}

func (s *BoltStore) PutAnalysis(a domain.FileAnalysis) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(a)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketAnalyses).Put([]byte(a.FilePath), data)
	})
}

func (s *BoltStore) GetAnalysis(path string) (domain.FileAnalysis, error) {
	var a domain.FileAnalysis
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketAnalyses).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("analysis not found: %s", path)
		}
		return json.Unmarshal(data, &a)
	})
	return a, err
}

func (s *BoltStore) ListAnalyses() ([]domain.FileAnalysis, error) {
	var analyses []domain.FileAnalysis
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAnalyses).ForEach(func(k, v []byte) error {
			var a domain.FileAnalysis
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			analyses = append(analyses, a)
			return nil
		})
	})
	return analyses, err
}

// PutGraph stores a serialized graph snapshot as produced by ExportJSON.
func (s *BoltStore) PutGraph(snapshot []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGraph).Put(keyGraph, snapshot)
	})
}

func (s *BoltStore) GetGraph() ([]byte, error) {
	var snapshot []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketGraph).Get(keyGraph)
		if data == nil {
			return fmt.Errorf("no graph snapshot stored")
		}
		snapshot = append([]byte(nil), data...)
		return nil
	})
	return snapshot, err
}

func (s *BoltStore) PutStats(stats domain.GraphStats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (s *BoltStore) GetStats() (domain.GraphStats, error) {
	var stats domain.GraphStats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return fmt.Errorf("no graph stats stored")
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

// Clear drops every stored record; the next analyze run starts fresh.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketAnalyses, bucketGraph, bucketStats} {
			if err := tx.DeleteBucket(b); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
		}
		return createBuckets(tx)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
