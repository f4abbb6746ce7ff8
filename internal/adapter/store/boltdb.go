package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"weave/internal/domain"
	"weave/internal/port"
)

var (
	bucketDocs  = []byte("docs")
	bucketStats = []byte("stats")
	keyStats    = []byte("coverage_stats")
)

// BoltStore persists the documentation coverage index in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type docMeta struct {
	Path      string `json:"path"`
	ModTime   int64  `json:"mod_time"`
	Lang      string `json:"lang"`
	Blocks    int    `json:"blocks"`
	CodeLines int    `json:"code_lines"`
	DocLines  int    `json:"doc_lines"`
}

func recordFromMeta(id string, meta docMeta) port.DocRecord {
	return port.DocRecord{
		Doc: domain.Document{
			ID:      id,
			Path:    meta.Path,
			ModTime: time.Unix(meta.ModTime, 0),
			Lang:    meta.Lang,
		},
		Blocks:    meta.Blocks,
		CodeLines: meta.CodeLines,
		DocLines:  meta.DocLines,
	}
}

func (s *BoltStore) PutDoc(rec port.DocRecord) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := docMeta{
			Path:      rec.Doc.Path,
			ModTime:   rec.Doc.ModTime.Unix(),
			Lang:      rec.Doc.Lang,
			Blocks:    rec.Blocks,
			CodeLines: rec.CodeLines,
			DocLines:  rec.DocLines,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketDocs).Put([]byte(rec.Doc.ID), data)
	})
}

func (s *BoltStore) GetDoc(id string) (port.DocRecord, error) {
	var rec port.DocRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document not found: %s", id)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		rec = recordFromMeta(id, meta)
		return nil
	})
	return rec, err
}

func (s *BoltStore) DeleteDoc(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).Delete([]byte(id))
	})
}

func (s *BoltStore) ListDocs() ([]port.DocRecord, error) {
	var recs []port.DocRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			recs = append(recs, recordFromMeta(string(k), meta))
			return nil
		})
	})
	return recs, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
