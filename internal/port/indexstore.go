package port

import "weave/internal/domain"

// DocRecord is one indexed document plus its coverage counters.
type DocRecord struct {
	Doc       domain.Document
	Blocks    int
	CodeLines int
	DocLines  int
}

// IndexStore persists per-document coverage records.
type IndexStore interface {
	PutDoc(rec DocRecord) error

	GetDoc(id string) (DocRecord, error)

	DeleteDoc(id string) error

	ListDocs() ([]DocRecord, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
