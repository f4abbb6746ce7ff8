package store

import (
	"path/filepath"
	"testing"
	"time"

	"weave/internal/domain"
	"weave/internal/port"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestPutGetDoc(t *testing.T) {
	st := newTestStore(t)

	rec := port.DocRecord{
		Doc: domain.Document{
			ID:      "doc1",
			Path:    "/src/app.py",
			Lang:    "python",
			ModTime: time.Unix(1700000000, 0),
		},
		Blocks:    4,
		CodeLines: 12,
		DocLines:  3,
	}
	if err := st.PutDoc(rec); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetDoc("doc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Doc.Path != rec.Doc.Path || got.Doc.Lang != rec.Doc.Lang {
		t.Errorf("unexpected document: %+v", got.Doc)
	}
	if !got.Doc.ModTime.Equal(rec.Doc.ModTime) {
		t.Errorf("expected ModTime %v, got %v", rec.Doc.ModTime, got.Doc.ModTime)
	}
	if got.Blocks != 4 || got.CodeLines != 12 || got.DocLines != 3 {
		t.Errorf("unexpected counters: %+v", got)
	}

	if _, err := st.GetDoc("missing"); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestListAndDeleteDocs(t *testing.T) {
	st := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		rec := port.DocRecord{Doc: domain.Document{ID: id, Path: "/src/" + id, Lang: "go"}}
		if err := st.PutDoc(rec); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := st.ListDocs()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}

	if err := st.DeleteDoc("b"); err != nil {
		t.Fatal(err)
	}
	recs, err = st.ListDocs()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 records after delete, got %d", len(recs))
	}
}

func TestStatsRoundTrip(t *testing.T) {
	st := newTestStore(t)

	// A fresh store reports zeroed stats.
	stats, err := st.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalDocs != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	want := domain.Stats{
		TotalDocs:    5,
		TotalBlocks:  20,
		CodeLines:    100,
		DocLines:     25,
		DocLineRatio: 0.2,
		UnknownFiles: 1,
	}
	if err := st.UpdateStats(want); err != nil {
		t.Fatal(err)
	}

	stats, err = st.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}
