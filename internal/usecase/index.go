package usecase

import (
	"errors"
	"fmt"
	"time"

	"weave/internal/adapter/fs"
	"weave/internal/domain"
	"weave/internal/port"
)

// ProgressFunc reports incremental progress while walking a file set.
type ProgressFunc func(processed, total int, currentFile string)

// IndexUseCase maintains the documentation coverage index.
type IndexUseCase struct {
	store  port.IndexStore
	walker port.Walker
	load   *LoadUseCase
}

func NewIndexUseCase(store port.IndexStore, walker port.Walker, load *LoadUseCase) *IndexUseCase {
	return &IndexUseCase{
		store:  store,
		walker: walker,
		load:   load,
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed int
	FilesSkipped int
	FilesDeleted int
	FilesUnknown int
	Errors       []string
}

// Index classifies files under root and records per-file coverage counters.
// Unchanged files (by modification time) are skipped; records for files
// that no longer exist are removed.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existing, err := u.store.ListDocs()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}
	existingByPath := make(map[string]port.DocRecord, len(existing))
	for _, rec := range existing {
		existingByPath[rec.Doc.Path] = rec
	}

	seenPaths := make(map[string]bool, len(files))

	for i, file := range files {
		seenPaths[file.Path] = true
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		if rec, ok := existingByPath[file.Path]; ok && rec.Doc.ModTime.Unix() >= file.ModTime {
			result.FilesSkipped++
			continue
		}

		if err := u.indexFile(file, result); err != nil {
			if errors.Is(err, ErrSkipped) {
				result.FilesUnknown++
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", file.Path, err))
			}
			continue
		}
		result.FilesIndexed++
	}

	// Drop records for files that disappeared.
	for path, rec := range existingByPath {
		if seenPaths[path] {
			continue
		}
		if err := u.store.DeleteDoc(rec.Doc.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
		} else {
			result.FilesDeleted++
		}
	}

	if err := u.updateStats(result); err != nil {
		return nil, err
	}

	return result, nil
}

// indexFile classifies one file and stores its coverage record.
func (u *IndexUseCase) indexFile(file port.FileInfo, result *IndexResult) error {
	source, err := fs.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := u.load.Classify(file.Path, source, time.Unix(file.ModTime, 0))
	if err != nil {
		return err
	}
	if doc.Lang == langFallback {
		result.FilesUnknown++
	}

	codeLines, docLines := doc.LineCounts()
	rec := port.DocRecord{
		Doc:       doc,
		Blocks:    len(doc.Blocks),
		CodeLines: codeLines,
		DocLines:  docLines,
	}
	if err := u.store.PutDoc(rec); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// updateStats recomputes the aggregate coverage from the stored records.
func (u *IndexUseCase) updateStats(result *IndexResult) error {
	recs, err := u.store.ListDocs()
	if err != nil {
		return fmt.Errorf("failed to list docs for stats: %w", err)
	}

	var stats domain.Stats
	for _, rec := range recs {
		stats.TotalDocs++
		stats.TotalBlocks += rec.Blocks
		stats.CodeLines += rec.CodeLines
		stats.DocLines += rec.DocLines
		if rec.Doc.Lang == langFallback {
			stats.UnknownFiles++
		}
	}
	if total := stats.CodeLines + stats.DocLines; total > 0 {
		stats.DocLineRatio = float64(stats.DocLines) / float64(total)
	}

	if err := u.store.UpdateStats(stats); err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}
	return nil
}
