package usecase

import (
	"errors"
	"fmt"
	"time"

	"weave/internal/adapter/fs"
	"weave/internal/port"
)

// CheckResult contains the results of a round-trip check.
type CheckResult struct {
	FilesChecked int
	FilesSkipped int
	// Rewrites lists files whose canonical rendering differs from the
	// bytes on disk. Inline comments and code always round trip; a block
	// comment laid out in a non-canonical way serializes differently.
	Rewrites []string
	Errors   []string
}

// CheckUseCase verifies that classifying and re-serializing each file
// reproduces its on-disk contents.
type CheckUseCase struct {
	walker port.Walker
	load   *LoadUseCase
	save   *SaveUseCase
}

func NewCheckUseCase(walker port.Walker, load *LoadUseCase, save *SaveUseCase) *CheckUseCase {
	return &CheckUseCase{
		walker: walker,
		load:   load,
		save:   save,
	}
}

// Check walks root and round-trips every matching file. With write set,
// files whose canonical rendering differs are rewritten in place.
func (u *CheckUseCase) Check(root string, write bool, progress ProgressFunc) (*CheckResult, error) {
	result := &CheckResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	for i, file := range files {
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		source, err := fs.ReadFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}

		doc, err := u.load.Classify(file.Path, source, time.Unix(file.ModTime, 0))
		if err != nil {
			if errors.Is(err, ErrSkipped) {
				result.FilesSkipped++
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to classify %s: %v", file.Path, err))
			}
			continue
		}

		rendered, err := u.save.Render(doc)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to render %s: %v", file.Path, err))
			continue
		}

		result.FilesChecked++
		if rendered != source {
			result.Rewrites = append(result.Rewrites, file.Path)
			if write {
				if err := u.save.Save(doc, file.Path); err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("failed to write %s: %v", file.Path, err))
				}
			}
		}
	}

	return result, nil
}
