package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"weave/internal/adapter/fs"
	"weave/internal/adapter/lexer"
	"weave/internal/domain"
)

// ErrSkipped marks files whose language could not be resolved when the
// fallback policy is "skip".
var ErrSkipped = errors.New("file skipped")

// langFallback names documents classified under the "code" fallback policy;
// they hold a single code block and no documentation.
const langFallback = "text"

// LoadUseCase reads source files and classifies them into code and doc
// blocks.
type LoadUseCase struct {
	table    *lexer.Table
	language string
	fallback string
}

// NewLoadUseCase creates a new load use case. language forces a language for
// every file ("auto" resolves per file); fallback is the unknown-language
// policy, "code" or "skip".
func NewLoadUseCase(table *lexer.Table, language, fallback string) *LoadUseCase {
	return &LoadUseCase{
		table:    table,
		language: language,
		fallback: fallback,
	}
}

// Resolve picks the lexer for a file: a forced language wins, then an
// in-file directive on the first line, then the file extension.
func (u *LoadUseCase) Resolve(path, source string) (*lexer.Lexer, error) {
	if u.language != "" && u.language != "auto" {
		return u.table.ByName(u.language)
	}
	if name, ok := lexer.Directive(source); ok {
		return u.table.ByName(name)
	}
	return u.table.Lookup(path)
}

// Classify builds a document from source text. Files of unknown language
// become a single code block or are skipped, per the fallback policy.
func (u *LoadUseCase) Classify(path, source string, modTime time.Time) (domain.Document, error) {
	doc := domain.Document{
		ID:      generateDocID(path),
		Path:    path,
		ModTime: modTime,
	}

	lx, err := u.Resolve(path, source)
	if err != nil {
		if !errors.Is(err, lexer.ErrUnknownLanguage) {
			return domain.Document{}, err
		}
		if u.fallback != "code" {
			return domain.Document{}, fmt.Errorf("%w: %s", ErrSkipped, path)
		}
		doc.Lang = langFallback
		if source != "" {
			doc.Blocks = []domain.Block{{Kind: domain.CodeBlock, Contents: source}}
		}
		return doc, nil
	}

	doc.Lang = lx.Name
	doc.Blocks = lx.Classify(source)
	return doc, nil
}

// Load reads and classifies a file from disk.
func (u *LoadUseCase) Load(path string) (domain.Document, error) {
	source, err := fs.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to read file: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, err
	}
	return u.Classify(path, source, info.ModTime())
}

// generateDocID creates a unique ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
