package usecase

import (
	"fmt"
	"strings"

	"weave/internal/adapter/fs"
	"weave/internal/adapter/lexer"
	"weave/internal/domain"
)

// SaveUseCase renders documents back into source text and writes them to
// disk.
type SaveUseCase struct {
	table *lexer.Table
}

func NewSaveUseCase(table *lexer.Table) *SaveUseCase {
	return &SaveUseCase{table: table}
}

// Render turns a document back into source text.
func (u *SaveUseCase) Render(doc domain.Document) (string, error) {
	if doc.Lang == "" || doc.Lang == langFallback {
		// Fallback documents carry no comment structure; their blocks
		// concatenate verbatim.
		var b strings.Builder
		for _, blk := range doc.Blocks {
			if blk.IsDoc() {
				return "", fmt.Errorf("document %s: doc block without a language", doc.Path)
			}
			b.WriteString(blk.Contents)
		}
		return b.String(), nil
	}

	lx, err := u.table.ByName(doc.Lang)
	if err != nil {
		return "", err
	}
	return lx.Serialize(doc.Blocks)
}

// Save renders the document and writes it to path.
func (u *SaveUseCase) Save(doc domain.Document, path string) error {
	source, err := u.Render(doc)
	if err != nil {
		return err
	}
	return fs.WriteFile(path, source)
}
