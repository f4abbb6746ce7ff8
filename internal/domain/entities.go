package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// BlockKind discriminates code from documentation.
type BlockKind int

const (
	CodeBlock BlockKind = iota
	DocBlock
)

func (k BlockKind) String() string {
	if k == DocBlock {
		return "doc"
	}
	return "code"
}

func (k BlockKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *BlockKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "code":
		*k = CodeBlock
	case "doc":
		*k = DocBlock
	default:
		return fmt.Errorf("unknown block kind %q", s)
	}
	return nil
}

// Block is one classified span of a source file. For a doc block, Indent
// holds the literal whitespace preceding the comment delimiter on each of the
// block's source lines, Delimiter holds the comment-opening token, and
// Contents holds the comment text with the per-line indent/delimiter prefix
// stripped. For a code block, Indent and Delimiter are empty and Contents is
// the raw source text.
type Block struct {
	Kind      BlockKind `json:"kind"`
	Indent    string    `json:"indent"`
	Delimiter string    `json:"delimiter"`
	Contents  string    `json:"contents"`
}

// IsDoc reports whether the block holds documentation.
func (b Block) IsDoc() bool {
	return b.Kind == DocBlock
}

// Document is one classified source file.
type Document struct {
	ID      string
	Path    string
	Lang    string
	ModTime time.Time
	Blocks  []Block
}

// LineCounts tallies the document's lines by classification.
func (d Document) LineCounts() (code, doc int) {
	for _, b := range d.Blocks {
		n := countLines(b.Contents)
		if b.IsDoc() {
			doc += n
		} else {
			code += n
		}
	}
	return code, doc
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	if s[len(s)-1] != '\n' {
		n++
	}
	return n
}

// Stats aggregates the coverage index.
type Stats struct {
	TotalDocs    int     `json:"total_docs"`
	TotalBlocks  int     `json:"total_blocks"`
	CodeLines    int     `json:"code_lines"`
	DocLines     int     `json:"doc_lines"`
	DocLineRatio float64 `json:"doc_line_ratio"`
	UnknownFiles int     `json:"unknown_files"`
}
