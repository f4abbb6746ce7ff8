package lexer

import (
	"fmt"
	"strings"

	"weave/internal/domain"
)

// Serialize renders a block sequence back to source text. Code blocks are
// emitted verbatim; doc blocks are re-wrapped in their recorded indent and
// comment delimiter line by line. Inline comments reproduce their source
// exactly; block comments are emitted in a canonical layout with the
// delimiters on the first and last content lines and continuation lines
// aligned under the comment text.
func (lx *Lexer) Serialize(blocks []domain.Block) (string, error) {
	var b strings.Builder
	for _, block := range blocks {
		if !block.IsDoc() {
			b.WriteString(block.Contents)
			continue
		}
		switch {
		case block.Delimiter == "":
			for _, line := range splitInclusive(block.Contents) {
				b.WriteString(block.Indent)
				b.WriteString(line)
			}
		case lx.isInline(block.Delimiter):
			writeInline(&b, block)
		default:
			closing, ok := lx.blockClosing(block.Delimiter)
			if !ok {
				return "", fmt.Errorf("unknown comment opening delimiter '%s'", block.Delimiter)
			}
			writeBlock(&b, block, closing)
		}
	}
	return b.String(), nil
}

func (lx *Lexer) isInline(delim string) bool {
	for _, tok := range lx.InlineComments {
		if tok == delim {
			return true
		}
	}
	return false
}

func (lx *Lexer) blockClosing(opening string) (string, bool) {
	for _, bd := range lx.BlockComments {
		if bd.Opening == opening {
			return bd.Closing, true
		}
	}
	return "", false
}

func writeInline(b *strings.Builder, block domain.Block) {
	for _, line := range splitInclusive(block.Contents) {
		b.WriteString(block.Indent)
		b.WriteString(block.Delimiter)
		if line != "" && line != "\n" && line != "\r\n" {
			b.WriteString(" ")
		}
		b.WriteString(line)
	}
}

func writeBlock(b *strings.Builder, block domain.Block, closing string) {
	lines := splitInclusive(block.Contents)
	// Continuation lines line up under the text that follows the opening
	// delimiter, which is where Classify dedents them from.
	pad := strings.Repeat(" ", len(block.Delimiter)+1)
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		hadNL := body != line
		switch {
		case i == 0:
			b.WriteString(block.Indent)
			b.WriteString(block.Delimiter)
			if body != "" {
				b.WriteString(" ")
			}
			b.WriteString(body)
		case body == "":
		default:
			b.WriteString(block.Indent)
			b.WriteString(pad)
			b.WriteString(body)
		}
		if i == len(lines)-1 {
			b.WriteString(" ")
			b.WriteString(closing)
		}
		if hadNL {
			b.WriteString("\n")
		}
	}
}

// splitInclusive splits s after every line terminator, keeping the
// terminator with its line. Unlike strings.SplitAfter it never yields a
// trailing empty element, and it splits the empty string into one empty
// line.
func splitInclusive(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
