package lexer

import "weave/internal/domain"

// mergeDocBlocks concatenates adjacent blocks of the same kind that share an
// indent and delimiter, so consecutive comment lines form one doc block and
// back-to-back code spans form one code block. The pass is idempotent.
func mergeDocBlocks(blocks []domain.Block) []domain.Block {
	if len(blocks) < 2 {
		return blocks
	}
	out := blocks[:1]
	for _, b := range blocks[1:] {
		prev := &out[len(out)-1]
		if b.Kind == prev.Kind &&
			b.Indent == prev.Indent && b.Delimiter == prev.Delimiter {
			prev.Contents += b.Contents
			continue
		}
		out = append(out, b)
	}
	return out
}
