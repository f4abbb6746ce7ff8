package lexer

import (
	"bytes"
	"strings"

	"weave/internal/domain"
)

// Classify splits source into an alternating sequence of code and doc
// blocks. The scan is byte-exact: concatenating the extents it consumes
// reproduces the input, so code blocks and inline doc blocks round trip
// through Serialize unchanged. Line terminators are never rewritten; use
// NormalizeEndings first when that is wanted.
func (lx *Lexer) Classify(source string) []domain.Block {
	if source == "" {
		return nil
	}
	if lx.DocOnly {
		return []domain.Block{{Kind: domain.DocBlock, Contents: source}}
	}

	var blocks []domain.Block
	var code bytes.Buffer

	flushCode := func() {
		if code.Len() > 0 {
			blocks = append(blocks, domain.Block{
				Kind:     domain.CodeBlock,
				Contents: code.String(),
			})
			code.Reset()
		}
	}

	// currentIndent returns the text of the pending code buffer after its
	// last line terminator and whether that text is all whitespace. A doc
	// block may only begin when it is; the text then becomes the block's
	// indent.
	currentIndent := func() (string, bool) {
		buf := code.String()
		last := buf
		if i := strings.LastIndexByte(buf, '\n'); i >= 0 {
			last = buf[i+1:]
		}
		return last, strings.TrimSpace(last) == ""
	}

	rest := source
	for rest != "" {
		loc := lx.matcher.FindStringSubmatchIndex(rest)
		if loc == nil {
			code.WriteString(rest)
			break
		}

		var entry matcherEntry
		found := false
		for g := 1; 2*g+1 < len(loc); g++ {
			if loc[2*g] < 0 {
				continue
			}
			if e, ok := lx.entries[g]; ok {
				entry, found = e, true
				break
			}
		}
		if !found {
			// Compile registers an entry for every alternative, so a match
			// without one is a programming error.
			panic("lexer: matched delimiter without a dispatch entry")
		}

		code.WriteString(rest[:loc[0]])
		token := rest[loc[0]:loc[1]]
		after := rest[loc[1]:]

		switch entry.kind {
		case tokenInline:
			body := inlineExtent(after, lx.LineContinuation)
			if indent, ok := currentIndent(); ok && docStart(after) {
				code.Truncate(code.Len() - len(indent))
				flushCode()
				blocks = append(blocks, domain.Block{
					Kind:      domain.DocBlock,
					Indent:    indent,
					Delimiter: token,
					Contents:  stripOneSpace(body),
				})
			} else {
				code.WriteString(token)
				code.WriteString(body)
			}
			rest = after[len(body):]

		case tokenBlockOpen:
			close := strings.Index(after, entry.closing)
			if close < 0 {
				code.WriteString(token)
				code.WriteString(after)
				rest = ""
				continue
			}
			inner := after[:close]
			// A nested opening delimiter means this opener does not pair
			// with the nearest close. Pass the opener through as code and
			// rescan from the nested comment.
			if strings.Contains(inner, token) {
				code.WriteString(token)
				rest = after
				continue
			}
			tail := after[close+len(entry.closing):]
			post := lineExtent(tail)
			indent, indentOK := currentIndent()
			if indentOK && docStart(after) && strings.TrimSpace(post) == "" {
				code.Truncate(code.Len() - len(indent))
				flushCode()
				blocks = append(blocks, domain.Block{
					Kind:      domain.DocBlock,
					Indent:    indent,
					Delimiter: token,
					Contents:  blockContents(indent, token, inner, post),
				})
				rest = tail[len(post):]
			} else {
				code.WriteString(token)
				code.WriteString(inner)
				code.WriteString(entry.closing)
				rest = tail
			}

		case tokenString:
			n := scanString(after, entry.str)
			code.WriteString(token)
			code.WriteString(after[:n])
			rest = after[n:]

		case tokenTemplate:
			n := scanString(after, StringDelim{
				Delimiter: "`",
				Escape:    `\`,
				Newline:   NewlineUnescaped,
			})
			code.WriteString(token)
			code.WriteString(after[:n])
			rest = after[n:]

		case tokenHeredoc:
			h := entry.heredoc
			ident := rest[loc[2*entry.identGroup]:loc[2*entry.identGroup+1]]
			closing := h.StopPrefix + ident + h.StopSuffix
			n := strings.Index(after, closing)
			if n < 0 {
				n = len(after)
			} else {
				n += len(closing)
			}
			code.WriteString(token)
			code.WriteString(after[:n])
			rest = after[n:]
		}
	}

	flushCode()
	return mergeDocBlocks(blocks)
}

// docStart reports whether the text following a comment delimiter lets the
// comment mark documentation: one space, a line terminator, or end of input.
func docStart(after string) bool {
	return after == "" ||
		after[0] == ' ' ||
		after[0] == '\n' ||
		strings.HasPrefix(after, "\r\n")
}

// inlineExtent returns the comment text following an inline delimiter,
// through its line terminator. When the language supports line continuation,
// a terminator preceded by the continuation sequence extends the comment to
// the next line.
func inlineExtent(after, continuation string) string {
	end := 0
	for {
		i := strings.IndexByte(after[end:], '\n')
		if i < 0 {
			return after
		}
		nl := end + i
		end = nl + 1
		if continuation != "" {
			line := after[:nl]
			if strings.HasSuffix(line, continuation) ||
				strings.HasSuffix(line, continuation+"\r") {
				continue
			}
		}
		return after[:end]
	}
}

// lineExtent returns the prefix of s through its first line terminator, or
// all of s when none remains.
func lineExtent(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}

// stripOneSpace removes the single separator space after a doc delimiter.
func stripOneSpace(s string) string {
	if strings.HasPrefix(s, " ") {
		return s[1:]
	}
	return s
}

// blockContents recovers the documentation text of a block comment. The
// separator after the opening delimiter is one space or the first line
// terminator. Continuation lines are dedented by the width of the indent,
// the opening delimiter, and the separator space, but only when that prefix
// is whitespace; anything else is kept verbatim. A whitespace-only final
// partial line held only the closing delimiter's indentation and is
// dropped; otherwise the separator space before the closing delimiter is
// removed. Whatever trailed the closing delimiter (whitespace and the line
// terminator) is appended so the terminator stays part of the contents.
func blockContents(indent, opening, inner, post string) string {
	switch {
	case strings.HasPrefix(inner, " "):
		inner = inner[1:]
	case strings.HasPrefix(inner, "\r\n"):
		inner = inner[2:]
	case strings.HasPrefix(inner, "\n"):
		inner = inner[1:]
	}

	lines := splitInclusive(inner)
	width := len(indent) + len(opening) + 1
	var b strings.Builder
	for i, line := range lines {
		partial := i == len(lines)-1 && !strings.HasSuffix(line, "\n")
		if partial && len(lines) > 1 && strings.TrimSpace(line) == "" {
			continue
		}
		if i > 0 && len(line) >= width && strings.TrimSpace(line[:width]) == "" {
			line = line[width:]
		}
		if partial {
			line = strings.TrimSuffix(line, " ")
		}
		b.WriteString(line)
	}
	b.WriteString(post)
	return b.String()
}

// scanString returns the extent, in bytes, of a string literal's body and
// closing delimiter; the opening delimiter has already been consumed. An
// unterminated literal extends to the end of input. For single-line
// flavors a line terminator ends the literal and is included in the extent.
func scanString(s string, sd StringDelim) int {
	i := 0
	for i < len(s) {
		if sd.Escape != "" && strings.HasPrefix(s[i:], sd.Escape) {
			j := i + len(sd.Escape)
			if j >= len(s) {
				return len(s)
			}
			// Strictly single-line strings end at a terminator even when
			// the escape character precedes it.
			if sd.Newline == NewlineNone && s[j] == '\n' {
				return j + 1
			}
			i = j + 1
			continue
		}
		if sd.Newline != NewlineUnescaped && s[i] == '\n' {
			return i + 1
		}
		if strings.HasPrefix(s[i:], sd.Delimiter) {
			return i + len(sd.Delimiter)
		}
		i++
	}
	return len(s)
}
