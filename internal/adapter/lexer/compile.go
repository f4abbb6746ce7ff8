package lexer

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"weave/internal/port"
)

// ErrUnknownLanguage is returned when neither the file extension nor an
// in-file directive identifies a supported language.
var ErrUnknownLanguage = errors.New("unknown language")

// tokenKind tags one alternative of a compiled matcher.
type tokenKind int

const (
	tokenInline tokenKind = iota
	tokenBlockOpen
	tokenHeredoc
	tokenString
	tokenTemplate
)

// matcherEntry records what a capture group of the combined matcher means.
type matcherEntry struct {
	kind    tokenKind
	token   string
	closing string // block comment closing delimiter
	str     StringDelim
	heredoc *HeredocDelim
	// identGroup is the submatch index of the heredoc identifier.
	identGroup int
}

// Lexer is one language compiled into a single scanner. The matcher joins
// every delimiter of the language into one alternation, each alternative in
// its own capture group, so a single regexp search locates the next
// delimiter of any kind. Alternatives are emitted in class order (inline
// comments, block openings, heredocs, strings, template literal) and within
// a class in table order; combined with the leftmost-first semantics of
// regexp alternation this resolves overlapping prefixes the way the table
// intends.
type Lexer struct {
	Language

	matcher *regexp.Regexp
	entries map[int]matcherEntry
}

var _ port.Classifier = (*Lexer)(nil)

// Compile validates a language descriptor and builds its combined matcher.
// Doc-only languages compile to a nil matcher.
func Compile(lang Language) (*Lexer, error) {
	if lang.Name == "" {
		return nil, errors.New("language without a name")
	}
	if lang.DocOnly {
		return &Lexer{Language: lang}, nil
	}
	if err := validate(lang); err != nil {
		return nil, fmt.Errorf("language %s: %w", lang.Name, err)
	}

	var alts []string
	entries := make(map[int]matcherEntry)
	group := 0

	add := func(pattern string, e matcherEntry, innerGroups int) {
		group++
		entries[group] = e
		alts = append(alts, "("+pattern+")")
		group += innerGroups
	}

	for _, tok := range lang.InlineComments {
		add(regexp.QuoteMeta(tok), matcherEntry{kind: tokenInline, token: tok}, 0)
	}
	for _, bd := range lang.BlockComments {
		add(regexp.QuoteMeta(bd.Opening), matcherEntry{
			kind:    tokenBlockOpen,
			token:   bd.Opening,
			closing: bd.Closing,
		}, 0)
	}
	if h := lang.Heredoc; h != nil {
		// IdentPattern must not contain capture groups of its own; the
		// identifier is recovered from the group wrapped around it here.
		pattern := regexp.QuoteMeta(h.StartPrefix) +
			"(" + h.IdentPattern + ")" +
			regexp.QuoteMeta(h.StartSuffix)
		add(pattern, matcherEntry{
			kind:       tokenHeredoc,
			heredoc:    h,
			identGroup: group + 2,
		}, 1)
	}
	for _, sd := range lang.Strings {
		add(regexp.QuoteMeta(sd.Delimiter), matcherEntry{
			kind:  tokenString,
			token: sd.Delimiter,
			str:   sd,
		}, 0)
	}
	if lang.TemplateLiteral {
		add(regexp.QuoteMeta("`"), matcherEntry{kind: tokenTemplate, token: "`"}, 0)
	}

	matcher, err := regexp.Compile(strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("language %s: compile matcher: %w", lang.Name, err)
	}
	return &Lexer{Language: lang, matcher: matcher, entries: entries}, nil
}

// validate rejects descriptors the scanner cannot handle unambiguously.
func validate(lang Language) error {
	seen := make(map[string]string)
	record := func(tok, class string) error {
		if tok == "" {
			return fmt.Errorf("empty %s delimiter", class)
		}
		if prev, ok := seen[tok]; ok && prev != class {
			return fmt.Errorf("delimiter %q used as both %s and %s", tok, prev, class)
		}
		seen[tok] = class
		return nil
	}

	for _, tok := range lang.InlineComments {
		if err := record(tok, "inline comment"); err != nil {
			return err
		}
	}
	for _, bd := range lang.BlockComments {
		if err := record(bd.Opening, "block comment"); err != nil {
			return err
		}
		if bd.Closing == "" {
			return fmt.Errorf("block comment %q without closing delimiter", bd.Opening)
		}
	}
	for _, sd := range lang.Strings {
		if err := record(sd.Delimiter, "string"); err != nil {
			return err
		}
		if sd.Newline == NewlineEscaped && sd.Escape == "" {
			return fmt.Errorf("string %q: escaped newlines need an escape character", sd.Delimiter)
		}
	}
	if lang.TemplateLiteral {
		if err := record("`", "template literal"); err != nil {
			return err
		}
	}
	return nil
}

// Table holds every compiled language, addressable by name and by file
// extension. When two languages claim an extension, the earlier table entry
// wins; the later one stays reachable through an in-file directive.
type Table struct {
	byName map[string]*Lexer
	byExt  map[string]*Lexer
	langs  []*Lexer
}

// NewTable compiles the builtin language table.
func NewTable() (*Table, error) {
	t := &Table{
		byName: make(map[string]*Lexer),
		byExt:  make(map[string]*Lexer),
	}
	for _, lang := range builtinLanguages {
		lx, err := Compile(lang)
		if err != nil {
			return nil, err
		}
		if _, ok := t.byName[lang.Name]; ok {
			return nil, fmt.Errorf("language %s registered twice", lang.Name)
		}
		t.byName[lang.Name] = lx
		for _, ext := range lang.Extensions {
			if _, ok := t.byExt[ext]; !ok {
				t.byExt[ext] = lx
			}
		}
		t.langs = append(t.langs, lx)
	}
	return t, nil
}

// Lookup resolves a file path to a lexer by its extension.
func (t *Table) Lookup(path string) (*Lexer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	lx, ok := t.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: no language for extension %q", ErrUnknownLanguage, ext)
	}
	return lx, nil
}

// ByName resolves a language name, as written in a lexer directive.
func (t *Table) ByName(name string) (*Lexer, error) {
	lx, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return lx, nil
}

// Languages lists the compiled lexers in table order.
func (t *Table) Languages() []*Lexer {
	return t.langs
}

var directivePattern = regexp.MustCompile(`CodeChat-lexer:\s*([\w-]+)`)

// Directive extracts a language name from a lexer directive on the first
// line of source, if present.
func Directive(source string) (string, bool) {
	firstLine := source
	if i := strings.IndexByte(source, '\n'); i >= 0 {
		firstLine = source[:i]
	}
	m := directivePattern.FindStringSubmatch(firstLine)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeEndings rewrites CRLF and lone CR line terminators to LF.
// Classification itself is byte-exact and never applies this; callers that
// want terminator-insensitive handling normalize up front.
func NormalizeEndings(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.ReplaceAll(source, "\r", "\n")
}
