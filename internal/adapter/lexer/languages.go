package lexer

// NewlineSupport describes how a string delimiter treats line terminators.
type NewlineSupport int

const (
	// NewlineUnescaped allows raw line terminators inside the string
	// (a multi-line string).
	NewlineUnescaped NewlineSupport = iota
	// NewlineEscaped allows a line terminator only when preceded by the
	// escape character (mostly a single-line string).
	NewlineEscaped
	// NewlineNone terminates the string at any line terminator, escaped
	// or not (strictly a single-line string).
	NewlineNone
)

// BlockDelim holds one pair of block comment delimiters.
type BlockDelim struct {
	Opening string
	Closing string
}

// StringDelim describes one string literal flavor. Delimiter opens and
// closes the string; Escape allows embedding the delimiter (empty when the
// flavor has no escape character).
type StringDelim struct {
	Delimiter string
	Escape    string
	Newline   NewlineSupport
}

// HeredocDelim describes a literal whose closing marker is derived from its
// opening marker: StartPrefix + ident + StartSuffix opens it, and
// StopPrefix + ident + StopSuffix closes it, where ident is whatever
// IdentPattern (a regular expression) matched in the opening marker.
type HeredocDelim struct {
	StartPrefix  string
	IdentPattern string
	StartSuffix  string
	StopPrefix   string
	StopSuffix   string
}

// Language describes the lexical comment and string rules of one language.
// Delimiter lists are ordered longest first so that the combined matcher
// resolves overlapping prefixes in favor of the more specific token.
type Language struct {
	// Name uniquely identifies the language and is matched against the
	// in-file lexer directive.
	Name string
	// Extensions lists file extensions (with the leading period) used for
	// inference when no directive is present.
	Extensions []string
	// LineContinuation is the character sequence that joins an inline
	// comment to the next physical line; empty if unsupported.
	LineContinuation string
	InlineComments   []string
	BlockComments    []BlockDelim
	Strings          []StringDelim
	Heredoc          *HeredocDelim
	// TemplateLiteral marks languages with interpolating backtick
	// templates; their extent is skipped opaquely.
	TemplateLiteral bool
	// DocOnly marks document formats whose entire content is one doc
	// block with an empty delimiter.
	DocOnly bool
}

// builtinLanguages is the fixed language table. Within each list, longer
// delimiters precede shorter ones sharing a prefix; the order of string
// flavors likewise puts multi-line delimiters before their single-line
// prefixes (`"""` before `"`).
var builtinLanguages = []Language{
	{
		Name:             "c_cpp",
		Extensions:       []string{".c", ".cc", ".cpp", ".h", ".hh", ".hpp"},
		LineContinuation: "\\",
		InlineComments:   []string{"//"},
		BlockComments:    []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineEscaped},
		},
		// C++11 raw strings: R"ident( ... )ident".
		Heredoc: &HeredocDelim{
			StartPrefix:  `R"`,
			IdentPattern: `[^()\\ ]*`,
			StartSuffix:  "(",
			StopPrefix:   ")",
			StopSuffix:   `"`,
		},
	},
	{
		Name:       "csharp",
		Extensions: []string{".cs"},
		// XML doc comments mark documentation too.
		InlineComments: []string{"///", "//"},
		BlockComments: []BlockDelim{
			{Opening: "/**", Closing: "*/"},
			{Opening: "/*", Closing: "*/"},
		},
		Strings: []StringDelim{
			// A doubled quote inside a verbatim string reads as two
			// back-to-back strings, so the plain flavor must span lines.
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineEscaped},
		},
		// Verbatim strings: @" ... ".
		Heredoc: &HeredocDelim{
			StartPrefix: `@"`,
			StopPrefix:  `"`,
		},
	},
	{
		Name:          "css",
		Extensions:    []string{".css"},
		BlockComments: []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineEscaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineEscaped},
		},
	},
	{
		Name:           "go",
		Extensions:     []string{".go"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: "`", Newline: NewlineUnescaped},
			{Delimiter: `"`, Escape: `\`, Newline: NewlineNone},
			{Delimiter: "'", Escape: `\`, Newline: NewlineNone},
		},
	},
	{
		Name:          "html",
		Extensions:    []string{".html", ".htm"},
		BlockComments: []BlockDelim{{Opening: "<!--", Closing: "-->"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineUnescaped},
		},
	},
	{
		Name:           "javascript",
		Extensions:     []string{".js", ".mjs", ".cjs"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineUnescaped},
		},
		TemplateLiteral: true,
	},
	{
		Name:           "json5",
		Extensions:     []string{".json"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineEscaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineEscaped},
		},
	},
	{
		Name:             "python",
		Extensions:       []string{".py", ".pyw"},
		LineContinuation: "\\",
		InlineComments:   []string{"#"},
		Strings: []StringDelim{
			// Raw strings need no special casing: they still escape the
			// quote character.
			{Delimiter: `"""`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'''", Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: `"`, Escape: `\`, Newline: NewlineEscaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineEscaped},
		},
	},
	{
		Name:             "rust",
		Extensions:       []string{".rs"},
		LineContinuation: "\\",
		// Rustdoc comments and plain comments both mark documentation.
		InlineComments: []string{"///", "//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
		},
		// Raw (and raw byte) strings: r#"..."#, with any number of hashes.
		Heredoc: &HeredocDelim{
			StartPrefix:  "r",
			IdentPattern: "#*",
			StartSuffix:  `"`,
			StopPrefix:   `"`,
		},
	},
	{
		Name:           "sql",
		Extensions:     []string{".sql"},
		InlineComments: []string{"--"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			// A doubled quote escapes itself; treat it as two
			// back-to-back strings, which requires spanning lines.
			{Delimiter: "'", Newline: NewlineUnescaped},
		},
	},
	{
		Name:           "swift",
		Extensions:     []string{".swift"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"""`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: `"`, Escape: `\`, Newline: NewlineNone},
		},
		// Extended string delimiters: #"..."#, ##"..."##, #"""..."""#.
		Heredoc: &HeredocDelim{
			IdentPattern: "#+",
			StartSuffix:  `"`,
			StopPrefix:   `"`,
		},
	},
	{
		Name:           "toml",
		Extensions:     []string{".toml"},
		InlineComments: []string{"#"},
		Strings: []StringDelim{
			// Multi-line literal strings have no escapes.
			{Delimiter: "'''", Newline: NewlineUnescaped},
			// Multi-line basic strings.
			{Delimiter: `"""`, Escape: `\`, Newline: NewlineUnescaped},
			// Basic strings.
			{Delimiter: `"`, Escape: `\`, Newline: NewlineNone},
			// Literal strings.
			{Delimiter: "'", Escape: `\`, Newline: NewlineEscaped},
		},
	},
	{
		Name:           "typescript",
		Extensions:     []string{".ts", ".mts", ".tsx"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineUnescaped},
		},
		TemplateLiteral: true,
	},
	{
		Name:           "verilog",
		Extensions:     []string{".v"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineEscaped},
		},
	},
	{
		// V shares the .v extension with Verilog; extension lookup
		// prefers the earlier entry, so V is reachable only by directive.
		Name:           "vlang",
		Extensions:     []string{".v"},
		InlineComments: []string{"//"},
		BlockComments:  []BlockDelim{{Opening: "/*", Closing: "*/"}},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			{Delimiter: "'", Escape: `\`, Newline: NewlineUnescaped},
		},
	},
	{
		Name:           "yaml",
		Extensions:     []string{".yaml", ".yml"},
		InlineComments: []string{"#"},
		Strings: []StringDelim{
			{Delimiter: `"`, Escape: `\`, Newline: NewlineUnescaped},
			// Single-quoted scalars escape a quote by doubling it; treat
			// that as two back-to-back strings.
			{Delimiter: "'", Newline: NewlineUnescaped},
		},
	},
	{
		Name:       "codechat-html",
		Extensions: []string{".cchtml"},
		DocOnly:    true,
	},
	{
		Name:       "markdown",
		Extensions: []string{".md", ".markdown"},
		DocOnly:    true,
	},
}
