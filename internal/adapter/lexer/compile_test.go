package lexer

import (
	"errors"
	"testing"
)

func TestTableLookup(t *testing.T) {
	tbl := mustTable(t)

	cases := []struct {
		path string
		lang string
	}{
		{"main.c", "c_cpp"},
		{"lib/util.cpp", "c_cpp"},
		{"app.py", "python"},
		{"index.js", "javascript"},
		{"mod.rs", "rust"},
		{"schema.sql", "sql"},
		{"config.toml", "toml"},
		{"notes.md", "markdown"},
		{"page.cchtml", "codechat-html"},
		// Verilog registered .v first; V stays reachable by name only.
		{"chip.v", "verilog"},
	}
	for _, tc := range cases {
		lx, err := tbl.Lookup(tc.path)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tc.path, err)
			continue
		}
		if lx.Name != tc.lang {
			t.Errorf("Lookup(%q) = %s, want %s", tc.path, lx.Name, tc.lang)
		}
	}

	if _, err := tbl.Lookup("archive.xxx"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("Lookup(unknown ext) = %v, want ErrUnknownLanguage", err)
	}
	if _, err := tbl.ByName("vlang"); err != nil {
		t.Errorf("ByName(vlang): %v", err)
	}
	if _, err := tbl.ByName("cobol"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("ByName(unknown) = %v, want ErrUnknownLanguage", err)
	}
	if n := len(tbl.Languages()); n != len(builtinLanguages) {
		t.Errorf("Languages() has %d entries, want %d", n, len(builtinLanguages))
	}
}

func TestCompileValidation(t *testing.T) {
	cases := []struct {
		name string
		lang Language
	}{
		{"unnamed", Language{}},
		{"empty inline delimiter", Language{
			Name:           "bad",
			InlineComments: []string{""},
		}},
		{"delimiter in two classes", Language{
			Name:           "bad",
			InlineComments: []string{"#"},
			Strings:        []StringDelim{{Delimiter: "#"}},
		}},
		{"block comment without closing", Language{
			Name:          "bad",
			BlockComments: []BlockDelim{{Opening: "/*"}},
		}},
		{"escaped newlines without escape char", Language{
			Name:    "bad",
			Strings: []StringDelim{{Delimiter: "'", Newline: NewlineEscaped}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Compile(tc.lang); err == nil {
				t.Error("Compile: expected error")
			}
		})
	}
}

func TestDirective(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"present", "// CodeChat-lexer: python\nprint()\n", "python", true},
		{"hyphenated name", "<!-- CodeChat-lexer: codechat-html -->\n", "codechat-html", true},
		{"extra whitespace", "# CodeChat-lexer:   toml\n", "toml", true},
		{"absent", "print()\n", "", false},
		{"not on first line", "print()\n# CodeChat-lexer: python\n", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Directive(tc.src)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Directive(%q) = %q, %v; want %q, %v", tc.src, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	py := mustLexer(t, "python")
	// Classify already merges; a second pass must change nothing.
	blocks := py.Classify("# a\n# b\n\n# c\n")
	if len(blocks) != 3 {
		t.Fatalf("Classify produced %d blocks, want 3", len(blocks))
	}
	again := mergeDocBlocks(blocks)
	if len(again) != len(blocks) {
		t.Errorf("mergeDocBlocks not idempotent: %d vs %d blocks", len(again), len(blocks))
	}
}
