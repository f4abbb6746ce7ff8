package lexer

import (
	"strings"
	"testing"

	"weave/internal/domain"
)

type serializeCase struct {
	name   string
	blocks []domain.Block
	want   string
}

func checkSerialize(t *testing.T, lx *Lexer, cases []serializeCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := lx.Serialize(tc.blocks)
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if got != tc.want {
				t.Errorf("Serialize = %q, want %q", got, tc.want)
			}
		})
	}
}

// A language with one inline comment delimiter and no block comments.
func TestSerializeInline(t *testing.T) {
	py := mustLexer(t, "python")

	checkSerialize(t, py, []serializeCase{
		{"empty", nil, ""},
		{"one line", []domain.Block{doc("", "#", "Test")}, "# Test"},
		{"one line with newline", []domain.Block{doc("", "#", "Test\n")}, "# Test\n"},
		{"empty comment line", []domain.Block{doc("", "#", "Test 1\n\nTest 2")},
			"# Test 1\n#\n# Test 2"},
		{"indented one line", []domain.Block{doc(" ", "#", "Test")}, " # Test"},
		{"indented with newline", []domain.Block{doc("  ", "#", "Test\n")}, "  # Test\n"},
		{"indented empty comment line", []domain.Block{doc("   ", "#", "Test 1\n\nTest 2")},
			"   # Test 1\n   #\n   # Test 2"},
		{"code", []domain.Block{code("Test")}, "Test"},
		{"empty doc blocks around empty code", []domain.Block{
			doc("", "#", "\n"), code("\n"), doc("", "#", ""),
		}, "#\n\n#"},
		{"multibyte contents", []domain.Block{
			doc("", "#", "σ\n"), code("σ\n"), doc("", "#", "σ"),
		}, "# σ\nσ\n# σ"},
	})

	if _, err := py.Serialize([]domain.Block{doc("", "?", "Test")}); err == nil {
		t.Error("Serialize with unknown delimiter: expected error")
	} else if !strings.Contains(err.Error(), "'?'") {
		t.Errorf("Serialize error %q does not name the delimiter", err)
	}
}

// A language with block comments only.
func TestSerializeBlock(t *testing.T) {
	css := mustLexer(t, "css")

	checkSerialize(t, css, []serializeCase{
		{"empty", nil, ""},
		{"one line", []domain.Block{doc("", "/*", "Test\n")}, "/* Test */\n"},
		{"one line without newline", []domain.Block{doc("", "/*", "Test")}, "/* Test */"},
		{"continuation lines align under the text", []domain.Block{
			code("Test_0\n"), doc("", "/*", "Test 1\n\nTest 2\n"),
		}, "Test_0\n/* Test 1\n\n   Test 2 */\n"},
		{"indented one line", []domain.Block{doc("  ", "/*", "Test\n")}, "  /* Test */\n"},
		{"indented continuation lines", []domain.Block{
			code("Test_0\n"), doc("   ", "/*", "Test 1\n\nTest 2\n"),
		}, "Test_0\n   /* Test 1\n\n      Test 2 */\n"},
		{"code", []domain.Block{code("Test")}, "Test"},
		{"empty contents", []domain.Block{doc("", "/*", "")}, "/* */"},
		{"trailing empty line", []domain.Block{doc("", "/*", "Test\n\n")}, "/* Test\n */\n"},
	})

	if _, err := css.Serialize([]domain.Block{doc("", "?", "Test")}); err == nil {
		t.Error("Serialize with unknown delimiter: expected error")
	}
}

// A language with several comment flavors.
func TestSerializeDelimiterChoice(t *testing.T) {
	csharp := mustLexer(t, "csharp")

	checkSerialize(t, csharp, []serializeCase{
		{"inline", []domain.Block{doc("", "//", "Test\n")}, "// Test\n"},
		{"xml doc", []domain.Block{doc("", "///", "Test\n")}, "/// Test\n"},
		{"block", []domain.Block{doc("", "/*", "Test\n")}, "/* Test */\n"},
		{"doc block comment", []domain.Block{doc("", "/**", "Test\n")}, "/** Test */\n"},
	})
}

func TestSerializeDocOnly(t *testing.T) {
	md := mustLexer(t, "markdown")

	got, err := md.Serialize([]domain.Block{doc("", "", "# Heading\n\nBody.\n")})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got != "# Heading\n\nBody.\n" {
		t.Errorf("Serialize = %q", got)
	}
}

// Classified source must serialize back to the original bytes. Block
// comments are covered by their canonical layout; inline comments, strings,
// and code round trip from any input.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		lang string
		src  string
	}{
		{"python comments and strings", "python",
			"# Module.\n\nimport os\n\na = 'test'  # trailing\n  # indented\nb = '''\n# not a comment\n'''\n"},
		{"python empty comment lines", "python",
			"# Test 1\n#\n# Test 2"},
		{"javascript inline", "javascript",
			"// Header\nlet a = `template\n// inside`;\n// Footer"},
		{"javascript canonical block", "javascript",
			"/* Test 1\n\n   Test 2 */\n"},
		{"javascript indented block", "javascript",
			"code();\n  /* Test 1\n\n     Test 2 */\n"},
		{"rust doc comments", "rust",
			"/// Rustdoc.\n// Plain.\nfn main() {}\n"},
		{"sql strings", "sql",
			"-- Query\nselect 'it''s' from t;\n"},
		{"markdown", "markdown", "# Title\n\nText.\n"},
	}
	tbl := mustTable(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx, err := tbl.ByName(tc.lang)
			if err != nil {
				t.Fatalf("ByName(%q): %v", tc.lang, err)
			}
			got, err := lx.Serialize(lx.Classify(tc.src))
			if err != nil {
				t.Fatalf("Serialize: %v", err)
			}
			if got != tc.src {
				t.Errorf("round trip changed source:\n got %q\nwant %q", got, tc.src)
			}
		})
	}
}
