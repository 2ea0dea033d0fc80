package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Grilled Fish", "Grilled Fish"},
		{"surrounding_whitespace", "  Grilled Fish \n\t ", "Grilled Fish"},
		{"internal_newlines", "Broccoli\nand Egg\tScramble", "Broccoli and Egg Scramble"},
		{"quotes", `'Baked Fish'`, "Baked Fish"},
		{"double_quotes", `"Lentil Soup"`, "Lentil Soup"},
		{"only_whitespace", " \t\r\n ", ""},
		{"mixed_quotes_and_space", " \"Spicy Dal\" \r\n", "Spicy Dal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Grilled Fish",
		"  spaced \n out \t text  ",
		`'quoted title'`,
		"a  b   c",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"separator_substitution", "Pasta: Spicy/Bold?", "Pasta_ Spicy_Bold.png"},
		{"plain", "Grilled Fish", "Grilled Fish.png"},
		{"empty", "", ".png"},
		{"all_unsafe", `\/<>`, ".png"},
		{"windows_reserved", `a<b>c:d"e|f`, "a_b_c_d_e_f.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.input, ".png"); got != tt.want {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSafeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("abcdefghij", 40)

	got := SafeFilename(long, ".png")
	if len(got) != MaxFilenameBase+len(".png") {
		t.Errorf("SafeFilename length = %d, want %d", len(got), MaxFilenameBase+len(".png"))
	}
}

func TestSafeFilename_TruncatesByRunes(t *testing.T) {
	// The limit is a character count, so a multibyte title under the limit
	// must be kept whole.
	short := strings.Repeat("é", 100)
	if got, want := SafeFilename(short, ".png"), short+".png"; got != want {
		t.Errorf("SafeFilename(%d x é) = %q, want %q", 100, got, want)
	}

	long := strings.Repeat("é", 130)
	got := SafeFilename(long, ".png")
	want := strings.Repeat("é", MaxFilenameBase) + ".png"
	if got != want {
		t.Errorf("SafeFilename(%d x é) kept %d runes, want %d",
			130, len([]rune(strings.TrimSuffix(got, ".png"))), MaxFilenameBase)
	}
	if !utf8.ValidString(got) {
		t.Errorf("SafeFilename produced invalid UTF-8: %q", got)
	}
}
