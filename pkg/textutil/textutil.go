// Package textutil provides string normalization helpers shared across
// plateful. Model output is unpredictable markup; these helpers turn loose
// title and label text into stable, comparable strings.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	unsafeFileChars = regexp.MustCompile(`[\\/<>:*?"|]`)
)

// trimSet covers quoting characters and the control characters that commonly
// leak out of model output around titles.
const trimSet = " '\"\t\r\n"

// MaxFilenameBase is the length limit applied to the base portion of a
// generated filename, before the extension.
const MaxFilenameBase = 120

// Normalize collapses all contiguous whitespace (including newlines and tabs)
// into single spaces and trims surrounding whitespace and quote characters.
// It is idempotent and never fails; an empty input yields an empty string.
func Normalize(s string) string {
	return strings.Trim(whitespaceRegex.ReplaceAllString(s, " "), trimSet)
}

// SafeFilename converts an arbitrary title into a filesystem-safe filename
// with the given extension (e.g. ".png"). Characters that are unsafe on
// common filesystems are replaced with underscores, the base is truncated to
// MaxFilenameBase characters, and trailing underscores are stripped.
func SafeFilename(title, ext string) string {
	base := unsafeFileChars.ReplaceAllString(Normalize(title), "_")
	// The limit counts characters, not bytes; slicing the string directly
	// could split a multibyte rune.
	if runes := []rune(base); len(runes) > MaxFilenameBase {
		base = string(runes[:MaxFilenameBase])
	}
	return strings.TrimRight(base, "_") + ext
}
