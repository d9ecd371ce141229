package dataprocessing

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^0-9a-z\s]`)
)

// NormalizeKey canonicalizes free-text headers and cell values into stable
// lookup keys: lowercase, non-alphanumerics replaced with spaces, whitespace
// collapsed, trimmed. It is idempotent.
func NormalizeKey(value string) string {
	text := strings.ToLower(value)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = nonAlnumRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeSheetKey is NormalizeKey with spaces removed as well, used for
// fuzzy sheet-name matching.
func NormalizeSheetKey(value string) string {
	return strings.ReplaceAll(NormalizeKey(value), " ", "")
}

// NormalizePipeID produces the join key for a pipe id cell: trimmed and
// uppercased. The second return is false for blank cells, which must stay
// distinct from any real id.
func NormalizePipeID(value string) (string, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return "", false
	}
	return strings.ToUpper(text), true
}

// Slug turns normalized header text into an underscore-joined identifier,
// the fallback name for case fields that match no alias.
func Slug(value string) string {
	return strings.ReplaceAll(NormalizeKey(value), " ", "_")
}
