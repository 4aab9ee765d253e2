// Package fingerprint derives the stable dedup key used to detect re-imported
// highlights. The key is intentionally coarse: two highlights from the same
// source whose text differs only in case or whitespace collide.
package fingerprint

import "strings"

// Normalize collapses whitespace runs to a single space, trims, and case-folds.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Key returns the dedup key for a highlight, "<source_id>::<normalized text>".
// It returns empty when there is no source or the text normalizes to empty;
// an empty key is never a dedup signal.
func Key(sourceID, rawText string) string {
	if sourceID == "" {
		return ""
	}
	normalized := Normalize(rawText)
	if normalized == "" {
		return ""
	}

	return sourceID + "::" + normalized
}
