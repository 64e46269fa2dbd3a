// Package inject keeps markup files carrying a reference to the web app
// manifest. Pages are treated as text: a small set of recognized
// substrings is matched, never parsed as HTML.
package inject

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Any manifest link tag, regardless of attribute order or quoting.
	linkTagRe   = regexp.MustCompile(`(?i)<link\b[^>]*\brel\s*=\s*["']manifest["'][^>]*>`)
	headCloseRe = regexp.MustCompile(`(?i)</head\s*>`)
	htmlOpenRe  = regexp.MustCompile(`(?i)<html\b[^>]*>`)
)

// CanonicalTag returns the manifest link tag for the given filename. The
// href always carries exactly one leading separator; the filename is not
// otherwise escaped or validated.
func CanonicalTag(filename string, useCredentials bool) string {
	href := "/" + strings.TrimPrefix(strings.TrimSpace(filename), "/")
	if useCredentials {
		return fmt.Sprintf(`<link rel="manifest" href=%q crossorigin="use-credentials">`, href)
	}
	return fmt.Sprintf(`<link rel="manifest" href=%q>`, href)
}

// Upsert returns the page text updated to reference the manifest, and
// whether the text changed. Exactly one strategy applies per call:
//
//  1. An existing manifest link anywhere in the text: every occurrence is
//     replaced with the canonical tag. Pre-existing multiplicity is kept,
//     each occurrence becoming canonical.
//  2. No link but a closing head marker: the tag is inserted before it.
//  3. No head but an opening html tag: a synthetic head section is
//     inserted after it.
//  4. Otherwise the tag is prepended to the text.
//
// Applying Upsert twice yields the same text as applying it once, provided
// the input contained at most one manifest link to begin with.
func Upsert(content, filename string, useCredentials bool) (string, bool) {
	tag := CanonicalTag(filename, useCredentials)

	if linkTagRe.MatchString(content) {
		updated := linkTagRe.ReplaceAllLiteralString(content, tag)
		return updated, updated != content
	}

	if loc := headCloseRe.FindStringIndex(content); loc != nil {
		updated := content[:loc[0]] + "  " + tag + "\n" + content[loc[0]:]
		return updated, true
	}

	if loc := htmlOpenRe.FindStringIndex(content); loc != nil {
		updated := content[:loc[1]] + "\n<head>\n  " + tag + "\n</head>" + content[loc[1]:]
		return updated, true
	}

	return tag + "\n" + content, true
}
