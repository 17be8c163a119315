// Package normalize derives the canonical key used to compare free-text
// identifiers across data sources: candidate names against resume
// filenames and roster positions against vacancy titles.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key folds the given text with Unicode NFKC, strips surrounding
// whitespace and lowercases the result. Two strings name the same
// identity iff their keys are equal.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
