// Package sanitize strips markup from free-text fields before they are stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds the strip/unescape loop for entity-encoded markup
// such as "&lt;b&gt;".
const maxPasses = 4

type TextSanitizer interface {
	Clean(text string) string
}

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer returns a sanitizer that removes every HTML element and
// keeps the text content as plain, unescaped text.
func NewTextSanitizer() TextSanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean is idempotent: a value it returned comes back unchanged, so records
// read and written back keep their text.
func (s *strictSanitizer) Clean(text string) string {
	out := strings.TrimSpace(text)
	for i := 0; i < maxPasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(out)))
		if next == out {
			break
		}
		out = next
	}
	return out
}
