// Package textutil normalizes free text produced by the plan generator.
package textutil

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every HTML element and attribute. It is safe for concurrent use.
var strict = bluemonday.StrictPolicy()

// Clean strips markup from s, decodes entities and collapses runs of
// whitespace into single spaces. Generator output occasionally embeds
// <b>, <br> or stray tags, none of which belong in a document.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	sanitized := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(sanitized), " ")
}
