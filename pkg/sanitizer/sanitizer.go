package sanitizer

import "strings"

// htmlReplacer performs all substitutions in a single pass over the input.
// A strings.Replacer never rescans its own output, so the ampersand rule
// cannot double-escape the entities produced by the other rules.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
	"\n", "<br>",
)

// HTML escapes text for embedding in an HTML email body.
// Empty input yields an empty string. The function is pure and total.
func HTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(s)
}

// HTMLOr escapes text like HTML but substitutes fallback when the input is
// empty. Used by templates that render a placeholder for optional fields.
func HTMLOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return htmlReplacer.Replace(s)
}
