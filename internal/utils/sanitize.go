// internal/utils/sanitize.go
package utils

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	richPolicy   *bluemonday.Policy
	policyOnce   sync.Once
)

func initPolicies() {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// product copy keeps basic formatting
		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowStandardURLs()
		richPolicy.AllowElements(
			"p", "br", "h3", "h4",
			"strong", "b", "em", "i",
			"ul", "ol", "li", "table", "thead", "tbody", "tr", "th", "td",
		)
		richPolicy.AllowAttrs("href").OnElements("a")
		richPolicy.RequireNoFollowOnLinks(true)
	})
}

// SanitizeRichText keeps formatting tags used in product descriptions.
func SanitizeRichText(s string) string {
	initPolicies()
	return strings.TrimSpace(richPolicy.Sanitize(s))
}

// StripHTML removes all markup; used for buyer-submitted text.
func StripHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
