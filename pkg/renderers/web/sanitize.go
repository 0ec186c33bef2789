package web

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	inputPolicyOnce sync.Once
	inputPolicy     *bluemonday.Policy
)

// sanitizeInput strips markup from a posted value. Entities produced by the
// policy are decoded again since values are stored as plain text and escaped
// on output.
func sanitizeInput(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<>&") {
		return raw
	}
	return html.UnescapeString(inputSanitizer().Sanitize(raw))
}

func inputSanitizer() *bluemonday.Policy {
	inputPolicyOnce.Do(func() {
		inputPolicy = bluemonday.StrictPolicy()
	})
	return inputPolicy
}
