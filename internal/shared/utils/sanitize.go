package utils

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy     *bluemonday.Policy
	ugcPolicyOnce sync.Once
)

// SanitizeUserContent strips unsafe HTML from user-supplied text (ticket
// subjects, descriptions, comment bodies) and trims surrounding whitespace.
// The stored value is what gets rendered back to other users.
func SanitizeUserContent(s string) string {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
