package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

const (
	SessionHeader  = "X-Cart-Session"
	DefaultSession = "anonymous"
)

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// SessionFromRequest returns the cart session named by the request header.
// Missing or malformed values fall back to the shared anonymous session.
func SessionFromRequest(r *http.Request) string {

	session := strings.TrimSpace(r.Header.Get(SessionHeader))
	if !sessionPattern.MatchString(session) {
		return DefaultSession
	}

	return session
}
