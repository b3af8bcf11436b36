package domain

import "net/url"

// IsAbsoluteHTTPURI reports whether s parses as an absolute http(s) URI
// with a non-empty host. Verb ids, openids, account home pages, activity
// types and extension keys are all validated with this predicate.
func IsAbsoluteHTTPURI(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
