package middleware

import (
	"net/http"

	"github.com/heartmarshall/xapi-statements/pkg/ctxutil"
)

// Caller propagates the consumer identity header into the request context.
// The upstream gateway authenticates the caller; this service only uses the
// email to auto-fill a missing actor mbox.
func Caller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-Caller-Email")
		if email != "" {
			r = r.WithContext(ctxutil.WithCallerEmail(r.Context(), email))
		}
		next.ServeHTTP(w, r)
	})
}
