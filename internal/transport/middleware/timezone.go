package middleware

import (
	"net/http"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/pkg/ctxutil"
)

// TimezoneHeader carries the caller's IANA timezone name.
const TimezoneHeader = "X-Timezone"

// Timezone stores the caller's timezone in the request context. Missing or
// unknown names fall back to UTC.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := domain.ParseTimezone(r.Header.Get(TimezoneHeader))
		ctx := ctxutil.WithTimezone(r.Context(), loc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
