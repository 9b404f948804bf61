package middleware

import (
	"net/http"
	"strings"

	"github.com/samber/lo"
)

const (
	corsMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsHeaders = "Content-Type,X-Request-Id"
)

// NewCORS allows the listed origins. A "*" entry allows any origin. Preflight
// requests are answered here and never reach the router.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := lo.Compact(lo.Map(allowedOrigins, func(origin string, _ int) string {
		return strings.TrimSpace(origin)
	}))
	allowAny := lo.Contains(origins, "*")
	allowed := lo.SliceToMap(origins, func(origin string) (string, struct{}) {
		return origin, struct{}{}
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				_, ok := allowed[origin]
				if ok || allowAny {
					w.Header().Add("Vary", "Origin")
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Methods", corsMethods)
					w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
					w.Header().Set("Access-Control-Max-Age", "86400")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
