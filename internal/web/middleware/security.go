package middleware

import (
	"net/http"

	"github.com/shindakun/ethicstraining/internal/config"
)

// SecurityHeaders creates middleware that adds HTTP security headers to all responses
func SecurityHeaders(headers config.SecurityHeadersConfig) func(http.Handler) http.Handler {
	set := map[string]string{
		"X-Frame-Options":         headers.XFrameOptions,
		"X-Content-Type-Options":  headers.XContentTypeOptions,
		"Referrer-Policy":         headers.ReferrerPolicy,
		"Content-Security-Policy": headers.ContentSecurityPolicy,
	}
	for k, v := range set {
		if v == "" {
			delete(set, k)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for k, v := range set {
				w.Header().Set(k, v)
			}
			next.ServeHTTP(w, r)
		})
	}
}
