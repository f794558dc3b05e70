package middleware

import (
	"net/http"
	"strings"

	"wolfpack/internal/ports/auth"
)

// RequireBearer:
// - Si verifier == nil => modo dev: no se exige token.
// - Si verifier != nil => exige "Authorization: Bearer <token>" válido, si no 401.
func RequireBearer(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" || verifier.Verify(r.Context(), token) != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="wolfapi"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
