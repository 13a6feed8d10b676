// Package auth guards the API with the shared-secret `token` header.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
)

// TokenHeader is the request header carrying the caller's secret.
const TokenHeader = "token"

// RequireToken rejects requests whose token header does not match the
// configured secret, before any work is done.
func RequireToken(secret string, f http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, map[string]string{"error": "UnAuthorized!"})
			return
		}

		f(w, r)
	}
}
