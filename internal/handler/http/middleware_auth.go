package http

import (
	"net/http"
	"strings"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/utils"
)

// publicPathPrefixes lists the URL spaces the authentication filter skips
// entirely: no token extraction happens there, even if a header is present.
var publicPathPrefixes = []string{
	"/api/auth/",
	"/swagger-ui/",
	"/v3/api-docs",
}

// publicPaths lists exact paths the filter skips.
var publicPaths = []string{
	"/health",
	"/swagger-ui.html",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, exact := range publicPaths {
		if path == exact {
			return true
		}
	}

	return false
}

// auth is the optimistic authentication filter. It inspects the Authorization
// header on every non-public request and, when a valid bearer token is
// present, attaches the reconstructed principal to the request context.
//
// The filter never terminates a request. A missing header, an unparsable
// header, or an invalid token all leave the request anonymous and pass it on;
// rejecting anonymous requests is the authorization policy's job. The precise
// failure reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Str("func", "*Handler.auth").Msg("malformed authorization header, continuing anonymous")
			next.ServeHTTP(w, r)
			return
		}

		principal, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token rejected, continuing anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
