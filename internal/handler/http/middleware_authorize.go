package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

// requirement is what an access rule demands of the request.
type requirement int

const (
	// permitAll lets the request through regardless of authentication state.
	permitAll requirement = iota

	// authenticated requires a principal, with any authorities.
	authenticated

	// hasRole requires a principal holding the rule's role.
	hasRole
)

// accessRule binds a path shape and optional method set to a requirement.
// A nil method set matches every verb. With exact unset the path matches as
// a prefix.
type accessRule struct {
	path    string
	exact   bool
	methods []string

	requirement requirement
	role        string
}

func (rule accessRule) matches(method, path string) bool {
	if rule.exact {
		if path != rule.path {
			return false
		}
	} else if !strings.HasPrefix(path, rule.path) {
		return false
	}

	if rule.methods == nil {
		return true
	}
	for _, m := range rule.methods {
		if m == method {
			return true
		}
	}

	return false
}

// defaultAccessPolicy is the ordered route protection table. The first
// matching rule wins, so the narrow /api/users verb rules come before the
// broad prefix rules, and the final catch-all requires authentication for
// anything not explicitly opened up.
func defaultAccessPolicy() []accessRule {
	return []accessRule{
		{path: "/api/auth/", requirement: permitAll},
		{path: "/health", exact: true, requirement: permitAll},
		{path: "/swagger-ui/", requirement: permitAll},
		{path: "/swagger-ui.html", exact: true, requirement: permitAll},
		{path: "/v3/api-docs", requirement: permitAll},

		{path: "/api/utentes", exact: true, requirement: hasRole, role: models.RoleUser},
		{path: "/api/utentes/", requirement: hasRole, role: models.RoleUser},

		{path: "/api/users", exact: true, methods: []string{http.MethodPost, http.MethodGet, http.MethodDelete}, requirement: hasRole, role: models.RoleAdmin},
		{path: "/api/users/", methods: []string{http.MethodDelete}, requirement: hasRole, role: models.RoleAdmin},
		{path: "/api/users/", methods: []string{http.MethodGet, http.MethodPut}, requirement: authenticated},

		{path: "/", requirement: authenticated},
	}
}

// authorize enforces the access policy against the principal the auth filter
// may have attached. Anonymous requests to protected paths get 401 with the
// structured unauthorized body; authenticated requests missing the required
// role get 403.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rule := h.matchRule(r.Method, r.URL.Path)
		if rule.requirement == permitAll {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			log.Warn().Str("path", r.URL.Path).Msg("anonymous request to protected path")
			writeUnauthorized(w, r, "Full authentication is required to access this resource")
			return
		}

		if rule.requirement == hasRole && !principal.HasAuthority(rule.role) {
			log.Warn().
				Str("username", principal.Username).
				Str("path", r.URL.Path).
				Str("required_role", rule.role).
				Msg("access denied")
			writeForbidden(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// matchRule returns the first policy rule matching the request. The policy
// always ends with a catch-all, so a match is guaranteed.
func (h *Handler) matchRule(method, path string) accessRule {
	for _, rule := range h.policy {
		if rule.matches(method, path) {
			return rule
		}
	}

	return accessRule{requirement: authenticated}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	utils.WriteJSON(w, models.UnauthorizedResponse{
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
		Path:      r.URL.Path,
		Timestamp: time.Now().Format(time.RFC3339),
	}, http.StatusUnauthorized)
}

func writeForbidden(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UnauthorizedResponse{
		Status:    http.StatusForbidden,
		Error:     "Forbidden",
		Message:   "Access Denied",
		Path:      r.URL.Path,
		Timestamp: time.Now().Format(time.RFC3339),
	}, http.StatusForbidden)
}
