package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

func executeAuthorize(h *Handler, method, target string, principal *models.Principal, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.authorize(next)
	req := httptest.NewRequest(method, target, nil)
	req = injectNopLogger(req)
	if principal != nil {
		req = req.WithContext(utils.WithPrincipal(req.Context(), *principal))
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestAuthorize_PolicyMatrix(t *testing.T) {
	anonymous := (*models.Principal)(nil)
	member := &models.Principal{Username: "alice", Authorities: []string{models.RoleUser}}
	admin := &models.Principal{Username: "root", Authorities: []string{models.RoleAdmin}}
	moderator := &models.Principal{Username: "mike", Authorities: []string{models.RoleModerator}}

	tests := []struct {
		name       string
		method     string
		target     string
		principal  *models.Principal
		wantStatus int
	}{
		// permit-all surface
		{"signin is open", http.MethodPost, "/api/auth/signin", anonymous, http.StatusOK},
		{"signup is open", http.MethodPost, "/api/auth/signup", anonymous, http.StatusOK},
		{"health is open", http.MethodGet, "/health", anonymous, http.StatusOK},
		{"swagger ui is open", http.MethodGet, "/swagger-ui/index.html", anonymous, http.StatusOK},
		{"api docs are open", http.MethodGet, "/v3/api-docs", anonymous, http.StatusOK},

		// member listing requires the baseline role
		{"utentes anonymous", http.MethodGet, "/api/utentes", anonymous, http.StatusUnauthorized},
		{"utentes with user role", http.MethodGet, "/api/utentes", member, http.StatusOK},
		{"utentes admin without user role", http.MethodGet, "/api/utentes", admin, http.StatusForbidden},
		{"utentes subpath with user role", http.MethodGet, "/api/utentes/active", member, http.StatusOK},
		{"utentes lookalike path falls to catch-all", http.MethodGet, "/api/utentesanything", admin, http.StatusOK},
		{"utentes lookalike anonymous", http.MethodGet, "/api/utentesanything", anonymous, http.StatusUnauthorized},

		// admin listing
		{"users list anonymous", http.MethodGet, "/api/users", anonymous, http.StatusUnauthorized},
		{"users list with user role", http.MethodGet, "/api/users", member, http.StatusForbidden},
		{"users list as admin", http.MethodGet, "/api/users", admin, http.StatusOK},
		{"users create as member", http.MethodPost, "/api/users", member, http.StatusForbidden},
		{"users delete by id as member", http.MethodDelete, "/api/users/5", member, http.StatusForbidden},
		{"users delete by id as admin", http.MethodDelete, "/api/users/5", admin, http.StatusOK},

		// single user read is open to any authenticated principal
		{"user by id anonymous", http.MethodGet, "/api/users/5", anonymous, http.StatusUnauthorized},
		{"user by id as member", http.MethodGet, "/api/users/5", member, http.StatusOK},
		{"user by id as moderator", http.MethodGet, "/api/users/5", moderator, http.StatusOK},
		{"user by id as admin", http.MethodGet, "/api/users/5", admin, http.StatusOK},

		// unlisted paths fall back to authenticated
		{"unknown path anonymous", http.MethodGet, "/api/other", anonymous, http.StatusUnauthorized},
		{"unknown path authenticated", http.MethodGet, "/api/other", member, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, nil)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuthorize(h, tt.method, tt.target, tt.principal, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestAuthorize_UnauthorizedBodyShape(t *testing.T) {
	h := newTestHandler(nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for a denied request")
	})

	rr := executeAuthorize(h, http.MethodGet, "/api/users", nil, next)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body models.UnauthorizedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "Unauthorized", body.Error)
	assert.Equal(t, "Full authentication is required to access this resource", body.Message)
	assert.Equal(t, "/api/users", body.Path)
	assert.NotEmpty(t, body.Timestamp)
}

func TestAuthorize_ForbiddenBodyShape(t *testing.T) {
	h := newTestHandler(nil, nil)
	member := &models.Principal{Username: "alice", Authorities: []string{models.RoleUser}}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for a denied request")
	})

	rr := executeAuthorize(h, http.MethodGet, "/api/users", member, next)

	require.Equal(t, http.StatusForbidden, rr.Code)

	var body models.UnauthorizedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusForbidden, body.Status)
	assert.Equal(t, "Access Denied", body.Message)
}

// Rule order decides: the first match wins, so the verb-specific admin rules
// shadow the broader authenticated rules on the same prefix.
func TestAccessRule_Matching(t *testing.T) {
	tests := []struct {
		name   string
		rule   accessRule
		method string
		path   string
		want   bool
	}{
		{"prefix match", accessRule{path: "/api/utentes"}, http.MethodGet, "/api/utentes/active", true},
		{"exact match", accessRule{path: "/api/users", exact: true}, http.MethodGet, "/api/users", true},
		{"exact rejects subpath", accessRule{path: "/api/users", exact: true}, http.MethodGet, "/api/users/5", false},
		{"method filter hit", accessRule{path: "/api/users/", methods: []string{http.MethodDelete}}, http.MethodDelete, "/api/users/5", true},
		{"method filter miss", accessRule{path: "/api/users/", methods: []string{http.MethodDelete}}, http.MethodGet, "/api/users/5", false},
		{"nil methods match all verbs", accessRule{path: "/api/"}, http.MethodPatch, "/api/anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.matches(tt.method, tt.path))
		})
	}
}
