package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/giggi/basesetup/internal/mock"
	"github.com/giggi/basesetup/internal/store"
	"github.com/giggi/basesetup/models"
)

func executeGet(handler http.HandlerFunc, pattern, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, injectNopLogger(r))
		})
	})
	router.Get(pattern, handler)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := mock.NewMockUserService(ctrl)

	stored := []models.User{
		{
			ID:       1,
			Username: "alice",
			Email:    "alice@example.com",
			Enabled:  true,
			Roles:    []models.Role{{ID: 1, Name: models.RoleUser}},
		},
		{
			ID:       2,
			Username: "bob",
			Email:    "bob@example.com",
			Enabled:  true,
			Roles:    []models.Role{{ID: 1, Name: models.RoleUser}, {ID: 3, Name: models.RoleAdmin}},
		},
	}
	userSvc.EXPECT().FindAll(gomock.Any()).Return(stored, nil)

	h := newTestHandler(nil, userSvc)

	rr := executeGet(h.ListUsers, "/api/users", "/api/users")

	require.Equal(t, http.StatusOK, rr.Code)

	var body models.UserListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Length)
	require.Len(t, body.Users, 2)
	assert.Equal(t, "alice", body.Users[0].Username)
	assert.ElementsMatch(t, []string{models.RoleUser, models.RoleAdmin}, body.Users[1].Roles)
}

// The DTO must never leak the password hash.
func TestListUsers_NoPasswordHashInBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := mock.NewMockUserService(ctrl)

	userSvc.EXPECT().FindAll(gomock.Any()).Return([]models.User{
		{ID: 1, Username: "alice", PasswordHash: "$2a$10$verysecret"},
	}, nil)

	h := newTestHandler(nil, userSvc)

	rr := executeGet(h.ListUsers, "/api/users", "/api/users")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "verysecret")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestListUtentes_ServesSameCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := mock.NewMockUserService(ctrl)

	userSvc.EXPECT().FindAll(gomock.Any()).Return([]models.User{{ID: 1, Username: "alice"}}, nil)

	h := newTestHandler(nil, userSvc)

	rr := executeGet(h.ListUtentes, "/api/utentes", "/api/utentes")

	require.Equal(t, http.StatusOK, rr.Code)

	var body models.UserListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Length)
}

func TestGetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := mock.NewMockUserService(ctrl)

	userSvc.EXPECT().
		FindByID(gomock.Any(), int64(7)).
		Return(models.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil)

	h := newTestHandler(nil, userSvc)

	rr := executeGet(h.GetUser, "/api/users/{id}", "/api/users/7")

	require.Equal(t, http.StatusOK, rr.Code)

	var body models.UserFindResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "alice", body.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := mock.NewMockUserService(ctrl)

	userSvc.EXPECT().
		FindByID(gomock.Any(), int64(99)).
		Return(models.User{}, store.ErrNoUserWasFound)

	h := newTestHandler(nil, userSvc)

	rr := executeGet(h.GetUser, "/api/users/{id}", "/api/users/99")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTestHandler(nil, mock.NewMockUserService(ctrl))

	rr := executeGet(h.GetUser, "/api/users/{id}", "/api/users/not-a-number")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(nil, nil)

	rr := executeGet(h.Health, "/health", "/health")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rr.Body.String())
}
