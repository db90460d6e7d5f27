package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/giggi/basesetup/internal/config"
	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/mock"
	"github.com/giggi/basesetup/internal/service"
	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

// Full-router test: a real token issued by signin authorizes a protected
// request through the complete middleware chain.
func TestRouter_SignInThenAccessProtectedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	roleRepo := mock.NewMockRoleRepository(ctrl)
	userSvc := mock.NewMockUserService(ctrl)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	admin := models.User{
		ID:           1,
		Username:     "root",
		Email:        "root@example.com",
		PasswordHash: hash,
		Enabled:      true,
		Roles: []models.Role{
			{ID: 1, Name: models.RoleUser},
			{ID: 3, Name: models.RoleAdmin},
		},
	}
	userRepo.EXPECT().
		FindByUsernameOrEmail(gomock.Any(), "root").
		Return(admin, nil)
	userSvc.EXPECT().
		FindAll(gomock.Any()).
		Return([]models.User{admin}, nil)

	authCfg := config.Auth{
		TokenSignKey:  "router-test-key",
		TokenIssuer:   "basesetup-test",
		TokenDuration: time.Hour,
	}
	services := &service.Services{
		AuthService: service.NewAuthService(userRepo, roleRepo, authCfg, logger.Nop()),
		UserService: userSvc,
	}
	handler := NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())
	router := handler.Init()

	// signin
	signinReq := httptest.NewRequest(http.MethodPost, "/api/auth/signin",
		strings.NewReader(`{"usernameOrEmail":"root","password":"correct-password"}`))
	signinRR := httptest.NewRecorder()
	router.ServeHTTP(signinRR, signinReq)

	require.Equal(t, http.StatusOK, signinRR.Code)
	var signinBody models.JwtResponse
	require.NoError(t, json.Unmarshal(signinRR.Body.Bytes(), &signinBody))
	require.NotEmpty(t, signinBody.Token)
	assert.NotEmpty(t, signinRR.Header().Get("X-Trace-ID"))

	// protected admin listing with the issued token
	listReq := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	listReq.Header.Set("Authorization", "Bearer "+signinBody.Token)
	listRR := httptest.NewRecorder()
	router.ServeHTTP(listRR, listReq)

	require.Equal(t, http.StatusOK, listRR.Code)
	var listBody models.UserListResponse
	require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &listBody))
	assert.Equal(t, 1, listBody.Length)
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		AuthService: service.NewAuthService(
			mock.NewMockUserRepository(ctrl),
			mock.NewMockRoleRepository(ctrl),
			config.Auth{TokenSignKey: "key", TokenIssuer: "iss", TokenDuration: time.Hour},
			logger.Nop(),
		),
		UserService: mock.NewMockUserService(ctrl),
	}
	handler := NewHandler(services, config.Server{}, logger.Nop())
	router := handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var body models.UnauthorizedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Error)
	assert.Equal(t, "/api/users", body.Path)
}

func TestRouter_HealthIsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.Services{
		AuthService: service.NewAuthService(
			mock.NewMockUserRepository(ctrl),
			mock.NewMockRoleRepository(ctrl),
			config.Auth{TokenSignKey: "key", TokenIssuer: "iss", TokenDuration: time.Hour},
			logger.Nop(),
		),
	}
	handler := NewHandler(services, config.Server{}, logger.Nop())
	router := handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
