package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/service"
	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

// SignIn handles POST /api/auth/signin.
//
// On success it responds 200 with a JwtResponse carrying the signed token and
// the authenticated user's identity attributes. Every credential failure —
// unknown identifier, wrong password, disabled account — produces the same
// 401 body, so the response never reveals whether the account exists.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.SignIn").Msg("error decoding login request")
		utils.WriteJSON(w, models.ErrorMessage("Error: Invalid request body"), statusFromError(ErrInvalidRequestBody))
		return
	}

	principal, err := h.services.AuthService.Authenticate(r.Context(), request.UsernameOrEmail, request.Password)
	if err != nil {
		log.Err(err).Str("func", "*Handler.SignIn").Msg("authentication failed")
		utils.WriteJSON(w, models.ErrorMessage(signInErrorMessage(err)), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), principal)
	if err != nil {
		log.Err(err).Str("func", "*Handler.SignIn").Msg("token creation failed")
		utils.WriteJSON(w, models.ErrorMessage("Error: Could not create token"), http.StatusInternalServerError)
		return
	}

	response := models.NewJwtResponse(principal, token, h.services.AuthService.TokenDuration())
	utils.WriteJSON(w, response, http.StatusOK)
}

// SignUp handles POST /api/auth/signup.
//
// On success it responds 201 with a success message; no token is issued, the
// new user signs in separately. Duplicate username and duplicate email are
// reported with distinct 400 messages, username checked first.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.SignUp").Msg("error decoding register request")
		utils.WriteJSON(w, models.ErrorMessage("Error: Invalid request body"), statusFromError(ErrInvalidRequestBody))
		return
	}

	if err := h.services.AuthService.Register(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.SignUp").Msg("registration failed")
		utils.WriteJSON(w, models.ErrorMessage(signUpErrorMessage(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SuccessMessage("User registered successfully!"), http.StatusCreated)
}

func signInErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username/email or password"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Error: Username/email and password are required"
	default:
		return "Error: " + http.StatusText(statusFromError(err))
	}
}

func signUpErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return "Error: Username is already taken!"
	case errors.Is(err, service.ErrEmailTaken):
		return "Error: Email is already in use!"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Error: Username, email and password are required"
	default:
		return "Error: " + http.StatusText(statusFromError(err))
	}
}
