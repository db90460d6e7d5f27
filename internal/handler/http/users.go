package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/giggi/basesetup/internal/logger"
	"github.com/giggi/basesetup/internal/utils"
	"github.com/giggi/basesetup/models"
)

// ListUsers handles GET /api/users. Admin only, enforced by the access
// policy before this handler runs.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.writeUserList(w, r)
}

// ListUtentes handles GET /api/utentes, the member-facing listing. It serves
// the same collection as ListUsers but is open to any holder of the baseline
// role.
func (h *Handler) ListUtentes(w http.ResponseWriter, r *http.Request) {
	h.writeUserList(w, r)
}

func (h *Handler) writeUserList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.FindAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.writeUserList").Msg("user listing failed")
		utils.WriteJSON(w, models.ErrorMessage("Error: "+http.StatusText(statusFromError(err))), statusFromError(err))
		return
	}

	response := models.UserListResponse{
		Users:  make([]models.UserFindResponse, 0, len(users)),
		Length: len(users),
	}
	for _, user := range users {
		response.Users = append(response.Users, models.NewUserFindResponse(user))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// GetUser handles GET /api/users/{id}. Any authenticated principal may read
// a single user record.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.GetUser").Msg("invalid user id")
		utils.WriteJSON(w, models.ErrorMessage("Error: Invalid user id"), statusFromError(ErrInvalidUserID))
		return
	}

	user, err := h.services.UserService.FindByID(r.Context(), id)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			log.Warn().Int64("id", id).Str("func", "*Handler.GetUser").Msg("user not found")
			utils.WriteJSON(w, models.ErrorMessage("Error: User not found"), status)
			return
		}

		log.Err(err).Int64("id", id).Str("func", "*Handler.GetUser").Msg("user lookup failed")
		utils.WriteJSON(w, models.ErrorMessage("Error: "+http.StatusText(status)), status)
		return
	}

	utils.WriteJSON(w, models.NewUserFindResponse(user), http.StatusOK)
}

// Health handles GET /health, the unauthenticated liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "UP"}, http.StatusOK)
}
