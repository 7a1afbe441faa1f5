package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rsweeney/sleepaid/internal/avatar"
	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/pkg/problem"
)

type AvatarHandler struct {
	store *avatar.Store
}

func NewAvatarHandler(store *avatar.Store) *AvatarHandler {
	return &AvatarHandler{store: store}
}

// Put handles PUT /v1/users/{userId}/avatar
// @Summary Upload an avatar
// @Description Store a profile picture (PNG, at most 2 MiB), replacing any earlier one.
// @Tags avatar
// @Accept png
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Avatar stored"
// @Failure 400 {object} problem.Problem "Empty or oversized upload"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/avatar [put]
func (h *AvatarHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.store.Save(userID, r.Body); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Avatar must be a non-empty image of at most 2 MiB").Write(w)
			return
		}
		problem.InternalError("Failed to store avatar").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /v1/users/{userId}/avatar
// @Summary Fetch the avatar
// @Tags avatar
// @Produce png
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {file} file "Avatar image"
// @Failure 404 {object} problem.Problem "No avatar stored"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/avatar [get]
func (h *AvatarHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	data, err := h.store.Load(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No avatar stored").Write(w)
			return
		}
		problem.InternalError("Failed to load avatar").Write(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// Delete handles DELETE /v1/users/{userId}/avatar
// @Summary Remove the avatar
// @Tags avatar
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 204 "Avatar removed"
// @Failure 404 {object} problem.Problem "No avatar stored"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/avatar [delete]
func (h *AvatarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.store.Delete(userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No avatar stored").Write(w)
			return
		}
		problem.InternalError("Failed to remove avatar").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
