package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/creatorqa/profile-service/internal/errors"
	"github.com/creatorqa/profile-service/internal/models"
)

// createProfileRequest — тело POST /profiles.
type createProfileRequest struct {
	UserID string `json:"user_id"`
}

// publicProfileResponse — тело публичной страницы создателя.
type publicProfileResponse struct {
	Profile        models.ProfileDTO `json:"profile"`
	TotalQuestions int64             `json:"total_questions"`
	Page           int32             `json:"page"`
	Size           int32             `json:"size"`
}

// CreateProfile создаёт пустой профиль для существующего пользователя.
func (h *Handlers) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var in createProfileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	profile, err := h.Service.CreateProfile(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile.DTO())
}

// ProfileByUserID возвращает агрегат профиля владельцу.
func (h *Handlers) ProfileByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	profile, err := h.Service.ProfileByUserID(r.Context(), userID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile.DTO())
}

// PublicProfile возвращает публичную страницу создателя по username
// со страницей отвеченных вопросов (?page=&size=).
func (h *Handlers) PublicProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	page, err := queryInt32(r, "page", 0)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}
	size, err := queryInt32(r, "size", 0)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	result, err := h.Service.PublicProfile(r.Context(), username, page, size)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, publicProfileResponse{
		Profile:        result.Profile.DTO(),
		TotalQuestions: result.TotalQuestions,
		Page:           result.Page,
		Size:           result.Size,
	})
}

// queryInt32 — парсит числовой query-параметр; отсутствие — значение по умолчанию.
func queryInt32(r *http.Request, name string, def int32) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
