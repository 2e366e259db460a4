package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apierrors "github.com/creatorqa/profile-service/internal/errors"
	"github.com/creatorqa/profile-service/internal/service"
)

// socialLinkPayload — элемент массива socialLinks из формы.
// Поле socialLinks приходит одной JSON-строкой: массивы в multipart-формах
// браузеры сериализуют неудобно, фронт шлёт строку.
type socialLinkPayload struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// SubmitOnboarding применяет одну онбординг-отправку из multipart-формы.
//
// Поля формы:
//   - onboarding — текущий этап (обязателен);
//   - username, about, publicKey — опциональные текстовые поля;
//   - avatar — опциональный файл;
//   - socialLinks — опциональная JSON-строка с массивом {url, type}.
func (h *Handlers) SubmitOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if h.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadSize)
	}

	// Файл аватара стримится в сервис без полной буферизации: до memLimit
	// в памяти, остальное во временных файлах.
	const memLimit = 4 << 20
	if err := r.ParseMultipartForm(memLimit); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	input := service.SubmitOnboardingInput{
		Onboarding: r.FormValue("onboarding"),
		Username:   formValuePtr(r, "username"),
		About:      formValuePtr(r, "about"),
		PublicKey:  formValuePtr(r, "publicKey"),
	}

	file, header, err := r.FormFile("avatar")
	switch {
	case err == nil:
		defer file.Close()
		input.Avatar = avatarFromPart(file, header)
	case errors.Is(err, http.ErrMissingFile):
		// аватар не прислан — валидный случай.
	default:
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if raw := r.FormValue("socialLinks"); raw != "" {
		var payload []socialLinkPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		links := make([]service.ExternalLinkInput, 0, len(payload))
		for _, link := range payload {
			links = append(links, service.ExternalLinkInput{URL: link.URL, Type: link.Type})
		}
		input.ExternalLinks = links
	}

	profile, err := h.Service.SubmitOnboarding(r.Context(), userID, input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile.DTO())
}

// formValuePtr — nil, если поле не присылалось вовсе; присланное пустое
// значение остаётся пустой строкой и отдаётся на валидацию сервису.
func formValuePtr(r *http.Request, name string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func avatarFromPart(file multipart.File, header *multipart.FileHeader) *service.AvatarUpload {
	return &service.AvatarUpload{
		Filename:    header.Filename,
		Content:     file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
}
