// handlers содержит REST-обработчики profile-service поверх сервисного слоя.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/creatorqa/profile-service/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой и лимиты).
type Handlers struct {
	Service       *service.Service
	MaxUploadSize int64 // верхняя граница multipart-тела, байт.
}

func New(svc *service.Service, maxUploadSize int64) *Handlers {
	return &Handlers{Service: svc, MaxUploadSize: maxUploadSize}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга запроса -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("parse request: %w", service.ErrInvalidArgument)
}
