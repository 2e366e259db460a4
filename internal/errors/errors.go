// errors стандартизирует ответы об ошибках HTTP-слоя profile-service.
// На вход он принимает ошибку сервисного слоя (сентинелы service.Err*,
// *service.ValidationError), а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - для ошибок валидации — пополевый отчёт field_errors, чтобы фронт
//     мог перерисовать форму с ошибками у конкретных полей.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/creatorqa/profile-service/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
// FieldErrors — присутствует только для ошибок валидации формы.
type APIError struct {
	Code        string              `json:"code"`
	Message     string              `json:"message"`
	RequestID   string              `json:"request_id,omitempty"`
	FieldErrors map[string][]string `json:"field_errors,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil - это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - *service.ValidationError -> 400/validation_failed с field_errors;
//   - сентинелы service.Err* маппятся по таблице ниже;
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:        "validation_failed",
				Message:     "validation failed",
				FieldErrors: verr.Fields,
			},
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{Code: "invalid_argument", Message: "invalid argument"},
		}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{
			Error: APIError{Code: "not_found", Message: "not found"},
		}
	case errors.Is(err, service.ErrAlreadyExists):
		return http.StatusConflict, ErrorResponse{
			Error: APIError{Code: "already_exists", Message: "already exists"},
		}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{
			Error: APIError{Code: "canceled", Message: "canceled"},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{
			Error: APIError{Code: "deadline_exceeded", Message: "deadline exceeded"},
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{Code: "internal", Message: "internal error"},
		}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
