// service содержит бизнес-логику profile-service:
// - воркфлоу онбординга (валидация отправки, параллельные апсерты
//   вложенных сущностей, вычисление следующего этапа, одно объединённое
//   обновление агрегата);
// - операции над профилем (создание, чтение, публичная страница с
//   пагинацией отвеченных вопросов).
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/creatorqa/profile-service/internal/cache"
	"github.com/creatorqa/profile-service/internal/config"
	"github.com/creatorqa/profile-service/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности/дубликат.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// FieldErrors — отчёт валидации: имя поля -> список человекочитаемых
// сообщений. Присутствуют только поля с ошибками.
type FieldErrors map[string][]string

// Add добавляет сообщение к полю.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError — ошибка валидации отправки с пополевой детализацией:
// вызывающему слою нужно перерисовать форму с ошибками у конкретных полей.
// errors.Is(err, ErrInvalidArgument) — true.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// Service — описывает бизнес-логику profile-service.
type Service struct {
	cfg      *config.Config
	profiles storage.ProfilesStorage
	uploads  storage.UploadsStorage
	cache    cache.ProfileCache // nil — кеш отключён.
}

// New создает новый экземпляр Service.
// profileCache может быть nil: сервис работает без кеша.
func New(profiles storage.ProfilesStorage, uploads storage.UploadsStorage, profileCache cache.ProfileCache, cfg *config.Config) *Service {
	return &Service{
		cfg:      cfg,
		profiles: profiles,
		uploads:  uploads,
		cache:    profileCache,
	}
}
