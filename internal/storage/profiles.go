// storage содержит контракты слоя хранилищ profile-service.
//
// profiles.go - пользователи и профили в БД: поиск владельца, создание
// профиля, частичное обновление одной онбординг-отправки (onboard).
// assets.go / wallets.go - апсерты вложенных сущностей профиля.
// questions.go - read-only выборка отвеченных вопросов.
// uploads.go - контракт загрузки бинарных объектов (аватаров) в S3/MinIO.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/creatorqa/profile-service/internal/models"
)

var (
	// ErrNotFoundUser — пользователь не найден.
	ErrNotFoundUser = errors.New("user not found")
	// ErrNotFoundProfile — профиль не найден.
	ErrNotFoundProfile = errors.New("profile not found")
	// ErrAlreadyExists — профиль для этого пользователя уже существует.
	ErrAlreadyExists = errors.New("already exists")
)

// User — владелец профиля. Профиль загружается вместе с пользователем:
// воркфлоу онбординга всегда нужен и тот и другой.
type User struct {
	ID      uuid.UUID
	Email   string
	Profile *models.Profile
}

// OnboardUpdate — частичное обновление агрегата одной онбординг-отправкой.
// Pointer-поля: nil — поле не трогаем. ExternalLinks — nil не трогаем,
// непустой/пустой срез — полная замена коллекции.
type OnboardUpdate struct {
	Onboarding    *models.OnboardingStep
	Username      *string
	About         *string
	ExternalLinks []models.ExternalLink
}

// Users — контракт поиска владельца профиля.
type Users interface {
	// FindByUserID возвращает пользователя вместе с его профилем.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*User, error)
}

// Profiles — контракт репозитория профилей.
type Profiles interface {
	// CreateProfile создаёт пустой профиль на этапе PENDING.
	CreateProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// ProfileByUserID возвращает профиль по user_id вместе с вложенными сущностями.
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	// ProfileByUsername возвращает профиль по username вместе с вложенными сущностями.
	ProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	// OnboardByUserID применяет частичное обновление и возвращает обновлённый
	// агрегат. Реализация обновляет updated_at; Avatar/Wallet в ответе может
	// не заполнять — это делает вызывающий слой.
	OnboardByUserID(ctx context.Context, userID uuid.UUID, update OnboardUpdate) (*models.Profile, error)
}

// ProfilesStorage — верхнеуровневый интерфейс реляционного хранилища.
type ProfilesStorage interface {
	Users
	Profiles
	Assets
	Wallets
	Questions
	Close()
}
