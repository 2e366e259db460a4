package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/creatorqa/profile-service/internal/models"
)

// Questions — read-only контракт отвеченных вопросов для публичной страницы.
// Создание и оплата вопросов — зона ответственности другого сервиса.
type Questions interface {
	// AnsweredByProfileID возвращает страницу отвеченных вопросов,
	// новые — первыми.
	AnsweredByProfileID(ctx context.Context, profileID uuid.UUID, limit, offset int32) ([]models.Question, error)
	// CountAnsweredByProfileID возвращает общее число отвеченных вопросов.
	CountAnsweredByProfileID(ctx context.Context, profileID uuid.UUID) (int64, error)
}
