package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/creatorqa/profile-service/internal/storage"
)

// FindByUserID возвращает пользователя вместе с его профилем и вложенными
// сущностями профиля.
// Ошибки: storage.ErrNotFoundUser, если пользователя нет;
// storage.ErrNotFoundProfile, если пользователь есть, а профиль — нет
// (профиль создаётся вместе с аккаунтом, его отсутствие — аномалия данных).
func (s *ProfilesStorage) FindByUserID(ctx context.Context, userID uuid.UUID) (*storage.User, error) {
	const op = "storage/postgres/users/FindByUserID"

	row := s.db.QueryRow(ctx, `SELECT id, email FROM users WHERE id = $1`, userID)

	var user storage.User
	if err := row.Scan(&user.ID, &user.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile, err := s.ProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.Profile = profile

	return &user, nil
}
