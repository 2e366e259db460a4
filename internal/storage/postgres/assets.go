package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/creatorqa/profile-service/internal/models"
	"github.com/creatorqa/profile-service/internal/storage"
)

// UpsertAssetByProfileID создаёт или заменяет аватар профиля.
// profile_id UNIQUE: ON CONFLICT перезаписывает url и сдвигает updated_at.
// Ошибки: storage.ErrNotFoundProfile, если профиля не существует.
func (s *ProfilesStorage) UpsertAssetByProfileID(ctx context.Context, profileID uuid.UUID, url string) (*models.Asset, error) {
	const op = "storage/postgres/assets/UpsertAssetByProfileID"

	q := `
	INSERT INTO assets (profile_id, url)
	VALUES ($1, $2)
	ON CONFLICT (profile_id) DO UPDATE SET url = EXCLUDED.url, updated_at = now()
	RETURNING id, profile_id, url, created_at, updated_at`

	row := s.db.QueryRow(ctx, q, profileID, url)

	var asset models.Asset
	if err := row.Scan(&asset.ID, &asset.ProfileID, &asset.URL, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &asset, nil
}

// UpsertWalletByProfileID создаёт или заменяет кошелёк профиля.
// Повторный вызов перезаписывает публичный ключ: не больше одного активного
// ключа на профиль.
// Ошибки: storage.ErrNotFoundProfile, если профиля не существует.
func (s *ProfilesStorage) UpsertWalletByProfileID(ctx context.Context, profileID uuid.UUID, key string) (*models.Wallet, error) {
	const op = "storage/postgres/wallets/UpsertWalletByProfileID"

	q := `
	INSERT INTO wallets (profile_id, key)
	VALUES ($1, $2)
	ON CONFLICT (profile_id) DO UPDATE SET key = EXCLUDED.key, updated_at = now()
	RETURNING id, profile_id, key, created_at, updated_at`

	row := s.db.QueryRow(ctx, q, profileID, key)

	var wallet models.Wallet
	if err := row.Scan(&wallet.ID, &wallet.ProfileID, &wallet.Key, &wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &wallet, nil
}
