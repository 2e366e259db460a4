package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/creatorqa/profile-service/internal/models"
	"github.com/creatorqa/profile-service/internal/storage"
)

// profileColumns — единый список колонок таблицы profiles,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const profileColumns = `
id, user_id, username, country, date_of_birth, about, onboarding, created_at, updated_at
`

// querier — общий знаменатель pgxpool.Pool и pgx.Tx для хелперов загрузки.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanProfile сканирует одну строку профиля из результата запроса
// в доменную модель.
func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var onboarding string

	if err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Username,
		&profile.Country,
		&profile.DateOfBirth,
		&profile.About,
		&onboarding,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	profile.Onboarding = models.OnboardingStep(onboarding)

	return &profile, nil
}

// loadExternalLinks возвращает ссылки профиля в сохранённом порядке.
func loadExternalLinks(ctx context.Context, q querier, profileID uuid.UUID) ([]models.ExternalLink, error) {
	rows, err := q.Query(ctx,
		`SELECT url, type FROM external_links WHERE profile_id = $1 ORDER BY position`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.ExternalLink
	for rows.Next() {
		var link models.ExternalLink
		var typ string
		if err := rows.Scan(&link.URL, &typ); err != nil {
			return nil, err
		}
		link.Type = models.SocialPlatform(typ)
		links = append(links, link)
	}

	return links, rows.Err()
}

// loadAvatar возвращает аватар профиля или nil, если его нет.
func loadAvatar(ctx context.Context, q querier, profileID uuid.UUID) (*models.Asset, error) {
	row := q.QueryRow(ctx,
		`SELECT id, profile_id, url, created_at, updated_at FROM assets WHERE profile_id = $1`,
		profileID,
	)

	var asset models.Asset
	if err := row.Scan(&asset.ID, &asset.ProfileID, &asset.URL, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &asset, nil
}

// loadWallet возвращает кошелёк профиля или nil, если его нет.
func loadWallet(ctx context.Context, q querier, profileID uuid.UUID) (*models.Wallet, error) {
	row := q.QueryRow(ctx,
		`SELECT id, profile_id, key, created_at, updated_at FROM wallets WHERE profile_id = $1`,
		profileID,
	)

	var wallet models.Wallet
	if err := row.Scan(&wallet.ID, &wallet.ProfileID, &wallet.Key, &wallet.CreatedAt, &wallet.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &wallet, nil
}

// loadAggregate дозагружает вложенные сущности профиля (ссылки, аватар, кошелёк).
func loadAggregate(ctx context.Context, q querier, profile *models.Profile) error {
	links, err := loadExternalLinks(ctx, q, profile.ID)
	if err != nil {
		return err
	}
	profile.ExternalLinks = links

	avatar, err := loadAvatar(ctx, q, profile.ID)
	if err != nil {
		return err
	}
	profile.Avatar = avatar

	wallet, err := loadWallet(ctx, q, profile.ID)
	if err != nil {
		return err
	}
	profile.Wallet = wallet

	return nil
}

// CreateProfile создаёт пустой профиль на этапе PENDING.
// Ошибки: storage.ErrAlreadyExists при повторном создании для того же user_id,
// storage.ErrNotFoundUser, если пользователя не существует.
func (s *ProfilesStorage) CreateProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage/postgres/profiles/CreateProfile"

	q := `
	INSERT INTO profiles (user_id)
	VALUES ($1)
	RETURNING
	` + profileColumns

	row := s.db.QueryRow(ctx, q, userID)

	result, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			case "23503":
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundUser)
			}
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ProfileByUserID возвращает профиль по user_id вместе с вложенными сущностями.
// Ошибки: storage.ErrNotFoundProfile, либо ошибка выполнения запроса.
func (s *ProfilesStorage) ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ProfileByUserID"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	result, err := scanProfile(s.db.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := loadAggregate(ctx, s.db, result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ProfileByUsername возвращает профиль по username (без учёта регистра)
// вместе с вложенными сущностями.
// Ошибки: storage.ErrNotFoundProfile, либо ошибка выполнения запроса.
func (s *ProfilesStorage) ProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ProfileByUsername"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(username) = lower($1)`

	result, err := scanProfile(s.db.QueryRow(ctx, q, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := loadAggregate(ctx, s.db, result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// OnboardByUserID применяет одну онбординг-отправку: частично обновляет поля
// профиля (непустые pointer-поля) и, если update.ExternalLinks != nil,
// заменяет коллекцию ссылок целиком. Всё — в одной транзакции; updated_at
// сдвигается всегда. Avatar/Wallet в возвращаемом агрегате не заполняются:
// их поверх накладывает сервисный слой из результатов апсертов.
// Ошибки: storage.ErrNotFoundProfile при отсутствии записи,
// storage.ErrAlreadyExists при конфликте уникальности username.
func (s *ProfilesStorage) OnboardByUserID(ctx context.Context, userID uuid.UUID, update storage.OnboardUpdate) (*models.Profile, error) {
	const op = "storage/postgres/profiles/OnboardByUserID"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sets := []string{"updated_at = now()"}
	args := make([]any, 0, 4)
	count := 0

	if update.Onboarding != nil {
		count++
		sets = append(sets, fmt.Sprintf("onboarding = $%d", count))
		args = append(args, string(*update.Onboarding))
	}

	if update.Username != nil {
		count++
		sets = append(sets, fmt.Sprintf("username = $%d", count))
		args = append(args, *update.Username)
	}

	if update.About != nil {
		count++
		sets = append(sets, fmt.Sprintf("about = $%d", count))
		args = append(args, *update.About)
	}

	count++
	args = append(args, userID)

	q := fmt.Sprintf(`UPDATE profiles SET %s WHERE user_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), count, profileColumns)

	result, err := scanProfile(tx.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if update.ExternalLinks != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM external_links WHERE profile_id = $1`, result.ID,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for i, link := range update.ExternalLinks {
			if _, err := tx.Exec(ctx,
				`INSERT INTO external_links (profile_id, url, type, position) VALUES ($1, $2, $3, $4)`,
				result.ID, link.URL, string(link.Type), i,
			); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		result.ExternalLinks = update.ExternalLinks
	} else {
		links, err := loadExternalLinks(ctx, tx, result.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.ExternalLinks = links
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
