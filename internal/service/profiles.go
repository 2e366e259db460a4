package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/creatorqa/profile-service/internal/models"
	"github.com/creatorqa/profile-service/internal/storage"
	"github.com/creatorqa/profile-service/pkg/log"
)

// PublicProfilePage — данные публичной страницы создателя: агрегат плюс
// страница отвеченных вопросов.
type PublicProfilePage struct {
	Profile        *models.Profile
	TotalQuestions int64
	Page           int32
	Size           int32
}

// CreateProfile создаёт пустой профиль на этапе PENDING.
// Вызывается при создании аккаунта пользователя.
//
// Поведение:
//   - повторное создание для того же пользователя -> ErrAlreadyExists;
//   - несуществующий пользователь -> ErrNotFound;
//   - иные ошибки стораджа маппятся в ErrInternal.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "service/profiles/CreateProfile"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.profiles.CreateProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("profile already exists")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrNotFoundUser):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// ProfileByUserID возвращает профиль по идентификатору пользователя.
//
// Поведение:
//   - userID не должен быть нулевым (uuid.Nil) — иначе ErrInvalidArgument;
//   - при отсутствии записи возвращает ErrNotFound;
//   - ошибки стораджа маппятся в ErrInternal.
func (s *Service) ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "service/profiles/ProfileByUserID"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.profiles.ProfileByUserID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ProfileByUserID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// PublicProfile возвращает данные публичной страницы создателя: агрегат
// (через кеш, если он включён) и страницу отвеченных вопросов.
//
// Пагинация:
//   - page < 0 приводится к 0;
//   - size == 0 -> limits.default_page_size, size > max -> limits.max_page_size.
func (s *Service) PublicProfile(ctx context.Context, username string, page, size int32) (*PublicProfilePage, error) {
	const op = "service/profiles/PublicProfile"

	lg := log.From(ctx).With("op", op, "username", username)

	username = strings.TrimSpace(username)
	if username == "" {
		lg.Warn("invalid argument: empty username")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if page < 0 {
		page = 0
	}

	if size <= 0 {
		size = s.cfg.Limits.DefaultPageSize
	}
	if size > s.cfg.Limits.MaxPageSize {
		size = s.cfg.Limits.MaxPageSize
	}

	profile, err := s.lookupProfile(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ProfileByUsername", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	questions, err := s.profiles.AnsweredByProfileID(ctx, profile.ID, size, page*size)
	if err != nil {
		lg.Error("storage error on AnsweredByProfileID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}
	profile.Questions = questions

	total, err := s.profiles.CountAnsweredByProfileID(ctx, profile.ID)
	if err != nil {
		lg.Error("storage error on CountAnsweredByProfileID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &PublicProfilePage{
		Profile:        profile,
		TotalQuestions: total,
		Page:           page,
		Size:           size,
	}, nil
}

// lookupProfile — read-through чтение агрегата: кеш (если включён),
// при промахе — БД с последующим заполнением кеша. Ошибки кеша логируются
// и не влияют на результат.
func (s *Service) lookupProfile(ctx context.Context, username string) (*models.Profile, error) {
	if s.cache == nil {
		return s.profiles.ProfileByUsername(ctx, username)
	}

	cached, err := s.cache.Get(ctx, username)
	if err != nil {
		log.From(ctx).Warn("cache get failed", "username", username, "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	profile, err := s.profiles.ProfileByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, profile, s.cfg.Redis.TTL); err != nil {
		log.From(ctx).Warn("cache set failed", "username", username, "err", err)
	}

	return profile, nil
}
