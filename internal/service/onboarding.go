package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/creatorqa/profile-service/internal/models"
	"github.com/creatorqa/profile-service/internal/storage"
	"github.com/creatorqa/profile-service/pkg/log"
)

// AvatarUpload — загружаемый файл аватара из multipart-формы.
type AvatarUpload struct {
	Filename    string
	Content     io.Reader
	Size        int64
	ContentType string
}

// ExternalLinkInput — строка ссылки из формы. Полузаполненные строки
// (пустой URL или тег) валидацию проходят и отбрасываются на фильтрации.
type ExternalLinkInput struct {
	URL  string
	Type string
}

// SubmitOnboardingInput — одна онбординг-отправка.
// Onboarding обязателен; остальные поля опциональны: nil — не прислано.
type SubmitOnboardingInput struct {
	Onboarding    string
	Username      *string
	About         *string
	Avatar        *AvatarUpload
	ExternalLinks []ExternalLinkInput
	PublicKey     *string
}

// validate проверяет отправку по схеме и накапливает пополевые ошибки.
// Возвращает распарсенный этап (валиден только при пустом отчёте).
func (in *SubmitOnboardingInput) validate() (models.OnboardingStep, FieldErrors) {
	fields := FieldErrors{}

	var step models.OnboardingStep
	if in.Onboarding == "" {
		fields.Add("onboarding", "onboarding is required")
	} else {
		parsed, ok := models.ParseOnboardingStep(in.Onboarding)
		if !ok {
			fields.Add("onboarding", fmt.Sprintf("onboarding must be a valid step, got %q", in.Onboarding))
		}
		step = parsed
	}

	if in.Username != nil && strings.TrimSpace(*in.Username) == "" {
		fields.Add("username", "username must not be empty")
	}

	if in.Avatar != nil {
		if in.Avatar.Filename == "" || in.Avatar.Content == nil || in.Avatar.Size <= 0 {
			fields.Add("avatar", "avatar must reference an uploaded file")
		}
	}

	for _, link := range in.ExternalLinks {
		if link.Type != "" {
			if _, ok := models.ParseSocialPlatform(link.Type); !ok {
				fields.Add("externalLinks", fmt.Sprintf("unknown social platform %q", link.Type))
			}
		}
	}

	if in.PublicKey != nil && strings.TrimSpace(*in.PublicKey) == "" {
		fields.Add("publicKey", "publicKey must not be empty")
	}

	return step, fields
}

// filterExternalLinks оставляет только строки с непустым URL и валидным
// тегом платформы. Остальные молча отбрасываются — submission-уровневая
// терпимость к частично заполненным строкам формы; это не ошибка валидации.
// nil на входе — ссылки не присылались, коллекцию не трогаем.
func filterExternalLinks(links []ExternalLinkInput) []models.ExternalLink {
	if links == nil {
		return nil
	}

	filtered := make([]models.ExternalLink, 0, len(links))
	for _, link := range links {
		if link.URL == "" {
			continue
		}

		platform, ok := models.ParseSocialPlatform(link.Type)
		if !ok {
			continue
		}

		filtered = append(filtered, models.ExternalLink{URL: link.URL, Type: platform})
	}

	return filtered
}

// SubmitOnboarding применяет одну онбординг-отправку и возвращает обновлённый
// агрегат.
//
// Процесс:
//  1. поиск владельца (нет пользователя -> ErrNotFound);
//  2. валидация отправки по схеме (-> *ValidationError с пополевым отчётом,
//     до каких-либо записей);
//  3. параллельно и независимо: загрузка аватара в блоб-хранилище + апсерт
//     Asset, апсерт Wallet (отсутствие файла/ключа — no-op ветки);
//  4. фильтрация внешних ссылок;
//  5. присланный этап записывается на агрегат, следующий вычисляется от него
//     по таблице переходов — и именно вычисленный сохраняется;
//  6. одно объединённое частичное обновление агрегата;
//  7. свежие Asset/Wallet накладываются на возвращаемый агрегат поверх
//     ответа персистентности.
//
// Транзакционности между шагами 3 и 6 нет: при сбое после частичных апсертов
// компенсации не выполняются, ошибка уходит вызывающему. Конкурентные
// отправки одного пользователя не сериализуются — последняя запись
// побеждает.
func (s *Service) SubmitOnboarding(ctx context.Context, userID uuid.UUID, input SubmitOnboardingInput) (*models.Profile, error) {
	const op = "service/onboarding/SubmitOnboarding"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundUser), errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on FindByUserID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	submittedStep, fields := input.validate()
	if len(fields) > 0 {
		lg.Warn("submission failed validation", "fields", len(fields))

		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	profile := user.Profile

	// Аватар и кошелёк — непересекающиеся сущности, порядок между ветками
	// не гарантируется.
	var avatar *models.Asset
	var wallet *models.Wallet

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if input.Avatar == nil {
			return nil
		}

		key := path.Join("avatars", userID.String(), filepath.Base(input.Avatar.Filename))

		url, err := s.uploads.Upload(gctx, key, input.Avatar.Content, input.Avatar.Size, input.Avatar.ContentType)
		if err != nil {
			return fmt.Errorf("upload avatar: %w", err)
		}

		avatar, err = s.profiles.UpsertAssetByProfileID(gctx, profile.ID, url)
		if err != nil {
			return fmt.Errorf("upsert asset: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		if input.PublicKey == nil {
			return nil
		}

		var err error
		wallet, err = s.profiles.UpsertWalletByProfileID(gctx, profile.ID, strings.TrimSpace(*input.PublicKey))
		if err != nil {
			return fmt.Errorf("upsert wallet: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidUpload):
			lg.Warn("avatar rejected by blob storage", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("profile vanished during submission")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("sub-resource update failed", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// Присланный этап записывается на агрегат как текущий; следующий
	// вычисляется от него же. Расхождение между тем, что клиент прислал,
	// и тем, что сохранено, — наблюдаемое поведение флоу, не чинить молча.
	prevUsername := profile.Username
	profile.Onboarding = submittedStep
	next := models.NextOnboardingStep(profile.Onboarding)

	update := storage.OnboardUpdate{
		Onboarding:    &next,
		About:         input.About,
		ExternalLinks: filterExternalLinks(input.ExternalLinks),
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		update.Username = &username
	}

	updated, err := s.profiles.OnboardByUserID(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("profile not found on onboard update")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("username already taken")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		default:
			lg.Error("storage error on OnboardByUserID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// Ответ персистентности не обязан заполнять Asset/Wallet — накладываем
	// результаты апсертов, а при их отсутствии оставляем прежние сущности.
	if avatar != nil {
		updated.Avatar = avatar
	} else {
		updated.Avatar = profile.Avatar
	}

	if wallet != nil {
		updated.Wallet = wallet
	} else {
		updated.Wallet = profile.Wallet
	}

	s.invalidateCache(ctx, prevUsername, updated.Username)

	lg.Info("onboarding step applied",
		"submitted", string(submittedStep),
		"persisted", string(next),
	)

	return updated, nil
}

// invalidateCache сбрасывает кеш публичного профиля для старого и нового
// username. Ошибки кеша не влияют на результат отправки.
func (s *Service) invalidateCache(ctx context.Context, usernames ...string) {
	if s.cache == nil {
		return
	}

	seen := make(map[string]struct{}, len(usernames))
	for _, username := range usernames {
		if username == "" {
			continue
		}
		lower := strings.ToLower(username)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}

		if err := s.cache.Invalidate(ctx, username); err != nil {
			log.From(ctx).Warn("cache invalidate failed", "username", username, "err", err)
		}
	}
}
