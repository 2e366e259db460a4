package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/creatorqa/profile-service/internal/models"
	"github.com/creatorqa/profile-service/internal/storage"
)

// Интеграционные тесты для пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют:
//    CreateProfile: вставку пустого профиля на PENDING, ErrAlreadyExists при повторе,
//      ErrNotFoundUser для несуществующего пользователя;
//    FindByUserID/ProfileByUserID/ProfileByUsername: чтение агрегата с вложенными
//      сущностями, регистронезависимый поиск по username;
//    OnboardByUserID: частичное обновление, полную замену коллекции ссылок,
//      конфликт уникальности username;
//    апсерты Asset/Wallet: перезапись по profile_id;
//    AnsweredByProfileID/CountAnsweredByProfileID: только отвеченные, порядок и пагинацию.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*ProfilesStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "docker.io/postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting postgres container with image=%q", req.Image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
		ProviderType:     tc.ProviderDocker,
	})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_profiles.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// seedUser — вставляет запись в users и возвращает её идентификатор.
func seedUser(t *testing.T, st *ProfilesStorage, email string) uuid.UUID {
	t.Helper()
	uid := uuid.New()
	_, err := st.db.Exec(context.Background(),
		`INSERT INTO users (id, email) VALUES ($1, $2);`, uid, email)
	require.NoError(t, err)
	return uid
}

// seedQuestion — вставляет вопрос (answer == "" — неотвеченный).
func seedQuestion(t *testing.T, st *ProfilesStorage, profileID uuid.UUID, question, answer string, createdAt time.Time) {
	t.Helper()
	_, err := st.db.Exec(context.Background(),
		`INSERT INTO questions (profile_id, question, answer, created_at) VALUES ($1, $2, $3, $4);`,
		profileID, question, answer, createdAt)
	require.NoError(t, err)
}

func stepPtr(s models.OnboardingStep) *models.OnboardingStep { return &s }
func strPtr(s string) *string                                { return &s }

func TestIntegration_CreateProfile_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "alice@example.org")

	created, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, uid, created.UserID)
	require.Equal(t, models.StepPending, created.Onboarding)
	require.Empty(t, created.Username)
	require.Nil(t, created.Avatar)
	require.Nil(t, created.Wallet)
	require.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)
}

func TestIntegration_CreateProfile_AlreadyExists(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "dup@example.org")

	_, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	_, err = st.CreateProfile(context.Background(), uid)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_CreateProfile_UserMissing(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.CreateProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFoundUser)
}

func TestIntegration_FindByUserID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "bob@example.org")
	_, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	user, err := st.FindByUserID(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, uid, user.ID)
	require.Equal(t, "bob@example.org", user.Email)
	require.NotNil(t, user.Profile)
	require.Equal(t, models.StepPending, user.Profile.Onboarding)
}

func TestIntegration_FindByUserID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.FindByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFoundUser)
}

func TestIntegration_ProfileByUserID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ProfileByUserID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFoundProfile)
}

// OnboardByUserID: частичное обновление — затрагиваются только присланные
// поля, updated_at сдвигается, остальное не трогается.
func TestIntegration_OnboardByUserID_PartialUpdate(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "carol@example.org")
	created, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	updated, err := st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepBasicInformation),
		Username:   strPtr("carol"),
		About:      strPtr("hello"),
	})
	require.NoError(t, err)
	require.Equal(t, models.StepBasicInformation, updated.Onboarding)
	require.Equal(t, "carol", updated.Username)
	require.Equal(t, "hello", updated.About)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))

	// Следующая отправка без username/about не затирает их.
	updated, err = st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepSocialLinks),
	})
	require.NoError(t, err)
	require.Equal(t, models.StepSocialLinks, updated.Onboarding)
	require.Equal(t, "carol", updated.Username)
	require.Equal(t, "hello", updated.About)
}

// OnboardByUserID: nil ExternalLinks — коллекция не трогается; не-nil —
// полная замена, включая замену на пустую.
func TestIntegration_OnboardByUserID_ReplacesLinks(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "dave@example.org")
	_, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	links := []models.ExternalLink{
		{URL: "https://x.com/dave", Type: models.PlatformTwitter},
		{URL: "https://youtube.com/@dave", Type: models.PlatformYoutube},
	}
	updated, err := st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding:    stepPtr(models.StepSocialLinks),
		ExternalLinks: links,
	})
	require.NoError(t, err)
	require.Len(t, updated.ExternalLinks, 2)
	require.Equal(t, links[0].URL, updated.ExternalLinks[0].URL)
	require.Equal(t, links[1].Type, updated.ExternalLinks[1].Type)

	// nil — без изменений.
	updated, err = st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepCryptoWallet),
	})
	require.NoError(t, err)
	require.Len(t, updated.ExternalLinks, 2)

	// Пустой не-nil срез — полная замена на пустую коллекцию.
	updated, err = st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding:    stepPtr(models.StepCryptoWallet),
		ExternalLinks: []models.ExternalLink{},
	})
	require.NoError(t, err)
	require.Empty(t, updated.ExternalLinks)
}

func TestIntegration_OnboardByUserID_UsernameConflict(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	first := seedUser(t, st, "one@example.org")
	second := seedUser(t, st, "two@example.org")
	_, err := st.CreateProfile(context.Background(), first)
	require.NoError(t, err)
	_, err = st.CreateProfile(context.Background(), second)
	require.NoError(t, err)

	_, err = st.OnboardByUserID(context.Background(), first, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepBasicInformation),
		Username:   strPtr("creator"),
	})
	require.NoError(t, err)

	// Регистр не спасает от конфликта.
	_, err = st.OnboardByUserID(context.Background(), second, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepBasicInformation),
		Username:   strPtr("CREATOR"),
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_OnboardByUserID_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.OnboardByUserID(context.Background(), uuid.New(), storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepBasicInformation),
	})
	require.ErrorIs(t, err, storage.ErrNotFoundProfile)
}

func TestIntegration_ProfileByUsername_CaseInsensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "erin@example.org")
	_, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)
	_, err = st.OnboardByUserID(context.Background(), uid, storage.OnboardUpdate{
		Onboarding: stepPtr(models.StepBasicInformation),
		Username:   strPtr("Erin"),
	})
	require.NoError(t, err)

	got, err := st.ProfileByUsername(context.Background(), "eRiN")
	require.NoError(t, err)
	require.Equal(t, uid, got.UserID)

	_, err = st.ProfileByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, storage.ErrNotFoundProfile)
}

// Апсерты вложенных сущностей: повторный вызов перезаписывает запись того же
// profile_id, идентификатор строки сохраняется.
func TestIntegration_UpsertAssetAndWallet(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "frank@example.org")
	profile, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	first, err := st.UpsertAssetByProfileID(context.Background(), profile.ID, "https://cdn/a.png")
	require.NoError(t, err)
	second, err := st.UpsertAssetByProfileID(context.Background(), profile.ID, "https://cdn/b.png")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "https://cdn/b.png", second.URL)

	w1, err := st.UpsertWalletByProfileID(context.Background(), profile.ID, "key-1")
	require.NoError(t, err)
	w2, err := st.UpsertWalletByProfileID(context.Background(), profile.ID, "key-2")
	require.NoError(t, err)
	require.Equal(t, w1.ID, w2.ID)
	require.Equal(t, "key-2", w2.Key)

	// FindByUserID собирает агрегат целиком.
	user, err := st.FindByUserID(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, user.Profile.Avatar)
	require.Equal(t, "https://cdn/b.png", user.Profile.Avatar.URL)
	require.NotNil(t, user.Profile.Wallet)
	require.Equal(t, "key-2", user.Profile.Wallet.Key)
}

func TestIntegration_UpsertAsset_ProfileMissing(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UpsertAssetByProfileID(context.Background(), uuid.New(), "https://cdn/x.png")
	require.ErrorIs(t, err, storage.ErrNotFoundProfile)
}

// Отвеченные вопросы: неотвеченные не попадают в выборку, порядок —
// новые сверху, limit/offset дают страницы, Count считает только отвеченные.
func TestIntegration_AnsweredQuestions(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	uid := seedUser(t, st, "grace@example.org")
	profile, err := st.CreateProfile(context.Background(), uid)
	require.NoError(t, err)

	base := time.Now().UTC().Add(-time.Hour)
	seedQuestion(t, st, profile.ID, "q1", "a1", base)
	seedQuestion(t, st, profile.ID, "q2", "a2", base.Add(time.Minute))
	seedQuestion(t, st, profile.ID, "q3", "a3", base.Add(2*time.Minute))
	seedQuestion(t, st, profile.ID, "pending", "", base.Add(3*time.Minute))

	page, err := st.AnsweredByProfileID(context.Background(), profile.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "q3", page[0].Question)
	require.Equal(t, "q2", page[1].Question)

	page, err = st.AnsweredByProfileID(context.Background(), profile.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "q1", page[0].Question)

	total, err := st.CountAnsweredByProfileID(context.Background(), profile.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}

func TestIntegration_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.ProfileByUserID(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFoundProfile)
}
