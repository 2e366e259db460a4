package models

// Тесты доменной модели профиля:
//  - таблица переходов онбординга (включая терминальный DONE и невалидные значения);
//  - IsOnboardingComplete;
//  - Equal (идентичность по ID);
//  - сериализация агрегата в DTO (таймстемпы текстом, omitempty для вложенных).
//
// Запуск:
//   go test ./internal/models -v -race -count=1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNextOnboardingStep_Ordering(t *testing.T) {
	cases := []struct {
		current OnboardingStep
		want    OnboardingStep
	}{
		{StepPending, StepBasicInformation},
		{StepBasicInformation, StepSocialLinks},
		{StepSocialLinks, StepCryptoWallet},
		{StepCryptoWallet, StepDone},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, NextOnboardingStep(tc.current), "current=%s", tc.current)
	}
}

// DONE — терминальное состояние, продвижение из него — no-op.
func TestNextOnboardingStep_DoneIsTerminal(t *testing.T) {
	require.Equal(t, StepDone, NextOnboardingStep(StepDone))
	require.Equal(t, StepDone, NextOnboardingStep(NextOnboardingStep(StepDone)))
}

// Незнакомое значение даёт DONE, а не ошибку.
func TestNextOnboardingStep_UnknownFallsToDone(t *testing.T) {
	require.Equal(t, StepDone, NextOnboardingStep(OnboardingStep("BROKEN")))
	require.Equal(t, StepDone, NextOnboardingStep(OnboardingStep("")))
}

func TestParseOnboardingStep(t *testing.T) {
	for _, s := range []string{"PENDING", "BASIC_INFORMATION", "SOCIAL_LINKS", "CRYPTO_WALLET", "DONE"} {
		got, ok := ParseOnboardingStep(s)
		require.True(t, ok, s)
		require.Equal(t, OnboardingStep(s), got)
	}

	_, ok := ParseOnboardingStep("pending")
	require.False(t, ok)
	_, ok = ParseOnboardingStep("")
	require.False(t, ok)
}

func TestParseSocialPlatform(t *testing.T) {
	got, ok := ParseSocialPlatform("FACEBOOK")
	require.True(t, ok)
	require.Equal(t, PlatformFacebook, got)

	_, ok = ParseSocialPlatform("MYSPACE")
	require.False(t, ok)
}

func TestProfile_IsOnboardingComplete(t *testing.T) {
	p := &Profile{Onboarding: StepSocialLinks}
	require.False(t, p.IsOnboardingComplete())

	p.Onboarding = StepDone
	require.True(t, p.IsOnboardingComplete())
	// Идемпотентно.
	require.True(t, p.IsOnboardingComplete())
}

// Равенство — только по ID: разные атрибуты при одинаковом ID не важны.
func TestProfile_Equal(t *testing.T) {
	id := uuid.New()
	a := &Profile{ID: id, Username: "alice"}
	b := &Profile{ID: id, Username: "bob"}
	c := &Profile{ID: uuid.New(), Username: "alice"}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}

// Round-trip: агрегат с кошельком и двумя ссылками воспроизводит все поля,
// таймстемпы — текстом.
func TestProfile_DTO_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	profileID := uuid.New()
	userID := uuid.New()
	walletID := uuid.New()

	p := &Profile{
		ID:         profileID,
		UserID:     userID,
		Username:   "alice",
		Country:    "LV",
		About:      "creator",
		Onboarding: StepDone,
		Wallet: &Wallet{
			ID:        walletID,
			ProfileID: profileID,
			Key:       "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin",
			CreatedAt: now,
			UpdatedAt: now,
		},
		ExternalLinks: []ExternalLink{
			{URL: "https://facebook.com/alice", Type: PlatformFacebook},
			{URL: "https://instagram.com/alice", Type: PlatformInstagram},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	dto := p.DTO()

	require.Equal(t, profileID.String(), dto.ID)
	require.Equal(t, userID.String(), dto.UserID)
	require.Equal(t, "alice", dto.Username)
	require.Equal(t, "LV", dto.Country)
	require.Equal(t, "creator", dto.About)
	require.Equal(t, "DONE", dto.Onboarding)
	require.Equal(t, now.Format(time.RFC3339), dto.CreatedAt)
	require.Equal(t, now.Format(time.RFC3339), dto.UpdatedAt)

	require.NotNil(t, dto.Wallet)
	require.Equal(t, walletID.String(), dto.Wallet.ID)
	require.Equal(t, p.Wallet.Key, dto.Wallet.Key)
	require.Equal(t, now.Format(time.RFC3339), dto.Wallet.CreatedAt)

	require.Len(t, dto.ExternalLinks, 2)
	require.Equal(t, "https://facebook.com/alice", dto.ExternalLinks[0].URL)
	require.Equal(t, "FACEBOOK", dto.ExternalLinks[0].Type)
	require.Equal(t, "INSTAGRAM", dto.ExternalLinks[1].Type)
}

// Отсутствующие вложенные сущности не попадают в JSON вовсе.
func TestProfile_DTO_AbsentNestedOmitted(t *testing.T) {
	p := &Profile{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Onboarding: StepPending,
	}

	dto := p.DTO()
	require.Nil(t, dto.Avatar)
	require.Nil(t, dto.Wallet)
	require.Nil(t, dto.ExternalLinks)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"avatar"`)
	require.NotContains(t, string(raw), `"wallet"`)
	require.NotContains(t, string(raw), `"external_links"`)
	require.NotContains(t, string(raw), `"questions"`)
	require.NotContains(t, string(raw), "null")
}
