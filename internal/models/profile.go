// models содержит доменные сущности profile-service.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingStep — этап онбординга создателя.
// Храним как строку: значения совпадают с тем, что видит фронт и БД.
type OnboardingStep string

const (
	StepPending          OnboardingStep = "PENDING"
	StepBasicInformation OnboardingStep = "BASIC_INFORMATION"
	StepSocialLinks      OnboardingStep = "SOCIAL_LINKS"
	StepCryptoWallet     OnboardingStep = "CRYPTO_WALLET"
	StepDone             OnboardingStep = "DONE"
)

// ParseOnboardingStep валидирует строковое значение этапа.
// Любое незнакомое значение — ошибка (ok == false).
func ParseOnboardingStep(s string) (OnboardingStep, bool) {
	switch OnboardingStep(s) {
	case StepPending, StepBasicInformation, StepSocialLinks, StepCryptoWallet, StepDone:
		return OnboardingStep(s), true
	default:
		return "", false
	}
}

// nextStep — таблица переходов онбординга.
// BASIC_INFORMATION намеренно ведёт сразу в SOCIAL_LINKS: сбор кошелька
// в основном флоу отложен, CRYPTO_WALLET достижим только после SOCIAL_LINKS.
var nextStep = map[OnboardingStep]OnboardingStep{
	StepPending:          StepBasicInformation,
	StepBasicInformation: StepSocialLinks,
	StepSocialLinks:      StepCryptoWallet,
	StepCryptoWallet:     StepDone,
	StepDone:             StepDone,
}

// NextOnboardingStep возвращает следующий этап онбординга.
// DONE — терминальное состояние: дальнейшее продвижение — no-op.
// Незнакомое значение тоже даёт DONE, чтобы не «застрять» в невалидном
// состоянии.
func NextOnboardingStep(current OnboardingStep) OnboardingStep {
	if next, ok := nextStep[current]; ok {
		return next
	}

	return StepDone
}

// SocialPlatform — платформа, на которую указывает внешняя ссылка профиля.
type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "FACEBOOK"
	PlatformInstagram SocialPlatform = "INSTAGRAM"
	PlatformTwitter   SocialPlatform = "TWITTER"
	PlatformYoutube   SocialPlatform = "YOUTUBE"
	PlatformTiktok    SocialPlatform = "TIKTOK"
)

// ParseSocialPlatform валидирует строковое значение платформы.
func ParseSocialPlatform(s string) (SocialPlatform, bool) {
	switch SocialPlatform(s) {
	case PlatformFacebook, PlatformInstagram, PlatformTwitter, PlatformYoutube, PlatformTiktok:
		return SocialPlatform(s), true
	default:
		return "", false
	}
}

// ExternalLink — внешняя ссылка профиля: адрес + тег платформы.
type ExternalLink struct {
	URL  string
	Type SocialPlatform
}

// Asset — загруженный медиа-объект (аватар профиля).
type Asset struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	URL       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Wallet — криптокошелёк, привязанный к профилю (не больше одного активного
// публичного ключа на профиль: повторный апсерт перезаписывает).
type Wallet struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Key       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Question — отвеченный вопрос на странице создателя.
// Для этого сервиса — read-only: создание/оплата вопросов живут в другом месте.
type Question struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile — агрегат публичного профиля создателя.
// UserID однозначно определяет не более одного профиля (1:1 с аккаунтом).
// Вложенные сущности опциональны: nil/пустой срез до заполнения.
type Profile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Username      string
	Country       string
	DateOfBirth   *time.Time
	About         string
	Onboarding    OnboardingStep
	Avatar        *Asset
	Wallet        *Wallet
	ExternalLinks []ExternalLink
	Questions     []Question
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Equal — равенство по идентичности: сравниваем только ID.
// Агрегат всегда загружается заново на каждый запрос, глубокое сравнение
// здесь не нужно.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}

	return p.ID == other.ID
}

// IsOnboardingComplete — онбординг завершён, этап — DONE.
func (p *Profile) IsOnboardingComplete() bool {
	return p.Onboarding == StepDone
}
