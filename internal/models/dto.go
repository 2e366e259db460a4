package models

import "time"

// DTO-представления для транспорта: плоские структуры, таймстемпы — текстом
// (RFC3339), отсутствующие вложенные сущности не сериализуются вовсе
// (omitempty), а не превращаются в null-заглушки.

type ExternalLinkDTO struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type AssetDTO struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type WalletDTO struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Key       string `json:"key"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type QuestionDTO struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ProfileDTO struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	Username      string            `json:"username,omitempty"`
	Country       string            `json:"country,omitempty"`
	DateOfBirth   string            `json:"date_of_birth,omitempty"`
	About         string            `json:"about,omitempty"`
	Onboarding    string            `json:"onboarding"`
	Avatar        *AssetDTO         `json:"avatar,omitempty"`
	Wallet        *WalletDTO        `json:"wallet,omitempty"`
	ExternalLinks []ExternalLinkDTO `json:"external_links,omitempty"`
	Questions     []QuestionDTO     `json:"questions,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

func (l ExternalLink) DTO() ExternalLinkDTO {
	return ExternalLinkDTO{
		URL:  l.URL,
		Type: string(l.Type),
	}
}

func (a *Asset) DTO() *AssetDTO {
	if a == nil {
		return nil
	}

	return &AssetDTO{
		ID:        a.ID.String(),
		ProfileID: a.ProfileID.String(),
		URL:       a.URL,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (w *Wallet) DTO() *WalletDTO {
	if w == nil {
		return nil
	}

	return &WalletDTO{
		ID:        w.ID.String(),
		ProfileID: w.ProfileID.String(),
		Key:       w.Key,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (q Question) DTO() QuestionDTO {
	return QuestionDTO{
		ID:        q.ID.String(),
		ProfileID: q.ProfileID.String(),
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: q.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// DTO сериализует агрегат рекурсивно: вложенные сущности — своими DTO,
// таймстемпы — текстом.
func (p *Profile) DTO() ProfileDTO {
	dto := ProfileDTO{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		Username:   p.Username,
		Country:    p.Country,
		About:      p.About,
		Onboarding: string(p.Onboarding),
		Avatar:     p.Avatar.DTO(),
		Wallet:     p.Wallet.DTO(),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if p.DateOfBirth != nil {
		dto.DateOfBirth = p.DateOfBirth.UTC().Format(time.RFC3339)
	}

	if len(p.ExternalLinks) > 0 {
		dto.ExternalLinks = make([]ExternalLinkDTO, 0, len(p.ExternalLinks))
		for _, l := range p.ExternalLinks {
			dto.ExternalLinks = append(dto.ExternalLinks, l.DTO())
		}
	}

	if len(p.Questions) > 0 {
		dto.Questions = make([]QuestionDTO, 0, len(p.Questions))
		for _, q := range p.Questions {
			dto.Questions = append(dto.Questions, q.DTO())
		}
	}

	return dto
}
