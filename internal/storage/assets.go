package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/creatorqa/profile-service/internal/models"
)

// Assets — контракт апсерта аватара профиля.
type Assets interface {
	// UpsertAssetByProfileID создаёт или заменяет Asset профиля (create-or-replace:
	// у профиля не больше одного аватара).
	UpsertAssetByProfileID(ctx context.Context, profileID uuid.UUID, url string) (*models.Asset, error)
}

// Wallets — контракт апсерта кошелька профиля.
type Wallets interface {
	// UpsertWalletByProfileID создаёт или заменяет Wallet профиля.
	// Повторный вызов перезаписывает публичный ключ, а не добавляет новый.
	UpsertWalletByProfileID(ctx context.Context, profileID uuid.UUID, key string) (*models.Wallet, error)
}
