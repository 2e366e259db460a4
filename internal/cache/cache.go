// cache содержит контракт кеша публичных профилей.
// Кеш — необязательная оптимизация чтения публичной страницы: промах и
// ошибки кеша не влияют на результат запроса.
package cache

import (
	"context"
	"time"

	"github.com/creatorqa/profile-service/internal/models"
)

// ProfileCache — кеш агрегата по username.
type ProfileCache interface {
	// Get возвращает закешированный профиль; (nil, nil) — промах.
	Get(ctx context.Context, username string) (*models.Profile, error)
	// Set кладёт профиль с заданным TTL.
	Set(ctx context.Context, profile *models.Profile, ttl time.Duration) error
	// Invalidate удаляет запись после изменения профиля.
	Invalidate(ctx context.Context, username string) error
}
