// log — хелпер для прокидывания request-scoped *slog.Logger через context.
// Транспортный слой кладёт логгер (с request_id и прочими атрибутами),
// нижние слои достают его через From, не зная о транспорте.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста.
// Если логгер не установлен — возвращает slog.Default(), чтобы вызывающему
// коду не приходилось проверять на nil.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}
