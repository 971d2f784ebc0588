package service

import "context"

// IDirectory проверка существования пользователя Telegram.
// ref - "@username" или числовой id; возвращает стабильный id
type IDirectory interface {
	ResolveActor(ctx context.Context, ref string) (int64, error)
}
