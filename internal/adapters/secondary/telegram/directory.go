package telegram

import (
	"context"
	"fmt"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/service"
	"github.com/TATR0/bot-service/internal/ports/telegram"
)

var _ service.IDirectory = (*Directory)(nil)

// Directory ищет пользователей через getChat
type Directory struct {
	client telegram.IClient
}

func NewDirectory(client telegram.IClient) *Directory {
	return &Directory{client: client}
}

// ResolveActor возвращает id пользователя по "@username" или числовому id.
// getChat по числовому id работает только если пользователь уже писал боту
func (d *Directory) ResolveActor(ctx context.Context, ref string) (int64, error) {
	info, err := d.client.GetChat(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrActorNotFound, ref, err)
	}
	if info == nil || info.ID == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrActorNotFound, ref)
	}
	return info.ID, nil
}
