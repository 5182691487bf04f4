package usecase

import (
	"context"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/repo/persistent"
)

type PostUseCase interface {
	ContentUseCase[entity.Post]
	ListByCategory(ctx context.Context, category string) ([]*entity.Post, error)
}

type postUseCase struct {
	*contentUseCase[entity.Post, *entity.Post]
}

func NewPostUseCase(repo persistent.ContentRepository[entity.Post], assets AssetStore, cache ListCache, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		contentUseCase: newContentUseCase[entity.Post, *entity.Post](PostSchema, repo, assets, cache, logger),
	}
}

// ListByCategory returns posts whose category equals category, newest first.
func (uc *postUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.Post, error) {
	return uc.list(ctx, "category:"+category, persistent.Filter{"category": category})
}
