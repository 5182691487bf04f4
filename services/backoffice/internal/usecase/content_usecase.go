package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"

	"lv33global/pkg/logger"
	"lv33global/services/backoffice/internal/entity"
	"lv33global/services/backoffice/internal/repo/persistent"
)

// Form carries the submitted fields of one content kind.
type Form[E any] interface {
	// Missing lists the create-time required fields that were not supplied.
	Missing() []string
	// Apply writes every submitted non-asset field onto record.
	Apply(record *E) error
}

// AssetStore is the asset manager used for uploads.
type AssetStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	// Remove never fails the caller; a missing file is ignored.
	Remove(ctx context.Context, publicPath string)
}

// ListCache stores serialized list results per kind and generation.
// Invalidate moves kind to a new generation. A nil ListCache disables
// caching.
type ListCache interface {
	Generation(ctx context.Context, kind string) (int64, bool)
	Get(ctx context.Context, kind string, generation int64, variant string) ([]byte, bool)
	Set(ctx context.Context, kind string, generation int64, variant string, payload []byte)
	Invalidate(ctx context.Context, kind string)
}

type ContentUseCase[E any] interface {
	Schema() Schema
	Create(ctx context.Context, form Form[E], asset *multipart.FileHeader) (*E, error)
	List(ctx context.Context) ([]*E, error)
	Update(ctx context.Context, id string, form Form[E], asset *multipart.FileHeader) (*E, error)
	Delete(ctx context.Context, id string) error
}

const listAll = "all"

type contentUseCase[E any, PE entity.RecordPtr[E]] struct {
	schema Schema
	repo   persistent.ContentRepository[E]
	assets AssetStore
	cache  ListCache
	logger *logger.Logger
}

func NewContentUseCase[E any, PE entity.RecordPtr[E]](
	schema Schema,
	repo persistent.ContentRepository[E],
	assets AssetStore,
	cache ListCache,
	logger *logger.Logger,
) ContentUseCase[E] {
	return newContentUseCase[E, PE](schema, repo, assets, cache, logger)
}

func newContentUseCase[E any, PE entity.RecordPtr[E]](
	schema Schema,
	repo persistent.ContentRepository[E],
	assets AssetStore,
	cache ListCache,
	logger *logger.Logger,
) *contentUseCase[E, PE] {
	return &contentUseCase[E, PE]{
		schema: schema,
		repo:   repo,
		assets: assets,
		cache:  cache,
		logger: logger,
	}
}

func (uc *contentUseCase[E, PE]) Schema() Schema {
	return uc.schema
}

func (uc *contentUseCase[E, PE]) Create(ctx context.Context, form Form[E], asset *multipart.FileHeader) (*E, error) {
	missing := form.Missing()
	if uc.schema.AssetRequired && asset == nil {
		missing = append(missing, uc.schema.AssetField)
	}
	if len(missing) > 0 {
		return nil, MissingFields(missing...)
	}

	record := new(E)
	if err := form.Apply(record); err != nil {
		return nil, err
	}

	if asset != nil {
		path, err := uc.assets.Save(ctx, asset)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s asset: %w", uc.schema.Kind, err)
		}
		PE(record).SetAssetPath(path)
	}

	if err := uc.repo.Create(ctx, record); err != nil {
		uc.discard(ctx, asset, PE(record).AssetPath())
		return nil, fmt.Errorf("failed to create %s record: %w", uc.schema.Kind, err)
	}

	uc.invalidate(ctx)
	return record, nil
}

func (uc *contentUseCase[E, PE]) List(ctx context.Context) ([]*E, error) {
	return uc.list(ctx, listAll, nil)
}

// list serves variant from the cache when possible. The generation is read
// before the store so that rows read before a concurrent mutation are only
// cached under the generation that mutation retired.
func (uc *contentUseCase[E, PE]) list(ctx context.Context, variant string, filter persistent.Filter) ([]*E, error) {
	var (
		generation int64
		cached     bool
	)
	if uc.cache != nil {
		generation, cached = uc.cache.Generation(ctx, uc.schema.Kind)
	}

	if cached {
		if payload, ok := uc.cache.Get(ctx, uc.schema.Kind, generation, variant); ok {
			var records []*E
			if err := json.Unmarshal(payload, &records); err == nil {
				return records, nil
			}
			uc.logger.Warn("[%s] Dropping unreadable cached list %s", uc.schema.Kind, variant)
		}
	}

	records, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", uc.schema.Kind, err)
	}

	if cached {
		if payload, err := json.Marshal(records); err == nil {
			uc.cache.Set(ctx, uc.schema.Kind, generation, variant, payload)
		}
	}
	return records, nil
}

// Update overwrites every non-asset field from form. The stored asset path
// is kept unless a new asset is supplied; the previous file stays on disk.
func (uc *contentUseCase[E, PE]) Update(ctx context.Context, id string, form Form[E], asset *multipart.FileHeader) (*E, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s %s: %w", uc.schema.Kind, id, err)
	}

	previous := PE(record).AssetPath()
	if err := form.Apply(record); err != nil {
		return nil, err
	}
	PE(record).SetAssetPath(previous)

	if asset != nil {
		path, err := uc.assets.Save(ctx, asset)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s asset: %w", uc.schema.Kind, err)
		}
		PE(record).SetAssetPath(path)
	}

	if err := uc.repo.Update(ctx, record); err != nil {
		uc.discard(ctx, asset, PE(record).AssetPath())
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s %s: %w", uc.schema.Kind, id, err)
	}

	uc.invalidate(ctx)
	return record, nil
}

// Delete removes the record's asset, then the record itself.
func (uc *contentUseCase[E, PE]) Delete(ctx context.Context, id string) error {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s %s: %w", uc.schema.Kind, id, err)
	}

	if path := PE(record).AssetPath(); path != "" {
		uc.assets.Remove(ctx, path)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s %s: %w", uc.schema.Kind, id, err)
	}

	uc.invalidate(ctx)
	return nil
}

func (uc *contentUseCase[E, PE]) discard(ctx context.Context, asset *multipart.FileHeader, path string) {
	if asset != nil && path != "" {
		uc.assets.Remove(ctx, path)
	}
}

func (uc *contentUseCase[E, PE]) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, uc.schema.Kind)
	}
}
