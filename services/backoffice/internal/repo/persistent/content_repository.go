package persistent

import (
	"context"

	"lv33global/services/backoffice/internal/entity"

	"gorm.io/gorm"
)

// Filter holds column equality conditions for List.
type Filter map[string]interface{}

// ContentRepository is the record store for one content kind.
type ContentRepository[E any] interface {
	Create(ctx context.Context, record *E) error
	GetByID(ctx context.Context, id string) (*E, error)
	List(ctx context.Context, filter Filter) ([]*E, error)
	// Update overwrites every column of the stored row except id and
	// created_at.
	Update(ctx context.Context, record *E) error
	Delete(ctx context.Context, id string) error
}

type contentRepository[E, M any] struct {
	db       *gorm.DB
	order    string
	toModel  func(*E) *M
	toEntity func(*M) *E
}

// NewContentRepository builds a repository for entity E stored as model M.
// order is the fixed ORDER BY clause of List.
func NewContentRepository[E, M any](db *gorm.DB, order string, toModel func(*E) *M, toEntity func(*M) *E) ContentRepository[E] {
	return &contentRepository[E, M]{
		db:       db,
		order:    order,
		toModel:  toModel,
		toEntity: toEntity,
	}
}

func (r *contentRepository[E, M]) Create(ctx context.Context, record *E) error {
	m := r.toModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	*record = *r.toEntity(m)
	return nil
}

func (r *contentRepository[E, M]) GetByID(ctx context.Context, id string) (*E, error) {
	var m M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return r.toEntity(&m), nil
}

func (r *contentRepository[E, M]) List(ctx context.Context, filter Filter) ([]*E, error) {
	query := r.db.WithContext(ctx).Order(r.order)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}

	var models []M
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]*E, len(models))
	for i := range models {
		records[i] = r.toEntity(&models[i])
	}
	return records, nil
}

func (r *contentRepository[E, M]) Update(ctx context.Context, record *E) error {
	m := r.toModel(record)
	result := r.db.WithContext(ctx).Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	*record = *r.toEntity(m)
	return nil
}

func (r *contentRepository[E, M]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func NewPostRepository(db *gorm.DB) ContentRepository[entity.Post] {
	return NewContentRepository(db, "created_at DESC, id DESC", ToPostModel, ToPostEntity)
}

func NewCasinoRepository(db *gorm.DB) ContentRepository[entity.Casino] {
	return NewContentRepository(db, "ranking ASC, created_at ASC", ToCasinoModel, ToCasinoEntity)
}

func NewGameRepository(db *gorm.DB) ContentRepository[entity.Game] {
	return NewContentRepository(db, "created_at DESC, id DESC", ToGameModel, ToGameEntity)
}

func NewGlobalSlotRepository(db *gorm.DB) ContentRepository[entity.GlobalSlot] {
	return NewContentRepository(db, "created_at DESC, id DESC", ToGlobalSlotModel, ToGlobalSlotEntity)
}

func NewPokerSiteRepository(db *gorm.DB) ContentRepository[entity.PokerSite] {
	return NewContentRepository(db, "rating DESC, created_at DESC", ToPokerSiteModel, ToPokerSiteEntity)
}

func NewCasinoCardRepository(db *gorm.DB) ContentRepository[entity.CasinoCard] {
	return NewContentRepository(db, "rank ASC, created_at ASC", ToCasinoCardModel, ToCasinoCardEntity)
}

func NewBestCasinoRepository(db *gorm.DB) ContentRepository[entity.BestCasino] {
	return NewContentRepository(db, "rating DESC, created_at DESC", ToBestCasinoModel, ToBestCasinoEntity)
}

