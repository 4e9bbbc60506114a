package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context, filters *ProductFilters) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Prices(ctx context.Context) ([]*float64, error)
	AllColors(ctx context.Context) ([][]string, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type AdminRepository interface {
	Exists(ctx context.Context, userUID string) (bool, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetCatalogMeta(ctx context.Context) (*CatalogMeta, error)
	SetCatalogMeta(ctx context.Context, meta *CatalogMeta) error
	DeleteCatalogMeta(ctx context.Context) error
}
