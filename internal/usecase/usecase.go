package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CatalogUC — публичная выборка каталога. Ошибки хранилища не выходят за
// границу юзкейса: каждая операция деградирует к пустому/нулевому значению.
type CatalogUC interface {
	List(ctx context.Context, filters *ProductFilters) []*domain.Product
	GetByID(ctx context.Context, id int64) *domain.Product
	PriceRange(ctx context.Context) PriceRange
	UniqueColors(ctx context.Context) []string
	Summary(ctx context.Context, filters *ProductFilters) *CatalogSummary
}

// AdminProductUC — административные мутации каталога.
type AdminProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Update(ctx context.Context, id int64, req *UpdateProductReq) *domain.Product
	Delete(ctx context.Context, id int64) bool
}

// AuthUC — вход/выход через внешнего провайдера и проверка allow-list.
type AuthUC interface {
	SignIn(ctx context.Context, req *SignInReq) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	IsAdmin(ctx context.Context, userUID string) bool
}
