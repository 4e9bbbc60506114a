//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter
package converter

import (
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// CatalogMetaConverter преобразует агрегаты каталога между usecase и моделью Redis.
// goverter:converter
// goverter:extend ConvertPointerFloat
type CatalogMetaConverter interface {
	// goverter:map PriceRange.Min Min
	// goverter:map PriceRange.Max Max
	ToRedisModel(meta *usecase.CatalogMeta) *CatalogMetaRedisModel
	// goverter:map Min PriceRange.Min
	// goverter:map Max PriceRange.Max
	ToUseCase(model *CatalogMetaRedisModel) *usecase.CatalogMeta
}

func ConvertPointerFloat(f *float64) *float64 {
	return f
}
