package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// CatalogUseCase реализует публичную выборку каталога. Это граница
// «репозитория» в терминах витрины: любая ошибка хранилища логируется и
// деградирует к пустому результату, наружу ошибки не выходят.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// List возвращает товары по фильтрам. Текстовые, категорийные и ценовые
// ограничения применяются на уровне БД; фильтр по цветам — после запроса,
// в памяти. Ошибка хранилища даёт пустой список, не сбой.
func (c *CatalogUseCase) List(ctx context.Context, filters *ProductFilters) []*domain.Product {
	const op = "CatalogUseCase.List"

	products, err := c.productRepo.List(ctx, filters)
	if err != nil {
		c.logger.Warnf("%v", e.Wrap(op, err))
		return []*domain.Product{}
	}

	if filters == nil || len(filters.Colors) == 0 {
		return products
	}

	return filterByColors(products, filters.Colors)
}

// filterByColors оставляет товары, у которых пересечение нормализованных
// цветов с запрошенными непусто. Товар без цветов не проходит никогда.
func filterByColors(products []*domain.Product, requested []string) []*domain.Product {
	wanted := make(map[string]struct{}, len(requested))
	for _, color := range requested {
		wanted[normalizeColor(color)] = struct{}{}
	}

	result := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		if len(product.Colors) == 0 {
			continue
		}
		for _, color := range product.Colors {
			if _, ok := wanted[normalizeColor(color)]; ok {
				result = append(result, product)
				break
			}
		}
	}

	return result
}

func normalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}

// GetByID возвращает товар или nil; «не найдено» и ошибка хранилища
// для вызывающей стороны неразличимы.
func (c *CatalogUseCase) GetByID(ctx context.Context, id int64) *domain.Product {
	const op = "CatalogUseCase.GetByID"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		c.logger.Warnf("%v", e.Wrap(op, err))
		return nil
	}

	return product
}

// PriceRange возвращает минимальную и максимальную цену каталога,
// {nil, nil} — когда ни у одного товара нет цены.
func (c *CatalogUseCase) PriceRange(ctx context.Context) PriceRange {
	return c.catalogMeta(ctx).PriceRange
}

// UniqueColors возвращает отсортированный список цветов каталога без
// дубликатов, отличающихся только регистром или пробелами.
func (c *CatalogUseCase) UniqueColors(ctx context.Context) []string {
	return c.catalogMeta(ctx).Colors
}

// Summary собирает товары и агрегаты витрины параллельно.
func (c *CatalogUseCase) Summary(ctx context.Context, filters *ProductFilters) *CatalogSummary {
	var (
		wg       sync.WaitGroup
		products []*domain.Product
		meta     *CatalogMeta
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products = c.List(ctx, filters)
	}()
	go func() {
		defer wg.Done()
		meta = c.catalogMeta(ctx)
	}()
	wg.Wait()

	return &CatalogSummary{
		Products:   products,
		PriceRange: meta.PriceRange,
		Colors:     meta.Colors,
	}
}

// catalogMeta возвращает агрегаты каталога из кэша или пересчитывает их из
// БД с фоновым наполнением кэша. Ошибки кэша и БД не фатальны.
func (c *CatalogUseCase) catalogMeta(ctx context.Context) *CatalogMeta {
	const op = "CatalogUseCase.catalogMeta"

	if meta, err := c.cacheRepo.GetCatalogMeta(ctx); err == nil && meta != nil {
		return meta
	}

	priceRange, pricesOK := c.computePriceRange(ctx)
	colors, colorsOK := c.computeUniqueColors(ctx)

	meta := &CatalogMeta{
		PriceRange: priceRange,
		Colors:     colors,
	}

	// Пересчёт на ошибке хранилища в кэш не попадает: иначе пустые агрегаты
	// переживут восстановление БД на весь TTL.
	if !pricesOK || !colorsOK {
		return meta
	}

	// Фоновое наполнение кэша, как и для продуктового кэша: промах не должен
	// задерживать ответ.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetCatalogMeta(bgCtx, meta); err != nil {
			c.logger.Warnf("Failed to cache catalog meta in background: %v", e.Wrap(op, err))
		}
	}()

	return meta
}

func (c *CatalogUseCase) computePriceRange(ctx context.Context) (PriceRange, bool) {
	const op = "CatalogUseCase.computePriceRange"

	prices, err := c.productRepo.Prices(ctx)
	if err != nil {
		c.logger.Warnf("%v", e.Wrap(op, err))
		return PriceRange{}, false
	}

	var min, max *float64
	for _, price := range prices {
		if price == nil {
			continue
		}
		v := *price
		if min == nil || v < *min {
			value := v
			min = &value
		}
		if max == nil || v > *max {
			value := v
			max = &value
		}
	}

	return PriceRange{Min: min, Max: max}, true
}

func (c *CatalogUseCase) computeUniqueColors(ctx context.Context) ([]string, bool) {
	const op = "CatalogUseCase.computeUniqueColors"

	colorLists, err := c.productRepo.AllColors(ctx)
	if err != nil {
		c.logger.Warnf("%v", e.Wrap(op, err))
		return []string{}, false
	}

	seen := make(map[string]struct{})
	for _, colors := range colorLists {
		for _, color := range colors {
			normalized := normalizeColor(color)
			if normalized == "" {
				continue
			}
			seen[normalized] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for color := range seen {
		result = append(result, color)
	}
	sort.Strings(result)

	return result, true
}
