package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products  []*domain.Product
	prices    []*float64
	colors    [][]string
	failList  bool
	failMeta  bool
	deleteOK  bool
	lastQuery *ProductFilters
}

func (f *fakeProductRepo) List(_ context.Context, filters *ProductFilters) ([]*domain.Product, error) {
	f.lastQuery = filters
	if f.failList {
		return nil, assert.AnError
	}
	return f.products, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if f.failList {
		return nil, assert.AnError
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Prices(_ context.Context) ([]*float64, error) {
	if f.failMeta {
		return nil, assert.AnError
	}
	return f.prices, nil
}

func (f *fakeProductRepo) AllColors(_ context.Context) ([][]string, error) {
	if f.failMeta {
		return nil, assert.AnError
	}
	return f.colors, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ int64, _ *UpdateProductReq) (*domain.Product, error) {
	return nil, assert.AnError
}

func (f *fakeProductRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return f.deleteOK, nil
}

type fakeCacheRepo struct {
	mu   sync.Mutex
	meta *CatalogMeta
	sets int
}

func (f *fakeCacheRepo) GetCatalogMeta(_ context.Context) (*CatalogMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.meta == nil {
		return nil, assert.AnError
	}
	return f.meta, nil
}

func (f *fakeCacheRepo) SetCatalogMeta(_ context.Context, meta *CatalogMeta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meta = meta
	f.sets++
	return nil
}

func (f *fakeCacheRepo) DeleteCatalogMeta(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meta = nil
	return nil
}

func (f *fakeCacheRepo) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func product(id int64, name string, price *float64, colors []string) *domain.Product {
	return &domain.Product{
		ID:      id,
		Name:    name,
		Price:   price,
		SetType: domain.SetTypeWestern,
		Colors:  colors,
	}
}

func newCatalogUC(repo *fakeProductRepo, cache *fakeCacheRepo) *CatalogUseCase {
	return NewCatalogUC(repo, cache, logger.NewSlogLogger())
}

func TestCatalogList_ColorFilterIntersection(t *testing.T) {
	repo := &fakeProductRepo{products: []*domain.Product{
		product(1, "Western Saddle", fptr(100), []string{"Red", "black"}),
		product(2, "Saddle Pad", fptr(20), []string{" BLUE "}),
		product(3, "Bridle", fptr(30), nil),
	}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	got := uc.List(context.Background(), &ProductFilters{Colors: []string{"blue", "red"}})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestCatalogList_ProductWithoutColorsNeverMatches(t *testing.T) {
	repo := &fakeProductRepo{products: []*domain.Product{
		product(1, "Bridle", nil, nil),
		product(2, "Halter", nil, []string{}),
	}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	got := uc.List(context.Background(), &ProductFilters{Colors: []string{"red"}})
	assert.Empty(t, got)
}

func TestCatalogList_NoColorFilterPassesThrough(t *testing.T) {
	repo := &fakeProductRepo{products: []*domain.Product{
		product(1, "Bridle", nil, nil),
	}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	got := uc.List(context.Background(), &ProductFilters{Search: "bri"})
	assert.Len(t, got, 1)
	assert.Equal(t, "bri", repo.lastQuery.Search)
}

func TestCatalogList_RepoErrorYieldsEmptySlice(t *testing.T) {
	uc := newCatalogUC(&fakeProductRepo{failList: true}, &fakeCacheRepo{})

	got := uc.List(context.Background(), nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalogGetByID(t *testing.T) {
	repo := &fakeProductRepo{products: []*domain.Product{product(7, "Saddle", nil, nil)}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	assert.NotNil(t, uc.GetByID(context.Background(), 7))
	assert.Nil(t, uc.GetByID(context.Background(), 8))
}

func TestCatalogPriceRange_IgnoresMissingPrices(t *testing.T) {
	repo := &fakeProductRepo{prices: []*float64{fptr(10), nil, fptr(25)}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	pr := uc.PriceRange(context.Background())
	require.NotNil(t, pr.Min)
	require.NotNil(t, pr.Max)
	assert.Equal(t, 10.0, *pr.Min)
	assert.Equal(t, 25.0, *pr.Max)
}

func TestCatalogPriceRange_EmptyCatalog(t *testing.T) {
	uc := newCatalogUC(&fakeProductRepo{}, &fakeCacheRepo{})

	pr := uc.PriceRange(context.Background())
	assert.Nil(t, pr.Min)
	assert.Nil(t, pr.Max)
}

func TestCatalogUniqueColors_DedupeAndSort(t *testing.T) {
	repo := &fakeProductRepo{colors: [][]string{
		{"Red", "blue"},
		{" RED ", "green", ""},
	}}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	assert.Equal(t, []string{"blue", "green", "red"}, uc.UniqueColors(context.Background()))
}

func TestCatalogMeta_CacheHitSkipsRepo(t *testing.T) {
	cached := &CatalogMeta{
		PriceRange: PriceRange{Min: fptr(1), Max: fptr(2)},
		Colors:     []string{"red"},
	}
	cache := &fakeCacheRepo{meta: cached}
	uc := newCatalogUC(&fakeProductRepo{failMeta: true}, cache)

	pr := uc.PriceRange(context.Background())
	assert.Equal(t, 1.0, *pr.Min)
	assert.Equal(t, []string{"red"}, uc.UniqueColors(context.Background()))
}

func TestCatalogMeta_MissRecomputesAndCaches(t *testing.T) {
	repo := &fakeProductRepo{
		prices: []*float64{fptr(5)},
		colors: [][]string{{"tan"}},
	}
	cache := &fakeCacheRepo{}
	uc := newCatalogUC(repo, cache)

	pr := uc.PriceRange(context.Background())
	assert.Equal(t, 5.0, *pr.Min)

	// кэш наполняется в фоне
	assert.Eventually(t, func() bool { return cache.setCount() > 0 }, time.Second, 10*time.Millisecond)
}

func TestCatalogMeta_StoreErrorIsNotCached(t *testing.T) {
	repo := &fakeProductRepo{
		prices:   []*float64{fptr(10), fptr(25)},
		colors:   [][]string{{"red"}},
		failMeta: true,
	}
	cache := &fakeCacheRepo{}
	uc := newCatalogUC(repo, cache)

	pr := uc.PriceRange(context.Background())
	assert.Nil(t, pr.Min)
	assert.Nil(t, pr.Max)

	// Пересчёт на ошибке не наполняет кэш даже в фоне.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, cache.setCount())

	// Хранилище восстановилось; агрегаты не должны залипнуть пустыми на TTL.
	repo.failMeta = false

	pr = uc.PriceRange(context.Background())
	require.NotNil(t, pr.Min)
	require.NotNil(t, pr.Max)
	assert.Equal(t, 10.0, *pr.Min)
	assert.Equal(t, 25.0, *pr.Max)
	assert.Equal(t, []string{"red"}, uc.UniqueColors(context.Background()))
}

func TestCatalogSummary(t *testing.T) {
	repo := &fakeProductRepo{
		products: []*domain.Product{product(1, "Saddle", fptr(100), []string{"red"})},
		prices:   []*float64{fptr(100)},
		colors:   [][]string{{"red"}},
	}
	uc := newCatalogUC(repo, &fakeCacheRepo{})

	summary := uc.Summary(context.Background(), nil)
	require.NotNil(t, summary)
	assert.Len(t, summary.Products, 1)
	assert.Equal(t, 100.0, *summary.PriceRange.Min)
	assert.Equal(t, []string{"red"}, summary.Colors)
}

func fptr(v float64) *float64 { return &v }
