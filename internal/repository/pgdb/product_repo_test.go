package pgdb

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildListQueryNoFilters(t *testing.T) {
	want := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	query, args := buildListQuery(nil)
	assert.Equal(t, want, query)
	assert.Empty(t, args)

	query, args = buildListQuery(&usecase.ProductFilters{})
	assert.Equal(t, want, query)
	assert.Empty(t, args)
}

func TestBuildListQuerySearch(t *testing.T) {
	query, args := buildListQuery(&usecase.ProductFilters{Search: "  Saddle "})

	assert.Contains(t, query, "name ILIKE $1")
	assert.Equal(t, []any{"%Saddle%"}, args)
}

func TestBuildListQuerySetTypes(t *testing.T) {
	query, args := buildListQuery(&usecase.ProductFilters{
		SetTypes: []domain.SetType{domain.SetTypeWestern, domain.SetTypeJumping},
	})

	assert.Contains(t, query, `"setType" = ANY($1)`)
	assert.Equal(t, []any{[]string{"western", "jumping"}}, args)
}

// Запрос полного перечисления категорий эквивалентен отсутствию фильтра.
func TestBuildListQueryAllSetTypesSkipsFilter(t *testing.T) {
	allFour := []domain.SetType{
		domain.SetTypeOther, domain.SetTypeDressage, domain.SetTypeJumping, domain.SetTypeWestern,
	}

	withAll, argsAll := buildListQuery(&usecase.ProductFilters{SetTypes: allFour})
	without, argsNone := buildListQuery(&usecase.ProductFilters{})

	assert.Equal(t, without, withAll)
	assert.Equal(t, argsNone, argsAll)
}

func TestBuildListQueryPriceBounds(t *testing.T) {
	query, args := buildListQuery(&usecase.ProductFilters{
		MinPrice: floatPtr(50),
		MaxPrice: floatPtr(200),
	})

	assert.Contains(t, query, "price >= $1")
	assert.Contains(t, query, "price <= $2")
	assert.Equal(t, []any{50.0, 200.0}, args)
}

func TestBuildListQueryCombined(t *testing.T) {
	query, args := buildListQuery(&usecase.ProductFilters{
		Search:   "pad",
		SetTypes: []domain.SetType{domain.SetTypeDressage},
		MinPrice: floatPtr(10),
	})

	assert.Contains(t, query, "name ILIKE $1")
	assert.Contains(t, query, `"setType" = ANY($2)`)
	assert.Contains(t, query, "price >= $3")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Len(t, args, 3)
}

func TestCoversAllSetTypes(t *testing.T) {
	assert.False(t, coversAllSetTypes(nil))
	assert.False(t, coversAllSetTypes([]domain.SetType{domain.SetTypeWestern}))
	assert.True(t, coversAllSetTypes(domain.AllSetTypes()))
	// Дубликаты и лишние значения не мешают покрытию.
	assert.True(t, coversAllSetTypes(append(domain.AllSetTypes(), domain.SetTypeWestern)))
}
