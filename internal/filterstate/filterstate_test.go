package filterstate

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []*usecase.ProductFilters
}

func (r *recorder) onChange(filters *usecase.ProductFilters) {
	r.calls = append(r.calls, filters)
}

func TestController_InitialStateDoesNotNotify(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	assert.Empty(t, rec.calls)
	filters := c.Derive()
	assert.Empty(t, filters.Search)
	assert.Nil(t, filters.SetTypes)
	assert.Nil(t, filters.Colors)
	assert.Nil(t, filters.MinPrice)
	assert.Nil(t, filters.MaxPrice)
}

func TestController_NotifiesOnStructuralChangeOnly(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	c.SetSearch("saddle")
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "saddle", rec.calls[0].Search)

	// то же значение — результат Derive не меняется
	c.SetSearch("saddle")
	assert.Len(t, rec.calls, 1)

	// отличие только в пробелах схлопывается нормализацией
	c.SetSearch("  saddle  ")
	assert.Len(t, rec.calls, 1)

	c.SetSearch("bridle")
	assert.Len(t, rec.calls, 2)
}

func TestController_ToggleSetType(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	c.ToggleSetType(domain.SetTypeWestern)
	c.ToggleSetType(domain.SetTypeDressage)
	require.Len(t, rec.calls, 2)
	assert.ElementsMatch(t,
		[]domain.SetType{domain.SetTypeWestern, domain.SetTypeDressage},
		rec.calls[1].SetTypes,
	)

	// повторный toggle снимает фильтр
	c.ToggleSetType(domain.SetTypeWestern)
	require.Len(t, rec.calls, 3)
	assert.Equal(t, []domain.SetType{domain.SetTypeDressage}, rec.calls[2].SetTypes)

	c.ToggleSetType(domain.SetTypeDressage)
	require.Len(t, rec.calls, 4)
	assert.Nil(t, rec.calls[3].SetTypes)
}

func TestController_ToggleColor(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	c.ToggleColor("Red")
	c.ToggleColor("blue")
	require.Len(t, rec.calls, 2)
	assert.Equal(t, []string{"Red", "blue"}, rec.calls[1].Colors)

	c.ToggleColor("Red")
	assert.Equal(t, []string{"blue"}, c.Derive().Colors)
}

func TestController_PriceBounds(t *testing.T) {
	tests := []struct {
		name    string
		min     string
		max     string
		wantMin *float64
		wantMax *float64
	}{
		{name: "both parseable", min: "10", max: "99.5", wantMin: ptr(10.0), wantMax: ptr(99.5)},
		{name: "empty strings", min: "", max: "", wantMin: nil, wantMax: nil},
		{name: "garbage min", min: "abc", max: "50", wantMin: nil, wantMax: ptr(50.0)},
		{name: "negative rejected", min: "-5", max: "50", wantMin: nil, wantMax: ptr(50.0)},
		{name: "whitespace trimmed", min: " 25 ", max: "", wantMin: ptr(25.0), wantMax: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(nil)
			c.SetPriceRange(tt.min, tt.max)
			filters := c.Derive()
			assert.Equal(t, tt.wantMin, filters.MinPrice)
			assert.Equal(t, tt.wantMax, filters.MaxPrice)
		})
	}
}

func TestController_GarbagePriceDoesNotNotify(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	// мусорные границы не меняют выведенные фильтры
	c.SetPriceRange("abc", "xyz")
	assert.Empty(t, rec.calls)

	c.SetPriceRange("10", "")
	assert.Len(t, rec.calls, 1)
}

func TestController_Reset(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec.onChange)

	c.SetSearch("saddle")
	c.ToggleColor("red")
	c.SetPriceRange("1", "2")
	before := len(rec.calls)

	c.Reset()
	require.Len(t, rec.calls, before+1)
	assert.Equal(t, c.Derive(), rec.calls[before])

	// повторный сброс пустого состояния молчит
	c.Reset()
	assert.Len(t, rec.calls, before+1)
}

func ptr(v float64) *float64 { return &v }
