package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/colors"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров каталога
//	@Description	Возвращает товары, отфильтрованные по поиску, типу комплекта, цветам и цене
//	@Tags			catalog
//	@Produce		json
//	@Param			search		query		string	false	"Подстрока поиска по названию"
//	@Param			setTypes	query		string	false	"Типы комплектов через запятую"
//	@Param			colors		query		string	false	"Цвета через запятую"
//	@Param			minPrice	query		number	false	"Нижняя граница цены"
//	@Param			maxPrice	query		number	false	"Верхняя граница цены"
//	@Success		200			{array}		domain.Product
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products := p.catalogUsecase.List(r.Context(), parseFilters(r))
	WriteSuccess(w, http.StatusOK, products)
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	product := p.catalogUsecase.GetByID(r.Context(), id)
	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// catalogSummary
//
//	@Summary	Витрина: товары, диапазон цен и палитра цветов одним запросом
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	usecase.CatalogSummary
//	@Router		/catalog [get]
func (p *ProductHandler) catalogSummary(w http.ResponseWriter, r *http.Request) {
	summary := p.catalogUsecase.Summary(r.Context(), parseFilters(r))
	WriteSuccess(w, http.StatusOK, summary)
}

// priceRange
//
//	@Summary	Диапазон цен каталога
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	usecase.PriceRange
//	@Router		/catalog/price-range [get]
func (p *ProductHandler) priceRange(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, p.catalogUsecase.PriceRange(r.Context()))
}

// uniqueColors
//
//	@Summary	Уникальные цвета товаров каталога
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/catalog/colors [get]
func (p *ProductHandler) uniqueColors(w http.ResponseWriter, r *http.Request) {
	unique := p.catalogUsecase.UniqueColors(r.Context())
	if unique == nil {
		unique = []string{}
	}
	WriteSuccess(w, http.StatusOK, unique)
}

// ColorSwatch — цвет каталога с готовыми для отрисовки hex-кодом и подписью.
type ColorSwatch struct {
	Value string `json:"value"`
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

// colorPalette
//
//	@Summary	Палитра цветов каталога для отрисовки свотчей
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	ColorSwatch
//	@Router		/catalog/palette [get]
func (p *ProductHandler) colorPalette(w http.ResponseWriter, r *http.Request) {
	unique := p.catalogUsecase.UniqueColors(r.Context())

	palette := make([]ColorSwatch, 0, len(unique))
	for _, color := range unique {
		palette = append(palette, ColorSwatch{
			Value: color,
			Hex:   colors.Style(color),
			Label: colors.DisplayName(color),
		})
	}

	WriteSuccess(w, http.StatusOK, palette)
}
