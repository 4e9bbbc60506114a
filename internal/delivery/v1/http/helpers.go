package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/filterstate"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidSetType):
		return http.StatusBadRequest, e.ErrInvalidSetType.Error()
	case errors.Is(err, e.ErrTooManyImages):
		return http.StatusBadRequest, e.ErrTooManyImages.Error()
	case errors.Is(err, e.ErrNoImages):
		return http.StatusBadRequest, e.ErrNoImages.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrNotAnImage):
		return http.StatusUnsupportedMediaType, e.ErrNotAnImage.Error()
	case errors.Is(err, e.ErrObjectAlreadyExists):
		return http.StatusConflict, e.ErrObjectAlreadyExists.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrRefreshTokenNotFound):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, e.ErrForbidden.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePrice разбирает цену из строки. Пустая строка означает отсутствие цены.
// Отклоняются нечисловые значения, отрицательные, с точностью больше двух
// знаков и превышающие разумный потолок.
func parsePrice(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, e.ErrInvalidPrice
	}

	if d.LessThanOrEqual(decimal.Zero) {
		return nil, e.ErrPriceMustBePositive
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return nil, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return nil, e.ErrPricePrecision
	}

	price := d.InexactFloat64()
	return &price, nil
}

// parseFilters собирает критерии выборки каталога из query-параметров,
// прогоняя сырые значения через контроллер состояния фильтров: нормализация
// поиска и молчаливое отбрасывание мусорных границ цены живут в одном месте.
// Повторённые значения в query не работают как переключатель.
func parseFilters(r *http.Request) *usecase.ProductFilters {
	q := r.URL.Query()

	state := filterstate.NewController(nil)
	state.SetSearch(q.Get("search"))

	seenTypes := make(map[domain.SetType]bool)
	for _, raw := range splitCSV(q.Get("setTypes")) {
		setType := domain.SetType(strings.ToLower(raw))
		if domain.IsValidSetType(setType) && !seenTypes[setType] {
			seenTypes[setType] = true
			state.ToggleSetType(setType)
		}
	}

	seenColors := make(map[string]bool)
	for _, color := range splitCSV(q.Get("colors")) {
		if !seenColors[color] {
			seenColors[color] = true
			state.ToggleColor(color)
		}
	}

	state.SetPriceRange(q.Get("minPrice"), q.Get("maxPrice"))

	return state.Derive()
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(fmt.Sprintf("bad product id: %q", raw), e.ErrStatusBadRequest)
	}
	return id, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseProductForm извлекает поля товара из multipart-формы.
// Обязательны name и setType; description, price и colors опциональны.
func parseProductForm(r *http.Request) (*usecase.CreateProductReq, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, e.ErrProductNameRequired
	}

	setType := domain.SetType(strings.ToLower(strings.TrimSpace(r.FormValue("setType"))))
	if !domain.IsValidSetType(setType) {
		return nil, e.Wrap(fmt.Sprintf("setType: %q", r.FormValue("setType")), e.ErrInvalidSetType)
	}

	price, err := parsePrice(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	var description *string
	if d := strings.TrimSpace(r.FormValue("description")); d != "" {
		description = &d
	}

	return &usecase.CreateProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		SetType:     setType,
		Colors:      splitCSV(r.FormValue("colors")),
	}, nil
}

func parseImages(files []*multipart.FileHeader, maxImageCount int, maxFileSize int64) ([]usecase.ProductImage, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data[:min(len(data), 512)])
	}
	return data, mimeType, nil
}
