package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	adminUsecase usecase.AdminProductUC
	imagesInfra  usecase.ImagesInfra
	minioCfg     *cfg.MinIOCfg
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminProductUC, imagesInfra usecase.ImagesInfra, minioCfg *cfg.MinIOCfg, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		imagesInfra:  imagesInfra,
		minioCfg:     minioCfg,
		logger:       logger,
	}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создаёт товар с изображениями; файлы загружаются до записи в БД
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string	true	"Название"
//	@Param			setType		formData	string	true	"Тип комплекта: western, jumping, dressage, other"
//	@Param			description	formData	string	false	"Описание"
//	@Param			price		formData	number	false	"Цена"
//	@Param			colors		formData	string	false	"Цвета через запятую"
//	@Param			images		formData	file	false	"Изображения товара"
//	@Success		201			{object}	domain.Product
//	@Failure		400			{object}	ErrorResponse
//	@Router			/admin/products [post]
//	@Security		CookieAuth
func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseProductForm(r)
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"], a.minioCfg.MaxImageCount, a.minioCfg.MaxFileSize)
	if err != nil && !errors.Is(err, e.ErrNoImages) {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}
	req.Images = images

	product, err := a.adminUsecase.Create(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, product)
}

// updateProduct
//
//	@Summary		Частичное обновление товара
//	@Description	Меняет только поля, присутствующие в JSON-теле
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"ID товара"
//	@Param			body	body		usecase.UpdateProductReq	true	"Изменяемые поля"
//	@Success		200		{object}	domain.Product
//	@Failure		404		{object}	ErrorResponse
//	@Router			/admin/products/{id} [patch]
//	@Security		CookieAuth
func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.UpdateProductReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.SetType != nil && !domain.IsValidSetType(*req.SetType) {
		WriteError(w, e.ErrInvalidSetType)
		return
	}

	product := a.adminUsecase.Update(r.Context(), id, &req)
	if product == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

// deleteProduct
//
//	@Summary	Удаление товара вместе с его изображениями
//	@Tags		admin
//	@Produce	json
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
//	@Security	CookieAuth
func (a *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if !a.adminUsecase.Delete(r.Context(), id) {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadImages
//
//	@Summary		Загрузка изображений без привязки к товару
//	@Description	Возвращает публичные URL загруженных файлов в порядке подачи
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"Файлы изображений"
//	@Success		201		{object}	usecase.UploadImagesRes
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/images [post]
//	@Security		CookieAuth
func (a *AdminHandler) uploadImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"], a.minioCfg.MaxImageCount, a.minioCfg.MaxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.imagesInfra.UploadImages(r.Context(), images)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, res)
}
