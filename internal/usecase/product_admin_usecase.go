package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// storeTx — транзакция хранилища в объёме, нужном административным мутациям.
type storeTx interface {
	Transaction() any
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	IsActive() bool
}

// AdminProductUseCase реализует административные мутации каталога:
// создание, частичное обновление и удаление товара с очисткой изображений.
type AdminProductUseCase struct {
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	imagesInfra ImagesInfra
	cacheRepo   CacheRepository
	logger      logger.Logger

	beginTx func(ctx context.Context) (context.Context, storeTx, error)
}

func NewAdminProductUC(
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *AdminProductUseCase {
	return &AdminProductUseCase{
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		imagesInfra: imagesInfra,
		cacheRepo:   cacheRepo,
		logger:      logger,
		beginTx: func(ctx context.Context) (context.Context, storeTx, error) {
			txCtx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, dbPool)
			return txCtx, tx, err
		},
	}
}

// Create обрабатывает добавление нового товара. Изображения загружаются
// последовательно в порядке подачи до записи в БД; первая ошибка загрузки
// прерывает пакет и возвращается наружу, уже загруженные файлы остаются
// в хранилище. Запись товара и событие outbox пишутся в одной транзакции.
func (p *AdminProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "AdminProductUseCase.Create"

	var err error
	if err = p.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	imageURLs := make([]string, 0, len(req.Images))
	if len(req.Images) > 0 {
		uploadRes, err := p.imagesInfra.UploadImages(ctx, req.Images)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageURLs = uploadRes.URLs
	}

	ctx, tx, err := p.beginTx(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.SetType, req.Colors, imageURLs)

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = p.createOutboxEvent(ctx, ProductCreated, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateCatalogMeta(ctx, op)

	return created, nil
}

// Update меняет только поля, явно присутствующие в запросе. Возвращает nil
// при любой неудаче, включая отсутствие товара с таким id.
func (p *AdminProductUseCase) Update(ctx context.Context, id int64, req *UpdateProductReq) *domain.Product {
	const op = "AdminProductUseCase.Update"

	var err error
	ctx, tx, err := p.beginTx(ctx)
	if err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return nil
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := p.productRepo.Update(ctx, id, req)
	if err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return nil
	}

	if err = p.createOutboxEvent(ctx, ProductUpdated, updated); err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return nil
	}

	if err = tx.Commit(ctx); err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return nil
	}

	p.invalidateCatalogMeta(ctx, op)

	return updated
}

// Delete удаляет товар. Сначала по сохранённым URL запускается очистка
// изображений (URL, не соответствующие публичной форме, пропускаются;
// неудача удаления файла логируется и не прерывает операцию), затем
// удаляется строка БД. Возвращает false, если товара не было или удаление
// строки не удалось — независимо от исхода очистки файлов.
func (p *AdminProductUseCase) Delete(ctx context.Context, id int64) bool {
	const op = "AdminProductUseCase.Delete"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}
	if product == nil {
		return false
	}

	if len(product.ImageURLs) > 0 {
		p.imagesInfra.CleanupImageURLs(product.ImageURLs)
	}

	ctx, tx, err := p.beginTx(ctx)
	if err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	deleted, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}
	if !deleted {
		return false
	}

	if err = p.createOutboxEvent(ctx, ProductDeleted, product); err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}

	if err = tx.Commit(ctx); err != nil {
		p.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}

	p.invalidateCatalogMeta(ctx, op)

	return true
}

// createOutboxEvent пишет событие изменения каталога в таблицу outbox
// в рамках текущей транзакции.
func (p *AdminProductUseCase) createOutboxEvent(ctx context.Context, eventType OutboxEventType, product *domain.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, product.ID, payload))
	return err
}

// invalidateCatalogMeta сбрасывает кэш агрегатов после успешной мутации.
func (p *AdminProductUseCase) invalidateCatalogMeta(ctx context.Context, op string) {
	if err := p.cacheRepo.DeleteCatalogMeta(ctx); err != nil {
		p.logger.Warnf("Failed to invalidate catalog meta: %v", e.Wrap(op, err))
	}
}

// validateProduct проверяет корректность входных данных запроса на создание товара.
func (p *AdminProductUseCase) validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price != nil && *req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if !domain.IsValidSetType(req.SetType) {
		return e.ErrInvalidSetType
	}

	return nil
}
