package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

// CATALOG

// ProductFilters — критерии выборки каталога. Нулевое/nil поле означает
// отсутствие ограничения по соответствующему измерению. Объект строится
// заново на каждый запрос и принадлежит вызывающей стороне.
type ProductFilters struct {
	Search   string
	SetTypes []domain.SetType
	Colors   []string
	MinPrice *float64
	MaxPrice *float64
}

// PriceRange — диапазон цен каталога. Оба поля nil, когда нет товаров с ценой.
type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// CatalogSummary — данные витрины, собираемые параллельно.
type CatalogSummary struct {
	Products   []*domain.Product
	PriceRange PriceRange
	Colors     []string
}

// CatalogMeta — кэшируемые агрегаты каталога.
type CatalogMeta struct {
	PriceRange PriceRange
	Colors     []string
}

// ADMIN PRODUCT USECASE

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// CreateProductReq — запрос на создание товара. Изображения загружаются
// последовательно до записи в БД.
type CreateProductReq struct {
	Name        string
	Description *string
	Price       *float64
	SetType     domain.SetType
	Colors      []string
	Images      []ProductImage
}

// UpdateProductReq — частичное обновление: меняются только поля с ненулевым
// указателем. Явно переданный пустой список сохраняется как NULL.
type UpdateProductReq struct {
	Name        *string
	Description *string
	Price       *float64
	SetType     *domain.SetType
	Colors      *[]string
	ImageURLs   *[]string
}

// IsEmpty сообщает, что запрос не содержит ни одного поля.
func (r *UpdateProductReq) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.SetType == nil && r.Colors == nil && r.ImageURLs == nil
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку одного изображения.
// FileName может быть пустым, тогда имя генерируется.
type UploadImageReq struct {
	Image    ProductImage
	FileName string
}

// UploadImagesRes — результат пакетной загрузки: публичные URL в порядке подачи.
type UploadImagesRes struct {
	URLs []string
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// AUTH

type SignInReq struct {
	Email    string
	Password string
}

// Session — данные сессии, выданные auth-провайдером.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	User         domain.User
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductCreated OutboxEventType = "product.created"
	ProductUpdated OutboxEventType = "product.updated"
	ProductDeleted OutboxEventType = "product.deleted"
)

// OutboxEvent — событие изменения каталога, публикуемое в Kafka через outbox.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(image ProductImage, fileName string) *UploadImageReq {
	return &UploadImageReq{
		Image:    image,
		FileName: fileName,
	}
}

func NewUploadImagesRes(urls []string) *UploadImagesRes {
	return &UploadImagesRes{URLs: urls}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}
