package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
// Колонка категории хранится в кавычках как "setType"; colors и "imageURLs" —
// jsonb-колонки, читаются сырыми байтами и нормализуются при конвертации.
type ProductModel struct {
	ID          int64      `db:"id"`
	CreatedAt   time.Time  `db:"created_at"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Price       *float64   `db:"price"`
	SetType     string     `db:"setType"`
	Colors      []byte     `db:"colors"`
	ImageURLs   []byte     `db:"imageURLs"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
