package domain

import "time"

// SetType — категория комплекта снаряжения.
type SetType string

const (
	SetTypeWestern  SetType = "western"
	SetTypeJumping  SetType = "jumping"
	SetTypeDressage SetType = "dressage"
	SetTypeOther    SetType = "other"
)

// AllSetTypes возвращает полное перечисление категорий в фиксированном порядке.
func AllSetTypes() []SetType {
	return []SetType{SetTypeWestern, SetTypeJumping, SetTypeDressage, SetTypeOther}
}

// IsValidSetType проверяет принадлежность значения перечислению.
func IsValidSetType(s SetType) bool {
	switch s {
	case SetTypeWestern, SetTypeJumping, SetTypeDressage, SetTypeOther:
		return true
	}
	return false
}

// Product описывает товар каталога.
// Colors и ImageURLs равны nil, когда значения отсутствуют в хранилище;
// пустые списки при сохранении превращаются в NULL.
type Product struct {
	ID          int64
	CreatedAt   time.Time
	Name        string
	Description *string
	Price       *float64
	SetType     SetType
	Colors      []string
	ImageURLs   []string
}

func NewProduct(name string, description *string, price *float64, setType SetType, colors []string, imageURLs []string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		SetType:     setType,
		Colors:      colors,
		ImageURLs:   imageURLs,
	}
}
