//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPointerString
// goverter:extend ConvertPointerFloat
// goverter:extend NormalizeStringList
// goverter:extend MarshalStringList
// goverter:extend ConvertSetType
// goverter:extend ConvertSetTypeString
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []*domain.Product
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxStatusString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

// NormalizeStringList приводит сырое jsonb-значение колонки к списку строк.
// NULL, пустые байты, некорректный JSON и не-массивы дают nil; из массива
// сохраняются только строковые элементы с исходным порядком. Функция
// идемпотентна по содержимому и никогда не возвращает ошибку.
func NormalizeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	items, ok := value.([]any)
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}

	return result
}

// MarshalStringList сериализует список строк в jsonb-байты.
// Пустой список и nil дают nil, что сохраняется как SQL NULL.
func MarshalStringList(list []string) []byte {
	if len(list) == 0 {
		return nil
	}

	data, err := json.Marshal(list)
	if err != nil {
		return nil
	}

	return data
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertPointerString(s *string) *string {
	return s
}

func ConvertPointerFloat(f *float64) *float64 {
	return f
}

func ConvertSetType(s string) domain.SetType {
	return domain.SetType(s)
}

func ConvertSetTypeString(s domain.SetType) string {
	return string(s)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxStatusString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

func ConvertOutboxEventTypeString(t usecase.OutboxEventType) string {
	return string(t)
}
