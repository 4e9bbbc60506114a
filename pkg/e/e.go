package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки авторизации
	ErrRefreshTokenNotFound = fmt.Errorf("refresh token not found")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrForbidden            = fmt.Errorf("forbidden")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrExpectedMultipart   = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidSetType      = fmt.Errorf("invalid set type")
	ErrNoImages            = fmt.Errorf("no images provided")
	ErrTooManyImages       = fmt.Errorf("too many images")
	ErrFileTooLarge        = fmt.Errorf("file exceeds maximum allowed size")
	ErrNotAnImage          = fmt.Errorf("file must be an image")

	// Ошибки хранилища объектов
	ErrObjectAlreadyExists = fmt.Errorf("object with this name already exists")
	ErrNoPublicURL         = fmt.Errorf("failed to resolve public URL")

	// 404 / 500
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
