package infrastructure

import (
	"strings"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, jpg, png, webp, gif. Возвращает ошибку e.ErrNotAnImage для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	case "image/gif":
		return "gif", nil
	default:
		return "bin", e.ErrNotAnImage
	}
}

// IsImageMIME проверяет, что заявленный Content-Type относится к изображениям.
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
