package minio

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/jitter"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/google/uuid"
)

// publicPathMarker — сегмент публичного URL, после которого идут имя бакета и ключ объекта.
const publicPathMarker = "/public/"

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadImage валидирует и загружает один файл, возвращая публичный URL.
// Превышение лимита размера и не-изображения отклоняются до обращения к
// хранилищу; коллизия имени — ошибка, а не перезапись; успешная загрузка
// без разрешимого публичного URL также считается ошибкой.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	const op = "MinioInfrastructure.UploadImage"

	if req.Image.Size > m.cfg.MaxFileSize {
		return "", e.Wrap(fmt.Sprintf("%s: %s (%d bytes)", op, req.Image.Name, req.Image.Size), e.ErrFileTooLarge)
	}

	if !infrastructure.IsImageMIME(req.Image.MimeType) {
		return "", e.Wrap(fmt.Sprintf("%s: %s", op, req.Image.MimeType), e.ErrNotAnImage)
	}

	objectKey := req.FileName
	if objectKey == "" {
		objectKey = m.generateFileName(&req.Image)
	}

	// Проверка коллизии не атомарна с загрузкой: между Exists и Upload
	// конкурирующая запись того же ключа возможна. Генерируемые имена содержат
	// миллисекундную метку и случайный токен, так что окно касается только
	// явно заданных имён.
	exists, err := m.minioRepo.Exists(ctx, objectKey)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	if exists {
		return "", e.Wrap(fmt.Sprintf("%s: %s", op, objectKey), e.ErrObjectAlreadyExists)
	}

	image := domain.NewImage(uuid.NewString(), m.cfg.BucketName, objectKey, req.Image.Data, &req.Image.Size, &req.Image.MimeType)

	key, err := m.minioRepo.Upload(ctx, image)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	publicURL := m.minioRepo.PublicURL(key)
	if publicURL == "" {
		return "", e.Wrap(fmt.Sprintf("%s: %s", op, key), e.ErrNoPublicURL)
	}

	return publicURL, nil
}

// UploadImages загружает изображения последовательно в порядке подачи.
// Первая ошибка прерывает пакет и возвращается наружу; уже загруженные
// файлы не удаляются.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, images []usecase.ProductImage) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	if len(images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}
	if len(images) > m.cfg.MaxImageCount {
		return nil, e.Wrap(op, e.ErrTooManyImages)
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		publicURL, err := m.UploadImage(ctx, usecase.NewUploadImageReq(image, ""))
		if err != nil {
			return nil, e.Wrap(fmt.Sprintf("%s: upload %s failed", op, image.Name), err)
		}
		urls = append(urls, publicURL)
	}

	return usecase.NewUploadImagesRes(urls), nil
}

// CleanupImageURLs запускает фоновое удаление объектов по их публичным URL.
// URL, не соответствующие публичной форме, пропускаются без ошибки.
func (m *MinioInfrastructure) CleanupImageURLs(urls []string) {
	keys := make([]string, 0, len(urls))
	for _, rawURL := range urls {
		key, ok := ObjectKeyFromURL(rawURL)
		if !ok {
			m.logger.Warnf("Skipping unresolvable image URL: %s", rawURL)
			continue
		}
		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return
	}

	m.wg.Add(1)
	go m.cleanupKeys(keys)
}

// cleanupKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupKeys(keys []string) {
	defer m.wg.Done()
	const (
		op          = "MinioInfrastructure.cleanupKeys"
		maxAttempts = 3
		baseBackoff = time.Second
		maxBackoff  = 10 * time.Second
	)

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				m.logger.Warnf("%s: cleanup interrupted by shutdown, key=%v", op, key)
				return
			default:
			}

			if attempt < maxAttempts-1 {
				sleepTime := jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("%s: cleanup interrupted by shutdown during backoff, key=%v", op, key)
					return
				}
			} else {
				m.logger.Warnf("%s: giving up on key=%v after %d attempts", op, key, maxAttempts)
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// generateFileName строит уникальное имя объекта из текущего времени и
// короткого случайного токена, сохраняя расширение исходного файла.
func (m *MinioInfrastructure) generateFileName(image *usecase.ProductImage) string {
	ext := strings.TrimPrefix(path.Ext(image.Name), ".")
	if ext == "" {
		if mimeExt, err := infrastructure.GetExtensionFromMIME(image.MimeType); err == nil {
			ext = mimeExt
		} else {
			ext = "bin"
		}
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), token, ext)
}

// ObjectKeyFromURL извлекает ключ объекта из публичного URL формы
// .../public/<bucket>/<key>. Первый сегмент после маркера — имя бакета,
// оно отбрасывается; вложенные пути сохраняются. Возвращает ("", false)
// для URL, не соответствующих этой форме.
func ObjectKeyFromURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	idx := strings.Index(parsed.Path, publicPathMarker)
	if idx == -1 {
		return "", false
	}

	afterPublic := parsed.Path[idx+len(publicPathMarker):]
	segments := strings.Split(afterPublic, "/")
	if len(segments) < 2 {
		return "", false
	}

	key := strings.Join(segments[1:], "/")
	if key == "" {
		return "", false
	}

	return key, true
}
