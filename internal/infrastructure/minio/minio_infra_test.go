package minio

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	mu       sync.Mutex
	objects  map[string]struct{}
	deleted  []string
	uploaded []string

	failUploadAfter int // кол-во успешных загрузок до отказа; -1 = без отказов
	failDeletes     int // кол-во отказов Delete до успеха
	baseURL         string
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{
		objects:         make(map[string]struct{}),
		failUploadAfter: -1,
		baseURL:         "https://storage.example.com/object/public/products",
	}
}

func (f *fakeImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUploadAfter >= 0 && len(f.uploaded) >= f.failUploadAfter {
		return "", assert.AnError
	}
	f.objects[image.ObjectKey] = struct{}{}
	f.uploaded = append(f.uploaded, image.ObjectKey)
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeletes > 0 {
		f.failDeletes--
		return assert.AnError
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImageRepo) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeImageRepo) PublicURL(key string) string {
	if f.baseURL == "" {
		return ""
	}
	return f.baseURL + "/" + key
}

func (f *fakeImageRepo) deletedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.deleted))
	copy(out, f.deleted)
	return out
}

func newTestInfra(repo *fakeImageRepo) *MinioInfrastructure {
	minioCfg := &cfg.MinIOCfg{
		BucketName:    "products",
		MaxFileSize:   10 << 20,
		MaxImageCount: 10,
	}
	return NewMinioInfrastructure(repo, minioCfg, logger.NewSlogLogger(), context.Background())
}

func testImage(name, mimeType string) usecase.ProductImage {
	data := []byte("fake-image-bytes")
	return usecase.ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Name:     name,
	}
}

func TestUploadImage_RejectsOversizedFile(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	img := testImage("huge.jpg", "image/jpeg")
	img.Size = 10<<20 + 1

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(img, ""))
	require.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Empty(t, repo.uploaded)
}

func TestUploadImage_RejectsNonImageMIME(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(testImage("doc.pdf", "application/pdf"), ""))
	require.ErrorIs(t, err, e.ErrNotAnImage)
	assert.Empty(t, repo.uploaded)
}

func TestUploadImage_GeneratesNamePreservingExtension(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	publicURL, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(testImage("photo.pic.png", "image/png"), ""))
	require.NoError(t, err)
	require.Len(t, repo.uploaded, 1)

	key := repo.uploaded[0]
	assert.True(t, strings.HasSuffix(key, ".png"), "expected .png suffix, got %s", key)
	assert.NotEqual(t, "photo.pic.png", key)
	assert.Equal(t, repo.PublicURL(key), publicURL)
}

func TestUploadImage_ExtensionFromMIMEWhenNameHasNone(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(testImage("camera-roll", "image/webp"), ""))
	require.NoError(t, err)
	require.Len(t, repo.uploaded, 1)
	assert.True(t, strings.HasSuffix(repo.uploaded[0], ".webp"))
}

func TestUploadImage_ExistingObjectIsNotOverwritten(t *testing.T) {
	repo := newFakeImageRepo()
	repo.objects["taken.jpg"] = struct{}{}
	infra := newTestInfra(repo)

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(testImage("ignored.jpg", "image/jpeg"), "taken.jpg"))
	require.ErrorIs(t, err, e.ErrObjectAlreadyExists)
	assert.Empty(t, repo.uploaded)
}

func TestUploadImage_EmptyPublicURLIsAnError(t *testing.T) {
	repo := newFakeImageRepo()
	repo.baseURL = ""
	infra := newTestInfra(repo)

	_, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq(testImage("a.jpg", "image/jpeg"), ""))
	require.ErrorIs(t, err, e.ErrNoPublicURL)
}

func TestUploadImages_SequentialInSubmissionOrder(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	images := []usecase.ProductImage{
		testImage("first.jpg", "image/jpeg"),
		testImage("second.png", "image/png"),
		testImage("third.webp", "image/webp"),
	}

	res, err := infra.UploadImages(context.Background(), images)
	require.NoError(t, err)
	require.Len(t, res.URLs, 3)
	require.Len(t, repo.uploaded, 3)

	assert.True(t, strings.HasSuffix(repo.uploaded[0], ".jpg"))
	assert.True(t, strings.HasSuffix(repo.uploaded[1], ".png"))
	assert.True(t, strings.HasSuffix(repo.uploaded[2], ".webp"))

	for i, u := range res.URLs {
		assert.Equal(t, repo.PublicURL(repo.uploaded[i]), u)
	}
}

func TestUploadImages_AbortsOnFirstErrorKeepingEarlierUploads(t *testing.T) {
	repo := newFakeImageRepo()
	repo.failUploadAfter = 2
	infra := newTestInfra(repo)

	images := []usecase.ProductImage{
		testImage("a.jpg", "image/jpeg"),
		testImage("b.jpg", "image/jpeg"),
		testImage("c.jpg", "image/jpeg"),
	}

	res, err := infra.UploadImages(context.Background(), images)
	require.Error(t, err)
	assert.Nil(t, res)

	// уже загруженные файлы остаются: откатом занимается вызывающая сторона
	assert.Len(t, repo.uploaded, 2)
	assert.Empty(t, repo.deletedKeys())
}

func TestUploadImages_EmptyAndOversizedBatches(t *testing.T) {
	infra := newTestInfra(newFakeImageRepo())

	_, err := infra.UploadImages(context.Background(), nil)
	require.ErrorIs(t, err, e.ErrNoImages)

	batch := make([]usecase.ProductImage, 11)
	for i := range batch {
		batch[i] = testImage("x.jpg", "image/jpeg")
	}
	_, err = infra.UploadImages(context.Background(), batch)
	require.ErrorIs(t, err, e.ErrTooManyImages)
}

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "plain public url",
			rawURL:  "https://storage.example.com/object/public/products/1693000-ab12.jpg",
			wantKey: "1693000-ab12.jpg",
			wantOK:  true,
		},
		{
			name:    "nested key keeps path",
			rawURL:  "https://storage.example.com/object/public/products/2024/08/cover.png",
			wantKey: "2024/08/cover.png",
			wantOK:  true,
		},
		{
			name:   "no public marker",
			rawURL: "https://storage.example.com/object/products/img.jpg",
			wantOK: false,
		},
		{
			name:   "bucket only, no key",
			rawURL: "https://storage.example.com/object/public/products",
			wantOK: false,
		},
		{
			name:   "empty key after bucket",
			rawURL: "https://storage.example.com/object/public/products/",
			wantOK: false,
		},
		{
			name:   "unparseable url",
			rawURL: "://not-a-url",
			wantOK: false,
		},
		{
			name:   "empty string",
			rawURL: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ObjectKeyFromURL(tt.rawURL)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestCleanupImageURLs_DeletesOnlyResolvableURLs(t *testing.T) {
	repo := newFakeImageRepo()
	repo.objects["keep/a.jpg"] = struct{}{}
	repo.objects["b.png"] = struct{}{}
	infra := newTestInfra(repo)

	infra.CleanupImageURLs([]string{
		"https://storage.example.com/object/public/products/keep/a.jpg",
		"not a url at all",
		"https://storage.example.com/object/public/products/b.png",
		"https://other.example.com/direct/b.png",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))

	assert.ElementsMatch(t, []string{"keep/a.jpg", "b.png"}, repo.deletedKeys())
}

func TestCleanupImageURLs_RetriesTransientDeleteFailures(t *testing.T) {
	repo := newFakeImageRepo()
	repo.objects["flaky.jpg"] = struct{}{}
	repo.failDeletes = 2
	infra := newTestInfra(repo)

	infra.CleanupImageURLs([]string{"https://storage.example.com/object/public/products/flaky.jpg"})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))

	assert.Equal(t, []string{"flaky.jpg"}, repo.deletedKeys())
}

func TestCleanupImageURLs_NoResolvableURLsIsNoop(t *testing.T) {
	repo := newFakeImageRepo()
	infra := newTestInfra(repo)

	infra.CleanupImageURLs([]string{"garbage", ""})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))
	assert.Empty(t, repo.deletedKeys())
}
