package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImagesInfra struct {
	uploadCalls int
	uploadErr   error
	cleanedURLs []string
}

func (f *fakeImagesInfra) UploadImage(_ context.Context, _ *UploadImageReq) (string, error) {
	return "", f.uploadErr
}

func (f *fakeImagesInfra) UploadImages(_ context.Context, images []ProductImage) (*UploadImagesRes, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	urls := make([]string, len(images))
	for i := range images {
		urls[i] = "https://cdn.example.com/object/public/products/img.jpg"
	}
	return NewUploadImagesRes(urls), nil
}

func (f *fakeImagesInfra) CleanupImageURLs(urls []string) {
	f.cleanedURLs = append(f.cleanedURLs, urls...)
}

func (f *fakeImagesInfra) WaitForCleanup(_ context.Context) error { return nil }

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Transaction() any                 { return nil }
func (f *fakeTx) Commit(_ context.Context) error   { f.committed = true; return nil }
func (f *fakeTx) Rollback(_ context.Context) error { f.rolledBack = true; return nil }
func (f *fakeTx) IsActive() bool                   { return !f.committed && !f.rolledBack }

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error { return nil }

func newAdminUC(repo *fakeProductRepo, infra *fakeImagesInfra) *AdminProductUseCase {
	// dbPool nil: тесты покрывают пути, завершающиеся до открытия транзакции
	return NewAdminProductUC(repo, nil, nil, infra, &fakeCacheRepo{}, logger.NewSlogLogger())
}

func newAdminUCWithTx(repo *fakeProductRepo, outbox *fakeOutboxRepo, infra *fakeImagesInfra, tx *fakeTx) *AdminProductUseCase {
	uc := NewAdminProductUC(repo, outbox, nil, infra, &fakeCacheRepo{}, logger.NewSlogLogger())
	uc.beginTx = func(ctx context.Context) (context.Context, storeTx, error) {
		return ctx, tx, nil
	}
	return uc
}

func TestAdminCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *CreateProductReq
		wantErr error
	}{
		{
			name:    "blank name",
			req:     &CreateProductReq{Name: "   ", SetType: domain.SetTypeWestern},
			wantErr: e.ErrProductNameRequired,
		},
		{
			name:    "non-positive price",
			req:     &CreateProductReq{Name: "Saddle", Price: fptr(0), SetType: domain.SetTypeWestern},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "unknown set type",
			req:     &CreateProductReq{Name: "Saddle", SetType: domain.SetType("medieval")},
			wantErr: e.ErrInvalidSetType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			infra := &fakeImagesInfra{}
			uc := newAdminUC(&fakeProductRepo{}, infra)

			_, err := uc.Create(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			// до загрузки изображений дело не доходит
			assert.Zero(t, infra.uploadCalls)
		})
	}
}

func TestAdminCreate_UploadFailureAbortsBeforeDB(t *testing.T) {
	infra := &fakeImagesInfra{uploadErr: e.ErrFileTooLarge}
	uc := newAdminUC(&fakeProductRepo{}, infra)

	req := &CreateProductReq{
		Name:    "Saddle",
		SetType: domain.SetTypeWestern,
		Images:  []ProductImage{{Data: []byte("x"), MimeType: "image/jpeg", Size: 1, Name: "a.jpg"}},
	}

	_, err := uc.Create(context.Background(), req)
	require.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Equal(t, 1, infra.uploadCalls)
	// загруженные до отказа файлы не зачищаются
	assert.Empty(t, infra.cleanedURLs)
}

func TestAdminDelete_MissingProductIsFalse(t *testing.T) {
	infra := &fakeImagesInfra{}
	uc := newAdminUC(&fakeProductRepo{}, infra)

	assert.False(t, uc.Delete(context.Background(), 404))
	assert.Empty(t, infra.cleanedURLs)
}

func TestAdminDelete_RepoErrorIsFalse(t *testing.T) {
	uc := newAdminUC(&fakeProductRepo{failList: true}, &fakeImagesInfra{})

	assert.False(t, uc.Delete(context.Background(), 1))
}

func TestAdminDelete_MalformedImageURLStillDeletesRow(t *testing.T) {
	urls := []string{
		"https://cdn.example.com/object/public/products/pad.jpg",
		"not-a-public-url",
	}
	repo := &fakeProductRepo{
		products: []*domain.Product{{
			ID:        9,
			Name:      "Saddle Pad",
			SetType:   domain.SetTypeWestern,
			ImageURLs: urls,
		}},
		deleteOK: true,
	}
	outbox := &fakeOutboxRepo{}
	infra := &fakeImagesInfra{}
	tx := &fakeTx{}
	uc := newAdminUCWithTx(repo, outbox, infra, tx)

	require.True(t, uc.Delete(context.Background(), 9))

	// очистке передаются все сохранённые URL; разбор публичной формы и
	// пропуск нераспознанных — забота инфраструктуры изображений
	assert.Equal(t, urls, infra.cleanedURLs)

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	require.Len(t, outbox.events, 1)
	assert.Equal(t, ProductDeleted, outbox.events[0].EventType)
	assert.Equal(t, int64(9), outbox.events[0].ProductID)
}
