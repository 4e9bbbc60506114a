package usecase

import "context"

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (string, error)
	UploadImages(ctx context.Context, req []ProductImage) (*UploadImagesRes, error)
	CleanupImageURLs(urls []string)
	WaitForCleanup(ctx context.Context) error
}

type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
