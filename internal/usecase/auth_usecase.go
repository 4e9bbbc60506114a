package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// AuthUseCase делегирует работу с учетными данными внешнему провайдеру
// и проверяет членство в allow-list администраторов.
type AuthUseCase struct {
	provider  AuthProvider
	adminRepo AdminRepository
	logger    logger.Logger
}

func NewAuthUC(provider AuthProvider, adminRepo AdminRepository, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		provider:  provider,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (a *AuthUseCase) SignIn(ctx context.Context, req *SignInReq) (*Session, error) {
	const op = "AuthUseCase.SignIn"

	if req.Email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	session, err := a.provider.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

func (a *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	const op = "AuthUseCase.SignOut"

	if err := a.provider.SignOut(ctx, accessToken); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (a *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	const op = "AuthUseCase.Refresh"

	session, err := a.provider.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// IsAdmin — чистый предикат авторизации: true только когда пользователь
// аутентифицирован и присутствует в таблице admins. Любая ошибка поиска,
// включая «не найдено», дает false.
func (a *AuthUseCase) IsAdmin(ctx context.Context, userUID string) bool {
	const op = "AuthUseCase.IsAdmin"

	if userUID == "" {
		return false
	}

	exists, err := a.adminRepo.Exists(ctx, userUID)
	if err != nil {
		a.logger.Warnf("%v", e.Wrap(op, err))
		return false
	}

	return exists
}
