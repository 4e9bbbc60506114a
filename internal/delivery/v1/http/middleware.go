package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
)

type ctxKey string

const userUIDCtxKey ctxKey = "userUID"

// UserUIDFromCtx возвращает UID аутентифицированного пользователя запроса.
func UserUIDFromCtx(ctx context.Context) string {
	uid, _ := ctx.Value(userUIDCtxKey).(string)
	return uid
}

// AuthMiddleware проверяет сессионные cookie. Просроченный access-токен
// прозрачно обновляется через refresh-токен; отозванный refresh-токен
// сбрасывает cookie и завершает запрос с 401.
type AuthMiddleware struct {
	authUsecase usecase.AuthUC
	authCfg     *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthMiddleware(authUsecase usecase.AuthUC, authCfg *cfg.AuthCfg, logger logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		authCfg:     authCfg,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := m.authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), userUIDCtxKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только пользователей из allow-list администраторов.
// Вешается поверх RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := UserUIDFromCtx(r.Context())
		if uid == "" || !m.authUsecase.IsAdmin(r.Context(), uid) {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authenticate возвращает UID пользователя или пишет ответ об ошибке.
func (m *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	accessCookie, err := r.Cookie(accessTokenCookie)
	if err == nil && accessCookie.Value != "" {
		if uid, err := m.parseAccessToken(accessCookie.Value); err == nil {
			return uid, true
		}
	}

	// access-токен отсутствует или просрочен, пробуем обновить сессию
	refreshCookie, err := r.Cookie(refreshTokenCookie)
	if err != nil || refreshCookie.Value == "" {
		WriteError(w, e.ErrUnauthorized)
		return "", false
	}

	session, err := m.authUsecase.Refresh(r.Context(), refreshCookie.Value)
	if err != nil {
		if errors.Is(err, e.ErrRefreshTokenNotFound) {
			clearSessionCookies(w, m.authCfg)
		}
		WriteError(w, e.ErrUnauthorized)
		return "", false
	}

	setSessionCookies(w, m.authCfg, session)
	return session.User.ID, true
}

// parseAccessToken валидирует подпись HS256 и возвращает claim sub.
func (m *AuthMiddleware) parseAccessToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.authCfg.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", e.ErrUnauthorized
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", e.ErrUnauthorized
	}

	return sub, nil
}
