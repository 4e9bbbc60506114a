package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

// Provider — клиент GoTrue-совместимого auth-провайдера.
// Сервис не хранит пароли и не выпускает токены сам: вход, выход и
// обновление сессии проксируются провайдеру по REST.
type Provider struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     logger.Logger
}

func NewProvider(cfg *cfg.AuthCfg, logger logger.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimSuffix(cfg.ProviderURL, "/"),
		anonKey: cfg.AnonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type errorResponse struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// SignInWithPassword обменивает email и пароль на сессию провайдера.
func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*usecase.Session, error) {
	const op = "auth.Provider.SignInWithPassword"

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	session, err := p.requestSession(ctx, "/token?grant_type=password", body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// RefreshSession обменивает refresh-токен на новую пару токенов.
// Отозванный или неизвестный токен возвращается как ErrRefreshTokenNotFound,
// чтобы вызывающая сторона могла сбросить cookie вместо ретраев.
func (p *Provider) RefreshSession(ctx context.Context, refreshToken string) (*usecase.Session, error) {
	const op = "auth.Provider.RefreshSession"

	body := map[string]string{
		"refresh_token": refreshToken,
	}

	session, err := p.requestSession(ctx, "/token?grant_type=refresh_token", body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// SignOut отзывает сессию на стороне провайдера. Ошибка со статусом 401
// игнорируется: токен уже недействителен, цель достигнута.
func (p *Provider) SignOut(ctx context.Context, accessToken string) error {
	const op = "auth.Provider.SignOut"

	req, err := p.newRequest(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusUnauthorized {
		return nil
	}

	return e.Wrap(op, p.classifyError(resp))
}

func (p *Provider) requestSession(ctx context.Context, path string, body map[string]string) (*usecase.Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := p.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, p.classifyError(resp)
	}

	var sr sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}

	return &usecase.Session{
		AccessToken:  sr.AccessToken,
		RefreshToken: sr.RefreshToken,
		ExpiresIn:    sr.ExpiresIn,
		User: domain.User{
			ID:    sr.User.ID,
			Email: sr.User.Email,
		},
	}, nil
}

func (p *Provider) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)
	return req, nil
}

// classifyError переводит ответ провайдера в доменные ошибки.
func (p *Provider) classifyError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var er errorResponse
	_ = json.Unmarshal(raw, &er)

	message := er.Msg
	if message == "" {
		message = er.ErrorDescription
	}
	if message == "" {
		message = er.Error
	}

	if isRefreshTokenNotFound(er, message) {
		return e.ErrRefreshTokenNotFound
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusForbidden:
		p.logger.Warnf("auth provider rejected request: status=%d msg=%q", resp.StatusCode, message)
		return e.ErrUnauthorized
	default:
		return fmt.Errorf("auth provider returned status %d: %s", resp.StatusCode, message)
	}
}

func isRefreshTokenNotFound(er errorResponse, message string) bool {
	if er.ErrorCode == "refresh_token_not_found" {
		return true
	}
	return strings.Contains(strings.ToLower(message), "refresh token not found")
}
