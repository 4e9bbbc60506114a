package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
)

const (
	accessTokenCookie  = "sb-access-token"
	refreshTokenCookie = "sb-refresh-token"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	authCfg     *cfg.AuthCfg
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, authCfg *cfg.AuthCfg, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		authCfg:     authCfg,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// login
//
//	@Summary		Вход по email и паролю
//	@Description	Обменивает креденшалы на сессию провайдера и выставляет httpOnly-cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Креденшалы"
//	@Success		200		{object}	loginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	session, err := a.authUsecase.SignIn(r.Context(), &usecase.SignInReq{Email: req.Email, Password: req.Password})
	if err != nil {
		a.logger.Warnf("login failed for %s: %v", req.Email, err)
		WriteError(w, err)
		return
	}

	a.setSessionCookies(w, session)

	WriteSuccess(w, http.StatusOK, loginResponse{
		UserID:  session.User.ID,
		Email:   session.User.Email,
		IsAdmin: a.authUsecase.IsAdmin(r.Context(), session.User.ID),
	})
}

// logout
//
//	@Summary		Выход
//	@Description	Отзывает сессию у провайдера и сбрасывает cookie
//	@Tags			auth
//	@Produce		json
//	@Success		204
//	@Router			/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		if err := a.authUsecase.SignOut(r.Context(), c.Value); err != nil {
			a.logger.Warnf("sign out failed: %v", err)
		}
	}

	a.clearSessionCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a *AuthHandler) setSessionCookies(w http.ResponseWriter, session *usecase.Session) {
	setSessionCookies(w, a.authCfg, session)
}

func (a *AuthHandler) clearSessionCookies(w http.ResponseWriter) {
	clearSessionCookies(w, a.authCfg)
}

func setSessionCookies(w http.ResponseWriter, authCfg *cfg.AuthCfg, session *usecase.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    session.AccessToken,
		Path:     "/",
		Domain:   authCfg.CookieDomain,
		MaxAge:   int(session.ExpiresIn),
		HttpOnly: true,
		Secure:   authCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    session.RefreshToken,
		Path:     "/",
		Domain:   authCfg.CookieDomain,
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   authCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(w http.ResponseWriter, authCfg *cfg.AuthCfg) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   authCfg.CookieDomain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   authCfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
