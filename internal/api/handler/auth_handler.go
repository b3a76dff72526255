package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iapourpme/content-api/internal/api/metrics"
	"github.com/iapourpme/content-api/internal/api/middleware"
	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// AuthHandler handles login and logout. User-facing error messages are in
// French, matching the public site.
type AuthHandler struct {
	auth      ports.AuthService
	verifier  ports.SessionVerifier
	cookieTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, verifier ports.SessionVerifier, cookieTTL time.Duration) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &AuthHandler{auth: auth, verifier: verifier, cookieTTL: cookieTTL}
}

// Login authenticates an email/password pair, opens a session and writes the
// session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// Unknown address and wrong password answer identically.
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Identifiants incorrects"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	middleware.Cookies(c).Write(middleware.SessionCookieName, token, h.cookieTTL)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// Logout revokes the server-side session and clears the cookie. Always
// answers 200: logging out with a dead session is not an error.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  logoutResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookies := middleware.Cookies(c)
	if token, err := cookies.Read(middleware.SessionCookieName); err == nil && token != "" {
		_ = h.verifier.Revoke(c.Request().Context(), token)
	}
	cookies.Clear(middleware.SessionCookieName)
	return c.JSON(http.StatusOK, logoutResponse{Success: true})
}
