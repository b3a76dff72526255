package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

// principalKey is the echo context key the Principal is stored under.
const principalKey = "principal"

// RequireSession gates a route behind the session verifier. The wrapped
// handler runs with a non-nil Principal in the context; every verification
// failure short-circuits with the same 401 envelope, without distinguishing
// a missing cookie from an invalid session or an identity-store error.
func RequireSession(verifier ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := Cookies(c).Read(SessionCookieName)
			if err != nil || token == "" {
				return unauthorized(c)
			}

			principal, err := verifier.Verify(c.Request().Context(), token)
			if err != nil || principal == nil {
				return unauthorized(c)
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal injected by RequireSession, or nil when
// the middleware did not run.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}
