package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "pme_session"

// CookieCapability is the read/write/clear surface handed to code that deals
// with the session cookie, backed by the current request/response pair.
type CookieCapability interface {
	Read(name string) (string, error)
	Write(name, value string, ttl time.Duration)
	Clear(name string)
}

// Cookies returns the echo-backed CookieCapability for the current request.
func Cookies(c echo.Context) CookieCapability {
	return echoCookies{c: c}
}

type echoCookies struct {
	c echo.Context
}

func (e echoCookies) Read(name string) (string, error) {
	cookie, err := e.c.Cookie(name)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

func (e echoCookies) Write(name, value string, ttl time.Duration) {
	e.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (e echoCookies) Clear(name string) {
	e.c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
