package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie under which the session token travels.
const SessionCookieName = "token"

// CookiePolicy fixes the attributes the session cookie is set with. Clearing
// on logout must reuse the exact same attributes, otherwise some browsers
// keep the stale cookie around.
type CookiePolicy struct {
	Secure bool
	MaxAge time.Duration
}

// Session builds the cookie carrying a freshly issued session token.
func (p CookiePolicy) Session(token string) *http.Cookie {
	c := p.base()
	c.Value = token
	c.MaxAge = int(p.MaxAge.Seconds())
	return c
}

// Expired builds the deletion cookie set on logout.
func (p CookiePolicy) Expired() *http.Cookie {
	c := p.base()
	c.MaxAge = -1
	return c
}

func (p CookiePolicy) base() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
