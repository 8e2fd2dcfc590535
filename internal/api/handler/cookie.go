package handler

import (
	"net/http"
	"time"

	"github.com/pawantalekar/briefly/internal/api/middleware"
)

// SessionCookies builds the session cookie for both the issue and clear
// paths from one attribute set, so logout always clears exactly the cookie
// login set. Production deploys serve the frontend cross-site, which forces
// SameSite=None and therefore Secure; everywhere else Lax is safer.
type SessionCookies struct {
	ttl        time.Duration
	production bool
}

func NewSessionCookies(ttl time.Duration, production bool) *SessionCookies {
	return &SessionCookies{ttl: ttl, production: production}
}

// Issue returns the cookie set on successful login or registration.
func (s *SessionCookies) Issue(token string) *http.Cookie {
	c := s.build()
	c.Value = token
	c.MaxAge = int(s.ttl.Seconds())
	return c
}

// Clear returns the expired twin of Issue's cookie.
func (s *SessionCookies) Clear() *http.Cookie {
	c := s.build()
	c.MaxAge = -1
	return c
}

func (s *SessionCookies) build() *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if s.production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.production,
		SameSite: sameSite,
	}
}
