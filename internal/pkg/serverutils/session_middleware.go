// FILE: internal/pkg/serverutils/session_middleware.go
package serverutils

import (
	"fmt"
	"time"

	"construction-deepwiki-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName carries the signed session token. The cookie is the
// only state a browser holds; everything else lives server side.
const SessionCookieName = "wiki_session"

// SessionProvider resolves existing sessions and begins new ones.
// Implemented by the navigation service, which also records the
// session_started log entry.
type SessionProvider interface {
	Resolve(sessionId string) (*store.Session, bool)
	Begin() *store.Session
}

// NewSessionMiddleware attaches a session to every request. A valid
// token pointing at a live session is reused; anything else (first
// visit, expired session, bad token) silently begins a fresh one.
func NewSessionMiddleware(secret string, ttl time.Duration, sessions SessionProvider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Cookies(SessionCookieName)
		if tokenStr == "" {
			// Non-browser clients can pass the token directly
			tokenStr = ctx.Query("token")
		}

		if tokenStr != "" {
			if sessionId, err := ParseSessionToken(secret, tokenStr); err == nil {
				if session, ok := sessions.Resolve(sessionId); ok {
					ctx.Locals("session_id", session.Id)
					return ctx.Next()
				}
			}
		}

		session := sessions.Begin()
		token, err := SignSessionToken(secret, session.Id, ttl)
		if err != nil {
			return err
		}

		ctx.Cookie(&fiber.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		ctx.Locals("session_id", session.Id)
		return ctx.Next()
	}
}

// SignSessionToken mints the HS256 token carrying the session id.
func SignSessionToken(secret, sessionId string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionId,
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies a token and returns the session id claim.
func ParseSessionToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}
	sessionId, ok := claims["session_id"].(string)
	if !ok || sessionId == "" {
		return "", fmt.Errorf("token missing session_id")
	}
	return sessionId, nil
}
