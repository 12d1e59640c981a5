package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/model"
)

// SessionReader resolves a raw cookie token into a session, or nil when the
// token is unknown or expired.
type SessionReader interface {
	SessionFromToken(ctx context.Context, token string) (*model.Session, error)
}

const sessionLocal = "session"

// redirectResponse is the gate's error envelope: clients follow redirectTo
// instead of rendering the page they asked for.
func redirectResponse(c fiber.Ctx, status int, code, message, redirectTo string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":       code,
			"message":    message,
			"redirectTo": redirectTo,
		},
	})
}

// RequireSession gates routes that need a signed-in user. Without a valid
// session the protected payload is never produced; the client is told to go
// to the sign-in page. Lookup failures fail closed.
func RequireSession(sessions SessionReader, cookieName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return redirectResponse(c, fiber.StatusUnauthorized, "AUTH_REQUIRED",
				"Please sign in to access this page", "/signin")
		}

		sess, err := sessions.SessionFromToken(c.Context(), token)
		if err != nil {
			Logger.Error().Err(err).Msg("session lookup failed")
			return redirectResponse(c, fiber.StatusUnauthorized, "AUTH_REQUIRED",
				"Please sign in to access this page", "/signin")
		}
		if sess == nil {
			return redirectResponse(c, fiber.StatusUnauthorized, "AUTH_REQUIRED",
				"Please sign in to access this page", "/signin")
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// RequireAnonymous gates the sign-in and sign-up routes: a user who already
// has a session is sent back home instead. Lookup failures let the request
// through — worst case an already-signed-in user sees the sign-in form.
func RequireAnonymous(sessions SessionReader, cookieName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}

		sess, err := sessions.SessionFromToken(c.Context(), token)
		if err != nil {
			Logger.Warn().Err(err).Msg("session lookup failed on anonymous route")
			return c.Next()
		}
		if sess != nil {
			return redirectResponse(c, fiber.StatusConflict, "ALREADY_SIGNED_IN",
				"You are already signed in", "/")
		}
		return c.Next()
	}
}

// SessionFromCtx returns the session attached by RequireSession, or nil.
func SessionFromCtx(c fiber.Ctx) *model.Session {
	sess, _ := c.Locals(sessionLocal).(*model.Session)
	return sess
}
