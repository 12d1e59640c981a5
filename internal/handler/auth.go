package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/model"
	"github.com/IbrahimAwiby/youtube-clone/internal/repository"
	"github.com/IbrahimAwiby/youtube-clone/internal/service"
)

type AuthHandler struct {
	svc        *service.AuthService
	cookieName string
	secure     bool
}

// NewAuthHandler wires the auth endpoints. secure controls the cookie's
// Secure flag; turn it off only for plain-HTTP development.
func NewAuthHandler(svc *service.AuthService, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieName: cookieName, secure: secure}
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var req model.SignUpRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	email, msg := middleware.ValidateEmail(req.Email)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_EMAIL", msg)
	}
	name, msg := middleware.ValidateDisplayName(req.DisplayName)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_DISPLAY_NAME", msg)
	}
	if msg := middleware.ValidatePassword(req.Password); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PASSWORD", msg)
	}

	sess, token, err := h.svc.SignUp(c.Context(), email, name, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
		}
		middleware.Logger.Error().Err(err).Msg("sign-up failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account")
	}

	h.setSessionCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(model.SessionResponse{User: *sess})
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	var req model.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	email, msg := middleware.ValidateEmail(req.Email)
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_EMAIL", msg)
	}

	sess, token, err := h.svc.SignIn(c.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		}
		middleware.Logger.Error().Err(err).Msg("sign-in failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign in")
	}

	h.setSessionCookie(c, token)
	return c.JSON(model.SessionResponse{User: *sess})
}

// SignOut handles POST /api/auth/signout. A store failure still clears the
// cookie and succeeds with a warning; the client is signed out either way.
func (h *AuthHandler) SignOut(c fiber.Ctx) error {
	token := c.Cookies(h.cookieName)

	resp := fiber.Map{"status": "signedOut"}
	if err := h.svc.SignOut(c.Context(), token); err != nil {
		middleware.Logger.Warn().Err(err).Msg("session invalidation failed")
		resp["warning"] = "Session could not be fully invalidated"
	}

	h.clearSessionCookie(c)
	return c.JSON(resp)
}

// Session handles GET /api/auth/session. The gate has already resolved the
// session before this runs.
func (h *AuthHandler) Session(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if sess == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "AUTH_REQUIRED", "Please sign in to access this page")
	}
	return c.JSON(model.SessionResponse{User: *sess})
}

func (h *AuthHandler) setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.svc.SessionTTL() / time.Second),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
