package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
)

const themeCookieName = "yt_theme"

// ThemeHandler persists the dark/light preference in a cookie. Without a
// cookie the OS preference client hint decides, defaulting to light.
type ThemeHandler struct{}

func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Get handles GET /api/theme
func (h *ThemeHandler) Get(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": currentTheme(c)})
}

// Put handles PUT /api/theme
func (h *ThemeHandler) Put(c fiber.Ctx) error {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	theme := strings.ToLower(strings.TrimSpace(req.Theme))
	if theme != "dark" && theme != "light" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_THEME", `theme must be "dark" or "light"`)
	}

	c.Cookie(&fiber.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"theme": theme})
}

func currentTheme(c fiber.Ctx) string {
	switch strings.ToLower(strings.TrimSpace(c.Cookies(themeCookieName))) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	}
	// No stored choice: honor the OS preference hint when the browser
	// sends one.
	if strings.Contains(strings.ToLower(c.Get("Sec-CH-Prefers-Color-Scheme")), "dark") {
		return "dark"
	}
	return "light"
}
