package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func themeApp() *fiber.App {
	app := fiber.New()
	h := NewThemeHandler()
	app.Get("/api/theme", h.Get)
	app.Put("/api/theme", h.Put)
	return app
}

func themeOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body.Theme
}

func TestTheme_DefaultsToLight(t *testing.T) {
	app := themeApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := themeOf(t, resp); got != "light" {
		t.Errorf("theme = %q, want light", got)
	}
}

func TestTheme_CookieWins(t *testing.T) {
	app := themeApp()

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(&http.Cookie{Name: themeCookieName, Value: "dark"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := themeOf(t, resp); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestTheme_ClientHintFallback(t *testing.T) {
	app := themeApp()

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := themeOf(t, resp); got != "dark" {
		t.Errorf("theme = %q, want dark from the client hint", got)
	}
}

func TestTheme_CookieBeatsClientHint(t *testing.T) {
	app := themeApp()

	req := httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	req.AddCookie(&http.Cookie{Name: themeCookieName, Value: "light"})
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := themeOf(t, resp); got != "light" {
		t.Errorf("theme = %q, want light (explicit choice beats OS hint)", got)
	}
}

func TestTheme_PutStoresChoice(t *testing.T) {
	app := themeApp()

	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := themeOf(t, resp); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == themeCookieName {
			cookie = c.Value
		}
	}
	if cookie != "dark" {
		t.Errorf("cookie = %q, want dark", cookie)
	}
}

func TestTheme_PutRejectsUnknownValue(t *testing.T) {
	app := themeApp()

	req := httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
