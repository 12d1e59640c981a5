package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits. Video and channel ids follow the upstream id formats;
// the query limit matches the search box.
const (
	MaxVideoIDLen    = 16
	MaxChannelIDLen  = 32
	MaxCategoryIDLen = 4
	MaxQueryLen      = 128
	MaxEmailLen      = 254
	MaxDisplayName   = 64
	MinPasswordLen   = 8
	MaxPasswordLen   = 72 // bcrypt input limit
)

var (
	// videoIDRe matches YouTube video ids: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches YouTube channel ids.
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// categoryIDRe matches numeric topic-bucket ids ("0" means all).
	categoryIDRe = regexp.MustCompile(`^[0-9]+$`)
	// emailRe is a light format check; the mail system is the real validator.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateVideoID checks that a video id is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel id is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateCategoryID checks that a category id is a small numeric bucket id.
// Empty input falls back to "0" (all categories).
func ValidateCategoryID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "0", ""
	}
	if len(id) > MaxCategoryIDLen {
		return "", "category must be at most 4 digits"
	}
	if !categoryIDRe.MatchString(id) {
		return "", "category must be numeric"
	}
	return id, ""
}

// ValidateSearchQuery trims and bounds a search query. An empty query is
// valid and means "not searching".
func ValidateSearchQuery(q string) (string, string) {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLen {
		return "", "search query must be at most 128 characters"
	}
	return q, ""
}

// ValidateEmail checks a sign-in/sign-up email address.
func ValidateEmail(email string) (string, string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email is too long"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not valid"
	}
	return email, ""
}

// ValidateDisplayName trims and bounds an account display name.
func ValidateDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "displayName is required"
	}
	if len(name) > MaxDisplayName {
		return "", "displayName must be at most 64 characters"
	}
	return name, ""
}

// ValidatePassword bounds a password without trimming (whitespace is legal).
func ValidatePassword(pw string) string {
	if len(pw) < MinPasswordLen {
		return "password must be at least 8 characters"
	}
	if len(pw) > MaxPasswordLen {
		return "password must be at most 72 characters"
	}
	return ""
}
