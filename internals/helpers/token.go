// helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Simpan raw JWT di Locals dari middleware
const LocRawToken = "raw_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	// 1) Cookie
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	// 2) Locals (diisi middleware sesudah verifikasi header/cookie)
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	// 3) Authorization: Bearer <token>
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// GetRefreshTokenFromCookie ambil refresh token dari cookie
func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}

// SetRawAccessToken set raw token ke Locals dari middleware auth
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// GetUserUUID ambil user_id dari Locals (diset auth middleware).
// uuid.Nil kalau belum login.
func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}
	return uuid.Nil
}

// ParseUUIDParam parse path param jadi UUID; tolak sebelum menyentuh DB.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}
