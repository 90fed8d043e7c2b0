package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	// dukung dua nama klaim: "sub" (standar) atau "id" (legacy)
	if sub, ok := claims["sub"].(string); ok {
		if parsed, err := uuid.Parse(sub); err == nil {
			return parsed, nil
		}
	}
	if id, ok := claims["id"].(string); ok {
		if parsed, err := uuid.Parse(id); err == nil {
			return parsed, nil
		}
	}
	return uuid.Nil, errors.New("user id tidak ditemukan di klaim")
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var isActive bool
	if err := db.Table("users").
		Select("is_active").
		Where("id = ?", userID).
		Take(&isActive).Error; err != nil {
		return err
	}
	if !isActive {
		return errors.New("user nonaktif")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok && role != "" {
		c.Locals("role", role)
	}
	if name, ok := claims["user_name"].(string); ok && name != "" {
		c.Locals("user_name", name)
	}
}
