// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"socialku_backend/internals/configs"
	authModel "socialku_backend/internals/features/users/auth/model"
	authRepo "socialku_backend/internals/features/users/auth/repository"
	userModel "socialku_backend/internals/features/users/user/model"
	helpers "socialku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   Issue token pair
========================== */

type tokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (*tokenPair, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	accessExp := now.Add(accessTTLDefault)

	accessClaims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       accessExp.Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refreshExp := now.Add(refreshTTLDefault)
	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": refreshExp.Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// simpan hash refresh token, bukan plaintext
	rt := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: refreshExp,
		UserAgent: strptr(string(c.Context().UserAgent())),
		IP:        strptr(c.IP()),
	}
	if err := authRepo.StoreRefreshToken(db, &rt); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	return &tokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExp,
	}, nil
}

func setAuthCookies(c *fiber.Ctx, pair *tokenPair) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    pair.AccessToken,
		Expires:  pair.ExpiresAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Expires:  nowUTC().Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/api/auth",
	})
}

/* ==========================
   REFRESH TOKEN (rotate)
   POST /api/auth/refresh-token
========================== */
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helpers.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada di DB
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan pasangan baru
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal refresh token")
	}
	setAuthCookies(c, pair)

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_at":   pair.ExpiresAt,
	})
}
