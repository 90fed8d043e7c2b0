package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"socialku_backend/internals/configs"
	authRepo "socialku_backend/internals/features/users/auth/repository"
	userModel "socialku_backend/internals/features/users/user/model"
	helpers "socialku_backend/internals/helpers"
)

var validateAuth = validator.New()

/* ==========================
   REGISTER
   POST /api/auth/register
========================== */
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// cek duplikat email/username lebih dulu supaya pesan jelas
	if _, err := authRepo.FindUserByEmailOrUsername(db, req.Email); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if _, err := authRepo.FindUserByEmailOrUsername(db, req.UserName); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
	}
	user.SetDefaultValues()

	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Printf("[ERROR] Gagal register: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN (email atau username)
   POST /api/auth/login
========================== */
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	if !CheckPassword(user.Password, req.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	setAuthCookies(c, pair)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_at":   pair.ExpiresAt,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

/* ==========================
   LOGIN GOOGLE (ID token)
   POST /api/auth/login-google
========================== */
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	clientID := configs.GoogleClientID
	if clientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca ID token Google")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// fallback: akun sudah ada via email → tautkan google_id
		user, err = authRepo.FindUserByEmail(db, strings.ToLower(claimSet.Email))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// buat akun baru dari profil Google
			randomPass, hashErr := HashPassword(claimSet.Sub + claimSet.Email + time.Now().String())
			if hashErr != nil {
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
			}
			newUser := userModel.UserModel{
				UserName: deriveUserName(claimSet.Email, claimSet.Name),
				Email:    strings.ToLower(claimSet.Email),
				Password: randomPass,
				GoogleID: &claimSet.Sub,
			}
			newUser.SetDefaultValues()
			if err := authRepo.CreateUser(db, &newUser); err != nil {
				return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
			}
			user = &newUser
		} else if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
		} else {
			if err := db.Model(user).Update("google_id", claimSet.Sub).Error; err != nil {
				log.Printf("[WARN] Gagal menautkan google_id: %v", err)
			}
		}
	} else if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	pair, err := issueTokenPair(db, c, user)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helpers.JsonError(c, fe.Code, fe.Message)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	setAuthCookies(c, pair)

	return helpers.JsonOK(c, "Login Google berhasil", fiber.Map{
		"access_token": pair.AccessToken,
		"expires_at":   pair.ExpiresAt,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

func deriveUserName(email, name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		if at := strings.Index(email, "@"); at > 0 {
			base = email[:at]
		} else {
			base = email
		}
	}
	base = strings.ToLower(strings.ReplaceAll(base, " ", "_"))
	if len(base) > 40 {
		base = base[:40]
	}
	// suffix waktu supaya hampir pasti unik (kolom tetap unique di DB)
	return base + "_" + time.Now().Format("0102150405")
}

/* ==========================
   LOGOUT
   POST /api/auth/logout
========================== */
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helpers.GetRawAccessToken(c)
	if tokenString == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token tidak ada")
	}

	// exp dari klaim dipakai sebagai masa simpan blacklist
	expiredAt := nowUTC().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}

	if err := authRepo.BlacklistToken(db, tokenString, expiredAt); err != nil {
		log.Printf("[WARN] Gagal blacklist token: %v", err)
	}

	userUUID := helpers.GetUserUUID(c)
	if err := authRepo.RevokeAllRefreshTokens(db, userUUID); err != nil {
		log.Printf("[WARN] Gagal revoke refresh token: %v", err)
	}

	// bersihkan cookie
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: time.Now().Add(-time.Hour), HTTPOnly: true, Path: "/api/auth"})

	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
   POST /api/auth/change-password
========================== */
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userUUID := helpers.GetUserUUID(c)

	var req struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByID(db, userUUID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	if !CheckPassword(user.Password, req.OldPassword) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	if err := db.Model(user).Update("password", hashed).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	// semua sesi lama tidak berlaku
	if err := authRepo.RevokeAllRefreshTokens(db, userUUID); err != nil {
		log.Printf("[WARN] Gagal revoke refresh token: %v", err)
	}

	return helpers.JsonOK(c, "Password berhasil diganti", nil)
}
