package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"-"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				messages = append(messages, fieldErr.Field()+" wajib diisi.")
			case "email":
				messages = append(messages, "Format email tidak valid.")
			case "min":
				messages = append(messages, fieldErr.Field()+" harus minimal "+fieldErr.Param()+" karakter.")
			case "max":
				messages = append(messages, fieldErr.Field()+" harus kurang dari "+fieldErr.Param()+" karakter.")
			default:
				messages = append(messages, fieldErr.Field()+" tidak valid.")
			}
		}
		return errors.New(strings.Join(messages, " "))
	}

	return err
}
