package Models

import (
	"errors"
	"strings"

	"github.com/rdclab2001/rdc-backend/Utils/Token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Admin struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Email    string `gorm:"unique" json:"email"`
	Password string `json:"-"`
}

func (Admin) TableName() string {
	return "admin"
}

func GetAdminByEmail(email string) (Admin, error) {
	var admin Admin
	if err := DB.Where("email = ?", email).Take(&admin).Error; err != nil {
		return admin, errors.New("admin not found")
	}
	return admin, nil
}

// SeedAdmin inserts the configured admin credential on first boot. An
// existing row for the same email is never touched, so a reset password
// survives restarts.
func SeedAdmin(email, password string) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	DB.Create(&Admin{Email: email, Password: string(hashed)})
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(email string, password string) (string, error) {

	admin, err := GetAdminByEmail(email)
	if err != nil {
		return "", err
	}

	if err := VerifyPassword(password, admin.Password); err != nil {
		return "", err
	}

	token, err := Token.GenerateToken(admin.ID)
	if err != nil {
		return "", err
	}

	return token, nil
}

// UpdateAdminPassword stores a bcrypt hash of the new password. The plaintext
// never reaches the database.
func UpdateAdminPassword(email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	result := DB.Model(&Admin{}).Where("email = ?", email).Update("password", string(hashed))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
