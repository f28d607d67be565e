package services

import (
	"errors"
	"strings"

	"cafeteria-backend/models"
	"cafeteria-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrEmptyCredentials   = errors.New("login and password are required")
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// NormalizeLogin applies the canonical login form: trimmed, lowercase.
func NormalizeLogin(login string) string {
	return strings.ToLower(strings.TrimSpace(login))
}

// Register creates a STUDENT user with a zero balance and returns its id.
func (s *AuthService) Register(login, password string) (uint, error) {
	login = NormalizeLogin(login)
	if login == "" || password == "" {
		return 0, ErrEmptyCredentials
	}

	var existing models.User
	err := s.db.Where("login = ?", login).First(&existing).Error
	if err == nil {
		return 0, ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Login:        login,
		PasswordHash: hashed,
		Role:         models.RoleStudent,
		Money:        0,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *AuthService) Authenticate(login, password string) (*models.User, error) {
	login = NormalizeLogin(login)

	var user models.User
	if err := s.db.Where("login = ?", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
