package services

import (
	"cafeteria-backend/models"

	"gorm.io/gorm"
)

type ProfileView struct {
	ID        uint     `json:"id"`
	Login     string   `json:"login"`
	Role      string   `json:"role"`
	RoleCode  string   `json:"role_code"`
	Money     int      `json:"money"`
	Disliked  []string `json:"disliked"`
	Allergies []string `json:"allergies"`
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Profile resolves a user together with their disliked food types and
// allergies.
func (s *ProfileService) Profile(userID uint) (*ProfileView, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	// kept non-nil so empty sets serialize as [] (matching the menu views)
	disliked := []string{}
	err := s.db.Model(&models.FoodType{}).
		Joins("JOIN user_disliked ON user_disliked.type_id = food_types.id").
		Where("user_disliked.user_id = ?", userID).
		Order("food_types.name asc").
		Pluck("food_types.name", &disliked).Error
	if err != nil {
		return nil, err
	}

	allergies := []string{}
	err = s.db.Model(&models.Allergy{}).
		Joins("JOIN user_allergies ON user_allergies.allergy_id = allergies.id").
		Where("user_allergies.user_id = ?", userID).
		Order("allergies.name asc").
		Pluck("allergies.name", &allergies).Error
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		ID:        user.ID,
		Login:     user.Login,
		Role:      user.Role.Label(),
		RoleCode:  string(user.Role),
		Money:     user.Money,
		Disliked:  disliked,
		Allergies: allergies,
	}, nil
}
