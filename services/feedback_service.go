package services

import (
	"errors"
	"strings"

	"cafeteria-backend/models"

	"gorm.io/gorm"
)

var (
	ErrEmptyFeedback = errors.New("feedback text is required")
	ErrNotFound      = errors.New("record not found")
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Create stores a review for a dish served in a given slot. Both the slot
// and the dish must exist.
func (s *FeedbackService) Create(userID, menuID, dishID uint, text string) (*models.Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyFeedback
	}

	var menu models.Menu
	if err := s.db.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var dish models.Dish
	if err := s.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	feedback := models.Feedback{Text: text, UserID: userID, MenuID: menuID, DishID: dishID}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}
