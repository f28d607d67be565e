package services

import (
	"cafeteria-backend/models"

	"gorm.io/gorm"
)

type PurchaseView struct {
	ID      uint     `json:"id"`
	IsTaken bool     `json:"is_taken"`
	Menu    MenuView `json:"menu"`
}

type PurchaseService struct {
	db    *gorm.DB
	menus *MenuService
}

func NewPurchaseService(db *gorm.DB, menus *MenuService) *PurchaseService {
	return &PurchaseService{db: db, menus: menus}
}

// ForUser lists a user's paid menus, oldest first, with the bought slot
// resolved to its full menu view.
func (s *PurchaseService) ForUser(userID uint) ([]PurchaseView, error) {
	var purchases []models.PaidMenu
	err := s.db.Preload("Menu").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}

	views := make([]PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		menuView, err := s.menus.menuView(p.Menu)
		if err != nil {
			return nil, err
		}
		views = append(views, PurchaseView{ID: p.ID, IsTaken: p.IsTaken, Menu: menuView})
	}
	return views, nil
}
