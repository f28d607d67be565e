package services

import (
	"time"

	"cafeteria-backend/models"

	"gorm.io/gorm"
)

type DishView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	UnitCode string  `json:"unit_code"`
}

type MenuView struct {
	ID       uint       `json:"id"`
	Date     string     `json:"date"`
	Type     string     `json:"type"`
	TypeCode string     `json:"type_code"`
	Dishes   []DishView `json:"dishes"`
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// MenusForDate returns the slots for one calendar date, ordered by id, each
// with its dish list resolved and sorted by name.
func (s *MenuService) MenusForDate(day time.Time) ([]MenuView, error) {
	day = DateOnly(day)

	var menus []models.Menu
	if err := s.db.Where("date = ?", day).Order("id asc").Find(&menus).Error; err != nil {
		return nil, err
	}

	views := make([]MenuView, 0, len(menus))
	for _, m := range menus {
		view, err := s.menuView(m)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// MenusForToday is MenusForDate with the current date.
func (s *MenuService) MenusForToday() ([]MenuView, error) {
	return s.MenusForDate(time.Now().UTC())
}

func (s *MenuService) menuView(m models.Menu) (MenuView, error) {
	var dishes []models.Dish
	err := s.db.
		Joins("JOIN menu_dishes ON menu_dishes.dish_id = dishes.id").
		Where("menu_dishes.menu_id = ?", m.ID).
		Order("dishes.name asc").
		Find(&dishes).Error
	if err != nil {
		return MenuView{}, err
	}

	dishViews := make([]DishView, 0, len(dishes))
	for _, d := range dishes {
		dishViews = append(dishViews, DishView{
			ID:       d.ID,
			Name:     d.Name,
			Amount:   d.Amount,
			Unit:     d.Unit.Label(),
			UnitCode: string(d.Unit),
		})
	}

	return MenuView{
		ID:       m.ID,
		Date:     m.Date.Format("2006-01-02"),
		Type:     m.Type.Label(),
		TypeCode: string(m.Type),
		Dishes:   dishViews,
	}, nil
}

// DateOnly truncates a timestamp to its UTC calendar date. Menu dates are
// always stored in this form so equality lookups work.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
