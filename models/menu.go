package models

import "time"

// Menu is one serving slot: a calendar date plus breakfast or lunch.
// (date, type) is not unique-constrained; the seed keeps it one per slot.
type Menu struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"type:date;index" json:"date"`
	Type MealType  `gorm:"type:varchar(20)" json:"type"`
}

type MenuDishes struct {
	MenuID uint `gorm:"primaryKey" json:"menu_id"`
	DishID uint `gorm:"primaryKey" json:"dish_id"`
	Menu   Menu `gorm:"foreignKey:MenuID" json:"-"`
	Dish   Dish `gorm:"foreignKey:DishID" json:"-"`
}

func (MenuDishes) TableName() string { return "menu_dishes" }

// PaidMenu records that a user bought access to a slot; is_taken flips when
// the meal is actually collected.
type PaidMenu struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `json:"user_id"`
	MenuID  uint `json:"menu_id"`
	User    User `gorm:"foreignKey:UserID" json:"-"`
	Menu    Menu `gorm:"foreignKey:MenuID" json:"-"`
	IsTaken bool `gorm:"default:false" json:"is_taken"`
}

type Feedback struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"size:500" json:"text"`
	UserID uint   `json:"user_id"`
	MenuID uint   `json:"menu_id"`
	DishID uint   `json:"dish_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Menu   Menu   `gorm:"foreignKey:MenuID" json:"-"`
	Dish   Dish   `gorm:"foreignKey:DishID" json:"-"`
}

func (Feedback) TableName() string { return "feedback" }
