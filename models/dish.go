package models

type Dish struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Amount float64 `json:"amount"`
	Unit   Unit    `gorm:"type:varchar(20)" json:"unit"`
}

// Compound is one recipe line: how much of a product one serving of a dish
// consumes.
type Compound struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	DishID    uint    `json:"dish_id"`
	ProductID uint    `json:"product_id"`
	Dish      Dish    `gorm:"foreignKey:DishID" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Amount    float64 `json:"amount"`
}
