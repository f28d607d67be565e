package models

import "time"

type FoodType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex" json:"name"`
}

type Product struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Unit   Unit    `gorm:"type:varchar(20)" json:"unit"`
	Amount float64 `json:"amount"`
}

// ProductType classifies a product under a food type.
type ProductType struct {
	ProductID uint     `gorm:"primaryKey" json:"product_id"`
	TypeID    uint     `gorm:"primaryKey" json:"type_id"`
	Product   Product  `gorm:"foreignKey:ProductID" json:"-"`
	Type      FoodType `gorm:"foreignKey:TypeID" json:"-"`
}

func (ProductType) TableName() string { return "product_types" }

type Allergy struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

type AllergyProducts struct {
	ProductID uint    `gorm:"primaryKey" json:"product_id"`
	AllergyID uint    `gorm:"primaryKey" json:"allergy_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`
	Allergy   Allergy `gorm:"foreignKey:AllergyID" json:"-"`
}

func (AllergyProducts) TableName() string { return "allergy_products" }

// ProductRequest is a restock request raised by kitchen staff.
type ProductRequest struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProductID uint       `json:"product_id"`
	Product   Product    `gorm:"foreignKey:ProductID" json:"product"`
	Amount    float64    `json:"amount"`
	IsAgreed  bool       `gorm:"default:false" json:"is_agreed"`
	Created   time.Time  `gorm:"type:date" json:"created"`
	Fulfilled *time.Time `gorm:"type:date" json:"fulfilled"`
}
