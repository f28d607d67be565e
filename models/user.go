package models

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Login        string `gorm:"size:120;uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);default:'STUDENT'" json:"role"`
	Money        int    `json:"money"`
}

// UserDisliked marks a food type a user prefers not to eat.
type UserDisliked struct {
	UserID uint     `gorm:"primaryKey" json:"user_id"`
	TypeID uint     `gorm:"primaryKey" json:"type_id"`
	User   User     `gorm:"foreignKey:UserID" json:"-"`
	Type   FoodType `gorm:"foreignKey:TypeID" json:"-"`
}

func (UserDisliked) TableName() string { return "user_disliked" }

type UserAllergy struct {
	UserID    uint    `gorm:"primaryKey" json:"user_id"`
	AllergyID uint    `gorm:"primaryKey" json:"allergy_id"`
	User      User    `gorm:"foreignKey:UserID" json:"-"`
	Allergy   Allergy `gorm:"foreignKey:AllergyID" json:"-"`
}

func (UserAllergy) TableName() string { return "user_allergies" }
