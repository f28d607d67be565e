package models

// Enumerations are stored by their stable code; the Label methods give the
// human-readable form used in API responses.

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
	RoleCook    Role = "COOK"
)

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleCook:
		return "cook"
	default:
		return "student"
	}
}

type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
)

func (m MealType) Label() string {
	if m == MealLunch {
		return "lunch"
	}
	return "breakfast"
}

type Unit string

const (
	UnitLiters    Unit = "LITERS"
	UnitGrams     Unit = "GRAMS"
	UnitKilograms Unit = "KILOGRAMS"
	UnitPieces    Unit = "UNITS"
)

func (u Unit) Label() string {
	switch u {
	case UnitLiters:
		return "l."
	case UnitKilograms:
		return "kg."
	case UnitPieces:
		return "pcs."
	default:
		return "g."
	}
}
