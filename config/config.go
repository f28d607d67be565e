package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"cafeteria-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	JWTExpiresMinutes int
	SeedStart         time.Time
	SeedDays          int
}

// Load reads the environment (optionally from a .env file) and applies the
// documented defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return Config{
		Port:              getenv("PORT", "5000"),
		DatabaseURL:       getenv("DATABASE_URL", "postgres://app:app@db:5432/app?sslmode=disable"),
		JWTSecret:         getenv("JWT_SECRET", "change-me"),
		JWTExpiresMinutes: getenvInt("JWT_EXPIRES_MINUTES", 60),
		SeedStart:         getenvDate("SEED_START", time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)),
		SeedDays:          getenvInt("SEED_DAYS", 10),
	}
}

// InitDB opens the shared database handle and migrates the schema.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema. Parent tables go first so the join tables can
// attach their foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodType{},
		&models.Product{},
		&models.ProductType{},
		&models.Allergy{},
		&models.AllergyProducts{},
		&models.UserDisliked{},
		&models.UserAllergy{},
		&models.Dish{},
		&models.Compound{},
		&models.Menu{},
		&models.MenuDishes{},
		&models.PaidMenu{},
		&models.Feedback{},
		&models.ProductRequest{},
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getenvDate(key string, fallback time.Time) time.Time {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback.Format("2006-01-02"))
		return fallback
	}
	return d
}
