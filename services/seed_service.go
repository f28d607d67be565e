package services

import (
	"time"

	"cafeteria-backend/models"
	"cafeteria-backend/utils"

	"gorm.io/gorm"
)

// SeedService rebuilds the whole fixture dataset: catalogs, users, dishes,
// a rotating menu for a run of days, purchases, feedback and restock
// requests. The load is a full replace and runs in one transaction, so a
// failed seed leaves nothing half-applied and re-running it is idempotent.
type SeedService struct {
	db *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

type SeedResult struct {
	Start string `json:"start"`
	Days  int    `json:"days"`
}

func (s *SeedService) Seed(start time.Time, days int) (SeedResult, error) {
	start = DateOnly(start)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := clearAll(tx); err != nil {
			return err
		}

		foodTypes, err := seedFoodTypes(tx)
		if err != nil {
			return err
		}
		products, err := seedProducts(tx, foodTypes)
		if err != nil {
			return err
		}
		allergies, err := seedAllergies(tx, products)
		if err != nil {
			return err
		}
		users, err := seedUsers(tx, foodTypes, allergies)
		if err != nil {
			return err
		}
		dishes, err := seedDishes(tx, products)
		if err != nil {
			return err
		}
		menus, err := seedMenus(tx, dishes, start, days)
		if err != nil {
			return err
		}
		if err := seedPurchases(tx, users, menus, days); err != nil {
			return err
		}
		if err := seedFeedback(tx, users, menus, dishes); err != nil {
			return err
		}
		return seedProductRequests(tx, products, start)
	})
	if err != nil {
		return SeedResult{}, err
	}

	return SeedResult{Start: start.Format("2006-01-02"), Days: days}, nil
}

// clearAll empties every table, children before parents.
func clearAll(tx *gorm.DB) error {
	tables := []interface{}{
		&models.Feedback{},
		&models.PaidMenu{},
		&models.MenuDishes{},
		&models.Menu{},
		&models.Compound{},
		&models.Dish{},
		&models.ProductRequest{},
		&models.AllergyProducts{},
		&models.UserAllergy{},
		&models.UserDisliked{},
		&models.ProductType{},
		&models.Allergy{},
		&models.Product{},
		&models.FoodType{},
		&models.User{},
	}
	for _, table := range tables {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedFoodTypes(tx *gorm.DB) (map[string]models.FoodType, error) {
	names := []string{"Dairy", "Meat", "Vegetables", "Fruits", "Grains", "Fish", "Bakery", "Drinks"}

	byName := make(map[string]models.FoodType, len(names))
	for _, name := range names {
		ft := models.FoodType{Name: name}
		if err := tx.Create(&ft).Error; err != nil {
			return nil, err
		}
		byName[name] = ft
	}
	return byName, nil
}

func seedProducts(tx *gorm.DB, foodTypes map[string]models.FoodType) (map[string]models.Product, error) {
	catalog := []models.Product{
		{Name: "Milk", Unit: models.UnitLiters, Amount: 50},
		{Name: "Kefir", Unit: models.UnitLiters, Amount: 30},
		{Name: "Cheese", Unit: models.UnitKilograms, Amount: 10},
		{Name: "Eggs", Unit: models.UnitPieces, Amount: 200},
		{Name: "Flour", Unit: models.UnitKilograms, Amount: 25},
		{Name: "Rice", Unit: models.UnitKilograms, Amount: 20},
		{Name: "Buckwheat", Unit: models.UnitKilograms, Amount: 20},
		{Name: "Chicken", Unit: models.UnitKilograms, Amount: 35},
		{Name: "Beef", Unit: models.UnitKilograms, Amount: 25},
		{Name: "Fish (fillet)", Unit: models.UnitKilograms, Amount: 18},
		{Name: "Potatoes", Unit: models.UnitKilograms, Amount: 60},
		{Name: "Carrots", Unit: models.UnitKilograms, Amount: 20},
		{Name: "Onions", Unit: models.UnitKilograms, Amount: 20},
		{Name: "Tomatoes", Unit: models.UnitKilograms, Amount: 15},
		{Name: "Cucumbers", Unit: models.UnitKilograms, Amount: 15},
		{Name: "Apples", Unit: models.UnitKilograms, Amount: 25},
		{Name: "Bananas", Unit: models.UnitKilograms, Amount: 20},
		{Name: "Tea", Unit: models.UnitGrams, Amount: 1000},
		{Name: "Sugar", Unit: models.UnitKilograms, Amount: 15},
		{Name: "Salt", Unit: models.UnitKilograms, Amount: 5},
		{Name: "Butter", Unit: models.UnitKilograms, Amount: 8},
		{Name: "Vegetable oil", Unit: models.UnitLiters, Amount: 10},
		{Name: "Bread", Unit: models.UnitPieces, Amount: 80},
	}

	byName := make(map[string]models.Product, len(catalog))
	for i := range catalog {
		if err := tx.Create(&catalog[i]).Error; err != nil {
			return nil, err
		}
		byName[catalog[i].Name] = catalog[i]
	}

	classification := map[string][]string{
		"Milk":          {"Dairy", "Drinks"},
		"Kefir":         {"Dairy", "Drinks"},
		"Cheese":        {"Dairy"},
		"Eggs":          {"Dairy"},
		"Flour":         {"Grains", "Bakery"},
		"Rice":          {"Grains"},
		"Buckwheat":     {"Grains"},
		"Chicken":       {"Meat"},
		"Beef":          {"Meat"},
		"Fish (fillet)": {"Fish"},
		"Potatoes":      {"Vegetables"},
		"Carrots":       {"Vegetables"},
		"Onions":        {"Vegetables"},
		"Tomatoes":      {"Vegetables"},
		"Cucumbers":     {"Vegetables"},
		"Apples":        {"Fruits"},
		"Bananas":       {"Fruits"},
		"Tea":           {"Drinks"},
		"Sugar":         {"Grains"},
		"Salt":          {"Grains"},
		"Butter":        {"Dairy"},
		"Vegetable oil": {"Grains"},
		"Bread":         {"Bakery"},
	}
	for productName, typeNames := range classification {
		for _, typeName := range typeNames {
			link := models.ProductType{
				ProductID: byName[productName].ID,
				TypeID:    foodTypes[typeName].ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return nil, err
			}
		}
	}

	return byName, nil
}

func seedAllergies(tx *gorm.DB, products map[string]models.Product) (map[string]models.Allergy, error) {
	catalog := []models.Allergy{
		{Name: "Lactose", Description: "Intolerance to dairy products"},
		{Name: "Gluten", Description: "Intolerance to wheat, flour and bread"},
		{Name: "Fish", Description: "Allergy to fish"},
		{Name: "Eggs", Description: "Allergy to eggs"},
	}

	byName := make(map[string]models.Allergy, len(catalog))
	for i := range catalog {
		if err := tx.Create(&catalog[i]).Error; err != nil {
			return nil, err
		}
		byName[catalog[i].Name] = catalog[i]
	}

	links := []struct{ product, allergy string }{
		{"Milk", "Lactose"},
		{"Kefir", "Lactose"},
		{"Cheese", "Lactose"},
		{"Flour", "Gluten"},
		{"Bread", "Gluten"},
		{"Fish (fillet)", "Fish"},
		{"Eggs", "Eggs"},
	}
	for _, l := range links {
		link := models.AllergyProducts{
			ProductID: products[l.product].ID,
			AllergyID: byName[l.allergy].ID,
		}
		if err := tx.Create(&link).Error; err != nil {
			return nil, err
		}
	}

	return byName, nil
}

func seedUsers(tx *gorm.DB, foodTypes map[string]models.FoodType, allergies map[string]models.Allergy) (map[string]models.User, error) {
	fixtures := []struct {
		login    string
		password string
		role     models.Role
		money    int
	}{
		{"admin@example.com", "hash_admin", models.RoleAdmin, 0},
		{"cook@example.com", "hash_cook", models.RoleCook, 0},
		{"student1@example.com", "hash_s1", models.RoleStudent, 3000},
		{"student2@example.com", "hash_s2", models.RoleStudent, 1500},
		{"student3@example.com", "hash_s3", models.RoleStudent, 500},
	}

	byLogin := make(map[string]models.User, len(fixtures))
	for _, f := range fixtures {
		hashed, err := utils.HashPassword(f.password)
		if err != nil {
			return nil, err
		}
		user := models.User{Login: f.login, PasswordHash: hashed, Role: f.role, Money: f.money}
		if err := tx.Create(&user).Error; err != nil {
			return nil, err
		}
		byLogin[f.login] = user
	}

	disliked := []struct{ login, foodType string }{
		{"student1@example.com", "Fish"},
		{"student2@example.com", "Dairy"},
		{"student3@example.com", "Vegetables"},
	}
	for _, d := range disliked {
		link := models.UserDisliked{UserID: byLogin[d.login].ID, TypeID: foodTypes[d.foodType].ID}
		if err := tx.Create(&link).Error; err != nil {
			return nil, err
		}
	}

	userAllergies := []struct{ login, allergy string }{
		{"student2@example.com", "Lactose"},
		{"student3@example.com", "Gluten"},
	}
	for _, a := range userAllergies {
		link := models.UserAllergy{UserID: byLogin[a.login].ID, AllergyID: allergies[a.allergy].ID}
		if err := tx.Create(&link).Error; err != nil {
			return nil, err
		}
	}

	return byLogin, nil
}

func seedDishes(tx *gorm.DB, products map[string]models.Product) (map[string]models.Dish, error) {
	catalog := []models.Dish{
		{Name: "Oat porridge with milk", Amount: 250, Unit: models.UnitGrams},
		{Name: "Omelette", Amount: 180, Unit: models.UnitGrams},
		{Name: "Cheese sandwich", Amount: 120, Unit: models.UnitGrams},
		{Name: "Sweet tea", Amount: 250, Unit: models.UnitGrams},
		{Name: "Chicken soup", Amount: 300, Unit: models.UnitGrams},
		{Name: "Buckwheat with chicken", Amount: 320, Unit: models.UnitGrams},
		{Name: "Rice with beef", Amount: 320, Unit: models.UnitGrams},
		{Name: "Fish with potatoes", Amount: 320, Unit: models.UnitGrams},
		{Name: "Vegetable salad", Amount: 180, Unit: models.UnitGrams},
		{Name: "Fruit (apple/banana)", Amount: 200, Unit: models.UnitGrams},
	}

	byName := make(map[string]models.Dish, len(catalog))
	for i := range catalog {
		if err := tx.Create(&catalog[i]).Error; err != nil {
			return nil, err
		}
		byName[catalog[i].Name] = catalog[i]
	}

	recipes := []struct {
		dish    string
		product string
		amount  float64
	}{
		{"Oat porridge with milk", "Milk", 0.25},
		{"Oat porridge with milk", "Sugar", 0.01},
		{"Omelette", "Eggs", 2},
		{"Omelette", "Milk", 0.05},
		{"Cheese sandwich", "Bread", 1},
		{"Cheese sandwich", "Cheese", 0.03},
		{"Sweet tea", "Tea", 2},
		{"Sweet tea", "Sugar", 0.01},

		{"Chicken soup", "Chicken", 0.12},
		{"Chicken soup", "Potatoes", 0.10},
		{"Chicken soup", "Carrots", 0.03},
		{"Chicken soup", "Onions", 0.02},
		{"Buckwheat with chicken", "Buckwheat", 0.10},
		{"Buckwheat with chicken", "Chicken", 0.12},
		{"Rice with beef", "Rice", 0.10},
		{"Rice with beef", "Beef", 0.12},
		{"Fish with potatoes", "Fish (fillet)", 0.14},
		{"Fish with potatoes", "Potatoes", 0.15},
		{"Vegetable salad", "Tomatoes", 0.06},
		{"Vegetable salad", "Cucumbers", 0.06},
		{"Vegetable salad", "Vegetable oil", 0.01},
		{"Fruit (apple/banana)", "Apples", 0.10},
		{"Fruit (apple/banana)", "Bananas", 0.10},
	}
	for _, r := range recipes {
		line := models.Compound{
			DishID:    byName[r.dish].ID,
			ProductID: products[r.product].ID,
			Amount:    r.amount,
		}
		if err := tx.Create(&line).Error; err != nil {
			return nil, err
		}
	}

	return byName, nil
}

// Breakfast and lunch dish templates, cycled by day index. The fish lunch
// comes up every third day.
var breakfastSets = [][]string{
	{"Oat porridge with milk", "Sweet tea", "Fruit (apple/banana)"},
	{"Omelette", "Sweet tea", "Cheese sandwich"},
}

var lunchSets = [][]string{
	{"Chicken soup", "Buckwheat with chicken", "Vegetable salad"},
	{"Chicken soup", "Rice with beef", "Vegetable salad"},
	{"Chicken soup", "Fish with potatoes", "Vegetable salad"},
}

// seedMenus creates a breakfast and a lunch slot for each day and attaches
// the template dishes. The returned slice is ordered day by day, breakfast
// before lunch.
func seedMenus(tx *gorm.DB, dishes map[string]models.Dish, start time.Time, days int) ([]models.Menu, error) {
	menus := make([]models.Menu, 0, days*2)

	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)

		breakfast := models.Menu{Date: day, Type: models.MealBreakfast}
		if err := tx.Create(&breakfast).Error; err != nil {
			return nil, err
		}
		lunch := models.Menu{Date: day, Type: models.MealLunch}
		if err := tx.Create(&lunch).Error; err != nil {
			return nil, err
		}
		menus = append(menus, breakfast, lunch)

		for _, name := range breakfastSets[i%len(breakfastSets)] {
			link := models.MenuDishes{MenuID: breakfast.ID, DishID: dishes[name].ID}
			if err := tx.Create(&link).Error; err != nil {
				return nil, err
			}
		}
		for _, name := range lunchSets[i%len(lunchSets)] {
			link := models.MenuDishes{MenuID: lunch.ID, DishID: dishes[name].ID}
			if err := tx.Create(&link).Error; err != nil {
				return nil, err
			}
		}
	}

	return menus, nil
}

// seedPurchases: student1 buys every breakfast and collects every other one,
// student2 buys every lunch and collects it unless the day index is a
// multiple of 3, student3 buys both meals for the first three days and never
// collects.
func seedPurchases(tx *gorm.DB, users map[string]models.User, menus []models.Menu, days int) error {
	for i := 0; i < days; i++ {
		breakfast := menus[i*2]
		lunch := menus[i*2+1]

		rows := []models.PaidMenu{
			{UserID: users["student1@example.com"].ID, MenuID: breakfast.ID, IsTaken: i%2 == 0},
			{UserID: users["student2@example.com"].ID, MenuID: lunch.ID, IsTaken: i%3 != 0},
		}
		if i < 3 {
			rows = append(rows,
				models.PaidMenu{UserID: users["student3@example.com"].ID, MenuID: breakfast.ID, IsTaken: false},
				models.PaidMenu{UserID: users["student3@example.com"].ID, MenuID: lunch.ID, IsTaken: false},
			)
		}
		for j := range rows {
			if err := tx.Create(&rows[j]).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedFeedback(tx *gorm.DB, users map[string]models.User, menus []models.Menu, dishes map[string]models.Dish) error {
	// menus is already ordered (date, breakfast-before-lunch), so plain
	// indexing picks the early slots. Rows whose slot falls outside a short
	// seed window are skipped.
	fixtures := []struct {
		slot  int
		login string
		dish  string
		text  string
	}{
		{0, "student1@example.com", "Oat porridge with milk", "The porridge is tasty, but could use less sugar."},
		{3, "student2@example.com", "Chicken soup", "The soup is great, the portion is big enough."},
		{5, "student3@example.com", "Vegetable salad", "The salad is fresh, but needs more oil."},
	}

	for _, f := range fixtures {
		if f.slot >= len(menus) {
			continue
		}
		row := models.Feedback{
			Text:   f.text,
			UserID: users[f.login].ID,
			MenuID: menus[f.slot].ID,
			DishID: dishes[f.dish].ID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedProductRequests(tx *gorm.DB, products map[string]models.Product, start time.Time) error {
	day := func(offset int) time.Time { return start.AddDate(0, 0, offset) }
	ptr := func(t time.Time) *time.Time { return &t }

	rows := []models.ProductRequest{
		{ProductID: products["Fish (fillet)"].ID, Amount: 5, IsAgreed: false, Created: day(1)},
		{ProductID: products["Apples"].ID, Amount: 10, IsAgreed: true, Created: day(2), Fulfilled: ptr(day(4))},
		{ProductID: products["Bread"].ID, Amount: 30, IsAgreed: true, Created: day(0), Fulfilled: ptr(day(1))},
	}
	for i := range rows {
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
