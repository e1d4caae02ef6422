package configs

import (
	"log"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the two accounts the front-end ships with, so a fresh
// install can log in right away.
func SeedUsers() error {
	users := []struct {
		username, email, password, role string
	}{
		{"admin", "admin@pos.com", getEnv("ADMIN_PASSWORD", "admin123"), entity.RoleAdmin},
		{"cashier", "cashier@pos.com", getEnv("CASHIER_PASSWORD", "cashier123"), entity.RoleCashier},
	}

	for _, u := range users {
		var count int64
		db.Model(&entity.User{}).Where("username = ?", u.username).Count(&count)
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := entity.User{
			Username: u.username,
			Email:    u.email,
			Password: string(hash),
			Role:     u.role,
			Status:   entity.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Println("seeded user:", u.username)
	}
	return nil
}

// SeedMenus fills an empty catalog with a starter menu.
func SeedMenus() error {
	var count int64
	db.Model(&entity.Menu{}).Count(&count)
	if count > 0 {
		return nil
	}

	menus := []entity.Menu{
		{Name: "Gado-Gado", Description: "Vegetables with peanut sauce", Category: entity.CategoryFoods, Price: 15000, Status: entity.MenuStatusActive},
		{Name: "Nasi Goreng", Description: "Fried rice with egg", Category: entity.CategoryFoods, Price: 18000, Status: entity.MenuStatusActive},
		{Name: "Sate Ayam", Description: "Chicken satay, 10 skewers", Category: entity.CategoryFoods, Price: 25000, Status: entity.MenuStatusActive},
		{Name: "Iced Coffee", Description: "Cold brew with palm sugar", Category: entity.CategoryBeverages, Price: 12000, Status: entity.MenuStatusActive},
		{Name: "Es Teh", Description: "Iced sweet tea", Category: entity.CategoryBeverages, Price: 5000, Status: entity.MenuStatusActive},
		{Name: "Klepon", Description: "Glutinous rice cake", Category: entity.CategoryDesserts, Price: 8000, Status: entity.MenuStatusActive},
		{Name: "Es Campur", Description: "Mixed shaved ice", Category: entity.CategoryDesserts, Price: 10000, Status: entity.MenuStatusActive},
	}
	if err := db.Create(&menus).Error; err != nil {
		return err
	}
	log.Printf("seeded %d menu items", len(menus))
	return nil
}
