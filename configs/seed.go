package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
)

// SeedAdmin creates the first admin account from env. Only admins can reach
// the admin-only surface, so a fresh deployment needs one seeded.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Name:     "Admin",
		Role:     "admin",
		Password: string(hash),
	}
	return db.Create(&admin).Error
}
