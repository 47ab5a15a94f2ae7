// scripts/create_admin.go
// Seeds the first organization and its admin account.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lmoretti/workcrew-backend/config"
	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	orgName := envOr("SEED_ORG", "Default Org")
	username := envOr("SEED_ADMIN_USER", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")

	var org models.Organization
	err := database.DB.Where("name = ?", orgName).First(&org).Error
	if err == gorm.ErrRecordNotFound {
		org = models.Organization{Name: orgName}
		if err := database.DB.Create(&org).Error; err != nil {
			logrus.Fatalf("failed to create organization: %v", err)
		}
	} else if err != nil {
		logrus.Fatalf("failed to query organizations: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Println("admin user already exists:", username)
		os.Exit(0)
	} else if err != gorm.ErrRecordNotFound {
		logrus.Fatalf("failed to query users: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash password: %v", err)
	}

	u := models.User{
		OrgID:    org.ID,
		Username: username,
		Password: string(hashed),
		Role:     "admin",
		Name:     "Administrator",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		logrus.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("admin user created")
	fmt.Println("  org:     ", org.Name)
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(change it after first login)")
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
