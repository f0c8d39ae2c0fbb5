package main

import (
	"fmt"
	"os"

	"github.com/micqie/FAS-music/app/config"
	"github.com/micqie/FAS-music/app/database"
	"github.com/micqie/FAS-music/app/models"
	"github.com/micqie/FAS-music/app/registration"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	config.InitDB()
	db := config.GetDB()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		fmt.Println("ADMIN_PASSWORD is required")
		os.Exit(1)
	}
	if err := registration.ValidatePassword(password); err != nil {
		fmt.Printf("Invalid admin password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Username:  env("ADMIN_USERNAME", "admin"),
		Password:  password,
		FirstName: env("ADMIN_FIRST_NAME", "Academy"),
		LastName:  env("ADMIN_LAST_NAME", "Admin"),
		Email:     env("ADMIN_EMAIL", "admin@fasmusic.local"),
	}

	if err := database.CreateAdminUser(db, user); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", user.Username, user.Email)
}
