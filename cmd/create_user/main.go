// Creates a login user in the lead store. Usage:
//
//	go run ./cmd/create_user -email ops@example.com -password secret -name "Ops"
package main

import (
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"leadflow/internal/config"
	"leadflow/internal/models"
	"leadflow/internal/repositories"
)

func main() {
	email := flag.String("email", "", "user email")
	password := flag.String("password", "", "user password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.LoadConfig()
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open lead store: ", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	users := repositories.NewUserRepository(db)
	user := &models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := users.Create(user); err != nil {
		log.Fatal("failed to create user: ", err)
	}
	log.Printf("created user %d (%s)", user.ID, user.Email)
}
