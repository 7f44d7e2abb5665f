package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/yogawp/todolist-api/config"
	"github.com/yogawp/todolist-api/pkg/helpers"
)

// Seeds an admin, a regular user and a handful of todos for local dev.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	adminID := upsertUser(db, "Admin", "admin@example.com", "password123", "admin")
	userID := upsertUser(db, "Demo User", "demo@example.com", "password123", "user")
	fmt.Printf("seeded users: admin=%s user=%s (password: password123)\n", adminID, userID)

	for i := 1; i <= 5; i++ {
		title := fmt.Sprintf("Sample todo #%d", i)
		if _, err := db.Exec(`
			INSERT INTO todos (title, completed, user_id)
			SELECT $1, false, $2
			WHERE NOT EXISTS (SELECT 1 FROM todos WHERE title = $1 AND user_id = $2)
		`, title, userID); err != nil {
			log.Fatalf("failed to seed todo: %v", err)
		}
	}
	fmt.Println("seeded todos for demo user")
}

func upsertUser(db *sql.DB, name, email, password, role string) string {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
		RETURNING id
	`, name, email, hash, role).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	return id
}
