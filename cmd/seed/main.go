// seed inserts demo accounts into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/askarbekov/account-service/internal/auth"
	"github.com/askarbekov/account-service/internal/email"
	"github.com/askarbekov/account-service/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
)

const seedPassword = "Password1!"

var accounts = []struct {
	email string
	name  string
}{
	{"ann@test.local", "Ann"},
	{"bob@test.local", "Bob"},
	{"carol@test.local", "Carol"},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	// All seed accounts share one password, so hash once.
	hash, err := auth.HashPassword(seedPassword, 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var inserted, skipped int
	for _, a := range accounts {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
			ON CONFLICT (email) DO NOTHING
			RETURNING id`,
			email.Normalize(a.email), a.name, hash,
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			// No row returned: the account already existed.
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("insert %s: %v", a.email, err)
		}
		inserted++
		fmt.Printf("  %-18s %s\n", a.email, id)
	}

	fmt.Println()
	fmt.Printf("Seed complete: %d created, %d already existing\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in as a seed account:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/users/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"ann@test.local\",\"password\":\"%s\"}'\n", seedPassword)
	fmt.Println()
	fmt.Println("    # → {\"status\":\"ok\",\"data\":{\"accessToken\":\"eyJ...\",...}}")
	fmt.Println()
	fmt.Println("  Step 2 — fetch the profile:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/me -H \"Authorization: Bearer $JWT\"")
	fmt.Println()
	fmt.Println("  Step 3 — or sign up a fresh account:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/users/signup \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"you@example.com\",\"password\":\"secret\",\"name\":\"You\"}'\n")
}
