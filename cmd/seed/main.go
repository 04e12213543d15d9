package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/yokoo-bicycle/config"
	"github.com/oksasatya/yokoo-bicycle/pkg/helpers"
)

// Seeds the bootstrap admin account (the first admin has to come from
// somewhere: elevation requires an existing admin) and a few demo bicycles,
// then prints a ready-to-use bearer token for the admin.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@yokoo.example"
	var id string
	err = db.QueryRow(`
		INSERT INTO accounts (email, name, role)
		VALUES ($1, $2, 'admin')
		ON CONFLICT (email) DO UPDATE SET role = 'admin', updated_at = now()
		RETURNING id
	`, email, "Yokoo Admin").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}
	fmt.Printf("seeded admin account: id=%s email=%s\n", id, email)

	bicycles := []struct {
		name  string
		desc  string
		price float64
	}{
		{"Yokoo Sprinter", "Lightweight road bike for city commutes", 349.99},
		{"Yokoo Trail X", "Hardtail mountain bike with front suspension", 479.00},
		{"Yokoo Cruiser", "Comfort cruiser with step-through frame", 289.50},
	}
	for _, b := range bicycles {
		if _, err := db.Exec(`
			INSERT INTO bicycles (name, description, price)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM bicycles WHERE name = $1)
		`, b.name, b.desc, b.price); err != nil {
			log.Fatalf("failed to seed bicycle %q: %v", b.name, err)
		}
	}
	fmt.Printf("seeded %d demo bicycles (existing ones kept)\n", len(bicycles))

	verifier := helpers.NewIDTokenVerifier(cfg.IDTokenSecret, cfg.IDTokenTTL)
	token, exp, err := verifier.Issue(email)
	if err != nil {
		log.Fatalf("failed to issue admin token: %v", err)
	}
	fmt.Printf("admin bearer token (valid until %s):\n%s\n", exp.Format("2006-01-02 15:04:05 MST"), token)
}
