package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"rentacar/config"
)

// RunMigrations ensures all required tables exist and the admin account is seeded.
// Note: In production, use a proper migration tool
func RunMigrations(db *sql.DB, cfg *config.Config) error {
	log.Println("Checking database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS vehicles (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			price         TEXT NOT NULL,
			description   TEXT NOT NULL DEFAULT '',
			image         TEXT NOT NULL DEFAULT '',
			gallery       TEXT[] NOT NULL DEFAULT '{}',
			features      TEXT[] NOT NULL DEFAULT '{}',
			rating        REAL NOT NULL DEFAULT 5,
			is_popular    BOOLEAN NOT NULL DEFAULT FALSE,
			transmission  TEXT NOT NULL DEFAULT '',
			fuel          TEXT NOT NULL DEFAULT '',
			power         TEXT NOT NULL DEFAULT '',
			seats         INTEGER NOT NULL DEFAULT 5,
			consumption   TEXT NOT NULL DEFAULT '',
			luggage       TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id               TEXT PRIMARY KEY,
			vehicle_id       TEXT NOT NULL,
			vehicle_name     TEXT NOT NULL,
			start_date       TEXT NOT NULL,
			end_date         TEXT NOT NULL,
			license_number   TEXT NOT NULL,
			pickup_location  TEXT NOT NULL,
			dropoff_location TEXT NOT NULL,
			status           TEXT NOT NULL DEFAULT 'en attente',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := seedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	log.Println("Database schema ready")
	return nil
}

// seedAdmin creates the configured admin account if no row exists for its email.
func seedAdmin(db *sql.DB, email, password string) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM admin_users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO admin_users (id, email, password_hash)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), email, string(hash))
	if err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", email)
	return nil
}
