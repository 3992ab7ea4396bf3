package store

import (
	"database/sql"
	"fmt"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	// Postgres driver for the bootstrap command
	_ "github.com/lib/pq"
)

const schemaQuery = `
CREATE TABLE IF NOT EXISTS customers (
    id SERIAL PRIMARY KEY,
    email TEXT UNIQUE NOT NULL,
    full_name TEXT NOT NULL,
    bio TEXT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

var sampleCustomers = []Customer{
	{Email: "johndoe@gmail.com", FullName: "John Doe", Bio: "I am a software engineer"},
	{Email: "janedoe@gmail.com", FullName: "Jane Doe", Bio: "I am a data scientist"},
	{Email: "jimdoe@gmail.com", FullName: "Jim Doe", Bio: "I am a product manager"},
}

// Bootstrap connects straight to postgres using dsn, ensures the customers
// table exists and seeds it with sample data if empty. The data service
// itself is schema-less, so this is the one place which needs SQL.
func Bootstrap(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if err := SetupSchema(db); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}
	seeded, err := Seed(db)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if seeded {
		ancli.Okf("seeded database with %v sample customers\n", len(sampleCustomers))
	} else {
		ancli.Noticef("database already contains data, skipping seed\n")
	}
	return nil
}

// SetupSchema creates the customers table if it doesn't exist
func SetupSchema(db *sql.DB) error {
	_, err := db.Exec(schemaQuery)
	return err
}

// Seed inserts the sample customers, unless the table already holds data.
// Returns whether anything was inserted.
func Seed(db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	for _, c := range sampleCustomers {
		_, err := db.Exec(
			"INSERT INTO customers (email, full_name, bio) VALUES ($1, $2, $3)",
			c.Email, c.FullName, c.Bio,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert '%v': %w", c.Email, err)
		}
	}
	return true, nil
}
