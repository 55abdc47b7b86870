package sqlstore

import (
	"context"
	"fmt"
)

// demo accounts for local manual testing.
var demoClients = []struct {
	id         int64
	lastName   string
	genderMale bool
	cardNumber string
	pin        string
	cents      int64
}{
	{1, "Ivanov", true, "1111", "2222", 10000},
	{2, "Petrova", false, "3333", "4444", 250},
}

// SeedDemo inserts the demo clients and cards unless they already exist.
// Intended for local development and manual testing only.
func (s *SQLStore) SeedDemo(ctx context.Context) error {
	for _, c := range demoClients {
		exists, err := s.Exists(ctx, c.cardNumber)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = s.db.ExecContext(ctx,
			`INSERT INTO clients (id, last_name, gender_male) VALUES ($1, $2, $3)`,
			c.id, c.lastName, c.genderMale)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		_, err = s.db.ExecContext(ctx,
			`INSERT INTO cards (card_number, pin, active, balance_cents, client_id)
             VALUES ($1, $2, TRUE, $3, $4)`,
			c.cardNumber, c.pin, c.cents, c.id)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}
