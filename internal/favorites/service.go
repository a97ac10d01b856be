package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mikebutak/Locastore/internal/db"
	"github.com/mikebutak/Locastore/internal/search"
)

var ErrNoUsername = errors.New("favorites: username must not be empty")

// Service persists one favorite set per username. The business
// payload is stored as submitted, keyed by its external place id.
type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

// Save appends a business to the user's favorite set. Saving the
// same place twice replaces the stored payload.
func (s *Service) Save(ctx context.Context, username string, b search.Summary) error {
	if username == "" {
		return ErrNoUsername
	}
	if b.PlaceID == "" {
		return errors.New("favorites: business is missing place_id")
	}

	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("favorites: marshal business: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorites (username, place_id, business)
		VALUES ($1, $2, $3)
		ON CONFLICT (username, place_id)
		DO UPDATE SET business = EXCLUDED.business
	`, username, b.PlaceID, payload)

	return err
}

// List returns the user's full favorite set in insertion order.
func (s *Service) List(ctx context.Context, username string) ([]search.Summary, error) {
	if username == "" {
		return nil, ErrNoUsername
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT business
		FROM favorites
		WHERE username = $1
		ORDER BY created_at
	`, username)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Summary, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var b search.Summary
		if err := json.Unmarshal(payload, &b); err != nil {
			return nil, fmt.Errorf("favorites: unmarshal business: %w", err)
		}
		out = append(out, b)
	}

	return out, rows.Err()
}
