package account

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mikebutak/Locastore/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmptyUsername = errors.New("username must not be empty")
)

// Usernames and passwords are matched case-sensitively; the login
// hint messages promise exactly that.
type Service struct {
	db *db.DB
}

func NewService(db *db.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
) (string, error) {

	if username == "" {
		return "", ErrEmptyUsername
	}

	// 1. Reject taken usernames up front
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1
		)
	`, username).Scan(&exists)

	if err != nil {
		return "", err
	}

	if exists {
		return "", ErrUsernameTaken
	}

	// 2. Hash password
	hash, version, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	// 3. Create user
	var userID uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id
	`, username).Scan(&userID)

	if err != nil {
		// Concurrent signup can still trip the unique constraint.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	// 4. Insert credentials
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (user_id, password_hash, hash_version)
		VALUES ($1, $2, $3)
	`, userID, hash, version)

	if err != nil {
		return "", err
	}

	return userID.String(), nil
}

// Verify checks a username/password pair and reports the outcome as
// a tagged result. Store errors are folded into OtherError so the
// caller has a single switch to write.
func (s *Service) Verify(
	ctx context.Context,
	username string,
	password string,
) VerifyResult {

	var passwordHash string

	err := s.db.QueryRowContext(ctx, `
		SELECT c.password_hash
		FROM users u
		JOIN credentials c ON c.user_id = u.id
		WHERE u.username = $1
	`, username).Scan(&passwordHash)

	if err == sql.ErrNoRows {
		return VerifyResult{Status: UnknownUser}
	}
	if err != nil {
		return VerifyResult{Status: OtherError, Message: err.Error()}
	}

	if err := VerifyPassword(passwordHash, password); err != nil {
		return VerifyResult{Status: WrongPassword}
	}

	return VerifyResult{Status: Verified}
}
