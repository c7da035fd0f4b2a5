package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ritika/funlearn/internal/profile"
)

var (
	// ErrProfileNotFound is returned when no profile exists for a username.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUsernameTaken is returned by Create for an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned by Authenticate on a bad
	// username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ProfileRepo stores learner profiles as whole documents. Save replaces the
// stored document in a single statement, so a failed save leaves the
// previous profile intact.
type ProfileRepo interface {
	// Create registers a new learner with the given password and initial
	// profile. Fails with ErrUsernameTaken if the username exists.
	Create(ctx context.Context, password string, p *profile.Profile) error

	// Authenticate checks a username/password pair and returns the stored
	// profile. Fails with ErrInvalidCredentials on mismatch.
	Authenticate(ctx context.Context, username, password string) (*profile.Profile, error)

	// Load returns the stored profile for a username.
	Load(ctx context.Context, username string) (*profile.Profile, error)

	// Save replaces the stored profile document.
	Save(ctx context.Context, p *profile.Profile) error

	// Delete removes a learner and their profile.
	Delete(ctx context.Context, username string) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Create(ctx context.Context, password string, p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	// Passwords are stored in plain text.
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (username, password, data) VALUES (?, ?, ?)`,
		p.Username, password, string(data),
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrUsernameTaken
	}
	return nil
}

func (r *profileRepo) Authenticate(ctx context.Context, username, password string) (*profile.Profile, error) {
	var stored, data string
	err := r.db.QueryRowContext(ctx,
		`SELECT password, data FROM users WHERE username = ?`, username,
	).Scan(&stored, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	if stored != password {
		return nil, ErrInvalidCredentials
	}
	return unmarshalProfile(username, data)
}

func (r *profileRepo) Load(ctx context.Context, username string) (*profile.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM users WHERE username = ?`, username,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return unmarshalProfile(username, data)
}

func (r *profileRepo) Save(ctx context.Context, p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET data = ?, updated_at = CURRENT_TIMESTAMP WHERE username = ?`,
		string(data), p.Username,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func unmarshalProfile(username, data string) (*profile.Profile, error) {
	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile %q: %w", username, err)
	}
	return &p, nil
}
