package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"linkstash/internal/models"
)

const userColumns = `id, sub, username, email, name, picture, content_default, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Sub,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.Picture,
		&user.ContentDefault,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertUser creates or updates a user based on their OIDC subject.
// ContentDefault is preserved across logins; only profile fields coming
// from the identity provider are refreshed.
func (d *DB) UpsertUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (sub, username, email, name, picture)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (sub) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			picture = EXCLUDED.picture,
			updated_at = NOW()
		RETURNING id, content_default, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		user.Sub,
		user.Username,
		user.Email,
		user.Name,
		user.Picture,
	).Scan(&user.ID, &user.ContentDefault, &user.CreatedAt, &user.UpdatedAt)
}

// GetUserBySub retrieves a user by their OIDC subject identifier.
func (d *DB) GetUserBySub(ctx context.Context, sub string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE sub = $1`
	return scanUser(d.Pool.QueryRow(ctx, query, sub))
}

// GetUserByEmail retrieves a user by their email address.
func (d *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(d.Pool.QueryRow(ctx, query, email))
}

// SearchUsers performs a case-insensitive substring match against
// username or email. A full scan at small scale is acceptable; the
// ILIKE pattern is not anchored.
func (d *DB) SearchUsers(ctx context.Context, term string, limit int) ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE username ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY username ASC, email ASC
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, term, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Sub, &u.Username, &u.Email, &u.Name, &u.Picture,
			&u.ContentDefault, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SetContentDefault patches the content_default flag for the user with
// the given email.
func (d *DB) SetContentDefault(ctx context.Context, email string, content bool) error {
	query := `UPDATE users SET content_default = $1, updated_at = NOW() WHERE email = $2`
	result, err := d.Pool.Exec(ctx, query, content, email)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetContentDefault reads the content_default flag for the user with
// the given email.
func (d *DB) GetContentDefault(ctx context.Context, email string) (bool, error) {
	var content bool
	err := d.Pool.QueryRow(ctx, `SELECT content_default FROM users WHERE email = $1`, email).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrUserNotFound
	}
	return content, err
}

// GetUserCount returns the total number of users.
func (d *DB) GetUserCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
