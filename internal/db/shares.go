package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"linkstash/internal/models"
)

// CreateShare inserts a directed share grant. The (sender_email,
// receiver_email) pair is unique; a duplicate insert returns
// ErrDuplicateShare.
func (d *DB) CreateShare(ctx context.Context, grant *models.ShareGrant) error {
	query := `
		INSERT INTO shares (sender_email, receiver_email)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := d.Pool.QueryRow(ctx, query,
		grant.SenderEmail,
		grant.ReceiverEmail,
	).Scan(&grant.ID, &grant.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateShare
		}
		return err
	}

	return nil
}

// GetShareByID returns a single share grant by ID.
func (d *DB) GetShareByID(ctx context.Context, id uuid.UUID) (*models.ShareGrant, error) {
	query := `
		SELECT id, sender_email, receiver_email, created_at
		FROM shares WHERE id = $1
	`

	var grant models.ShareGrant
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&grant.ID, &grant.SenderEmail, &grant.ReceiverEmail, &grant.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrShareNotFound
	}
	if err != nil {
		return nil, err
	}

	return &grant, nil
}

// GetOutgoingShares returns grants where the given email is the sender,
// with receiver display info. The join is LEFT so that grants pointing
// at emails without a user record still appear.
func (d *DB) GetOutgoingShares(ctx context.Context, senderEmail string) ([]models.ShareGrantWithUser, error) {
	query := `
		SELECT s.id, s.sender_email, s.receiver_email, s.created_at,
		       COALESCE(NULLIF(u.name, ''), u.username, ''),
		       COALESCE(u.picture, '')
		FROM shares s
		LEFT JOIN users u ON u.email = s.receiver_email
		WHERE s.sender_email = $1
		ORDER BY s.created_at DESC
	`
	return d.queryShareGrantsWithUser(ctx, query, senderEmail)
}

// GetIncomingShares returns grants where the given email is the
// receiver, with sender display info.
func (d *DB) GetIncomingShares(ctx context.Context, receiverEmail string) ([]models.ShareGrantWithUser, error) {
	query := `
		SELECT s.id, s.sender_email, s.receiver_email, s.created_at,
		       COALESCE(NULLIF(u.name, ''), u.username, ''),
		       COALESCE(u.picture, '')
		FROM shares s
		LEFT JOIN users u ON u.email = s.sender_email
		WHERE s.receiver_email = $1
		ORDER BY s.created_at DESC
	`
	return d.queryShareGrantsWithUser(ctx, query, receiverEmail)
}

func (d *DB) queryShareGrantsWithUser(ctx context.Context, query, email string) ([]models.ShareGrantWithUser, error) {
	rows, err := d.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []models.ShareGrantWithUser
	for rows.Next() {
		var g models.ShareGrantWithUser
		if err := rows.Scan(
			&g.ID, &g.SenderEmail, &g.ReceiverEmail, &g.CreatedAt,
			&g.UserName, &g.UserPicture,
		); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}

	return grants, rows.Err()
}

// DeleteShare removes a share grant by ID.
func (d *DB) DeleteShare(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM shares WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrShareNotFound
	}
	return nil
}

// GetShareCount returns the total number of share grants.
func (d *DB) GetShareCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM shares`).Scan(&count)
	return count, err
}
