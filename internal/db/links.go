package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"linkstash/internal/models"
)

// linkColumns is the standard column list for link queries.
const linkColumns = `id, owner_email, url, note, page_url, image_url, title, site_name, privacy, created_at, updated_at`

// scanLink scans a row into a Link struct.
func scanLink(row pgx.Row) (*models.Link, error) {
	var link models.Link
	err := row.Scan(
		&link.ID,
		&link.OwnerEmail,
		&link.URL,
		&link.Note,
		&link.PageURL,
		&link.ImageURL,
		&link.Title,
		&link.SiteName,
		&link.Privacy,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// scanLinks scans multiple rows into a slice of Links.
func scanLinks(rows pgx.Rows) ([]models.Link, error) {
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		var link models.Link
		if err := rows.Scan(
			&link.ID,
			&link.OwnerEmail,
			&link.URL,
			&link.Note,
			&link.PageURL,
			&link.ImageURL,
			&link.Title,
			&link.SiteName,
			&link.Privacy,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// CreateLink inserts a new link. The (owner_email, url) pair is unique;
// a duplicate insert returns ErrDuplicateLink.
func (d *DB) CreateLink(ctx context.Context, link *models.Link) error {
	query := `
		INSERT INTO links (owner_email, url, note, page_url, image_url, title, site_name, privacy)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query,
		link.OwnerEmail,
		link.URL,
		link.Note,
		link.PageURL,
		link.ImageURL,
		link.Title,
		link.SiteName,
		link.Privacy,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLink
		}
		return err
	}

	return nil
}

// GetLinkByID retrieves a link by its ID.
func (d *DB) GetLinkByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = $1`
	return scanLink(d.Pool.QueryRow(ctx, query, id))
}

// GetLinksByOwner retrieves all links owned by the given email, in
// insertion order.
func (d *DB) GetLinksByOwner(ctx context.Context, ownerEmail string) ([]models.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE owner_email = $1
		ORDER BY created_at ASC
	`

	rows, err := d.Pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	return scanLinks(rows)
}

// GetPublicLinksByOwner retrieves the owner's links with privacy = true.
// This backs the single cross-tenant read path: callers must have
// resolved and authorized a share grant first.
func (d *DB) GetPublicLinksByOwner(ctx context.Context, ownerEmail string) ([]models.Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE owner_email = $1 AND privacy = TRUE
		ORDER BY created_at ASC
	`

	rows, err := d.Pool.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	return scanLinks(rows)
}

// UpdateLink updates a link's url, note, and privacy flag. Enrichment
// metadata (title, image, site name, page url) is never touched on edit.
func (d *DB) UpdateLink(ctx context.Context, link *models.Link) error {
	query := `
		UPDATE links
		SET url = $1, note = $2, privacy = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`
	err := d.Pool.QueryRow(ctx, query, link.URL, link.Note, link.Privacy, link.ID).Scan(&link.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLinkNotFound
	}
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLink
		}
		return err
	}
	return nil
}

// DeleteLink deletes a link by ID. Ownership is checked by the handler
// before calling this.
func (d *DB) DeleteLink(ctx context.Context, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// GetLinkCount returns the total number of saved links.
func (d *DB) GetLinkCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count)
	return count, err
}
