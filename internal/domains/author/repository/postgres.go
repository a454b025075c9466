package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-backend/internal/domains/author"
	"gallery-backend/internal/shared"
)

// postgresRepository implements author.Repository on the authors table
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, last_name, face_picture_url`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(&a.ID, &a.Name, &a.LastName, &a.FacePictureURL); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID returns (nil, nil) when the row does not exist
func (r *postgresRepository) FindByID(ctx context.Context, id string) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

// FindAll retrieves authors with optional sorting and pagination
func (r *postgresRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]author.Author, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + authorColumns + ` FROM authors`)

	// Sort column comes from the whitelist, never from user input
	if opts.SortBy != "" {
		queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s COLLATE "C" ASC, id COLLATE "C" ASC`, sortColumns[opts.SortBy]))
	} else {
		queryBuilder.WriteString(` ORDER BY seq ASC`)
	}

	args := []interface{}{}
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}
	if opts.Skip > 0 {
		args = append(args, opts.Skip)
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	}

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Insert stores a new author; the id is generated by the database
func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, last_name, face_picture_url)
        VALUES ($1, $2, $3)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.LastName, a.FacePictureURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

// Save overwrites every field of an existing author
func (r *postgresRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET
            name = $1,
            last_name = $2,
            face_picture_url = $3
        WHERE id = $4
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.LastName, a.FacePictureURL, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}

// DeleteByID removes author by ID and reports the affected row count
func (r *postgresRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return total, nil
}
