package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gallery-backend/internal/domains/picture"
	"gallery-backend/internal/shared"
)

// postgresRepository implements picture.Repository on the pictures table.
// author_id carries no foreign key constraint.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) picture.Repository {
	return &postgresRepository{pool: pool}
}

const pictureColumns = `id, title, image_url, genre, author_id`

func scanPicture(row pgx.Row) (*picture.Picture, error) {
	var p picture.Picture
	if err := row.Scan(&p.ID, &p.Title, &p.ImageURL, &p.Genre, &p.AuthorID); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPictures(rows pgx.Rows) ([]picture.Picture, error) {
	defer rows.Close()

	pictures := []picture.Picture{}
	for rows.Next() {
		p, err := scanPicture(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan picture: %w", err)
		}
		pictures = append(pictures, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pictures: %w", err)
	}
	return pictures, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*picture.Picture, error) {
	query := `SELECT ` + pictureColumns + ` FROM pictures WHERE id = $1`

	p, err := scanPicture(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get picture by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, opts shared.FindOptions) ([]picture.Picture, error) {
	if err := validateSort(opts.SortBy); err != nil {
		return nil, err
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + pictureColumns + ` FROM pictures`)

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
		return nil, fmt.Errorf("failed to query pictures: %w", err)
	}
	return collectPictures(rows)
}

func (r *postgresRepository) FindWhere(ctx context.Context, filter picture.Filter) ([]picture.Picture, error) {
	query := `SELECT ` + pictureColumns + ` FROM pictures`
	args := []interface{}{}
	if filter.AuthorID != "" {
		args = append(args, filter.AuthorID)
		query += ` WHERE author_id = $1`
	}
	query += ` ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pictures by filter: %w", err)
	}
	return collectPictures(rows)
}

func (r *postgresRepository) Insert(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	query := `
        INSERT INTO pictures (title, image_url, genre, author_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + pictureColumns

	created, err := scanPicture(r.pool.QueryRow(ctx, query, p.Title, p.ImageURL, p.Genre, p.AuthorID))
	if err != nil {
		return nil, fmt.Errorf("failed to create picture: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) Save(ctx context.Context, p *picture.Picture) (*picture.Picture, error) {
	query := `
        UPDATE pictures
        SET
            title = $1,
            image_url = $2,
            genre = $3,
            author_id = $4
        WHERE id = $5
        RETURNING ` + pictureColumns

	updated, err := scanPicture(r.pool.QueryRow(ctx, query, p.Title, p.ImageURL, p.Genre, p.AuthorID, p.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, picture.ErrPictureNotFound
		}
		return nil, fmt.Errorf("failed to update picture: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM pictures WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete picture: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pictures`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count pictures: %w", err)
	}
	return total, nil
}
