package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/google/uuid"
)

type PostgresUserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query :=
		`INSERT INTO users (handle, email, account_id, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		u.Handle, u.Email, u.AccountID, u.ImageURL, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return social_errors.ErrHandleTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetByHandle(ctx context.Context, handle string) (user.User, error) {
	query :=
		`SELECT handle, email, account_id, image_url, bio, website, location, created_at
		 FROM users
		 WHERE handle = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, handle))
}

func (r *PostgresUserRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (user.User, error) {
	query :=
		`SELECT handle, email, account_id, image_url, bio, website, location, created_at
		 FROM users
		 WHERE account_id = $1
		 `

	return r.scanUser(r.db.QueryRowContext(ctx, query, accountID))
}

func (r *PostgresUserRepository) UpdateDetails(ctx context.Context, handle string, details user.Details) error {
	query :=
		`UPDATE users
		 SET bio = COALESCE($2, bio),
		     website = COALESCE($3, website),
		     location = COALESCE($4, location)
		 WHERE handle = $1
		 `

	res, err := r.db.ExecContext(ctx, query, handle, details.Bio, details.Website, details.Location)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowsAffected(res)
}

func (r *PostgresUserRepository) UpdateImageURL(ctx context.Context, handle, imageURL string) error {
	query :=
		`UPDATE users SET image_url = $2
		 WHERE handle = $1
		 `

	res, err := r.db.ExecContext(ctx, query, handle, imageURL)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowsAffected(res)
}

func (r *PostgresUserRepository) scanUser(row *sql.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.Handle, &u.Email, &u.AccountID, &u.ImageURL, &u.Bio, &u.Website, &u.Location, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, social_errors.ErrNotFound
		}
		return user.User{}, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func requireRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return social_errors.ErrNotFound
	}
	return nil
}
