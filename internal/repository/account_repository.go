package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"
)

type PostgresAccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) AccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) Create(ctx context.Context, a *user.Account) error {
	query :=
		`INSERT INTO accounts (id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Email, a.PasswordHash, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return social_errors.ErrEmailTaken
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (user.Account, error) {
	query :=
		`SELECT id, email, password_hash, created_at FROM accounts
		 WHERE email = $1
		 `

	var a user.Account
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.Account{}, social_errors.ErrNotFound
		}
		return user.Account{}, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}
