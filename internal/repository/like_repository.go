package repository

import (
	"context"
	"fmt"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
)

type PostgresLikeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) LikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) ListByUserHandle(ctx context.Context, handle string) ([]user.Like, error) {
	query :=
		`SELECT user_handle, post_id, created_at FROM likes
		 WHERE user_handle = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, handle)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	likes := []user.Like{}
	for rows.Next() {
		var l user.Like
		if err := rows.Scan(&l.UserHandle, &l.PostID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		likes = append(likes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return likes, nil
}
