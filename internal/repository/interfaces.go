package repository

import (
	"context"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository stores the handle-keyed profile documents.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByHandle(ctx context.Context, handle string) (user.User, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (user.User, error)
	UpdateDetails(ctx context.Context, handle string, details user.Details) error
	UpdateImageURL(ctx context.Context, handle, imageURL string) error
}

// AccountRepository stores identity credentials, keyed by account id with a
// unique email.
type AccountRepository interface {
	Create(ctx context.Context, a *user.Account) error
	GetByEmail(ctx context.Context, email string) (user.Account, error)
}

// LikeRepository reads like records. Likes are written elsewhere; this
// service only queries them by handle.
type LikeRepository interface {
	ListByUserHandle(ctx context.Context, handle string) ([]user.Like, error)
}
