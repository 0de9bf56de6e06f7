package services

import (
	"context"
	"io"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository keyed by handle.
type fakeUserRepo struct {
	users      map[string]user.User
	createErr  error
	updatedURL map[string]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      map[string]user.User{},
		updatedURL: map[string]string{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Handle]; ok {
		return social_errors.ErrHandleTaken
	}
	f.users[u.Handle] = *u
	return nil
}

func (f *fakeUserRepo) GetByHandle(_ context.Context, handle string) (user.User, error) {
	u, ok := f.users[handle]
	if !ok {
		return user.User{}, social_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (user.User, error) {
	for _, u := range f.users {
		if u.AccountID == accountID {
			return u, nil
		}
	}
	return user.User{}, social_errors.ErrNotFound
}

func (f *fakeUserRepo) UpdateDetails(_ context.Context, handle string, details user.Details) error {
	u, ok := f.users[handle]
	if !ok {
		return social_errors.ErrNotFound
	}
	if details.Bio != nil {
		u.Bio.String, u.Bio.Valid = *details.Bio, true
	}
	if details.Website != nil {
		u.Website.String, u.Website.Valid = *details.Website, true
	}
	if details.Location != nil {
		u.Location.String, u.Location.Valid = *details.Location, true
	}
	f.users[handle] = u
	return nil
}

func (f *fakeUserRepo) UpdateImageURL(_ context.Context, handle, imageURL string) error {
	u, ok := f.users[handle]
	if !ok {
		return social_errors.ErrNotFound
	}
	u.ImageURL = imageURL
	f.users[handle] = u
	f.updatedURL[handle] = imageURL
	return nil
}

// fakeAccountRepo is an in-memory AccountRepository keyed by email.
type fakeAccountRepo struct {
	accounts    map[string]user.Account
	createCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]user.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, a *user.Account) error {
	f.createCalls++
	if _, ok := f.accounts[a.Email]; ok {
		return social_errors.ErrEmailTaken
	}
	f.accounts[a.Email] = *a
	return nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (user.Account, error) {
	a, ok := f.accounts[email]
	if !ok {
		return user.Account{}, social_errors.ErrNotFound
	}
	return a, nil
}

type fakeLikeRepo struct {
	likes map[string][]user.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string][]user.Like{}}
}

func (f *fakeLikeRepo) ListByUserHandle(_ context.Context, handle string) ([]user.Like, error) {
	likes, ok := f.likes[handle]
	if !ok {
		return []user.Like{}, nil
	}
	return likes, nil
}

// fakeStorage records uploads instead of touching a bucket.
type fakeStorage struct {
	uploadedKey         string
	uploadedContentType string
	uploadedBytes       int64
	uploadCalls         int
	uploadErr           error
}

func (f *fakeStorage) Upload(_ context.Context, key, contentType string, body io.Reader) error {
	f.uploadCalls++
	if f.uploadErr != nil {
		return f.uploadErr
	}
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return err
	}
	f.uploadedKey = key
	f.uploadedContentType = contentType
	f.uploadedBytes = n
	return nil
}

func (f *fakeStorage) FileURL(key string) string {
	return "https://media.test/v0/b/avatars/o/" + key + "?alt=media"
}

func (f *fakeStorage) ValidateContentType(contentType string) error {
	switch contentType {
	case "image/png", "image/jpeg":
		return nil
	default:
		return social_errors.ErrWrongFileType
	}
}
