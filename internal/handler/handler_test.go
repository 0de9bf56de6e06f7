package handler

import (
	"context"
	"io"

	"github.com/ninjaCoderr/social-app-backend/config"
	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	"github.com/ninjaCoderr/social-app-backend/internal/services"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"
	"github.com/ninjaCoderr/social-app-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func nopLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryMin:      60,
		S3Bucket:          "avatars",
		StoragePublicHost: "https://media.test",
	}
}

// asCaller stamps the authenticated caller on the request context the way
// the auth middleware does.
func asCaller(handle string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := services.WithCallerContext(c.Request.Context(), handle)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

type stubUserRepo struct {
	users      map[string]user.User
	updatedURL map[string]string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]user.User{}, updatedURL: map[string]string{}}
}

func (s *stubUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := s.users[u.Handle]; ok {
		return social_errors.ErrHandleTaken
	}
	s.users[u.Handle] = *u
	return nil
}

func (s *stubUserRepo) GetByHandle(_ context.Context, handle string) (user.User, error) {
	u, ok := s.users[handle]
	if !ok {
		return user.User{}, social_errors.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByAccountID(_ context.Context, accountID uuid.UUID) (user.User, error) {
	for _, u := range s.users {
		if u.AccountID == accountID {
			return u, nil
		}
	}
	return user.User{}, social_errors.ErrNotFound
}

func (s *stubUserRepo) UpdateDetails(_ context.Context, handle string, details user.Details) error {
	if _, ok := s.users[handle]; !ok {
		return social_errors.ErrNotFound
	}
	return nil
}

func (s *stubUserRepo) UpdateImageURL(_ context.Context, handle, imageURL string) error {
	if _, ok := s.users[handle]; !ok {
		return social_errors.ErrNotFound
	}
	s.updatedURL[handle] = imageURL
	return nil
}

type stubAccountRepo struct {
	accounts map[string]user.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: map[string]user.Account{}}
}

func (s *stubAccountRepo) Create(_ context.Context, a *user.Account) error {
	if _, ok := s.accounts[a.Email]; ok {
		return social_errors.ErrEmailTaken
	}
	s.accounts[a.Email] = *a
	return nil
}

func (s *stubAccountRepo) GetByEmail(_ context.Context, email string) (user.Account, error) {
	a, ok := s.accounts[email]
	if !ok {
		return user.Account{}, social_errors.ErrNotFound
	}
	return a, nil
}

type stubLikeRepo struct {
	likes map[string][]user.Like
}

func newStubLikeRepo() *stubLikeRepo {
	return &stubLikeRepo{likes: map[string][]user.Like{}}
}

func (s *stubLikeRepo) ListByUserHandle(_ context.Context, handle string) ([]user.Like, error) {
	likes, ok := s.likes[handle]
	if !ok {
		return []user.Like{}, nil
	}
	return likes, nil
}

type stubStorage struct {
	uploadedKey string
	uploadCalls int
}

func (s *stubStorage) Upload(_ context.Context, key, contentType string, body io.Reader) error {
	s.uploadCalls++
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	s.uploadedKey = key
	return nil
}

func (s *stubStorage) FileURL(key string) string {
	return "https://media.test/v0/b/avatars/o/" + key + "?alt=media"
}

func (s *stubStorage) ValidateContentType(contentType string) error {
	switch contentType {
	case "image/png", "image/jpeg":
		return nil
	default:
		return social_errors.ErrWrongFileType
	}
}
