package services

import (
	"context"
	"errors"
	"time"

	"github.com/ninjaCoderr/social-app-backend/config"
	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	"github.com/ninjaCoderr/social-app-backend/internal/repository"
	"github.com/ninjaCoderr/social-app-backend/internal/storage"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// noImageKey is the object placed in the bucket that every new profile
// points at until the user uploads an avatar.
const noImageKey = "no-img.png"

// AuthService owns signup and login: credential storage, token minting and
// token parsing for the middleware.
type AuthService struct {
	accountRepo repository.AccountRepository
	userRepo    repository.UserRepository
	jwtSecret   []byte
	accessTTL   time.Duration
	noImageURL  string
}

func NewAuthService(accountRepo repository.AccountRepository, userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		userRepo:    userRepo,
		jwtSecret:   []byte(cfg.JWTSecret),
		accessTTL:   time.Duration(cfg.JWTExpiryMin) * time.Minute,
		noImageURL:  storage.FileURL(cfg.StoragePublicHost, cfg.S3Bucket, noImageKey),
	}
}

type SignupInput struct {
	Email    string
	Password string
	Handle   string
}

type LoginInput struct {
	Email    string
	Password string
}

type AccessClaims struct {
	jwt.RegisteredClaims
}

// Signup claims the handle, creates the identity account, mints a token and
// persists the profile document. Each step runs only after the previous one
// succeeded; there are no retries.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (string, error) {
	_, err := s.userRepo.GetByHandle(ctx, in.Handle)
	if err == nil {
		return "", social_errors.ErrHandleTaken
	}
	if !errors.Is(err, social_errors.ErrNotFound) {
		return "", err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", err
	}

	account := &user.Account{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return "", err
	}

	token, err := s.mintToken(account.ID)
	if err != nil {
		return "", err
	}

	newUser := &user.User{
		Handle:    in.Handle,
		Email:     in.Email,
		AccountID: account.ID,
		ImageURL:  s.noImageURL,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return "", err
	}

	return token, nil
}

// Login authenticates the credentials and mints a fresh token. Only a
// password mismatch maps to the wrong-credentials answer; an unknown email
// surfaces as a plain lookup failure.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}

	if err := comparePassword(account.PasswordHash, in.Password); err != nil {
		return "", social_errors.ErrWrongCredentials
	}

	return s.mintToken(account.ID)
}

// ParseToken verifies the bearer token and returns the account id it was
// minted for.
func (s *AuthService) ParseToken(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, social_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, social_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return uuid.Nil, social_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, social_errors.ErrUnauthorized
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, social_errors.ErrUnauthorized
	}

	return accountID, nil
}

func (s *AuthService) mintToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
