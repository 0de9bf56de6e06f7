package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	"github.com/ninjaCoderr/social-app-backend/internal/repository"
	"github.com/ninjaCoderr/social-app-backend/internal/storage"
)

// UserService owns the profile document: detail updates, authenticated
// reads and the avatar pipeline.
type UserService struct {
	userRepo repository.UserRepository
	likeRepo repository.LikeRepository
	storage  storage.ObjectStorage
}

func NewUserService(userRepo repository.UserRepository, likeRepo repository.LikeRepository, storage storage.ObjectStorage) *UserService {
	return &UserService{
		userRepo: userRepo,
		likeRepo: likeRepo,
		storage:  storage,
	}
}

type Profile struct {
	Credentials user.User
	Likes       []user.Like
}

// UpdateDetails applies the reduced detail set as a merge; fields the
// caller left out keep their stored values.
func (s *UserService) UpdateDetails(ctx context.Context, handle string, details user.Details) error {
	return s.userRepo.UpdateDetails(ctx, handle, details)
}

// GetProfile fetches the caller's document and their like records.
func (s *UserService) GetProfile(ctx context.Context, handle string) (Profile, error) {
	u, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return Profile{}, err
	}

	likes, err := s.likeRepo.ListByUserHandle(ctx, handle)
	if err != nil {
		return Profile{}, err
	}

	return Profile{Credentials: u, Likes: likes}, nil
}

type AvatarUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// SaveAvatar validates the declared content type, spools the image to a
// temporary file, uploads it to the object store under a random numeric name
// keeping the original extension, and points the profile at the new URL.
// The temporary file is removed on every path.
func (s *UserService) SaveAvatar(ctx context.Context, handle string, upload AvatarUpload) error {
	if err := s.storage.ValidateContentType(upload.ContentType); err != nil {
		return err
	}

	imageName := randomImageName(upload.FileName)
	tmpPath := filepath.Join(os.TempDir(), imageName)
	defer os.Remove(tmpPath)

	if err := spoolToFile(tmpPath, upload.Body); err != nil {
		return err
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := s.storage.Upload(ctx, imageName, upload.ContentType, f); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	return s.userRepo.UpdateImageURL(ctx, handle, s.storage.FileURL(imageName))
}

func spoolToFile(path string, body io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func randomImageName(original string) string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return original
	}
	name := strconv.FormatUint(binary.BigEndian.Uint64(buf), 10)
	return name + strings.ToLower(path.Ext(original))
}
