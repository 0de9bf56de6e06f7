package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
	social_errors "github.com/ninjaCoderr/social-app-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	likeRepo := newFakeLikeRepo()
	svc := NewUserService(userRepo, likeRepo, &fakeStorage{})

	userRepo.users["alice"] = user.User{Handle: "alice", Email: "alice@example.com"}
	likeRepo.likes["alice"] = []user.Like{
		{UserHandle: "alice", PostID: "post-1", CreatedAt: time.Now()},
	}

	profile, err := svc.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Credentials.Handle)
	require.Len(t, profile.Likes, 1)
	assert.Equal(t, "post-1", profile.Likes[0].PostID)
}

func TestUpdateDetails_RepeatedPayloadIsStable(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, newFakeLikeRepo(), &fakeStorage{})

	userRepo.users["alice"] = user.User{Handle: "alice", Email: "alice@example.com"}

	bio := "hello"
	website := "http://example.com"
	details := user.Details{Bio: &bio, Website: &website}

	require.NoError(t, svc.UpdateDetails(context.Background(), "alice", details))
	afterFirst := userRepo.users["alice"]
	require.True(t, afterFirst.Bio.Valid)
	assert.Equal(t, "hello", afterFirst.Bio.String)

	require.NoError(t, svc.UpdateDetails(context.Background(), "alice", details))
	assert.Equal(t, afterFirst, userRepo.users["alice"])
}

func TestGetProfile_NoLikes(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, newFakeLikeRepo(), &fakeStorage{})

	userRepo.users["alice"] = user.User{Handle: "alice"}

	profile, err := svc.GetProfile(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, profile.Likes)
	assert.Empty(t, profile.Likes)
}

func TestGetProfile_MissingDocument(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), newFakeLikeRepo(), &fakeStorage{})

	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, social_errors.ErrNotFound)
}

func TestSaveAvatar_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := &fakeStorage{}
	svc := NewUserService(userRepo, newFakeLikeRepo(), store)

	userRepo.users["alice"] = user.User{Handle: "alice"}

	body := strings.NewReader("fake png bytes")
	err := svc.SaveAvatar(context.Background(), "alice", AvatarUpload{
		FileName:    "selfie.PNG",
		ContentType: "image/png",
		Body:        body,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.uploadCalls)
	assert.True(t, strings.HasSuffix(store.uploadedKey, ".png"), "key %q should keep a lowercased extension", store.uploadedKey)
	assert.Equal(t, "image/png", store.uploadedContentType)
	assert.Equal(t, int64(len("fake png bytes")), store.uploadedBytes)

	wantURL := store.FileURL(store.uploadedKey)
	assert.Equal(t, wantURL, userRepo.updatedURL["alice"])

	_, statErr := os.Stat(filepath.Join(os.TempDir(), store.uploadedKey))
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed after upload")
}

func TestSaveAvatar_SpoolFailureCleansUp(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	userRepo := newFakeUserRepo()
	store := &fakeStorage{}
	svc := NewUserService(userRepo, newFakeLikeRepo(), store)

	userRepo.users["alice"] = user.User{Handle: "alice"}

	err := svc.SaveAvatar(context.Background(), "alice", AvatarUpload{
		FileName:    "selfie.png",
		ContentType: "image/png",
		Body:        iotest.ErrReader(assert.AnError),
	})
	require.Error(t, err)
	assert.Equal(t, 0, store.uploadCalls)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no spooled file may remain after a failed read")
}

func TestSpoolToFile_RemovesFileOnCopyFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.png")

	err := spoolToFile(path, iotest.ErrReader(assert.AnError))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveAvatar_WrongContentType(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := &fakeStorage{}
	svc := NewUserService(userRepo, newFakeLikeRepo(), store)

	userRepo.users["alice"] = user.User{Handle: "alice"}

	err := svc.SaveAvatar(context.Background(), "alice", AvatarUpload{
		FileName:    "doc.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-"),
	})
	assert.ErrorIs(t, err, social_errors.ErrWrongFileType)
	assert.Equal(t, 0, store.uploadCalls, "rejected uploads must not reach the store")
	assert.Empty(t, userRepo.updatedURL)
}

func TestSaveAvatar_UploadFailureLeavesProfileUntouched(t *testing.T) {
	userRepo := newFakeUserRepo()
	store := &fakeStorage{uploadErr: assert.AnError}
	svc := NewUserService(userRepo, newFakeLikeRepo(), store)

	userRepo.users["alice"] = user.User{Handle: "alice"}

	err := svc.SaveAvatar(context.Background(), "alice", AvatarUpload{
		FileName:    "selfie.png",
		ContentType: "image/png",
		Body:        strings.NewReader("bytes"),
	})
	require.Error(t, err)
	assert.Empty(t, userRepo.updatedURL)
}

func TestRandomImageName(t *testing.T) {
	name := randomImageName("My Photo.JPEG")
	assert.True(t, strings.HasSuffix(name, ".jpeg"))

	digits := strings.TrimSuffix(name, ".jpeg")
	assert.NotEmpty(t, digits)
	for _, r := range digits {
		assert.True(t, r >= '0' && r <= '9', "name %q should be numeric", name)
	}

	other := randomImageName("My Photo.JPEG")
	assert.NotEqual(t, name, other)
}
