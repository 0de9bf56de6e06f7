package httpdto

import (
	"time"

	"github.com/ninjaCoderr/social-app-backend/internal/domain/user"
)

// UpdateDetailsRequest is the body of POST /user. Pointer fields distinguish
// "absent" from "empty" so an omitted field never clears a stored value.
type UpdateDetailsRequest struct {
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
}

// CredentialsDTO mirrors the persisted user document.
type CredentialsDTO struct {
	Handle    string `json:"handle"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	ImageURL  string `json:"imageUrl"`
	UserID    string `json:"userId"`
	Bio       string `json:"bio,omitempty"`
	Website   string `json:"website,omitempty"`
	Location  string `json:"location,omitempty"`
}

// LikeDTO represents a like record in API responses.
type LikeDTO struct {
	UserHandle string `json:"userHandle"`
	PostID     string `json:"postId"`
	CreatedAt  string `json:"createdAt"`
}

// ProfileResponse is returned by GET /user.
type ProfileResponse struct {
	Credentials CredentialsDTO `json:"credentials"`
	Likes       []LikeDTO      `json:"likes"`
}

// FromUser converts a domain user to CredentialsDTO.
func FromUser(u user.User) CredentialsDTO {
	dto := CredentialsDTO{
		Handle:    u.Handle,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		ImageURL:  u.ImageURL,
		UserID:    u.AccountID.String(),
	}
	if u.Bio.Valid {
		dto.Bio = u.Bio.String
	}
	if u.Website.Valid {
		dto.Website = u.Website.String
	}
	if u.Location.Valid {
		dto.Location = u.Location.String
	}
	return dto
}

// FromLikeSlice converts domain likes to LikeDTO slice.
func FromLikeSlice(likes []user.Like) []LikeDTO {
	dtos := make([]LikeDTO, len(likes))
	for i, l := range likes {
		dtos[i] = LikeDTO{
			UserHandle: l.UserHandle,
			PostID:     l.PostID,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		}
	}
	return dtos
}
