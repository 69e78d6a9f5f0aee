package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts the user and returns it with the assigned UserID.
	// A duplicate username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUserRole yields [ErrUserNotFound] when no row was changed.
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) error
	ListUsers(ctx context.Context) ([]models.User, error)
	CountUsersByRole(ctx context.Context) (map[models.Role]int64, error)
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	// UpdatePost rewrites title and content only; created_at is left as stored.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	// ListPosts returns one page, newest first.
	ListPosts(ctx context.Context, query models.PostQuery) ([]models.Post, error)
	CountPosts(ctx context.Context, search string) (int64, error)
}

// ErrorClassificator maps driver-specific errors to a dialect-neutral class.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
