package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// PostService manages blog posts. Every mutating call validates its input
// before anything reaches the store.
type PostService interface {
	CreatePost(ctx context.Context, in models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, in models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	ListPosts(ctx context.Context, query models.PostQuery) (models.PostPage, error)
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

// UserService manages accounts, credentials and roles.
type UserService interface {
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)
	ChangeRole(ctx context.Context, actor models.Session, targetUserID int64, role models.Role) error
	ListUsers(ctx context.Context) ([]models.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
