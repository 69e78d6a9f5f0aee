package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// PostValidationService rejects invalid post input before delegating to
// the wrapped PostService. Validation failures are returned unwrapped as
// [validators.ValidationErrors].
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Post{}, err
	}

	return v.inner.CreatePost(ctx, in)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, postID int64, in models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Post{}, err
	}

	return v.inner.UpdatePost(ctx, postID, in)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID int64) error {
	return v.inner.DeletePost(ctx, postID)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) ListPosts(ctx context.Context, query models.PostQuery) (models.PostPage, error) {
	return v.inner.ListPosts(ctx, query)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
