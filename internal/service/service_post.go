package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// postService is the store-backed PostService. It trusts its input: the
// validation wrapper sits in front of it.
type postService struct {
	postRepository store.PostRepository

	// now stamps created_at on new posts.
	now func() time.Time

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	post := models.Post{
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		CreatedAt: p.now().UTC(),
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Msg("failed to create post")
		return models.Post{}, storeError(err)
	}

	log.Info().Str("func", "*postService.CreatePost").Int64("post_id", created.ID).Msg("post created")
	return created, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID int64, in models.PostInput) (models.Post, error) {
	log := logger.FromContext(ctx)

	updated, err := p.postRepository.UpdatePost(ctx, models.Post{
		ID:      postID,
		Title:   strings.TrimSpace(in.Title),
		Content: strings.TrimSpace(in.Content),
	})
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, NotFoundError{Entity: EntityPost, ID: postID}
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.UpdatePost").Int64("post_id", postID).Msg("failed to update post")
		return models.Post{}, storeError(err)
	}

	return updated, nil
}

// DeletePost removes the post for good. An unknown id is an error, never a
// silent success.
func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	err := p.postRepository.DeletePost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return NotFoundError{Entity: EntityPost, ID: postID}
	}
	if err != nil {
		log.Err(err).Str("func", "*postService.DeletePost").Int64("post_id", postID).Msg("failed to delete post")
		return storeError(err)
	}

	log.Info().Str("func", "*postService.DeletePost").Int64("post_id", postID).Msg("post deleted")
	return nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, NotFoundError{Entity: EntityPost, ID: postID}
	}
	if err != nil {
		return models.Post{}, storeError(err)
	}

	return post, nil
}

// ListPosts returns one page of posts, newest first, together with the
// total number of posts matching the same search.
func (p *postService) ListPosts(ctx context.Context, query models.PostQuery) (models.PostPage, error) {
	log := logger.FromContext(ctx)

	query.Search = strings.TrimSpace(query.Search)
	query.Page = query.NormalizedPage()

	total, err := p.postRepository.CountPosts(ctx, query.Search)
	if err != nil {
		log.Err(err).Str("func", "*postService.ListPosts").Msg("failed to count posts")
		return models.PostPage{}, storeError(err)
	}

	items, err := p.postRepository.ListPosts(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*postService.ListPosts").Int("page", query.Page).Msg("failed to list posts")
		return models.PostPage{}, storeError(err)
	}
	if items == nil {
		items = []models.Post{}
	}

	return models.PostPage{
		Items:      items,
		TotalCount: total,
		Page:       query.Page,
		PageSize:   models.PostsPageSize,
		Search:     query.Search,
	}, nil
}
