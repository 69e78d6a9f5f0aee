package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts a post. CreatedAt is taken from the argument so the
// caller's clock decides it.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CreatePost").
			Stringer("class", p.classify(err)).
			Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(p.builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	err = p.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.GetPost").
			Int64("post_id", postID).
			Stringer("class", p.classify(err)).
			Msg("failed to get post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost changes title and content and returns the stored row.
// [ErrPostNotFound] is returned when the id matches nothing.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder(), post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("failed to build query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Post
	err = p.QueryRowContext(ctx, query, args...).Scan(&updated.ID, &updated.Title, &updated.Content, &updated.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.UpdatePost").
			Int64("post_id", post.ID).
			Stringer("class", p.classify(err)).
			Msg("failed to update post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder(), postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.DeletePost").
			Int64("post_id", postID).
			Stringer("class", p.classify(err)).
			Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (p *postRepository) ListPosts(ctx context.Context, postQuery models.PostQuery) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(p.builder(), p.dialect, postQuery)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Int("page", postQuery.NormalizedPage()).
			Stringer("class", p.classify(err)).
			Msg("failed to list posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, models.PostsPageSize)
	for rows.Next() {
		var post models.Post
		if err = rows.Scan(&post.ID, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// CountPosts counts the posts matching search, or all posts when it is empty.
func (p *postRepository) CountPosts(ctx context.Context, search string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountPostsQuery(p.builder(), p.dialect, search)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CountPosts").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = p.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*postRepository.CountPosts").
			Stringer("class", p.classify(err)).
			Msg("failed to count posts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
