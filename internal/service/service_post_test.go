package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

// newTestPostSvc returns the validated post service with a fixed clock.
func newTestPostSvc(t *testing.T, ctrl *gomock.Controller) (PostService, *mock.MockPostRepository) {
	t.Helper()
	repo := mock.NewMockPostRepository(ctrl)

	inner := NewPostService(repo, logger.Nop()).(*postService)
	inner.now = func() time.Time { return fixedNow }

	return NewPostValidationService().Wrap(inner), repo
}

func TestPostService_CreatePost_TrimsAndStamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	repo.EXPECT().CreatePost(gomock.Any(), models.Post{Title: "Hello", Content: "World", CreatedAt: fixedNow}).
		DoAndReturn(func(_ context.Context, p models.Post) (models.Post, error) {
			p.ID = 1
			return p, nil
		})

	post, err := svc.CreatePost(context.Background(), models.PostInput{Title: "  Hello ", Content: "\nWorld\t"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, fixedNow, post.CreatedAt)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      models.PostInput
		wantMsg string
	}{
		{name: "blank title", in: models.PostInput{Title: " ", Content: "x"}, wantMsg: "Title is required."},
		{name: "title too long", in: models.PostInput{Title: strings.Repeat("a", 256), Content: "x"}, wantMsg: "Title must be at most 255 characters."},
		{name: "empty content", in: models.PostInput{Title: "T", Content: ""}, wantMsg: "Content is required."},
		{name: "content too long", in: models.PostInput{Title: "T", Content: strings.Repeat("c", 65536)}, wantMsg: "Content is too long."},
		{name: "both fields, title first", in: models.PostInput{}, wantMsg: "Title is required. Content is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestPostSvc(t, ctrl) // no repository calls expected

			_, err := svc.CreatePost(context.Background(), tt.in)
			require.Error(t, err)

			_, ok := validators.AsValidationErrors(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestPostService_CreatePost_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	repo.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrExecutingQuery)

	_, err := svc.CreatePost(context.Background(), models.PostInput{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestPostService_UpdatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	created := fixedNow.Add(-48 * time.Hour)
	repo.EXPECT().UpdatePost(gomock.Any(), models.Post{ID: 3, Title: "New", Content: "Body"}).
		Return(models.Post{ID: 3, Title: "New", Content: "Body", CreatedAt: created}, nil)

	post, err := svc.UpdatePost(context.Background(), 3, models.PostInput{Title: " New ", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, created, post.CreatedAt, "created_at must survive an edit")
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.UpdatePost(context.Background(), 42, models.PostInput{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, ErrNotFound)

	var nf NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, NotFoundError{Entity: "post", ID: 42}, nf)
}

func TestPostService_UpdatePost_InvalidInputNeverReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestPostSvc(t, ctrl)

	_, err := svc.UpdatePost(context.Background(), 1, models.PostInput{Title: "", Content: "C"})
	assert.EqualError(t, err, "Title is required.")
}

func TestPostService_DeletePost(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "unknown id", repoErr: store.ErrPostNotFound, wantErr: ErrNotFound},
		{name: "store failure", repoErr: store.ErrExecutingStatement, wantErr: ErrStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestPostSvc(t, ctrl)

			repo.EXPECT().DeletePost(gomock.Any(), int64(9)).Return(tt.repoErr)

			err := svc.DeletePost(context.Background(), 9)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	repo.EXPECT().GetPost(gomock.Any(), int64(5)).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.GetPost(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostService_ListPosts(t *testing.T) {
	tests := []struct {
		name      string
		query     models.PostQuery
		total     int64
		items     []models.Post
		wantQuery models.PostQuery
		wantPages int
		wantItems int
	}{
		{
			name:      "page below one is clamped",
			query:     models.PostQuery{Page: 0},
			total:     3,
			items:     make([]models.Post, 3),
			wantQuery: models.PostQuery{Page: 1},
			wantPages: 1,
			wantItems: 3,
		},
		{
			name:      "twelve posts, third page",
			query:     models.PostQuery{Page: 3},
			total:     12,
			items:     make([]models.Post, 2),
			wantQuery: models.PostQuery{Page: 3},
			wantPages: 3,
			wantItems: 2,
		},
		{
			name:      "search without matches",
			query:     models.PostQuery{Search: " xyz123notfound ", Page: 1},
			total:     0,
			items:     nil,
			wantQuery: models.PostQuery{Search: "xyz123notfound", Page: 1},
			wantPages: 0,
			wantItems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestPostSvc(t, ctrl)

			repo.EXPECT().CountPosts(gomock.Any(), tt.wantQuery.Search).Return(tt.total, nil)
			repo.EXPECT().ListPosts(gomock.Any(), tt.wantQuery).Return(tt.items, nil)

			page, err := svc.ListPosts(context.Background(), tt.query)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery.Page, page.Page)
			assert.Equal(t, models.PostsPageSize, page.PageSize)
			assert.Equal(t, tt.total, page.TotalCount)
			assert.Equal(t, tt.wantPages, page.TotalPages())
			assert.NotNil(t, page.Items)
			assert.Len(t, page.Items, tt.wantItems)
		})
	}
}

func TestPostService_ListPosts_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestPostSvc(t, ctrl)

	repo.EXPECT().CountPosts(gomock.Any(), "").Return(int64(0), store.ErrExecutingQuery)

	_, err := svc.ListPosts(context.Background(), models.PostQuery{Page: 1})
	assert.ErrorIs(t, err, ErrStore)
}
