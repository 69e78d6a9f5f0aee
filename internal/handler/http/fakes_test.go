package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/session"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/require"
)

// errNotConfigured is returned by a fake whose behaviour the test left unset.
var errNotConfigured = errors.New("fake not configured")

type fakePostService struct {
	createFn func(ctx context.Context, in models.PostInput) (models.Post, error)
	updateFn func(ctx context.Context, postID int64, in models.PostInput) (models.Post, error)
	deleteFn func(ctx context.Context, postID int64) error
	getFn    func(ctx context.Context, postID int64) (models.Post, error)
	listFn   func(ctx context.Context, query models.PostQuery) (models.PostPage, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, in models.PostInput) (models.Post, error) {
	if f.createFn == nil {
		return models.Post{}, errNotConfigured
	}
	return f.createFn(ctx, in)
}

func (f *fakePostService) UpdatePost(ctx context.Context, postID int64, in models.PostInput) (models.Post, error) {
	if f.updateFn == nil {
		return models.Post{}, errNotConfigured
	}
	return f.updateFn(ctx, postID, in)
}

func (f *fakePostService) DeletePost(ctx context.Context, postID int64) error {
	if f.deleteFn == nil {
		return errNotConfigured
	}
	return f.deleteFn(ctx, postID)
}

func (f *fakePostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	if f.getFn == nil {
		return models.Post{}, errNotConfigured
	}
	return f.getFn(ctx, postID)
}

func (f *fakePostService) ListPosts(ctx context.Context, query models.PostQuery) (models.PostPage, error) {
	if f.listFn == nil {
		return models.PostPage{Page: query.NormalizedPage(), PageSize: models.PostsPageSize}, nil
	}
	return f.listFn(ctx, query)
}

type fakeUserService struct {
	registerFn     func(ctx context.Context, reg models.Registration) (models.User, error)
	authenticateFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	changeRoleFn   func(ctx context.Context, actor models.Session, targetUserID int64, role models.Role) error
	listFn         func(ctx context.Context) ([]models.User, error)
}

func (f *fakeUserService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, errNotConfigured
	}
	return f.registerFn(ctx, reg)
}

func (f *fakeUserService) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	if f.authenticateFn == nil {
		return models.User{}, errNotConfigured
	}
	return f.authenticateFn(ctx, creds)
}

func (f *fakeUserService) ChangeRole(ctx context.Context, actor models.Session, targetUserID int64, role models.Role) error {
	if f.changeRoleFn == nil {
		return errNotConfigured
	}
	return f.changeRoleFn(ctx, actor, targetUserID, role)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeUserService) EnsureAdmin(context.Context, string, string) error {
	return nil
}

type fakeDashboardService struct {
	statsFn func(ctx context.Context) (models.DashboardStats, error)
}

func (f *fakeDashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	if f.statsFn == nil {
		return models.DashboardStats{UsersByRole: map[models.Role]int64{}}, nil
	}
	return f.statsFn(ctx)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// testEnv is a fully routed handler over fake services and a real
// session store.
type testEnv struct {
	router   http.Handler
	sessions *session.Store
	posts    *fakePostService
	users    *fakeUserService
	stats    *fakeDashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		sessions: session.NewStore(time.Hour),
		posts:    &fakePostService{},
		users:    &fakeUserService{},
		stats:    &fakeDashboardService{},
	}

	svcs := &service.Services{
		PostService:      env.posts,
		UserService:      env.users,
		DashboardService: env.stats,
		AppInfoService:   &mockAppInfoService{version: "test-version"},
	}

	h, err := NewHandler(svcs, env.sessions, config.Server{}, logger.Nop())
	require.NoError(t, err)

	env.router = h.Init()
	return env
}

// loginAs creates a session directly in the store and returns its cookie.
func (e *testEnv) loginAs(t *testing.T, userID int64, username string, role models.Role) *http.Cookie {
	t.Helper()

	token, err := e.sessions.Create(userID, username, role)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookieName, Value: token}
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// location returns the decoded redirect target.
func location(t *testing.T, rec *httptest.ResponseRecorder) (string, url.Values) {
	t.Helper()

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	return loc.Path, loc.Query()
}
