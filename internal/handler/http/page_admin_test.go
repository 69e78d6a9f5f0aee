package http

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminDashboard(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, 1, "alice", models.RoleAdmin)

	env.stats.statsFn = func(context.Context) (models.DashboardStats, error) {
		return models.DashboardStats{
			TotalUsers:  3,
			UsersByRole: map[models.Role]int64{models.RoleAdmin: 1, models.RoleEditor: 0, models.RoleViewer: 2},
			TotalPosts:  12,
		}, nil
	}
	env.users.listFn = func(context.Context) ([]models.User, error) {
		return []models.User{
			{UserID: 1, Username: "alice", Role: models.RoleAdmin},
			{UserID: 2, Username: "bob", Role: models.RoleViewer},
		}, nil
	}

	rec := env.get("/admin", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<strong>3</strong> users")
	assert.Contains(t, body, "<strong>12</strong> posts")
	assert.Contains(t, body, "Viewer: 2")
	assert.Contains(t, body, `action="/admin/users/2/role"`)
	// the admin's own row carries no role form
	assert.NotContains(t, body, `action="/admin/users/1/role"`)
	assert.Contains(t, body, `<option value="viewer" selected>`)
}

func TestAdminDashboard_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, 1, "alice", models.RoleAdmin)
	env.stats.statsFn = func(context.Context) (models.DashboardStats, error) {
		return models.DashboardStats{}, service.ErrStore
	}

	rec := env.get("/admin", cookie)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSomethingWentWrong)
}

func TestChangeUserRole(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantPath  string
		wantQuery url.Values
	}{
		{
			name:      "success",
			wantPath:  "/admin",
			wantQuery: url.Values{"message": {"User role updated successfully."}},
		},
		{
			name:      "own role",
			err:       validators.ValidationErrors{validators.NewValidationError(validators.FieldRole, validators.RuleSelf)},
			wantPath:  "/admin",
			wantQuery: url.Values{"error": {"You cannot change your own role."}},
		},
		{
			name:      "invalid role",
			err:       validators.ValidationErrors{validators.NewValidationError(validators.FieldRole, validators.RuleInvalid)},
			wantPath:  "/admin",
			wantQuery: url.Values{"error": {"Invalid role selected."}},
		},
		{
			name:      "unknown target",
			err:       service.NotFoundError{Entity: service.EntityUser, ID: 2},
			wantPath:  "/admin",
			wantQuery: url.Values{"error": {"User not found"}},
		},
		{
			name:      "not permitted",
			err:       service.UnauthorizedError{Reason: guard.ReasonInsufficientPermissions},
			wantPath:  "/",
			wantQuery: url.Values{},
		},
		{
			name:      "store failure",
			err:       service.ErrStore,
			wantPath:  "/admin",
			wantQuery: url.Values{"error": {msgSomethingWentWrong}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			cookie := env.loginAs(t, 1, "alice", models.RoleAdmin)
			env.users.changeRoleFn = func(_ context.Context, actor models.Session, target int64, role models.Role) error {
				assert.Equal(t, int64(1), actor.UserID)
				assert.Equal(t, models.RoleAdmin, actor.Role)
				assert.Equal(t, int64(2), target)
				assert.Equal(t, models.RoleEditor, role)
				return tt.err
			}

			rec := env.post("/admin/users/2/role", url.Values{"role": {"editor"}}, cookie)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			path, q := location(t, rec)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantQuery, q)
		})
	}
}

func TestChangeUserRole_MalformedID(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, 1, "alice", models.RoleAdmin)

	rec := env.post("/admin/users/x/role", url.Values{"role": {"editor"}}, cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
