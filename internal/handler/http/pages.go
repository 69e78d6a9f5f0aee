package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names, one per file under templates/ besides the layout.
const (
	pageLogin     = "login"
	pageRegister  = "register"
	pageIndex     = "index"
	pageDashboard = "dashboard"
	pagePostForm  = "post_form"
	pageAdmin     = "admin"
	pageForbidden = "forbidden"
)

var pageNames = []string{pageLogin, pageRegister, pageIndex, pageDashboard, pagePostForm, pageAdmin, pageForbidden}

// pages maps a page name to the layout and page content parsed together.
type pages map[string]*template.Template

var formLimits = map[string]int{
	"title_max":    validators.TitleMaxLength,
	"content_max":  validators.ContentMaxLength,
	"username_min": validators.UsernameMinLength,
	"username_max": validators.UsernameMaxLength,
	"password_min": validators.PasswordMinLength,
	"password_max": validators.PasswordMaxLength,
}

var roleLabels = map[models.Role]string{
	models.RoleAdmin:  "Admin",
	models.RoleEditor: "Editor",
	models.RoleViewer: "Viewer",
}

var templateFuncs = template.FuncMap{
	"limit": func(name string) int { return formLimits[name] },
	"roleLabel": func(r models.Role) string {
		if label, ok := roleLabels[r]; ok {
			return label
		}
		return r.String()
	},
	"formatDate": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	"pageURL":    pageURL,
	"pages": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out
	},
	"inc": func(i int) int { return i + 1 },
	"dec": func(i int) int { return i - 1 },
}

func parsePages() (pages, error) {
	p := make(pages, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		p[name] = t
	}
	return p, nil
}

// pageURL builds a listing link that keeps the search term.
func pageURL(search string, page int) string {
	q := url.Values{"page": {strconv.Itoa(page)}}
	if search != "" {
		q.Set("search", search)
	}
	return "/?" + q.Encode()
}

// render executes the page into a buffer first so a template failure never
// leaves a half-written response behind.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	log := logger.FromRequest(r)

	t, ok := h.pages[name]
	if !ok {
		log.Error().Str("func", "*Handler.render").Str("page", name).Msg("unknown page")
		http.Error(w, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", name).Msg("failed to execute template")
		http.Error(w, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// basePage is embedded into every page model and feeds the layout.
type basePage struct {
	Title   string
	Session models.Session
	Message string
	Error   string
}

func newBasePage(r *http.Request, title string) basePage {
	s, _ := utils.GetSessionFromContext(r.Context())
	q := r.URL.Query()
	return basePage{
		Title:   title,
		Session: s,
		Message: q.Get(utils.FlashMessage),
		Error:   q.Get(utils.FlashError),
	}
}

func (p basePage) LoggedIn() bool {
	return p.Session.UserID > 0
}

func (p basePage) CanManagePosts() bool {
	return guard.Can(p.Session, guard.CreatePost)
}

func (p basePage) IsAdmin() bool {
	return guard.Can(p.Session, guard.ViewAdminDashboard)
}

type loginPage struct {
	basePage
	Username string
}

type registerPage struct {
	basePage
	Username string
	Errors   []string
}

type indexPage struct {
	basePage
	Posts models.PostPage
}

type postFormPage struct {
	basePage
	Heading string
	Action  string
	Submit  string
	Input   models.PostInput
	Errors  []string
}

type adminPage struct {
	basePage
	Stats models.DashboardStats
	Users []models.User
	Roles []models.Role
}
