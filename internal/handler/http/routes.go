package http

import (
	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "text/html", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	router.Get("/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Post("/logout", h.logout)
	})

	// routes for every signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Use(h.requireAction(guard.ViewPosts, h.forbidden))

		r.Get("/", h.listPosts)
		r.Get("/dashboard", h.dashboard)
	})

	// post management
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.With(h.requireAction(guard.CreatePost, h.forbidden)).Get("/posts/new", h.newPostPage)
		r.With(h.requireAction(guard.CreatePost, h.forbidden)).Post("/posts", h.createPost)
		r.With(h.requireAction(guard.EditPost, h.forbidden)).Get("/posts/{id}/edit", h.editPostPage)
		r.With(h.requireAction(guard.EditPost, h.forbidden)).Post("/posts/{id}/edit", h.updatePost)
		r.With(h.requireAction(guard.DeletePost, h.forbidden)).Post("/posts/{id}/delete", h.deletePost)
	})

	// admin panel
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Use(h.requireAction(guard.ViewAdminDashboard, h.redirectHome))

		r.Get("/admin", h.adminDashboard)
		r.Post("/admin/users/{id}/role", h.changeUserRole)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
