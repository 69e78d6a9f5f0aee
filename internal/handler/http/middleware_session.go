package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/guard"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/rs/zerolog"
)

const sessionCookieName = "blog_session"

// withSession resolves the session cookie and, when it names a live
// session, stores the session in the request context. A cookie naming an
// unknown or expired session is cleared.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		s, ok := h.sessions.Lookup(cookie.Value)
		if !ok {
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", s.UserID)
		})
		ctx := l.WithContext(utils.WithSession(r.Context(), s))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession sends visitors without a session to the login page.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAction asks the guard whether the session holder may perform
// action. Unauthenticated requests go to the login page; any other denial
// is answered by deny.
func (h *Handler) requireAction(action guard.Action, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, _ := utils.GetSessionFromContext(r.Context())

			decision := guard.Decide(guard.ForSession(s, action))
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Warn().
				Stringer("action", action).
				Str("reason", string(decision.Reason)).
				Msg("access denied")

			if decision.Reason == guard.ReasonUnauthenticated {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			deny(w, r)
		})
	}
}

// forbidden renders the access denied page with 403.
func (h *Handler) forbidden(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusForbidden, pageForbidden, newBasePage(r, "Access Denied"))
}

// redirectHome is the denial used by the admin pages.
func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
