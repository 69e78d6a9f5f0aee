package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, pageLogin, loginPage{basePage: newBasePage(r, "Login")})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.UserService.Authenticate(r.Context(), creds)
	if err != nil {
		page := loginPage{basePage: newBasePage(r, "Login"), Username: strings.TrimSpace(creds.Username)}
		page.Error = messageFromError(err)
		h.render(w, r, statusFromError(err), pageLogin, page)
		return
	}

	token, err := h.sessions.Create(user.UserID, user.Username, user.Role)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("failed to create session")
		page := loginPage{basePage: newBasePage(r, "Login"), Username: user.Username}
		page.Error = msgSomethingWentWrong
		h.render(w, r, http.StatusInternalServerError, pageLogin, page)
		return
	}

	// a fresh login never reuses the previous token
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		h.sessions.Destroy(cookie.Value)
	}
	h.setSessionCookie(w, token)

	log.Info().Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("user logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, registerPage{basePage: newBasePage(r, "Register")})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	reg := models.Registration{
		Username:        r.PostFormValue("username"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}

	user, err := h.services.UserService.Register(r.Context(), reg)
	if err != nil {
		page := registerPage{
			basePage: newBasePage(r, "Register"),
			Username: strings.TrimSpace(reg.Username),
			Errors:   messagesFromError(err),
		}
		h.render(w, r, statusFromError(err), pageRegister, page)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	utils.RedirectWithFlash(w, r, "/login", utils.FlashMessage, msgRegistered)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		h.sessions.Destroy(cookie.Value)
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
