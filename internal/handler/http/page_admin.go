package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	data := adminPage{basePage: newBasePage(r, "Admin Dashboard"), Roles: models.Roles}

	stats, err := h.services.DashboardService.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.adminDashboard").Msg("failed to load stats")
		data.Error = msgSomethingWentWrong
		h.render(w, r, http.StatusInternalServerError, pageAdmin, data)
		return
	}

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.adminDashboard").Msg("failed to list users")
		data.Error = msgSomethingWentWrong
		h.render(w, r, http.StatusInternalServerError, pageAdmin, data)
		return
	}

	data.Stats = stats
	data.Users = users
	h.render(w, r, http.StatusOK, pageAdmin, data)
}

// changeUserRole applies the role chosen in the admin table. The guard
// check on the target happens in the service; a plain permission denial
// sends the user home, a refused change comes back as a banner.
func (h *Handler) changeUserRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	targetID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	actor, _ := utils.GetSessionFromContext(r.Context())
	role := models.Role(r.PostFormValue("role"))

	err := h.services.UserService.ChangeRole(r.Context(), actor, targetID, role)
	switch {
	case err == nil:
		log.Info().Int64("target_id", targetID).Str("role", role.String()).Msg("user role changed")
		utils.RedirectWithFlash(w, r, "/admin", utils.FlashMessage, msgRoleUpdated)
	case errors.Is(err, service.ErrUnauthorized):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		if _, isValidation := validators.AsValidationErrors(err); !isValidation && !errors.Is(err, service.ErrNotFound) {
			log.Err(err).Str("func", "*Handler.changeUserRole").Msg("failed to change role")
		}
		utils.RedirectWithFlash(w, r, "/admin", utils.FlashError, messageFromError(err))
	}
}
