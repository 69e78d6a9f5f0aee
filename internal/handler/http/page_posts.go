package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	query := models.PostQuery{Search: q.Get("search"), Page: page}

	data := indexPage{basePage: newBasePage(r, "Blog Posts")}

	posts, err := h.services.PostService.ListPosts(r.Context(), query)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listPosts").Msg("failed to list posts")
		data.Error = msgSomethingWentWrong
		data.Posts = models.PostPage{Page: query.NormalizedPage(), PageSize: models.PostsPageSize, Search: query.Search}
		h.render(w, r, http.StatusInternalServerError, pageIndex, data)
		return
	}

	data.Posts = posts
	h.render(w, r, http.StatusOK, pageIndex, data)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageDashboard, newBasePage(r, "Dashboard"))
}

func (h *Handler) newPostPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pagePostForm, newPostForm(r, models.PostInput{}))
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	in := postInputFromForm(r)

	post, err := h.services.PostService.CreatePost(r.Context(), in)
	if err != nil {
		h.postFormFailed(w, r, newPostForm(r, in), err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", post.ID).Msg("post created")
	utils.RedirectWithFlash(w, r, "/", utils.FlashMessage, msgPostCreated)
}

func (h *Handler) editPostPage(w http.ResponseWriter, r *http.Request) {
	postID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		h.redirectOnPostError(w, r, err)
		return
	}

	in := models.PostInput{Title: post.Title, Content: post.Content}
	h.render(w, r, http.StatusOK, pagePostForm, editPostForm(r, postID, in))
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	in := postInputFromForm(r)

	if _, err := h.services.PostService.UpdatePost(r.Context(), postID, in); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.redirectOnPostError(w, r, err)
			return
		}
		h.postFormFailed(w, r, editPostForm(r, postID, in), err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", postID).Msg("post updated")
	utils.RedirectWithFlash(w, r, "/", utils.FlashMessage, msgPostUpdated)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), postID); err != nil {
		h.redirectOnPostError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", postID).Msg("post deleted")
	utils.RedirectWithFlash(w, r, "/", utils.FlashMessage, msgPostDeleted)
}

// postFormFailed re-renders the form with the submitted values. Validation
// failures are listed; anything else is logged and shown generically.
func (h *Handler) postFormFailed(w http.ResponseWriter, r *http.Request, page postFormPage, err error) {
	if _, ok := validators.AsValidationErrors(err); !ok {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.postFormFailed").Msg("failed to save post")
	}
	page.Errors = messagesFromError(err)
	h.render(w, r, statusFromError(err), pagePostForm, page)
}

// redirectOnPostError sends the user back to the listing with the error.
func (h *Handler) redirectOnPostError(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, service.ErrNotFound) {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.redirectOnPostError").Msg("post operation failed")
	}
	utils.RedirectWithFlash(w, r, "/", utils.FlashError, messageFromError(err))
}

func postInputFromForm(r *http.Request) models.PostInput {
	return models.PostInput{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}
}

func newPostForm(r *http.Request, in models.PostInput) postFormPage {
	return postFormPage{
		basePage: newBasePage(r, "New Post"),
		Heading:  "Create New Post",
		Action:   "/posts",
		Submit:   "Create Post",
		Input:    in,
	}
}

func editPostForm(r *http.Request, postID int64, in models.PostInput) postFormPage {
	return postFormPage{
		basePage: newBasePage(r, "Edit Post"),
		Heading:  "Edit Post",
		Action:   "/posts/" + strconv.FormatInt(postID, 10) + "/edit",
		Submit:   "Update Post",
		Input:    in,
	}
}
