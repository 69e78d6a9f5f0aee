package utils

import (
	"net/http"
	"net/url"
	"strconv"
)

// Query parameters read by the listing and admin pages to show a
// one-off status banner after a redirect.
const (
	FlashMessage = "message"
	FlashError   = "error"
)

// RedirectWithFlash answers with 303 See Other to path, adding a single
// query parameter (kind = text). An empty text redirects to the bare path.
//
// Example usage:
//
//	RedirectWithFlash(w, r, "/", FlashMessage, "Post created successfully")
//	// Location: /?message=Post+created+successfully
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, path, kind, text string) {
	target := path
	if text != "" {
		target += "?" + url.Values{kind: {text}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// ParseID parses a positive int64 path parameter.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
