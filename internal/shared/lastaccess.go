package shared

import (
	"net/http"
	"net/url"
)

// LastAccessCookie names the client-held cookie carrying the previous visit time.
const LastAccessCookie = "ultimoAcesso"

// SetLastAccess overwrites the last-access cookie. The value is URL-encoded so
// locale formats with commas and spaces survive the cookie header.
func SetLastAccess(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LastAccessCookie,
		Value:    url.QueryEscape(value),
		Path:     "/",
		HttpOnly: true,
	})
}

// LastAccess reads the value stamped by the previous response. ok is false when
// the cookie is absent or cannot be decoded.
func LastAccess(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(LastAccessCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return value, true
}
