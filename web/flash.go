package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "careadmin_flash"

// setFlash stores a one-shot notice in a short-lived cookie, read and
// cleared by the next page render.
func setFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// takeFlash returns the pending notice, if any, and clears the cookie.
func takeFlash(w http.ResponseWriter, r *http.Request) map[string]string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return map[string]string{"level": level, "message": message}
}
