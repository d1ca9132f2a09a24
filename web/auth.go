package web

import (
	"net/http"
	"time"

	"github.com/flosch/pongo2/v6"
	"golang.org/x/crypto/bcrypt"

	"github.com/aknur/careadmin/internal/config"
)

// AuthHandler implements the single-operator login. The password hash
// lives in config; a valid login stores a signed token in an HttpOnly
// cookie.
type AuthHandler struct {
	passwordHash    string
	jwtSecret       string
	sessionDuration time.Duration
	render          *renderer
}

func NewAuthHandler(cfg *config.Config, render *renderer) *AuthHandler {
	return &AuthHandler{
		passwordHash:    cfg.AdminPasswordHash,
		jwtSecret:       cfg.JWTSecret,
		sessionDuration: cfg.SessionDuration,
		render:          render,
	}
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.render(w, http.StatusOK, "login.html", pongo2.Context{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}
	password := r.PostForm.Get("password")
	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(password)); err != nil {
		h.render.render(w, http.StatusUnauthorized, "login.html", pongo2.Context{
			"error": "Wrong password.",
		})
		return
	}

	token, err := newSessionToken(h.jwtSecret, h.sessionDuration)
	if err != nil {
		logger.Error("session token", "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessionDuration),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
