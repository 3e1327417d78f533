package controllers

import (
	"html/template"
	"net/http"

	"inkwell/app/middleware"
	"inkwell/app/services"
	"inkwell/app/sessions"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	auth      *services.AuthService
	templates map[string]*template.Template
}

// NewAuthController creates a new AuthController rendering templates from
// htmlDir.
func NewAuthController(auth *services.AuthService, htmlDir string) *AuthController {
	return &AuthController{
		auth:      auth,
		templates: loadTemplates(htmlDir),
	}
}

// Register shows the registration form and handles its submission.
// Successful registration logs the new user straight in.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, ac.templates, "register", &templateData{Title: "Register"})
		return
	}

	name := r.FormValue("name")
	password := r.FormValue("password")

	user, err := ac.auth.Register(name, password)
	if err != nil {
		if !services.IsValidation(err) {
			serverError(w, err)
			return
		}
		render(w, ac.templates, "register", &templateData{
			Title:     "Register",
			FormError: err.Error(),
			FormData:  map[string]string{"name": name},
		})
		return
	}

	ac.startSession(w, r, user.ID)
}

// Login shows the login form and handles its submission.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		render(w, ac.templates, "login", &templateData{Title: "Log In"})
		return
	}

	name := r.FormValue("name")
	password := r.FormValue("password")

	user, err := ac.auth.Login(name, password)
	if err != nil {
		if !services.IsValidation(err) {
			serverError(w, err)
			return
		}
		render(w, ac.templates, "login", &templateData{
			Title:     "Log In",
			FormError: err.Error(),
			FormData:  map[string]string{"name": name},
		})
		return
	}

	ac.startSession(w, r, user.ID)
}

// Logout destroys the current session and clears its cookie.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := ac.auth.EndSession(cookie.Value); err != nil {
			serverError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// startSession opens a session, sets its cookie and sends the user home.
func (ac *AuthController) startSession(w http.ResponseWriter, r *http.Request, userID int) {
	token, err := ac.auth.StartSession(userID)
	if err != nil {
		serverError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessions.Duration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
