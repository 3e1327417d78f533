package controllers

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"
	"runtime/debug"

	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// templateData is the payload handed to every view. Validation messages
// travel in FormError and the rejected input in FormData, so a failed
// submission re-renders the same page with the message inline.
type templateData struct {
	Title       string
	FormError   string
	FormData    map[string]string
	CurrentUser *models.User
	Post        *models.Post
	Posts       []*models.Post
	Comments    []*models.Comment
}

// loadTemplates parses every page template against the shared layout.
func loadTemplates(htmlDir string) map[string]*template.Template {
	pages := []string{"index", "display", "create", "update", "login", "register"}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFiles(
			filepath.Join(htmlDir, "layout.html"),
			filepath.Join(htmlDir, page+".html"),
		))
	}
	return templates
}

// render executes a page into a buffer first so template failures become a
// clean 500 instead of a half-written response.
func render(w http.ResponseWriter, templates map[string]*template.Template, page string, data *templateData) {
	ts, ok := templates[page]
	if !ok {
		serverError(w, errors.New("unknown template "+page))
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "layout", data); err != nil {
		serverError(w, err)
		return
	}
	buf.WriteTo(w)
}

func serverError(w http.ResponseWriter, err error) {
	log.Printf("%v\n%s", err, debug.Stack())
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}

func forbidden(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
}

// fail maps a service error onto the matching HTTP response: missing rows
// to 404, ownership violations to 403, everything else to 500.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		notFound(w)
	case errors.Is(err, services.ErrForbidden):
		forbidden(w)
	default:
		serverError(w, err)
	}
}
