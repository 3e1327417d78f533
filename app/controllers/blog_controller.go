package controllers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// BlogController handles the post pages: listing, display with comments,
// and the authenticated create/update/delete flows.
type BlogController struct {
	posts     *services.PostService
	comments  *services.CommentService
	templates map[string]*template.Template
}

// NewBlogController creates a new BlogController rendering templates from
// htmlDir.
func NewBlogController(posts *services.PostService, comments *services.CommentService, htmlDir string) *BlogController {
	return &BlogController{
		posts:     posts,
		comments:  comments,
		templates: loadTemplates(htmlDir),
	}
}

// Index lists all posts, newest first.
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.posts.ListPosts()
	if err != nil {
		serverError(w, err)
		return
	}

	render(w, bc.templates, "index", &templateData{
		Title:       "Posts",
		CurrentUser: middleware.CurrentUser(r),
		Posts:       posts,
	})
}

// Display shows a single post with its comments. A POST adds a visitor
// comment: invalid input re-renders the same page with the message, valid
// input redirects back here so a refresh cannot resubmit.
func (bc *BlogController) Display(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	post, err := bc.posts.GetPost(id)
	if err != nil {
		fail(w, err)
		return
	}

	data := &templateData{
		Title:       post.Title,
		CurrentUser: middleware.CurrentUser(r),
		Post:        post,
	}

	if r.Method == http.MethodPost {
		name := r.FormValue("name")
		text := r.FormValue("comment")

		_, err := bc.comments.AddComment(id, name, text)
		if err == nil {
			http.Redirect(w, r, fmt.Sprintf("/%d/display", id), http.StatusSeeOther)
			return
		}
		if !services.IsValidation(err) {
			fail(w, err)
			return
		}

		data.FormError = err.Error()
		data.FormData = map[string]string{"name": name, "comment": text}
	}

	comments, err := bc.comments.ListForPost(id)
	if err != nil {
		fail(w, err)
		return
	}
	data.Comments = comments

	render(w, bc.templates, "display", data)
}

// Create shows the new-post form and handles its submission.
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)

	if r.Method != http.MethodPost {
		render(w, bc.templates, "create", &templateData{
			Title:       "New Post",
			CurrentUser: user,
		})
		return
	}

	in := services.PostInput{
		Title:      r.FormValue("title"),
		Subtitle:   r.FormValue("subtitle"),
		Body:       r.FormValue("body"),
		DatePosted: r.FormValue("date_posted"),
	}

	_, err := bc.posts.CreatePost(in, user.ID)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !services.IsValidation(err) {
		fail(w, err)
		return
	}

	render(w, bc.templates, "create", &templateData{
		Title:       "New Post",
		FormError:   err.Error(),
		FormData:    postFormData(in),
		CurrentUser: user,
	})
}

// Update shows the edit form pre-filled with the stored post and handles
// its submission. Both verbs require ownership.
func (bc *BlogController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}
	user := middleware.CurrentUser(r)

	if r.Method != http.MethodPost {
		post, err := bc.posts.GetOwnedPost(id, user.ID)
		if err != nil {
			fail(w, err)
			return
		}

		render(w, bc.templates, "update", &templateData{
			Title:       "Edit Post",
			CurrentUser: user,
			Post:        post,
			FormData: map[string]string{
				"title":       post.Title,
				"subtitle":    post.Subtitle,
				"body":        post.Body,
				"date_posted": post.DatePosted,
			},
		})
		return
	}

	in := services.PostInput{
		Title:      r.FormValue("title"),
		Subtitle:   r.FormValue("subtitle"),
		Body:       r.FormValue("body"),
		DatePosted: r.FormValue("date_posted"),
	}

	_, err = bc.posts.UpdatePost(id, in, user.ID)
	if err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !services.IsValidation(err) {
		fail(w, err)
		return
	}

	render(w, bc.templates, "update", &templateData{
		Title:       "Edit Post",
		FormError:   err.Error(),
		FormData:    postFormData(in),
		CurrentUser: user,
	})
}

// Delete removes a post and its comments, then returns to the index.
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		notFound(w)
		return
	}

	if err := bc.posts.DeletePost(id, middleware.CurrentUser(r).ID); err != nil {
		fail(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postFormData(in services.PostInput) map[string]string {
	return map[string]string{
		"title":       in.Title,
		"subtitle":    in.Subtitle,
		"body":        in.Body,
		"date_posted": in.DatePosted,
	}
}
