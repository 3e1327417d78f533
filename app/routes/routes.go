package routes

import (
	"net/http"

	"inkwell/app/controllers"
	"inkwell/app/middleware"

	"github.com/gorilla/mux"
)

// SetupRoutes wires the controllers into the router. Mutating post routes
// sit behind RequireAuth; ownership is enforced deeper, in the services.
func SetupRoutes(
	blog *controllers.BlogController,
	auth *controllers.AuthController,
	authn *middleware.Authenticator,
	staticDir string,
) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware.
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(authn.Attach)

	// Blog pages.
	router.HandleFunc("/", blog.Index).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/display", blog.Display).Methods("GET", "POST")
	router.Handle("/create",
		authn.RequireAuth(http.HandlerFunc(blog.Create))).Methods("GET", "POST")
	router.Handle("/{id:[0-9]+}/update",
		authn.RequireAuth(http.HandlerFunc(blog.Update))).Methods("GET", "POST")
	router.Handle("/{id:[0-9]+}/delete",
		authn.RequireAuth(http.HandlerFunc(blog.Delete))).Methods("POST")

	// Auth pages.
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", auth.Register).Methods("GET", "POST")
	authRouter.HandleFunc("/login", auth.Login).Methods("GET", "POST")
	authRouter.Handle("/logout",
		authn.RequireAuth(http.HandlerFunc(auth.Logout))).Methods("POST")

	// Serve static files.
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return router
}

// StartServer runs the HTTP server on addr.
func StartServer(addr string, handler http.Handler) error {
	return http.ListenAndServe(addr, handler)
}
