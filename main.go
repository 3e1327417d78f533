package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"
	"inkwell/app/sessions"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "init":
		initDb()
	case "clean":
		clean()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>

Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the blog server (migrates the schema first).
  init      Initialize an empty database.
  clean     Remove the database and session data.

Configuration is read from the environment (a .env file is honored):
INKWELL_ADDR, INKWELL_DB, INKWELL_SESSIONS_DIR, INKWELL_HTML_DIR,
INKWELL_STATIC_DIR.
`
	fmt.Println(helpText)
}

// serve wires the whole application together and runs the HTTP server.
func serve() {
	cfg := config.Load()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := sessions.Open(cfg.SessionsDir)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	defer store.Close()

	postRepo := repositories.NewSQLPostRepository(db)
	commentRepo := repositories.NewSQLCommentRepository(db)
	userRepo := repositories.NewSQLUserRepository(db)

	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	authService := services.NewAuthService(userRepo, store)

	blogController := controllers.NewBlogController(postService, commentService, cfg.HTMLDir)
	authController := controllers.NewAuthController(authService, cfg.HTMLDir)
	authenticator := middleware.NewAuthenticator(authService)

	router := routes.SetupRoutes(blogController, authController, authenticator, cfg.StaticDir)

	log.Printf("Starting blog server on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initDb creates an empty database with the schema applied.
func initDb() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	fmt.Println("Database initialized successfully")
}

// clean removes the database file and the session store.
func clean() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to remove the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.Remove(cfg.DBPath); err != nil {
		log.Fatalf("Failed to remove database: %v", err)
	}
	if err := os.RemoveAll(cfg.SessionsDir); err != nil {
		log.Fatalf("Failed to remove session store: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}
