package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/notevault/notevault/internal/auth"
	"github.com/notevault/notevault/internal/config"
	"github.com/notevault/notevault/internal/db"
	"github.com/notevault/notevault/internal/handlers"
	"github.com/notevault/notevault/internal/middleware"
	"github.com/notevault/notevault/internal/store"
)

func main() {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	var dbConn *sql.DB
	switch cfg.DBDriver {
	case "mysql":
		dbConn, err = db.InitMySQL(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBName)
	default:
		dbConn, err = db.InitSQLite(cfg.SQLitePath)
	}
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbConn.Close()

	st := store.NewSQLStore(dbConn)
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/", handlers.HomeHandler).Methods("GET")
	r.HandleFunc("/create-account", handlers.CreateAccountHandler(st, jwtService, logger)).Methods("POST")
	r.HandleFunc("/login", handlers.LoginHandler(st, jwtService, logger)).Methods("POST")

	// Authenticated routes
	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.JWTMiddleware(jwtService))

	s.HandleFunc("/get-user", handlers.GetUserHandler(st, logger)).Methods("GET")
	s.HandleFunc("/add-note", handlers.AddNoteHandler(st, logger)).Methods("POST")
	s.HandleFunc("/edit-note/{noteId}", handlers.EditNoteHandler(st, logger)).Methods("POST")
	s.HandleFunc("/delete-note/{noteId}", handlers.DeleteNoteHandler(st, logger)).Methods("DELETE")
	s.HandleFunc("/get-all-notes", handlers.GetAllNotesHandler(st, logger)).Methods("POST")
	s.HandleFunc("/update-note-pinned/{noteId}", handlers.UpdateNotePinnedHandler(st, logger)).Methods("PUT")
	s.HandleFunc("/ai/process", handlers.AIProcessHandler(cfg.OpenAIKey, logger)).Methods("POST")

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
