package web

import (
	"github.com/gorilla/mux"

	"github.com/aknur/careadmin/internal/config"
	"github.com/aknur/careadmin/internal/db"
	"github.com/aknur/careadmin/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	store := sqlite.New(database, logger)

	authEnabled := cfg.AdminPasswordHash != ""
	handler := NewHandler(store, authEnabled)
	authHandler := NewAuthHandler(cfg, handler.render)

	// Open endpoints
	r.HandleFunc("/healthz", HealthHandler).Methods("GET")
	r.HandleFunc("/version", VersionHandler(version, buildTime)).Methods("GET")
	if authEnabled {
		r.HandleFunc("/login", authHandler.LoginForm).Methods("GET")
		r.HandleFunc("/login", authHandler.Login).Methods("POST")
		r.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	}

	// Admin pages, session-guarded when a password hash is configured
	admin := r.PathPrefix("/").Subrouter()
	if authEnabled {
		admin.Use(SessionAuthMiddleware(cfg.JWTSecret))
	}

	admin.HandleFunc("/", handler.Dashboard).Methods("GET")
	admin.HandleFunc("/{entity}", handler.List).Methods("GET")
	admin.HandleFunc("/{entity}/create", handler.CreateForm).Methods("GET")
	admin.HandleFunc("/{entity}/create", handler.Create).Methods("POST")
	admin.HandleFunc("/{entity}/{id:[0-9]+}/edit", handler.EditForm).Methods("GET")
	admin.HandleFunc("/{entity}/{id:[0-9]+}/edit", handler.Edit).Methods("POST")
	admin.HandleFunc("/{entity}/{id:[0-9]+}/delete", handler.Delete).Methods("POST")

	return r
}
