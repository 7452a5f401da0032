package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mergington-hs/activity-signup/internal/config"
	"github.com/mergington-hs/activity-signup/internal/database"
	"github.com/mergington-hs/activity-signup/internal/handlers"
	"github.com/mergington-hs/activity-signup/internal/jobs"
	"github.com/mergington-hs/activity-signup/internal/repository"
	cronjobs "github.com/mergington-hs/activity-signup/internal/scheduler"
	"github.com/mergington-hs/activity-signup/internal/services"
	"github.com/mergington-hs/activity-signup/internal/web"
	"github.com/mergington-hs/activity-signup/pkg/email"
	"github.com/mergington-hs/activity-signup/pkg/logger"
	"github.com/mergington-hs/activity-signup/pkg/middleware"
	"github.com/rs/cors"
)

// newRouter wires all routes and the logging middleware.
func newRouter(activityHandler *handlers.ActivityHandler, webHandler *web.Handler, hub *handlers.UpdatesHub) *mux.Router {
	router := mux.NewRouter()

	// JSON API consumed by the frontend
	router.HandleFunc("/activities", activityHandler.GetActivitiesHandler).Methods("GET")
	router.HandleFunc("/activities/{name}/signup", activityHandler.SignupHandler).Methods("POST")
	router.HandleFunc("/activities/{name}/participants/{email}", activityHandler.RemoveParticipantHandler).Methods("DELETE")
	router.HandleFunc("/activities/{name}/log", activityHandler.GetActivityLogHandler).Methods("GET")

	// Live roster updates
	router.HandleFunc("/ws/updates", hub.UpdatesWebSocketHandler)

	// Server-rendered signup page
	webRoutes := router.PathPrefix("/web").Subrouter()
	webRoutes.HandleFunc("", webHandler.ActivitiesPageHandler).Methods("GET")
	webRoutes.HandleFunc("/signup", webHandler.SignupFormHandler).Methods("POST")
	webRoutes.HandleFunc("/unregister", webHandler.UnregisterFormHandler).Methods("POST")

	// Static assets; the root redirects to the landing page
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./web/static/"))))
	router.Handle("/", http.RedirectHandler("/static/index.html", http.StatusTemporaryRedirect)).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	return router
}

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	activityRepo := repository.NewActivityRepository(db)
	eventRepo := repository.NewRosterEventRepository(db)

	// --- Live updates hub ---
	hub := handlers.NewUpdatesHub()

	// --- Services ---
	eventService := services.NewRosterEventService(eventRepo)
	activityService := services.NewActivityService(activityRepo, eventService, hub)

	if err := activityService.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("Seeding error: %v", err)
	}

	// --- Handlers ---
	activityHandler := handlers.NewActivityHandler(activityService, eventService)
	webHandler, err := web.NewHandler(activityService)
	if err != nil {
		log.Fatalf("Template error: %v", err)
	}

	router := newRouter(activityHandler, webHandler, hub)

	// Daily digest emailed to the organizer
	mailer := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)
	digest := jobs.NewRosterDigest(eventService, mailer, cfg.OrganizerEmail)
	cronjobs.StartDigestCron(digest)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
