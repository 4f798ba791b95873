package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/lodgeworks/property-portal/internal/auth"
	"github.com/lodgeworks/property-portal/internal/config"
	"github.com/lodgeworks/property-portal/internal/data"
	"github.com/lodgeworks/property-portal/internal/db"
	"github.com/lodgeworks/property-portal/internal/handlers"
	"github.com/lodgeworks/property-portal/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") != "" {
		if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			log.SetLevel(level)
		}
	}

	cfg := config.Load()

	// The remote store is optional. A failed connection is a degraded mode,
	// not a startup failure: the portal serves from the local store.
	var probe *db.Probe
	var remote *db.RemoteStore
	if cfg.RemoteConfigured() {
		client, err := db.ConnectMongo(cfg.MongoURI)
		if err != nil {
			log.WithError(err).Warn("remote store unreachable, serving from local store")
			probe = db.NewProbe(nil)
			remote = db.NewRemoteStore(nil, "")
		} else {
			log.Info("connected to remote store")
			probe = db.NewProbe(client)
			remote = db.NewRemoteStore(client, cfg.MongoDB)
		}
	} else {
		log.Warn("remote store not configured, serving from local store")
		probe = db.NewProbe(nil)
		remote = db.NewRemoteStore(nil, "")
	}

	local := db.NewLocalStore()
	dataService := data.NewService(remote, local, probe, log.StandardLogger())
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	mux := http.NewServeMux()
	handlers.NewAuthHandler(authService, dataService).RegisterRoutes(mux)
	handlers.NewPortalHandler(dataService, probe).RegisterRoutes(mux)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	handler := rateLimiter.RateLimit(300, 60)(authMiddleware.Authenticate(mux))

	log.WithField("port", cfg.Port).Info("property portal listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
