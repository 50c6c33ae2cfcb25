package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/colonel51/KardesLastik/internal/api"
	"github.com/colonel51/KardesLastik/internal/config"
	"github.com/colonel51/KardesLastik/internal/logger"
	"github.com/colonel51/KardesLastik/internal/session"
	"github.com/colonel51/KardesLastik/internal/web"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync() //nolint:errcheck

	cfg := config.Load()

	store, err := session.NewDB(cfg.SessionDBPath)
	if err != nil {
		log.Fatalw("open session store", "path", cfg.SessionDBPath, "error", err)
	}
	defer store.Close()

	if err := store.CleanExpired(); err != nil {
		log.Warnw("clean expired sessions", "error", err)
	}

	transport := api.NewTransport(cfg.APIBaseURL)
	h := web.NewHandlers(store, transport, cfg.TemplateDir, cfg.SecureCookie, log)
	r := web.NewRouter(h, cfg.StaticDir)

	log.Infow("starting server", "addr", cfg.ListenAddr, "api", cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
