package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/clock"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/config"
	commoncrypto "github.com/dkurenkov/exercise-tracker/backend/internal/common/crypto"
	commonhttp "github.com/dkurenkov/exercise-tracker/backend/internal/common/http"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/logger"
	srv "github.com/dkurenkov/exercise-tracker/backend/internal/common/server"
	trackerhttp "github.com/dkurenkov/exercise-tracker/backend/internal/tracker/http"
	trackerrepo "github.com/dkurenkov/exercise-tracker/backend/internal/tracker/repository"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/service"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "tracker", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg := config.LoadTrackerConfig()

	repo := trackerrepo.NewMemoryRepository()
	idGenerator := commoncrypto.NewShortIDGenerator()
	trackerService := service.NewTrackerService(repo, idGenerator, clock.NewRealClock(), log)

	handler := trackerhttp.NewHandler(trackerService, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)
	baseHandler := commonhttp.BuildBaseHandler(log, cfg.MaxRequestSize, mux)

	rateLimitMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/health" || path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			rateLimiter.Middleware(next).ServeHTTP(w, r)
		})
	}

	finalHandler := rateLimitMiddleware(baseHandler)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, finalHandler)

	srv.StartWithGracefulShutdown(server, log, "tracker")
}
