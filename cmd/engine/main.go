package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/feed"
	"jobboard-engine/internal/httpapi"
	"jobboard-engine/internal/jobs"
)

func feedConfig(cfg config.Config) feed.Config {
	return feed.Config{
		URL:       cfg.Feed.URL,
		UserAgent: cfg.Feed.UserAgent,
		Timeout:   time.Duration(cfg.Feed.TimeoutSeconds) * time.Second,
	}
}

func main() {
	// Data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		c, err := config.Load(userCfgPath)
		if err != nil {
			return c, err
		}
		n, _ := config.NormalizeAndValidate(c)
		return n, nil
	}
	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, wmsg := range vr.Warnings {
		log.Printf("level=warn msg=\"config\" warning=%q", wmsg)
	}
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	hub := events.NewHub()

	// One limiter for the process so politeness state survives config reloads.
	rps, burst := cfg.Feed.HostReqPerSec, cfg.Feed.HostBurst
	if rps <= 0 {
		rps, burst = 2, 4
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := feed.NewHostLimiter(rps, burst)

	newFetcher := func(c config.Config) *feed.Fetcher {
		return feed.New(feedConfig(c), limiter)
	}
	newRepo := func(c config.Config) *jobs.Repo {
		return jobs.NewRepo(newFetcher(c), hub)
	}

	deps := httpapi.Deps{
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		NewRepo:     newRepo,
		NewFetcher:  newFetcher,
	}

	handler := httpapi.Chain(
		httpapi.NewMux(deps),
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := os.Getenv("JOBBOARD_ADDR")
	if addr == "" {
		addr = fmt.Sprintf(":%d", cfg.App.Port)
	}
	srv := &http.Server{Addr: addr, Handler: handler}

	go func() {
		log.Printf("level=info msg=\"api listening\" addr=%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Printf("level=info msg=\"shutdown\"")
}
