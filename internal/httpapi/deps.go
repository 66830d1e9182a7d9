package httpapi

import (
	"sync/atomic"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/feed"
	"jobboard-engine/internal/jobs"
)

type Deps struct {
	Hub *events.Hub

	// Current config, atomically swapped on reload.
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Pipeline constructors (injected for testability). Handlers rebuild the
	// pipeline from the current config on every request; nothing is cached.
	NewRepo    func(cfg config.Config) *jobs.Repo
	NewFetcher func(cfg config.Config) *feed.Fetcher
}

func (d Deps) cfg() config.Config {
	return d.CfgVal.Load().(config.Config)
}
