package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
		SiteURL string `yaml:"site_url" json:"site_url"`
	} `yaml:"app" json:"app"`

	Feed struct {
		URL            string  `yaml:"url" json:"url"`
		UserAgent      string  `yaml:"user_agent" json:"user_agent"`
		TimeoutSeconds int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		HostReqPerSec  float64 `yaml:"host_req_per_sec" json:"host_req_per_sec"`
		HostBurst      int     `yaml:"host_burst" json:"host_burst"`
	} `yaml:"feed" json:"feed"`
}

// Load reads the YAML file and applies environment overlays. SHEET_URL wins
// over the file so deploys can point at a sheet without editing config; the
// value is captured here at load time, never read again at call time.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHEET_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("JOBBOARD_SITE_URL"); v != "" {
		cfg.App.SiteURL = v
	}
}
