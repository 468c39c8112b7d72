// ABOUTME: Application configuration loaded from environment and HCL files
// ABOUTME: Loaded once; safe to read from any goroutine

package config

import (
	"log"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// Config holds the application settings. Provider base URLs are
// overridable mostly for tests; the defaults are the public web roots.
type Config struct {
	TwitterBaseURL string `hcl:"twitter_base_url" env:"TWITTER_BASE_URL" default:"https://twitter.com/"`
	VKBaseURL      string `hcl:"vk_base_url" env:"VK_BASE_URL" default:"https://vk.com/"`

	FeedCacheTTL         time.Duration `hcl:"feed_cache_ttl" env:"FEED_CACHE_TTL" default:"5m"`
	CacheCleanupInterval time.Duration `hcl:"cache_cleanup_interval" env:"CACHE_CLEANUP_INTERVAL" default:"10m"`

	LogLevel string `hcl:"log_level" env:"LOG_LEVEL" default:"info"`
}

var (
	cfg  Config
	once sync.Once
)

// Get returns the application configuration, loading it on first use
func Get() Config {
	once.Do(func() {
		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			EnvPrefix: "SOCIALRSS",
			Files:     []string{"./config.hcl", "./config.local.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			log.Printf("[ERROR] failed to load config: %v", err)
		}
	})

	return cfg
}
