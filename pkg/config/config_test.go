package config

import (
	"testing"
	"time"
)

func TestGet_Defaults(t *testing.T) {
	cfg := Get()

	if cfg.TwitterBaseURL != "https://twitter.com/" {
		t.Errorf("TwitterBaseURL = %q, want default", cfg.TwitterBaseURL)
	}
	if cfg.VKBaseURL != "https://vk.com/" {
		t.Errorf("VKBaseURL = %q, want default", cfg.VKBaseURL)
	}
	if cfg.FeedCacheTTL != 5*time.Minute {
		t.Errorf("FeedCacheTTL = %v, want 5m", cfg.FeedCacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestGet_ReturnsSameConfig(t *testing.T) {
	first := Get()
	second := Get()

	if first != second {
		t.Error("Get should return the same loaded config")
	}
}
