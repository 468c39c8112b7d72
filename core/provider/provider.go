// ABOUTME: Provider abstraction and factory selecting a normalizer by name
// ABOUTME: Unknown provider names are rejected at construction time

package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"social-rss-api/core/domain"
	"social-rss-api/core/twitter"
	"social-rss-api/core/vk"
	"social-rss-api/pkg/config"
)

// Provider normalizes raw feed payloads of one social network
type Provider interface {
	// Name returns the provider's display name
	Name() string

	// BaseURL returns the web root used for permalinks
	BaseURL() string

	// NormalizeFeed maps a raw provider payload into a domain feed
	NormalizeFeed(raw json.RawMessage) (*domain.Feed, error)
}

// New constructs the provider registered under name. The comparison is
// case-insensitive; unknown names return an error.
func New(name string, cfg config.Config) (Provider, error) {
	switch strings.ToLower(name) {
	case "twitter":
		return twitter.NewParser(cfg.TwitterBaseURL), nil
	case "vk":
		return vk.NewParser(cfg.VKBaseURL), nil
	}

	return nil, fmt.Errorf("unknown provider type: %s", name)
}
