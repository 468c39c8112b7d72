// ABOUTME: Feed service orchestrates fetch, normalization and caching
// ABOUTME: Provides business logic for feed operations independent of transport

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"social-rss-api/core/domain"
	coreerrors "social-rss-api/core/errors"
	"social-rss-api/core/interfaces"
	"social-rss-api/core/provider"
)

// Service turns raw provider payloads into normalized feeds, serving
// from cache when possible
type Service struct {
	provider provider.Provider
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewService creates a feed service for one provider. Cache and logger
// dependencies are optional; the fetcher is required at call time.
func NewService(p provider.Provider, deps interfaces.Dependencies, cacheTTL time.Duration) *Service {
	return &Service{
		provider: p,
		deps:     deps,
		cacheTTL: cacheTTL,
	}
}

// GetFeed returns the normalized feed for the given user (empty user
// means the home timeline). Fetch failures and provider error payloads
// abort the feed; malformed posts are dropped during normalization and
// never surface here.
func (s *Service) GetFeed(ctx context.Context, user string) (*domain.Feed, error) {
	if s.deps.Fetcher == nil {
		return nil, errors.New("feed fetcher not configured")
	}

	key := s.cacheKey(user)

	if cached := s.cachedFeed(ctx, key); cached != nil {
		s.logDebug("feed served from cache", map[string]interface{}{"key": key})
		return cached, nil
	}

	raw, err := s.deps.Fetcher.FetchFeed(ctx, user)
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetch feed")
	}

	feed, err := s.provider.NormalizeFeed(raw)
	if err != nil {
		return nil, err
	}

	s.logInfo("feed normalized", map[string]interface{}{
		"provider": s.provider.Name(),
		"user":     user,
		"items":    len(feed.Items),
	})

	// Cache errors are not worth failing the request over
	_ = s.cacheFeed(ctx, key, feed)

	return feed, nil
}

func (s *Service) cacheKey(user string) string {
	return fmt.Sprintf("feed:%s:%s", strings.ToLower(s.provider.Name()), user)
}

// cachedFeed returns the cached feed for key, or nil on miss or any
// cache error
func (s *Service) cachedFeed(ctx context.Context, key string) *domain.Feed {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var feed domain.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		s.logWarn("failed to decode cached feed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return nil
	}

	return &feed
}

func (s *Service) cacheFeed(ctx context.Context, key string, feed *domain.Feed) error {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := json.Marshal(feed)
	if err != nil {
		return err
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logWarn("failed to cache feed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return err
	}

	return nil
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *Service) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}
