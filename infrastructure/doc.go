// Package infrastructure provides concrete implementations of the
// interfaces defined in the core package. These implementations handle
// external concerns such as caching and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/gocache: In-memory cache backed by patrickmn/go-cache
// - logger/logruslog: Structured JSON logger backed by sirupsen/logrus
//
// # Cache
//
//	cache := gocache.NewClient(5*time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # Logger
//
//	logger := logruslog.New("info")
//	logger.Info("Normalized feed", map[string]interface{}{
//	    "provider": "twitter",
//	    "items":    42,
//	})
package infrastructure
