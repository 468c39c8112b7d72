// Package core contains the business logic for the social feed
// normalizer. It is designed to be framework-agnostic and can be used
// independently of any transport or serialization concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Feed, FeedItem, Entity, Attachment)
// - markup: Inline HTML fragment builders (link, image, video)
// - render: Entity substitution engine and attachment renderer
// - twitter, vk: Provider-specific feed normalizers
// - provider: Factory selecting a normalizer by provider name
// - feed: Orchestration service (fetch, normalize, cache)
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (fetcher, cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from provider-specific fields
//
// # Usage Example
//
//	import (
//	    "social-rss-api/core/feed"
//	    "social-rss-api/core/interfaces"
//	    "social-rss-api/core/provider"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:   myCache,   // implements interfaces.Cache
//	    Fetcher: myFetcher, // implements interfaces.FeedFetcher
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	// Create service
//	p, err := provider.New("twitter", config.Get())
//	feedService := feed.NewService(p, deps, 5*time.Minute)
//
//	// Normalize a timeline
//	result, err := feedService.GetFeed(ctx, "some_user")
package core
