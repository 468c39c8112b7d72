// ABOUTME: FeedFetcher is the collaborator interface for retrieving raw feeds
// ABOUTME: Transport, auth and retries live behind it, outside the core

package interfaces

import (
	"context"
	"encoding/json"
)

// FeedFetcher retrieves one raw provider feed payload. The payload is the
// provider's JSON response, untouched; the core decodes and validates it.
//
// user selects a specific timeline; an empty user means the
// authenticated account's home timeline.
type FeedFetcher interface {
	FetchFeed(ctx context.Context, user string) (json.RawMessage, error)
}
