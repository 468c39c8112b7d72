// ABOUTME: Feed domain model represents a normalized social-network feed
// ABOUTME: Provider-specific structure never leaks past this model

package domain

// Feed represents a normalized feed produced from one provider timeline
type Feed struct {
	// Title is the human-readable title of the feed (usually the provider name)
	Title string

	// Link is the provider's base URL
	Link string

	// Items contains the normalized posts in their original order
	Items []FeedItem
}

// Author represents the author of a feed item
type Author struct {
	// Name is the author's display name
	Name string

	// AvatarURL points to the author's profile image
	AvatarURL string

	// Link is the URL of the author's profile page
	Link string
}

// Quote is an abbreviated sub-item for a post quoted inside another post.
// It carries no author, tags or nested quote of its own.
type Quote struct {
	Title   string
	Link    string
	Content string
}
