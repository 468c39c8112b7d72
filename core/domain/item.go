// ABOUTME: FeedItem domain model represents an individual normalized post
// ABOUTME: Provides validation to ensure item has required fields

package domain

import "time"

// FeedItem represents an individual item/entry in a normalized feed
type FeedItem struct {
	// Title is the item's headline, usually the author name plus a
	// repost note
	Title string

	// Link is the permalink of the post
	Link string

	// Content is the rendered markup for the post body. It is always a
	// string, possibly empty, never absent.
	Content string

	// Published is the post's publication time. It is nil when the
	// source date could not be parsed.
	Published *time.Time

	// Tags holds the post's hashtags without the leading '#',
	// deduplicated
	Tags []string

	// Author is the creator of the post
	Author Author

	// Quote is the quoted post, if any
	Quote *Quote
}

// IsValid checks if the feed item has all required fields
func (fi *FeedItem) IsValid() bool {
	if fi.Title == "" {
		return false
	}

	if fi.Link == "" {
		return false
	}

	return true
}
