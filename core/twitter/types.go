// ABOUTME: Raw Twitter API schema as explicit structs
// ABOUTME: Optional provider fields are modeled as pointers, validated at the normalizer boundary

package twitter

import (
	"encoding/json"
	"sort"
)

// User is the author block of a tweet
type User struct {
	Name            string `json:"name"`
	ScreenName      string `json:"screen_name"`
	ProfileImageURL string `json:"profile_image_url_https"`
}

// HashtagEntity is a hashtag annotation, text without the leading '#'
type HashtagEntity struct {
	Text string `json:"text"`
}

// MentionEntity is a user mention annotation
type MentionEntity struct {
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

// URLEntity is a shortened URL annotation
type URLEntity struct {
	URL         string `json:"url"`
	ExpandedURL string `json:"expanded_url"`
	DisplayURL  string `json:"display_url"`
}

// SymbolEntity is a cashtag annotation, text without the leading '$'
type SymbolEntity struct {
	Text string `json:"text"`
}

// MediaEntity is an inline media annotation
type MediaEntity struct {
	URL         string     `json:"url"`
	ExpandedURL string     `json:"expanded_url"`
	MediaURL    string     `json:"media_url_https"`
	Type        string     `json:"type"`
	VideoInfo   *VideoInfo `json:"video_info"`
}

// VideoInfo holds the encoded renditions of a video or animated GIF
type VideoInfo struct {
	Variants []VideoVariant `json:"variants"`
}

// VideoVariant is one encoded rendition
type VideoVariant struct {
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

// Entities groups a tweet's inline annotations by kind. Groups under
// keys the schema does not model are collected into Unknown, one entry
// per annotation, so the renderer can emit a visible placeholder
// instead of silently dropping them.
type Entities struct {
	Hashtags     []HashtagEntity `json:"hashtags"`
	UserMentions []MentionEntity `json:"user_mentions"`
	URLs         []URLEntity     `json:"urls"`
	Symbols      []SymbolEntity  `json:"symbols"`
	Media        []MediaEntity   `json:"media"`

	// Unknown holds the raw kind name of each annotation in an
	// unrecognized group, sorted by kind for determinism
	Unknown []string `json:"-"`
}

// knownEntityKeys are the entity group keys the schema models
var knownEntityKeys = []string{"hashtags", "user_mentions", "urls", "symbols", "media"}

// UnmarshalJSON decodes the modeled groups and collects the keys of any
// others into Unknown
func (e *Entities) UnmarshalJSON(data []byte) error {
	type plain Entities

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var groups map[string]json.RawMessage
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}

	for _, key := range knownEntityKeys {
		delete(groups, key)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		// One placeholder per annotation in the group; a group that is
		// not an array still yields one
		var items []json.RawMessage
		if err := json.Unmarshal(groups[key], &items); err != nil {
			decoded.Unknown = append(decoded.Unknown, key)
			continue
		}

		for range items {
			decoded.Unknown = append(decoded.Unknown, key)
		}
	}

	*e = Entities(decoded)
	return nil
}

// Tweet is one raw timeline post. Retweets nest the original under
// RetweetedStatus; quotes nest the referenced post under QuotedStatus.
type Tweet struct {
	IDStr            string    `json:"id_str"`
	FullText         string    `json:"full_text"`
	CreatedAt        string    `json:"created_at"`
	User             *User     `json:"user"`
	Entities         Entities  `json:"entities"`
	ExtendedEntities *Entities `json:"extended_entities"`
	RetweetedStatus  *Tweet    `json:"retweeted_status"`
	QuotedStatus     *Tweet    `json:"quoted_status"`
}

// apiError is one entry of Twitter's error payload
type apiError struct {
	Message string `json:"message"`
}

// errorResponse is the shape Twitter returns instead of a timeline when
// the request fails
type errorResponse struct {
	Errors []apiError `json:"errors"`
}
