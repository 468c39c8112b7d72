// ABOUTME: Raw VK newsfeed schema as explicit structs
// ABOUTME: Profiles and groups resolve source ids into author records

package vk

import "social-rss-api/core/domain"

// Profile is a person referenced by the feed; VK identifies people with
// positive ids
type Profile struct {
	UID       int64  `json:"uid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo     string `json:"photo"`
}

// Group is a community referenced by the feed; VK identifies communities
// with negative source ids
type Group struct {
	GID   int64  `json:"gid"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Post is one raw wall post. Reposts carry the original post chain under
// CopyHistory; the first entry is the effective post.
type Post struct {
	ID          int64               `json:"id"`
	PostID      int64               `json:"post_id"`
	OwnerID     int64               `json:"owner_id"`
	SourceID    int64               `json:"source_id"`
	FromID      int64               `json:"from_id"`
	Date        int64               `json:"date"`
	Text        string              `json:"text"`
	Attachments []domain.Attachment `json:"attachments"`
	CopyHistory []Post              `json:"copy_history"`
}

// postID returns whichever id field the payload populated
func (p Post) postID() int64 {
	if p.ID != 0 {
		return p.ID
	}

	return p.PostID
}

// authorID returns the id of the actor who published the post
func (p Post) authorID() int64 {
	if p.FromID != 0 {
		return p.FromID
	}

	return p.SourceID
}

// wallOwnerID returns the id of the wall the post lives on
func (p Post) wallOwnerID() int64 {
	if p.OwnerID != 0 {
		return p.OwnerID
	}

	return p.SourceID
}

// Feed is the newsfeed payload body
type Feed struct {
	Items    []Post    `json:"items"`
	Profiles []Profile `json:"profiles"`
	Groups   []Group   `json:"groups"`
}

// apiError is VK's error payload body
type apiError struct {
	ErrorMsg string `json:"error_msg"`
}

// envelope is the outer response shape; VK wraps successful payloads in
// "response" and failures in "error"
type envelope struct {
	Error    *apiError `json:"error"`
	Response *Feed     `json:"response"`
}
