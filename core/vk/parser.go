// ABOUTME: VK feed normalizer mapping raw newsfeed payloads into the domain model
// ABOUTME: Resolves authors from profiles/groups, unwraps reposts, renders attachments

package vk

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/samber/lo"
	"github.com/tomakado/containers/set"

	"social-rss-api/core/domain"
	coreerrors "social-rss-api/core/errors"
	"social-rss-api/core/markup"
	"social-rss-api/core/render"
)

// Name is the provider name used for feed titles and error reporting
const Name = "VK"

// DefaultBaseURL is the public web root used to build permalinks
const DefaultBaseURL = "https://vk.com/"

// hashtagPattern matches VK hashtags in post text; VK has no entity
// annotations, so tags are scanned from the text itself
var hashtagPattern = regexp.MustCompile(`#[\p{L}\d_]+`)

// Parser normalizes raw VK newsfeed payloads
type Parser struct {
	baseURL string
}

// NewParser creates a VK parser. An empty baseURL selects the public
// vk.com root.
func NewParser(baseURL string) *Parser {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Parser{baseURL: baseURL}
}

// Name returns the provider name
func (p *Parser) Name() string { return Name }

// BaseURL returns the web root used for permalinks
func (p *Parser) BaseURL() string { return p.baseURL }

// NormalizeFeed decodes a raw newsfeed payload and maps each post into a
// feed item. Posts missing required fields are dropped; the relative
// order of the remainder is preserved. A provider error payload aborts
// the whole feed with a ProviderError.
func (p *Parser) NormalizeFeed(raw json.RawMessage) (*domain.Feed, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, coreerrors.WrapError(err, "decode vk newsfeed")
	}

	if env.Error != nil {
		return nil, &coreerrors.ProviderError{Provider: Name, Message: env.Error.ErrorMsg}
	}

	feed := env.Response
	if feed == nil {
		// Tolerate payloads without the response wrapper
		feed = &Feed{}
		if err := json.Unmarshal(raw, feed); err != nil {
			return nil, coreerrors.WrapError(err, "decode vk newsfeed")
		}
	}

	authors := p.collectAuthors(feed)

	items := lo.FilterMap(feed.Items, func(post Post, _ int) (domain.FeedItem, bool) {
		item, err := p.normalizePost(post, authors)
		if err != nil || !item.IsValid() {
			return domain.FeedItem{}, false
		}

		return item, true
	})

	return &domain.Feed{
		Title: Name,
		Link:  p.baseURL,
		Items: items,
	}, nil
}

// collectAuthors indexes the payload's profiles and groups by the id
// scheme posts reference them with: positive for people, negative for
// communities
func (p *Parser) collectAuthors(feed *Feed) map[int64]domain.Author {
	authors := make(map[int64]domain.Author, len(feed.Profiles)+len(feed.Groups))

	for _, profile := range feed.Profiles {
		authors[profile.UID] = domain.Author{
			Name:      profile.FirstName + " " + profile.LastName,
			AvatarURL: profile.Photo,
			Link:      fmt.Sprintf("%sid%d", p.baseURL, profile.UID),
		}
	}

	for _, group := range feed.Groups {
		authors[-group.GID] = domain.Author{
			Name:      group.Name,
			AvatarURL: group.Photo,
			Link:      fmt.Sprintf("%sclub%d", p.baseURL, group.GID),
		}
	}

	return authors
}

// normalizePost maps one raw post into a feed item. For reposts the
// effective post is the first copy_history entry; the title notes the
// reposting actor, while the permalink points at the original wall.
func (p *Parser) normalizePost(post Post, authors map[int64]domain.Author) (domain.FeedItem, error) {
	effective := post
	titleSuffix := ""

	reposter, ok := authors[post.authorID()]
	if !ok {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: "source_id", Message: "post author not in payload"}
	}

	author := reposter

	if len(post.CopyHistory) > 0 {
		effective = post.CopyHistory[0]
		titleSuffix = fmt.Sprintf(" (repost by %s)", reposter.Name)

		original, ok := authors[effective.authorID()]
		if !ok {
			return domain.FeedItem{}, &coreerrors.ValidationError{Field: "copy_history", Message: "original author not in payload"}
		}

		author = original
	}

	if effective.postID() == 0 {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: "post_id", Message: "post has no id"}
	}

	item := domain.FeedItem{
		Title:   author.Name + titleSuffix,
		Link:    fmt.Sprintf("%swall%d_%d", p.baseURL, effective.wallOwnerID(), effective.postID()),
		Content: renderContent(effective),
		Tags:    tags(effective.Text),
		Author:  author,
	}

	// The wrapper's date, so reposts sort by repost time
	if post.Date > 0 {
		published := time.Unix(post.Date, 0).UTC()
		item.Published = &published
	}

	return item, nil
}

// renderContent joins the rendered post text and the rendered
// attachment blocks. VK posts carry no inline entities, so the text only
// gets trimming and line-break conversion. Attachment blocks are plain
// text separated by newlines, so they get the same line-break
// conversion before joining.
func renderContent(post Post) string {
	content := render.Content(post.Text, nil)

	attachments := markup.BreakLines(render.Attachments(post.Attachments))
	if attachments == "" {
		return content
	}

	if content == "" {
		return attachments
	}

	return content + "<br>\n" + attachments
}

// tags scans hashtags out of the effective post text, deduplicated,
// keeping first-seen order
func tags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)

	seen := set.New[string]()
	result := make([]string, 0, len(matches))

	for _, match := range matches {
		tag := match[1:]

		if seen.Contains(tag) {
			continue
		}

		seen.Add(tag)
		result = append(result, tag)
	}

	return result
}
