// ABOUTME: Twitter feed normalizer mapping raw timelines into the domain model
// ABOUTME: Handles retweet unwrapping, quotes, entity collection and tag sets

package twitter

import (
	"encoding/json"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"
	"github.com/tomakado/containers/set"

	"social-rss-api/core/domain"
	coreerrors "social-rss-api/core/errors"
	"social-rss-api/core/render"
)

// Name is the provider name used for feed titles and error reporting
const Name = "Twitter"

// DefaultBaseURL is the public web root used to build permalinks
const DefaultBaseURL = "https://twitter.com/"

// Parser normalizes raw Twitter timeline payloads
type Parser struct {
	baseURL string
}

// NewParser creates a Twitter parser. An empty baseURL selects the
// public twitter.com root.
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

// NormalizeFeed decodes a raw timeline payload and maps each tweet into
// a feed item. Tweets missing required fields are dropped; the relative
// order of the remainder is preserved. A provider error payload aborts
// the whole feed with a ProviderError.
func (p *Parser) NormalizeFeed(raw json.RawMessage) (*domain.Feed, error) {
	var errResp errorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && len(errResp.Errors) > 0 {
		return nil, &coreerrors.ProviderError{Provider: Name, Message: errResp.Errors[0].Message}
	}

	var tweets []Tweet
	if err := json.Unmarshal(raw, &tweets); err != nil {
		return nil, coreerrors.WrapError(err, "decode twitter timeline")
	}

	items := lo.FilterMap(tweets, func(t Tweet, _ int) (domain.FeedItem, bool) {
		item, err := p.normalizePost(t)
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

// normalizePost maps one raw tweet into a feed item. For retweets the
// effective post is the embedded original; the title notes the
// retweeting actor, while the permalink and author come from the
// original.
func (p *Parser) normalizePost(post Tweet) (domain.FeedItem, error) {
	tweet := &post
	titleSuffix := ""

	if post.RetweetedStatus != nil && post.User != nil {
		tweet = post.RetweetedStatus
		titleSuffix = fmt.Sprintf(" (RT by %s)", post.User.Name)
	}

	if tweet.User == nil {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: "user", Message: "tweet has no author"}
	}

	if tweet.IDStr == "" {
		return domain.FeedItem{}, &coreerrors.ValidationError{Field: "id_str", Message: "tweet has no id"}
	}

	item := domain.FeedItem{
		Title:   tweet.User.Name + titleSuffix,
		Link:    p.permalink(tweet),
		Content: p.renderText(tweet),
		Tags:    tags(tweet),
		Author: domain.Author{
			Name:      tweet.User.Name,
			AvatarURL: tweet.User.ProfileImageURL,
			Link:      p.baseURL + tweet.User.ScreenName,
		},
	}

	// The wrapper's date, not the original's, so retweets sort by
	// retweet time
	if published, err := dateparse.ParseAny(post.CreatedAt); err == nil {
		item.Published = &published
	}

	if quoted := tweet.QuotedStatus; quoted != nil && quoted.User != nil && quoted.IDStr != "" {
		item.Quote = &domain.Quote{
			Title:   quoted.User.Name,
			Link:    p.permalink(quoted),
			Content: p.renderText(quoted),
		}
	}

	return item, nil
}

func (p *Parser) permalink(tweet *Tweet) string {
	return fmt.Sprintf("%s%s/status/%s", p.baseURL, tweet.User.ScreenName, tweet.IDStr)
}

func (p *Parser) renderText(tweet *Tweet) string {
	return render.Content(tweet.FullText, p.collectEntities(tweet))
}

// collectEntities flattens a tweet's annotations into one entity slice
// in the fixed kind priority hashtags, mentions, urls, symbols, media,
// then unrecognized kinds; original payload order is kept within each
// kind. The order is part of the rendering contract: with repeated
// tokens it decides which occurrence each entity consumes.
// extended_entities media supersedes entities media when present.
func (p *Parser) collectEntities(tweet *Tweet) []domain.Entity {
	src := tweet.Entities

	media := src.Media
	if tweet.ExtendedEntities != nil && len(tweet.ExtendedEntities.Media) > 0 {
		media = tweet.ExtendedEntities.Media
	}

	entities := make([]domain.Entity, 0,
		len(src.Hashtags)+len(src.UserMentions)+len(src.URLs)+len(src.Symbols)+len(media))

	for _, hashtag := range src.Hashtags {
		entities = append(entities, domain.Entity{
			Kind:        domain.EntityHashtag,
			MatchText:   "#" + hashtag.Text,
			DisplayText: "#" + hashtag.Text,
			TargetURL:   p.baseURL + "hashtag/" + hashtag.Text,
		})
	}

	for _, mention := range src.UserMentions {
		entities = append(entities, domain.Entity{
			Kind:        domain.EntityMention,
			MatchText:   "@" + mention.ScreenName,
			DisplayText: "@" + mention.ScreenName,
			TargetURL:   p.baseURL + mention.ScreenName,
		})
	}

	for _, url := range src.URLs {
		entities = append(entities, domain.Entity{
			Kind:        domain.EntityURL,
			MatchText:   url.URL,
			DisplayText: url.DisplayURL,
			TargetURL:   url.ExpandedURL,
		})
	}

	for _, symbol := range src.Symbols {
		entities = append(entities, domain.Entity{
			Kind:        domain.EntitySymbol,
			MatchText:   "$" + symbol.Text,
			DisplayText: "$" + symbol.Text,
			TargetURL:   p.baseURL + "search?q=%24" + symbol.Text,
		})
	}

	for _, m := range media {
		entity := domain.Entity{
			Kind:         domain.EntityMedia,
			MatchText:    m.URL,
			TargetURL:    m.ExpandedURL,
			MediaSubtype: domain.MediaSubtype(m.Type),
			MediaURL:     m.MediaURL,
		}

		if m.VideoInfo != nil {
			entity.Variants = lo.Map(m.VideoInfo.Variants, func(v VideoVariant, _ int) domain.MediaVariant {
				return domain.MediaVariant{ContentType: v.ContentType, URL: v.URL}
			})
		}

		entities = append(entities, entity)
	}

	for _, kind := range src.Unknown {
		entities = append(entities, domain.Entity{Kind: domain.EntityKind(kind)})
	}

	return entities
}

// tags collects the effective post's hashtag texts, deduplicated,
// keeping first-seen order
func tags(tweet *Tweet) []string {
	seen := set.New[string]()
	result := make([]string, 0, len(tweet.Entities.Hashtags))

	for _, hashtag := range tweet.Entities.Hashtags {
		if seen.Contains(hashtag.Text) {
			continue
		}

		seen.Add(hashtag.Text)
		result = append(result, hashtag.Text)
	}

	return result
}
