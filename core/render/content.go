// ABOUTME: Entity substitution engine rewriting raw post text into markup
// ABOUTME: A pure left fold; each step sees the output of the previous one

package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"social-rss-api/core/domain"
	"social-rss-api/core/markup"
)

// Content rewrites raw post text by substituting each entity in slice
// order, then trims the result and converts newlines to line breaks.
//
// The engine preserves the caller's entity order; substitution of a
// later entity operates on the output of earlier ones, so with repeated
// tokens the order decides which occurrence each entity consumes.
// Provider normalizers emit entities grouped by kind in a fixed
// priority: hashtags, mentions, urls, symbols, media.
func Content(text string, entities []domain.Entity) string {
	rendered := lo.Reduce(entities, substituteOne, text)

	return markup.BreakLines(strings.TrimSpace(rendered))
}

// substituteOne applies a single entity to the progressively rewritten
// text. Unknown kinds append a visible placeholder instead of failing.
func substituteOne(text string, entity domain.Entity, _ int) string {
	switch entity.Kind {
	case domain.EntityHashtag, domain.EntityMention, domain.EntityURL, domain.EntitySymbol:
		return replaceFirst(text, entity.MatchText, markup.Link(entity.TargetURL, entity.DisplayText))
	case domain.EntityMedia:
		return substituteMedia(text, entity)
	}

	return text + "\n" + fmt.Sprintf("[Tweet contains unknown entity type %s]", entity.Kind)
}

// substituteMedia strips the media's short URL from the text and appends
// the media markup after it. Photos become linked images; videos and
// animated GIFs become a player for their first MPEG-4 variant, or a
// plain image when no such variant exists.
func substituteMedia(text string, entity domain.Entity) string {
	switch entity.MediaSubtype {
	case domain.MediaPhoto:
		return replaceFirst(text, entity.MatchText, "") +
			"\n" + markup.Image(entity.MediaURL, entity.TargetURL)

	case domain.MediaVideo, domain.MediaAnimatedGIF:
		mp4, found := lo.Find(entity.Variants, func(v domain.MediaVariant) bool {
			return v.ContentType == "video/mp4"
		})

		media := markup.Image(entity.MediaURL, "")
		if found {
			media = markup.Video(mp4.URL, entity.MediaURL)
		}

		return replaceFirst(text, entity.MatchText, "") + "\n" + media
	}

	return text + "\n" + fmt.Sprintf("[Tweet contains unknown media type %s]", entity.MediaSubtype)
}

// replaceFirst swaps the first case-insensitive occurrence of match that
// is followed by whitespace or end of string; the trailing boundary keeps
// "@bob" from matching inside "@bobby". The match and its trailing
// whitespace are replaced by the replacement plus a single space. A
// missing match leaves the text untouched.
func replaceFirst(text, match, replacement string) string {
	if match == "" {
		return text
	}

	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(match) + `(\s|$)`)

	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return text
	}

	return text[:loc[0]] + replacement + " " + text[loc[1]:]
}
