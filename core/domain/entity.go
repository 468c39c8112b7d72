// ABOUTME: Entity model represents an inline text annotation on a post
// ABOUTME: Entities carry no character offsets; matching is by substring

package domain

// EntityKind identifies the kind of an inline entity. Provider
// normalizers set it to one of the known constants; an unrecognized raw
// kind is carried verbatim so that placeholder output can name it.
type EntityKind string

// Known entity kinds
const (
	EntityHashtag EntityKind = "hashtag"
	EntityMention EntityKind = "mention"
	EntityURL     EntityKind = "url"
	EntitySymbol  EntityKind = "symbol"
	EntityMedia   EntityKind = "media"
)

// MediaSubtype identifies the media flavor of a media entity
type MediaSubtype string

// Known media subtypes
const (
	MediaPhoto       MediaSubtype = "photo"
	MediaVideo       MediaSubtype = "video"
	MediaAnimatedGIF MediaSubtype = "animated_gif"
)

// MediaVariant is one encoded rendition of a media entity
type MediaVariant struct {
	// ContentType is the MIME type of the rendition (e.g. "video/mp4")
	ContentType string

	// URL points to the rendition
	URL string
}

// Entity is an inline annotation attached to a post's text. Substitution
// locates MatchText in the text and rewrites it into markup; entities
// never carry offsets.
type Entity struct {
	// Kind selects the substitution strategy
	Kind EntityKind

	// MatchText is the literal substring to locate in the post text
	MatchText string

	// DisplayText is the human-readable label for the generated markup
	DisplayText string

	// TargetURL is the link target (profile, hashtag page, expanded URL,
	// or media permalink)
	TargetURL string

	// MediaSubtype is set for media entities only
	MediaSubtype MediaSubtype

	// MediaURL is the still image URL of a media entity (also used as a
	// video poster)
	MediaURL string

	// Variants lists encoded renditions of a video or animated_gif
	Variants []MediaVariant
}
