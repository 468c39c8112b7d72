package twitter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "social-rss-api/core/errors"
)

func marshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return data
}

func simpleTweet() Tweet {
	return Tweet{
		IDStr:     "123",
		FullText:  "hello #golang world",
		CreatedAt: "Wed Aug 27 13:08:45 +0000 2008",
		User: &User{
			Name:            "Bob Smith",
			ScreenName:      "bob",
			ProfileImageURL: "https://pbs.twimg.com/bob.jpg",
		},
		Entities: Entities{
			Hashtags: []HashtagEntity{{Text: "golang"}},
		},
	}
}

func TestNewParser_DefaultBaseURL(t *testing.T) {
	parser := NewParser("")

	assert.Equal(t, DefaultBaseURL, parser.BaseURL())
	assert.Equal(t, "Twitter", parser.Name())
}

func TestNormalizeFeed_SimpleTweet(t *testing.T) {
	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{simpleTweet()}))
	require.NoError(t, err)

	assert.Equal(t, "Twitter", feed.Title)
	assert.Equal(t, "https://twitter.com/", feed.Link)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	assert.Equal(t, "Bob Smith", item.Title)
	assert.Equal(t, "https://twitter.com/bob/status/123", item.Link)
	assert.Equal(t, []string{"golang"}, item.Tags)
	assert.Equal(t, "Bob Smith", item.Author.Name)
	assert.Equal(t, "https://twitter.com/bob", item.Author.Link)
	assert.Equal(t, "https://pbs.twimg.com/bob.jpg", item.Author.AvatarURL)
	assert.Contains(t, item.Content, `<a href="https://twitter.com/hashtag/golang">#golang</a>`)
	assert.Nil(t, item.Quote)

	require.NotNil(t, item.Published)
	assert.Equal(t, 2008, item.Published.Year())
}

func TestNormalizeFeed_Retweet(t *testing.T) {
	original := simpleTweet()

	wrapper := Tweet{
		IDStr:     "456",
		CreatedAt: "Wed Aug 27 13:08:45 +0000 2008",
		User: &User{
			Name:       "Alice Jones",
			ScreenName: "alice",
		},
		RetweetedStatus: &original,
	}

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{wrapper}))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	item := feed.Items[0]
	// Title notes the retweeting actor; permalink and author are the
	// original's
	assert.Equal(t, "Bob Smith (RT by Alice Jones)", item.Title)
	assert.Equal(t, "https://twitter.com/bob/status/123", item.Link)
	assert.Equal(t, "Bob Smith", item.Author.Name)
}

func TestNormalizeFeed_Quote(t *testing.T) {
	quoted := Tweet{
		IDStr:    "789",
		FullText: "the quoted text",
		User:     &User{Name: "Carol", ScreenName: "carol"},
	}

	tweet := simpleTweet()
	tweet.QuotedStatus = &quoted

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{tweet}))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	quote := feed.Items[0].Quote
	require.NotNil(t, quote)
	assert.Equal(t, "Carol", quote.Title)
	assert.Equal(t, "https://twitter.com/carol/status/789", quote.Link)
	assert.Equal(t, "the quoted text", quote.Content)
}

func TestNormalizeFeed_MissingAuthorDropped(t *testing.T) {
	broken := simpleTweet()
	broken.User = nil

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{simpleTweet(), broken, simpleTweet()}))
	require.NoError(t, err)

	// The malformed tweet is dropped, siblings survive in order
	assert.Len(t, feed.Items, 2)
}

func TestNormalizeFeed_MissingIDDropped(t *testing.T) {
	broken := simpleTweet()
	broken.IDStr = ""

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{broken}))
	require.NoError(t, err)

	assert.Empty(t, feed.Items)
}

func TestNormalizeFeed_ProviderErrorPayload(t *testing.T) {
	parser := NewParser("")

	payload := json.RawMessage(`{"errors":[{"message":"Rate limit exceeded","code":88}]}`)

	feed, err := parser.NormalizeFeed(payload)

	assert.Nil(t, feed)
	require.Error(t, err)
	assert.True(t, coreerrors.IsProvider(err))
	assert.Contains(t, err.Error(), "Rate limit exceeded")
}

func TestNormalizeFeed_MalformedPayload(t *testing.T) {
	parser := NewParser("")

	feed, err := parser.NormalizeFeed(json.RawMessage(`not json`))

	assert.Nil(t, feed)
	assert.Error(t, err)
}

func TestNormalizeFeed_UnparsableDate(t *testing.T) {
	tweet := simpleTweet()
	tweet.CreatedAt = "soon"

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{tweet}))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	assert.Nil(t, feed.Items[0].Published)
}

func TestNormalizeFeed_ExtendedEntitiesMediaWins(t *testing.T) {
	tweet := simpleTweet()
	tweet.FullText = "pic https://t.co/abc"
	tweet.Entities = Entities{
		Media: []MediaEntity{{
			URL:      "https://t.co/abc",
			MediaURL: "https://pbs.twimg.com/cropped.jpg",
			Type:     "photo",
		}},
	}
	tweet.ExtendedEntities = &Entities{
		Media: []MediaEntity{{
			URL:      "https://t.co/abc",
			MediaURL: "https://pbs.twimg.com/full.jpg",
			Type:     "photo",
		}},
	}

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{tweet}))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	assert.Contains(t, feed.Items[0].Content, "full.jpg")
	assert.NotContains(t, feed.Items[0].Content, "cropped.jpg")
}

func TestEntities_UnmarshalCollectsUnknownGroups(t *testing.T) {
	raw := `{
		"hashtags": [{"text": "golang"}],
		"polls": [{"options": []}, {"options": []}],
		"notes": [{"id": 1}]
	}`

	var entities Entities
	require.NoError(t, json.Unmarshal([]byte(raw), &entities))

	assert.Len(t, entities.Hashtags, 1)
	// One entry per annotation, kinds sorted
	assert.Equal(t, []string{"notes", "polls", "polls"}, entities.Unknown)
}

func TestNormalizeFeed_UnknownEntityGroup(t *testing.T) {
	payload := json.RawMessage(`[{
		"id_str": "123",
		"full_text": "vote now",
		"created_at": "Wed Aug 27 13:08:45 +0000 2008",
		"user": {"name": "Bob Smith", "screen_name": "bob"},
		"entities": {
			"hashtags": [],
			"polls": [{"options": []}]
		}
	}]`)

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(payload)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	content := feed.Items[0].Content
	assert.Contains(t, content, "vote now")
	assert.Contains(t, content, "[Tweet contains unknown entity type polls]")
}

func TestNormalizeFeed_DuplicateTagsDeduplicated(t *testing.T) {
	tweet := simpleTweet()
	tweet.Entities.Hashtags = []HashtagEntity{{Text: "a"}, {Text: "b"}, {Text: "a"}}

	parser := NewParser("")

	feed, err := parser.NormalizeFeed(marshal(t, []Tweet{tweet}))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)

	assert.Equal(t, []string{"a", "b"}, feed.Items[0].Tags)
}
