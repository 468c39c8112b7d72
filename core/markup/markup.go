// ABOUTME: Pure helpers building inline HTML markup fragments from URLs
// ABOUTME: Used by the entity substitution engine and the attachment renderer

package markup

import (
	"fmt"
	"strings"
)

// Link builds an inline hyperlink. The label defaults to the URL itself.
// An empty URL yields an empty string.
func Link(url, label string) string {
	if url == "" {
		return ""
	}

	if label == "" {
		label = url
	}

	return fmt.Sprintf(`<a href=%q>%s</a>`, url, label)
}

// Image builds an inline image. If linkURL is non-empty the image is
// wrapped in a link to it. An empty URL yields an empty string.
func Image(url, linkURL string) string {
	if url == "" {
		return ""
	}

	img := fmt.Sprintf(`<img src=%q>`, url)

	if linkURL == "" {
		return img
	}

	return fmt.Sprintf(`<a href=%q>%s</a>`, linkURL, img)
}

// Video builds an inline video player with a poster image. An empty
// video URL yields an empty string.
func Video(videoURL, posterURL string) string {
	if videoURL == "" {
		return ""
	}

	return fmt.Sprintf(
		`<video controls poster=%q><source src=%q type="video/mp4"></video>`,
		posterURL,
		videoURL,
	)
}

// BreakLines converts newlines into HTML line breaks, keeping the
// original newline characters
func BreakLines(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>\n")
}
