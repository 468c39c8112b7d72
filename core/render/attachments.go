// ABOUTME: Attachment renderer dispatching typed VK attachments to text blocks
// ABOUTME: Closed dispatch table with a visible placeholder for unknown kinds

package render

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"social-rss-api/core/domain"
	"social-rss-api/core/markup"
)

// attachmentRenderers maps each known attachment kind to its renderer.
// A kind missing from the table degrades to a placeholder block, never
// an error.
var attachmentRenderers = map[domain.AttachmentKind]func(domain.Attachment) string{
	domain.AttachmentPhoto:       renderPhoto,
	domain.AttachmentPostedPhoto: renderPostedPhoto,
	domain.AttachmentVideo:       renderVideo,
	domain.AttachmentAudio:       renderAudio,
	domain.AttachmentDoc:         renderDoc,
	domain.AttachmentGraffiti:    renderGraffiti,
	domain.AttachmentLink:        renderLink,
	domain.AttachmentNote:        renderNote,
	domain.AttachmentApp:         renderApp,
	domain.AttachmentPoll:        renderPoll,
	domain.AttachmentPage:        renderPage,
	domain.AttachmentAlbum:       renderAlbum,
	domain.AttachmentPhotosList:  renderPhotosList,
}

// Attachments renders each attachment to a text block and joins the
// blocks with newlines, preserving input order. The result is plain
// text; callers targeting HTML convert the newlines (markup.BreakLines)
// when assembling the final content. Missing payloads render as empty
// segments; no attachment ever produces an error.
func Attachments(attachments []domain.Attachment) string {
	blocks := lo.Map(attachments, func(a domain.Attachment, _ int) string {
		renderer, ok := attachmentRenderers[a.Kind]
		if !ok {
			return fmt.Sprintf("[Item contains unknown attachment type %s]", a.Kind)
		}

		return renderer(a)
	})

	return strings.Join(blocks, "\n")
}

func renderPhoto(a domain.Attachment) string {
	if a.Photo == nil {
		return ""
	}

	return markup.Image(a.Photo.SrcBig, "")
}

func renderPostedPhoto(a domain.Attachment) string {
	if a.PostedPhoto == nil {
		return ""
	}

	return markup.Image(a.PostedPhoto.Photo604, "")
}

func renderVideo(a domain.Attachment) string {
	if a.Video == nil {
		return ""
	}

	block := "Video: " + a.Video.Title

	if a.Video.ImageBig != "" {
		block += "\n" + markup.Image(a.Video.ImageBig, "")
	}

	return block
}

func renderAudio(a domain.Attachment) string {
	if a.Audio == nil {
		return ""
	}

	return fmt.Sprintf("Audio: %s &ndash; %s", a.Audio.Artist, a.Audio.Title)
}

func renderDoc(a domain.Attachment) string {
	if a.Doc == nil {
		return ""
	}

	return "Document: " + markup.Link(a.Doc.URL, a.Doc.Title)
}

func renderGraffiti(a domain.Attachment) string {
	if a.Graffiti == nil {
		return ""
	}

	return "Graffiti: " + markup.Image(a.Graffiti.Photo604, "")
}

// renderLink prepends a preview image, linked to the target, before the
// description when the attachment carries one
func renderLink(a domain.Attachment) string {
	if a.Link == nil {
		return ""
	}

	description := a.Link.Description

	if a.Link.ImageSrc != "" {
		description = markup.Image(a.Link.ImageSrc, a.Link.URL) + "\n" + description
	}

	return "Link: " + markup.Link(a.Link.URL, a.Link.Title) + "\n" + description
}

func renderNote(a domain.Attachment) string {
	if a.Note == nil {
		return ""
	}

	return "Note: " + markup.Link(a.Note.ViewURL, a.Note.Title)
}

func renderApp(a domain.Attachment) string {
	if a.App == nil {
		return ""
	}

	return "Application: " + a.App.Name
}

func renderPoll(a domain.Attachment) string {
	if a.Poll == nil {
		return ""
	}

	return "Poll: " + a.Poll.Question
}

func renderPage(a domain.Attachment) string {
	if a.Page == nil {
		return ""
	}

	return "Page: " + markup.Link(a.Page.ViewURL, a.Page.Title)
}

func renderAlbum(a domain.Attachment) string {
	if a.Album == nil {
		return ""
	}

	return fmt.Sprintf("Album: %s (%d photos)", a.Album.Title, a.Album.Size)
}

func renderPhotosList(domain.Attachment) string {
	return "[Photo list]"
}
