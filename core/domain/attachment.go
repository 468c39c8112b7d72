// ABOUTME: Attachment models represent typed non-inline objects on a VK post
// ABOUTME: Each kind has an explicit payload struct instead of ad-hoc map access

package domain

// AttachmentKind identifies the kind of an attachment. An unrecognized
// raw kind is carried verbatim so that placeholder output can name it.
type AttachmentKind string

// Known attachment kinds
const (
	AttachmentPhoto       AttachmentKind = "photo"
	AttachmentPostedPhoto AttachmentKind = "posted_photo"
	AttachmentVideo       AttachmentKind = "video"
	AttachmentAudio       AttachmentKind = "audio"
	AttachmentDoc         AttachmentKind = "doc"
	AttachmentGraffiti    AttachmentKind = "graffiti"
	AttachmentLink        AttachmentKind = "link"
	AttachmentNote        AttachmentKind = "note"
	AttachmentApp         AttachmentKind = "app"
	AttachmentPoll        AttachmentKind = "poll"
	AttachmentPage        AttachmentKind = "page"
	AttachmentAlbum       AttachmentKind = "album"
	AttachmentPhotosList  AttachmentKind = "photos_list"
)

// Attachment is one typed attachment record. Exactly one payload field
// matching Kind is expected to be set; renderers treat a missing payload
// as an empty block, never as an error.
type Attachment struct {
	Kind AttachmentKind `json:"type"`

	Photo       *PhotoAttachment       `json:"photo,omitempty"`
	PostedPhoto *PostedPhotoAttachment `json:"posted_photo,omitempty"`
	Video       *VideoAttachment       `json:"video,omitempty"`
	Audio       *AudioAttachment       `json:"audio,omitempty"`
	Doc         *DocAttachment         `json:"doc,omitempty"`
	Graffiti    *GraffitiAttachment    `json:"graffiti,omitempty"`
	Link        *LinkAttachment        `json:"link,omitempty"`
	Note        *NoteAttachment        `json:"note,omitempty"`
	App         *AppAttachment         `json:"app,omitempty"`
	Poll        *PollAttachment        `json:"poll,omitempty"`
	Page        *PageAttachment        `json:"page,omitempty"`
	Album       *AlbumAttachment       `json:"album,omitempty"`
}

// PhotoAttachment is a photo uploaded with the post
type PhotoAttachment struct {
	SrcBig string `json:"src_big"`
}

// PostedPhotoAttachment is a photo posted directly to the wall
type PostedPhotoAttachment struct {
	Photo604 string `json:"photo_604"`
}

// VideoAttachment is a video record; VK exposes only a preview image,
// not a playable stream URL
type VideoAttachment struct {
	Title    string `json:"title"`
	ImageBig string `json:"image_big"`
	Duration int    `json:"duration"`
}

// AudioAttachment is an audio record
type AudioAttachment struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// DocAttachment is an uploaded document
type DocAttachment struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// GraffitiAttachment is a drawn graffiti image
type GraffitiAttachment struct {
	Photo604 string `json:"photo_604"`
}

// LinkAttachment is an external link with optional preview image
type LinkAttachment struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageSrc    string `json:"image_src"`
}

// NoteAttachment is a note page
type NoteAttachment struct {
	ViewURL string `json:"view_url"`
	Title   string `json:"title"`
}

// AppAttachment is an application reference
type AppAttachment struct {
	Name string `json:"name"`
}

// PollAttachment is a poll
type PollAttachment struct {
	Question string `json:"question"`
}

// PageAttachment is a wiki page
type PageAttachment struct {
	ViewURL string `json:"view_url"`
	Title   string `json:"title"`
}

// AlbumAttachment is a photo album reference
type AlbumAttachment struct {
	Title string `json:"title"`
	Size  int    `json:"size"`
}
