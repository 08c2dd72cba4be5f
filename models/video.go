package models

import "time"

// VideoVisibility controls whether a video appears in the public feed.
type VideoVisibility string

const (
	VisibilityPublic  VideoVisibility = "public"
	VisibilityPrivate VideoVisibility = "private"
)

// Mux asset statuses persisted in Video.MuxStatus.
const (
	MuxStatusWaiting   = "waiting"
	MuxStatusPreparing = "preparing"
	MuxStatusReady     = "ready"
	MuxStatusErrored   = "errored"
)

// DefaultDuration is stored when a ready asset reports no duration.
const DefaultDuration int64 = 0

// DefaultTitle is assigned to freshly created uploads.
const DefaultTitle = "Untitled"

// Video is a single uploaded video and the processing state reported by the
// video provider. Nullable columns are pointers.
type Video struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`

	MuxStatus      *string `json:"muxStatus"`
	MuxAssetID     *string `json:"muxAssetId"`
	MuxUploadID    *string `json:"muxUploadId"`
	MuxPlaybackID  *string `json:"muxPlaybackId"`
	MuxTrackID     *string `json:"muxTrackId"`
	MuxTrackStatus *string `json:"muxTrackStatus"`

	ThumbnailURL *string `json:"thumbnailUrl"`
	ThumbnailKey *string `json:"thumbnailKey"`
	PreviewURL   *string `json:"previewUrl"`
	PreviewKey   *string `json:"previewKey"`

	// Duration is in milliseconds.
	Duration int64 `json:"duration"`

	Visibility VideoVisibility `json:"visibility"`
	UserID     string          `json:"userId"`
	CategoryID *string         `json:"categoryId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// ObjectKeys returns the object-storage keys owned by the video.
func (v Video) ObjectKeys() []string {
	keys := make([]string, 0, 2)
	if v.ThumbnailKey != nil && *v.ThumbnailKey != "" {
		keys = append(keys, *v.ThumbnailKey)
	}
	if v.PreviewKey != nil && *v.PreviewKey != "" {
		keys = append(keys, *v.PreviewKey)
	}
	return keys
}

// VideoOwner is the author block attached to a video page.
type VideoOwner struct {
	User

	SubscriberCount  int64 `json:"subscriberCount"`
	ViewerSubscribed bool  `json:"viewerSubscribed"`
}

// VideoDetails is the payload of the public video page.
type VideoDetails struct {
	Video

	User VideoOwner `json:"user"`

	DescriptionHTML string `json:"descriptionHtml"`
	DurationLabel   string `json:"durationLabel"`
	StatusLabel     string `json:"statusLabel"`
}

// VideoWithUser is a public feed entry.
type VideoWithUser struct {
	Video

	User User `json:"user"`
}

// CreatedVideo is returned when a direct upload is opened: the new row and
// the provider URL the client uploads the file to.
type CreatedVideo struct {
	Video Video  `json:"video"`
	URL   string `json:"url"`
}

// VideoUpdate carries the user-editable fields. Nil fields are left as is.
// CategoryID can also be cleared with an explicit null.
type VideoUpdate struct {
	ID          string           `json:"id" validate:"required,uuid"`
	Title       *string          `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	CategoryID  NullableString   `json:"categoryId"`
	Visibility  *VideoVisibility `json:"visibility" validate:"omitempty,oneof=public private"`
}

// VideoThumbnail sets or clears (nil fields) the thumbnail columns.
type VideoThumbnail struct {
	URL *string
	Key *string
}

// VideoAssetUpdate is a partial update applied from a provider webhook.
type VideoAssetUpdate struct {
	AssetID      *string
	Status       *string
	PlaybackID   *string
	ThumbnailURL *string
	ThumbnailKey *string
	PreviewURL   *string
	PreviewKey   *string
	Duration     *int64
}

// VideoTrackUpdate is applied when the provider finishes a text track.
type VideoTrackUpdate struct {
	TrackID     string
	TrackStatus string
}

// VideoID is the input of procedures addressing a single video.
type VideoID struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ThumbnailPrompt is the input of the thumbnail generation procedure.
type ThumbnailPrompt struct {
	ID     string `json:"id" validate:"required,uuid"`
	Prompt string `json:"prompt" validate:"required,min=10,max=1000"`
}
