package models

import (
	"strings"
	"time"
)

// Mux webhook event types handled by the video webhook.
const (
	MuxAssetCreated    = "video.asset.created"
	MuxAssetReady      = "video.asset.ready"
	MuxAssetErrored    = "video.asset.errored"
	MuxAssetDeleted    = "video.asset.deleted"
	MuxAssetTrackReady = "video.asset.track.ready"
)

// MuxWebhookEvent is the envelope of a video provider callback.
type MuxWebhookEvent struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	Data      MuxAssetData `json:"data"`
}

// MuxAssetData is the subset of the asset (or track) object the service reads.
type MuxAssetData struct {
	// ID is the asset id, or the track id for track events.
	ID     string `json:"id"`
	Status string `json:"status"`

	UploadID string `json:"upload_id"`

	// AssetID is only present on track events.
	AssetID string `json:"asset_id"`

	// Duration is in seconds.
	Duration    *float64        `json:"duration"`
	PlaybackIDs []MuxPlaybackID `json:"playback_ids"`
}

// MuxPlaybackID is a playback identifier of an asset.
type MuxPlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// FirstPlaybackID returns the first playback id or "".
func (d MuxAssetData) FirstPlaybackID() string {
	if len(d.PlaybackIDs) == 0 {
		return ""
	}
	return d.PlaybackIDs[0].ID
}

// MuxUpload is a direct upload opened at the video provider.
type MuxUpload struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Identity provider webhook event types handled by the user webhook.
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// UserWebhookEvent is a user lifecycle callback of the identity provider.
type UserWebhookEvent struct {
	Type string          `json:"type"`
	Data UserWebhookData `json:"data"`
}

// UserWebhookData is the subset of the provider's user object the service reads.
type UserWebhookData struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ImageURL  string  `json:"image_url"`
}

// FullName joins the non-empty name parts with a space.
func (d UserWebhookData) FullName() string {
	parts := make([]string, 0, 2)
	if d.FirstName != nil && *d.FirstName != "" {
		parts = append(parts, *d.FirstName)
	}
	if d.LastName != nil && *d.LastName != "" {
		parts = append(parts, *d.LastName)
	}
	return strings.Join(parts, " ")
}

// VideoStatusEvent is published to the event stream whenever a provider
// callback changes a video.
type VideoStatusEvent struct {
	Type       string    `json:"type"`
	UploadID   string    `json:"uploadId,omitempty"`
	AssetID    string    `json:"assetId,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Key returns the partition key of the event.
func (e VideoStatusEvent) Key() string {
	if e.UploadID != "" {
		return e.UploadID
	}
	return e.AssetID
}
