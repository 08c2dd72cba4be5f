package models

import "time"

// User is a channel owner and viewer account mirrored from the identity
// provider. The provider owns credentials; only profile data is stored here.
type User struct {
	// ID is the internal identifier referenced by videos and subscriptions.
	ID string `json:"id"`

	// ClerkID is the identity provider's user id (the "sub" claim of its
	// session tokens). Unique.
	ClerkID string `json:"-"`

	// Name is the display name shown next to the channel's videos.
	Name string `json:"name"`

	// ImageURL is the avatar URL served by the identity provider.
	ImageURL string `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Channel is a public channel page: the owner with aggregate counters and
// the subscription state of the current viewer.
type Channel struct {
	User

	VideoCount      int64 `json:"videoCount"`
	SubscriberCount int64 `json:"subscriberCount"`

	// ViewerSubscribed is false for anonymous viewers.
	ViewerSubscribed bool `json:"viewerSubscribed"`
}
