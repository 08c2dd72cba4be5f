package models

import "time"

// Subscription links a viewer to a creator's channel.
type Subscription struct {
	ViewerID  string    `json:"viewerId"`
	CreatorID string    `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Subscription model.
func (s Subscription) TableName() string {
	return "subscriptions"
}

// SubscriptionTarget is the input of the subscribe/unsubscribe procedures.
type SubscriptionTarget struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// UserID is the input of procedures addressing a channel.
type UserID struct {
	ID string `json:"id" validate:"required,uuid"`
}
