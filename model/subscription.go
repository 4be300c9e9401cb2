package model

import (
	"time"
)

// Subscription records that a user follows a channel (a channel is just a
// user on the receiving end). Existence of the pair is the subscribed state.
type Subscription struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	SubscriberID uint64 `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_channel,priority:1" json:"subscriber_id"`
	Subscriber   User   `gorm:"foreignKey:SubscriberID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	ChannelID uint64 `gorm:"column:channel_id;not null;index;uniqueIndex:uk_subscriber_channel,priority:2" json:"channel_id"`
	Channel   User   `gorm:"foreignKey:ChannelID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Subscription) TableName() string {
	return "subscription"
}
