package entity

import "slices"

// NotificationChannel is a delivery medium for an alert.
type NotificationChannel string

const (
	ChannelPush  NotificationChannel = "push"
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelInApp NotificationChannel = "in_app"
)

// AllChannels lists every supported channel.
var AllChannels = []NotificationChannel{ChannelPush, ChannelEmail, ChannelSMS, ChannelInApp}

// IsValid reports whether c is a known channel.
func (c NotificationChannel) IsValid() bool {
	return slices.Contains(AllChannels, c)
}
