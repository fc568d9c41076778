package service

import (
	"context"
)

// SMSMessage is a rendered text message handed to the SMS gateway.
type SMSMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string `json:"alert_id"`
	To        string `json:"to"`
	Body      string `json:"body"`
}

// SMSSender defines the interface for handing text messages to the SMS gateway
type SMSSender interface {
	// SendSMS queues a message for delivery and returns the gateway message ID.
	SendSMS(ctx context.Context, msg *SMSMessage) (string, error)

	// Close releases any resources held by the sender
	Close() error
}
