package service

import (
	"context"
	"errors"
)

// PushMessage is a rendered push notification addressed to one user's devices.
type PushMessage struct {
	Tokens   []string
	Title    string
	Body     string
	ImageURL string
	Data     map[string]string
	// Category selects the actionable button set registered on the client.
	Category string
	// HighPriority asks the gateway for immediate delivery.
	HighPriority bool
}

// PushResponse summarises a multicast send.
type PushResponse struct {
	SuccessCount  int
	FailureCount  int
	MessageIDs    []string
	InvalidTokens []string
}

// PushSender defines the interface for push notification gateways
type PushSender interface {
	// SendMulticast sends one message to every token of the message (max 500 tokens).
	SendMulticast(ctx context.Context, msg *PushMessage) (*PushResponse, error)
}

// EmailMessage is a rendered email.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	Tag      string
}

// EmailSender sends transactional email and returns the provider message ID.
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) (string, error)
}

// InAppNotification is a notification stored for display inside the storefront.
type InAppNotification struct {
	UserID  string
	AlertID string
	Type    string
	Title   string
	Message string
	Data    map[string]any
	Actions []string
}

// InAppStore persists in-app notifications and returns the stored document ID.
type InAppStore interface {
	Save(ctx context.Context, notification *InAppNotification) (string, error)
}

// ErrRejected is wrapped by gateways when a message was refused for a reason that
// resending cannot fix (bad address, unsubscribed number, malformed payload).
var ErrRejected = errors.New("message rejected by gateway")
