package notification

import (
	"context"
	"fmt"
	"log/slog"

	"pricealert/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase limits multicast sends to 500 tokens per request.
const maxMulticastTokens = 500

// multicastClient is the part of *messaging.Client the sender uses.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebasePushSender struct {
	client multicastClient
	logger *slog.Logger
}

// PushParams holds dependencies for the push sender, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// NewPushSender returns an FCM-backed sender, or a log sender when Firebase is disabled.
func NewPushSender(params PushParams) (service.PushSender, error) {
	if params.App == nil {
		return &logPushSender{logger: params.Logger}, nil
	}

	client, err := params.App.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebasePushSender(client, params.Logger), nil
}

func newFirebasePushSender(client multicastClient, logger *slog.Logger) *firebasePushSender {
	return &firebasePushSender{client: client, logger: logger}
}

// SendMulticast sends one message to every device token of the user.
func (s *firebasePushSender) SendMulticast(ctx context.Context, msg *service.PushMessage) (*service.PushResponse, error) {
	if len(msg.Tokens) == 0 {
		return &service.PushResponse{}, nil
	}
	if len(msg.Tokens) > maxMulticastTokens {
		return nil, fmt.Errorf("%w: token count exceeds limit: %d (max %d)", service.ErrRejected, len(msg.Tokens), maxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	out := &service.PushResponse{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Success {
			out.MessageIDs = append(out.MessageIDs, sendResponse.MessageID)

			continue
		}
		if sendResponse.Error != nil &&
			(messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error)) {
			out.InvalidTokens = append(out.InvalidTokens, msg.Tokens[idx])
		}
	}

	return out, nil
}

func buildMulticast(msg *service.PushMessage) *messaging.MulticastMessage {
	androidPriority := "normal"
	apnsPriority := "5"
	if msg.HighPriority {
		androidPriority = "high"
		apnsPriority = "10"
	}

	return &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: msg.ImageURL,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority,
			Notification: &messaging.AndroidNotification{
				ClickAction: msg.Category,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriority},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Category: msg.Category,
					Sound:    "default",
				},
			},
		},
	}
}

// logPushSender stands in for FCM in local development.
type logPushSender struct {
	logger *slog.Logger
}

func (s *logPushSender) SendMulticast(ctx context.Context, msg *service.PushMessage) (*service.PushResponse, error) {
	s.logger.InfoContext(ctx, "[LogPush] Push notification",
		slog.Int("token_count", len(msg.Tokens)),
		slog.String("title", msg.Title),
		slog.String("category", msg.Category),
	)

	ids := make([]string, len(msg.Tokens))
	for i := range ids {
		ids[i] = "log-" + uuid.NewString()
	}

	return &service.PushResponse{SuccessCount: len(msg.Tokens), MessageIDs: ids}, nil
}
