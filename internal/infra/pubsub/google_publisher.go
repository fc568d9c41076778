package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pricealert/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleSMSPublisher hands text messages to the SMS gateway through a Pub/Sub topic
type googleSMSPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGoogleSMSPublisher creates a publisher bound to the gateway topic
func NewGoogleSMSPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.SMSSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub SMS publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googleSMSPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// SendSMS publishes the message and returns the Pub/Sub server ID
func (p *googleSMSPublisher) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrRejected, err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: smsAttributes(msg),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] SMS handed to gateway",
		slog.String("alert_id", msg.AlertID),
		slog.String("server_id", serverID),
	)

	return serverID, nil
}

// Close releases Pub/Sub client resources
func (p *googleSMSPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

func smsAttributes(msg *service.SMSMessage) map[string]string {
	attributes := map[string]string{
		"alert_id": msg.AlertID,
	}
	if msg.RequestID != "" {
		attributes["request_id"] = msg.RequestID
	}

	return attributes
}
