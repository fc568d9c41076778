package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pricealert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localHTTPPublisher posts SMS messages to a local endpoint in the Pub/Sub push envelope,
// standing in for the gateway topic during development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body Google Pub/Sub sends to push subscriptions
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP SMS publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.SMSSender {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SendSMS posts the message and returns the generated message ID
func (p *localHTTPPublisher) SendSMS(ctx context.Context, msg *service.SMSMessage) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", service.ErrRejected, err)
	}

	envelope := PushEnvelope{
		Subscription: "projects/local/subscriptions/sms-gateway",
	}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = smsAttributes(msg)

	body, err := json.Marshal(envelope)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.RequestID != "" {
		req.Header.Set("X-Request-Id", msg.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: gateway returned status %d", service.ErrRejected, resp.StatusCode)
	default:
		return "", errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] SMS handed to gateway",
		slog.String("alert_id", msg.AlertID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	return envelope.Message.MessageID, nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
