// Package handler contains the worker's Pub/Sub push handler.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pricealert/config"
	deliverycontext "pricealert/internal/delivery/context"
	"pricealert/internal/domain/entity"
	domainerrors "pricealert/internal/domain/errors"
	"pricealert/internal/errors"
	"pricealert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// AlertTrigger is published by the price watcher when alert conditions are met.
type AlertTrigger struct {
	AlertIDs  []string `json:"alert_ids"`
	DryRun    bool     `json:"dry_run,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator checks a Google-signed OIDC token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns Pub/Sub pushes into alert batch passes.
type PushHandler struct {
	audience       string
	serviceAccount string
	validateToken  TokenValidator
	logger         *slog.Logger
	alertUC        usecase.AlertUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	AlertUC   usecase.AlertUsecase
	Validator TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler. Token verification is on when an audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: params.Validator,
		logger:        params.Logger,
		alertUC:       params.AlertUC,
	}
	if params.Config.PubSub != nil {
		h.audience = params.Config.PubSub.Audience
		h.serviceAccount = params.Config.PubSub.ServiceAccountEmail
	}
	if h.validateToken == nil {
		h.validateToken = idtoken.Validate
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; any 2xx acknowledges, including for payloads that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var trigger AlertTrigger
	if err := json.Unmarshal(data, &trigger); err != nil {
		h.logger.Error("[Worker] Failed to parse alert trigger", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.Scoped(ctx, h.logger, h.extractRequestID(ctx, &pushMsg, &trigger))

	reqLogger.Info("[Worker] Processing alert trigger",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("alert_count", len(trigger.AlertIDs)),
		slog.Bool("dry_run", trigger.DryRun),
	)

	if err := h.processTrigger(ctx, reqLogger, &trigger); err != nil {
		reqLogger.Error("[Worker] Failed to process alert trigger",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the payload, then the X-Request-Id of the push.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, trigger *AlertTrigger) string {
	if requestID := pushMsg.Message.Attributes[deliverycontext.AttributeRequestID]; requestID != "" {
		return requestID
	}
	if trigger.RequestID != "" {
		return trigger.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}

func (h *PushHandler) processTrigger(ctx context.Context, logger *slog.Logger, trigger *AlertTrigger) error {
	ids := make([]uuid.UUID, 0, len(trigger.AlertIDs))
	for _, raw := range trigger.AlertIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[Worker] Skipping malformed alert id", slog.String("alert_id", raw))

			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		logger.Info("[Worker] No alerts to process")

		return nil
	}

	results, err := h.alertUC.ProcessBatchAlerts(ctx, nil, ids, trigger.DryRun)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	var delivered, failed, postponed, storageFailures int
	for _, r := range results {
		switch {
		case r.Postponed:
			postponed++
		case r.Success:
			delivered++
		default:
			failed++
			if r.Channel == "" && r.Error == entity.DeliveryErrRepository {
				storageFailures++
			}
		}
	}

	logger.Info("[Worker] Alert trigger processed",
		slog.Int("results", len(results)),
		slog.Int("delivered", delivered),
		slog.Int("failed", failed),
		slog.Int("postponed", postponed),
	)

	// Passes that never reached storage left their alerts untouched, so redelivery is safe.
	if storageFailures > 0 {
		return newRetryableError(errors.Errorf("%d alert passes failed on storage", storageFailures))
	}

	return nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(ctx context.Context, authHeader string) error {
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	payload, err := h.validateToken(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
