package notification

import (
	"context"
	"log/slog"
	"time"

	"pricealert/config"
	"pricealert/internal/domain/service"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInAppCollection = "notifications"

// inAppDocument is the Firestore shape read by the storefront notification centre.
type inAppDocument struct {
	ID        string         `firestore:"id"`
	UserID    string         `firestore:"user_id"`
	AlertID   string         `firestore:"alert_id"`
	Type      string         `firestore:"type"`
	Title     string         `firestore:"title"`
	Message   string         `firestore:"message"`
	Data      map[string]any `firestore:"data,omitempty"`
	Actions   []string       `firestore:"actions,omitempty"`
	Read      bool           `firestore:"read"`
	CreatedAt time.Time      `firestore:"created_at"`
	ExpiresAt *time.Time     `firestore:"expires_at,omitempty"`
}

type firestoreInAppStore struct {
	client     *firestore.Client
	collection string
	ttl        time.Duration
	now        func() time.Time
}

// InAppParams holds dependencies for the in-app store, injected by Fx
type InAppParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewInAppStore returns a Firestore-backed store, or a log store when in-app delivery is disabled.
func NewInAppStore(params InAppParams) (service.InAppStore, error) {
	cfg := params.Config.InApp
	if params.App == nil || cfg == nil || !cfg.Enabled {
		return &logInAppStore{logger: params.Logger}, nil
	}

	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	collection := cfg.Collection
	if collection == "" {
		collection = defaultInAppCollection
	}

	return &firestoreInAppStore{client: client, collection: collection, ttl: cfg.TTL, now: time.Now}, nil
}

// Save writes the notification document and returns its ID.
func (s *firestoreInAppStore) Save(ctx context.Context, n *service.InAppNotification) (string, error) {
	doc := newInAppDocument(n, s.now(), s.ttl)

	if _, err := s.client.Collection(s.collection).Doc(doc.ID).Set(ctx, doc); err != nil {
		return "", errors.Wrap(err, "failed to store in-app notification")
	}

	return doc.ID, nil
}

func newInAppDocument(n *service.InAppNotification, now time.Time, ttl time.Duration) *inAppDocument {
	doc := &inAppDocument{
		ID:        uuid.NewString(),
		UserID:    n.UserID,
		AlertID:   n.AlertID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Actions:   n.Actions,
		CreatedAt: now,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		doc.ExpiresAt = &expiresAt
	}

	return doc
}

type logInAppStore struct {
	logger *slog.Logger
}

func (s *logInAppStore) Save(ctx context.Context, n *service.InAppNotification) (string, error) {
	id := uuid.NewString()
	s.logger.InfoContext(ctx, "[LogInApp] In-app notification",
		slog.String("id", id),
		slog.String("user_id", n.UserID),
		slog.String("alert_id", n.AlertID),
		slog.String("title", n.Title),
	)

	return id, nil
}
