package notification

import (
	"context"
	"testing"
	"time"

	"pricealert/config"
	"pricealert/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewInAppDocument(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := &service.InAppNotification{
		UserID:  "u-1",
		AlertID: "a-1",
		Type:    "price_drop",
		Title:   "Price dropped",
		Actions: []string{"view_product", "buy_now"},
	}

	doc := newInAppDocument(n, now, 24*time.Hour)
	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.Read)
	assert.Equal(t, now, doc.CreatedAt)
	require.NotNil(t, doc.ExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), *doc.ExpiresAt)
	assert.Equal(t, n.Actions, doc.Actions)

	assert.Nil(t, newInAppDocument(n, now, 0).ExpiresAt)
}

func TestNewInAppStore_DisabledFallsBackToLog(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewInAppStore(InAppParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{InApp: &config.InAppConfig{Enabled: true}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &logInAppStore{}, store)

	id, err := store.Save(context.Background(), &service.InAppNotification{UserID: "u-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
