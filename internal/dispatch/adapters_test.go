package dispatch

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
	mockRepo "pricealert/internal/mocks/repository"
	mockService "pricealert/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func recipient() *entity.Recipient {
	return &entity.Recipient{
		UserID:       uuid.New(),
		Name:         "Dana",
		Email:        "dana@example.com",
		Phone:        "+15550123",
		DeviceTokens: []string{"t1", "t2", "t3"},
	}
}

func TestPushAdapter(t *testing.T) {
	alert := newTestAlert(entity.ChannelPush)
	alert.Priority = entity.PriorityUrgent
	alert.AlertData = map[string]any{"current_price": 19.99, "product_url": "https://shop.example/p/1"}

	t.Run("partial success deactivates invalid tokens", func(t *testing.T) {
		devices := mockRepo.NewMockDeviceRepository(t)
		devices.EXPECT().DeactivateTokens(mock.Anything, []string{"t3"}).Return(nil).Once()
		var sent *service.PushMessage
		sender := mockService.NewMockPushSender(t)
		sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).
			Run(func(_ context.Context, msg *service.PushMessage) { sent = msg }).
			Return(&service.PushResponse{SuccessCount: 2, FailureCount: 1, MessageIDs: []string{"m1", "m2"}, InvalidTokens: []string{"t3"}}, nil)

		result := NewPushAdapter(sender, devices, time.Second, nil).Deliver(context.Background(), alert, recipient())

		require.True(t, result.Success)
		assert.Equal(t, "m1", result.MessageID)
		assert.NotNil(t, result.DeliveredAt)
		assert.Equal(t, "PRICE_ALERT_PRICE_DROP", sent.Category)
		assert.True(t, sent.HighPriority)
		assert.Equal(t, "19.99", sent.Data["current_price"])
		assert.Equal(t, "view_product,buy_now", sent.Data["actions"])
		assert.Equal(t, alert.ID.String(), sent.Data["alert_id"])
	})

	t.Run("all tokens invalid is permanent", func(t *testing.T) {
		sender := mockService.NewMockPushSender(t)
		sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).
			Return(&service.PushResponse{FailureCount: 3, InvalidTokens: []string{"t1", "t2", "t3"}}, nil)
		devices := mockRepo.NewMockDeviceRepository(t)
		devices.EXPECT().DeactivateTokens(mock.Anything, []string{"t1", "t2", "t3"}).Return(errors.New("db gone"))

		result := NewPushAdapter(sender, devices, time.Second, nil).Deliver(context.Background(), alert, recipient())

		assert.False(t, result.Success)
		assert.False(t, result.Retryable)
	})

	t.Run("gateway error is retryable", func(t *testing.T) {
		sender := mockService.NewMockPushSender(t)
		sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).Return(nil, errors.New("503 from fcm"))

		result := NewPushAdapter(sender, mockRepo.NewMockDeviceRepository(t), time.Second, nil).Deliver(context.Background(), alert, recipient())

		assert.False(t, result.Success)
		assert.True(t, result.Retryable)
		assert.Contains(t, result.Error, "503 from fcm")
	})

	t.Run("no devices", func(t *testing.T) {
		sender := mockService.NewMockPushSender(t)
		rcpt := recipient()
		rcpt.DeviceTokens = nil

		result := NewPushAdapter(sender, mockRepo.NewMockDeviceRepository(t), time.Second, nil).Deliver(context.Background(), alert, rcpt)

		sender.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
		assert.Equal(t, entity.DeliveryErrNoDestination, result.Error)
		assert.False(t, result.Retryable)
	})

	t.Run("token list capped at 500", func(t *testing.T) {
		var count int
		sender := mockService.NewMockPushSender(t)
		sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, msg *service.PushMessage) (*service.PushResponse, error) {
				count = len(msg.Tokens)

				return &service.PushResponse{SuccessCount: count}, nil
			})
		rcpt := recipient()
		rcpt.DeviceTokens = make([]string, 700)
		for i := range rcpt.DeviceTokens {
			rcpt.DeviceTokens[i] = fmt.Sprintf("tok-%d", i)
		}

		NewPushAdapter(sender, mockRepo.NewMockDeviceRepository(t), time.Second, nil).Deliver(context.Background(), alert, rcpt)

		assert.Equal(t, 500, count)
	})
}

func TestEmailAdapter(t *testing.T) {
	alert := newTestAlert(entity.ChannelEmail)
	alert.AlertData = map[string]any{"product_name": "<b>Kettle</b>", "product_url": "https://shop.example/k"}

	t.Run("renders and sends", func(t *testing.T) {
		var got *service.EmailMessage
		sender := mockService.NewMockEmailSender(t)
		sender.EXPECT().SendEmail(mock.Anything, mock.Anything).
			Run(func(_ context.Context, msg *service.EmailMessage) { got = msg }).
			Return("pm-1", nil)

		result := NewEmailAdapter(sender, time.Second, nil).Deliver(context.Background(), alert, recipient())

		require.True(t, result.Success)
		assert.Equal(t, "pm-1", result.MessageID)
		assert.Equal(t, "dana@example.com", got.To)
		assert.Equal(t, "[Price Alert] Price dropped", got.Subject)
		assert.Contains(t, got.HTMLBody, "&lt;b&gt;Kettle&lt;/b&gt;")
		assert.Contains(t, got.HTMLBody, "Hi Dana")
		assert.Contains(t, got.TextBody, "https://shop.example/k")
	})

	t.Run("missing address", func(t *testing.T) {
		rcpt := recipient()
		rcpt.Email = ""

		result := NewEmailAdapter(mockService.NewMockEmailSender(t), time.Second, nil).Deliver(context.Background(), alert, rcpt)

		assert.Equal(t, entity.DeliveryErrNoDestination, result.Error)
	})

	t.Run("rejected address is permanent", func(t *testing.T) {
		sender := mockService.NewMockEmailSender(t)
		sender.EXPECT().SendEmail(mock.Anything, mock.Anything).
			Return("", fmt.Errorf("inactive recipient: %w", service.ErrRejected))

		result := NewEmailAdapter(sender, time.Second, nil).Deliver(context.Background(), alert, recipient())

		assert.False(t, result.Success)
		assert.False(t, result.Retryable)
	})

	t.Run("transport timeout maps to timeout", func(t *testing.T) {
		sender := mockService.NewMockEmailSender(t)
		sender.EXPECT().SendEmail(mock.Anything, mock.Anything).
			Return("", &url.Error{Op: "Post", URL: "https://api.postmarkapp.com/email", Err: &net.DNSError{Err: "i/o timeout", IsTimeout: true}})

		result := NewEmailAdapter(sender, time.Second, nil).Deliver(context.Background(), alert, recipient())

		assert.Equal(t, entity.DeliveryErrTimeout, result.Error)
		assert.True(t, result.Retryable)
	})

	t.Run("preview skips transport", func(t *testing.T) {
		result := NewEmailAdapter(mockService.NewMockEmailSender(t), time.Second, nil).Preview(context.Background(), alert, recipient())

		assert.True(t, result.Success)
		assert.True(t, result.Metadata.DryRun)
		assert.Nil(t, result.DeliveredAt)
	})
}

func TestSMSAdapter(t *testing.T) {
	alert := newTestAlert(entity.ChannelSMS)
	alert.Priority = entity.PriorityUrgent
	alert.Message = strings.Repeat("cheap ", 60)

	var got *service.SMSMessage
	sender := mockService.NewMockSMSSender(t)
	sender.EXPECT().SendSMS(mock.Anything, mock.Anything).
		Run(func(_ context.Context, msg *service.SMSMessage) { got = msg }).
		Return("sms-1", nil).
		Once()

	result := NewSMSAdapter(sender, time.Second, nil).Deliver(context.Background(), alert, recipient())

	require.True(t, result.Success)
	assert.Equal(t, "+15550123", got.To)
	assert.Equal(t, alert.ID.String(), got.AlertID)
	assert.LessOrEqual(t, utf8.RuneCountInString(got.Body), 160)
	assert.True(t, strings.HasPrefix(got.Body, "URGENT: "))
	assert.True(t, strings.HasSuffix(got.Body, "..."))

	rcpt := recipient()
	rcpt.Phone = ""
	assert.Equal(t, entity.DeliveryErrNoDestination, NewSMSAdapter(sender, time.Second, nil).Deliver(context.Background(), alert, rcpt).Error)
}

func TestInAppAdapter(t *testing.T) {
	alert := newTestAlert(entity.ChannelInApp)
	alert.Type = entity.AlertTypePriceTarget

	var got *service.InAppNotification
	store := mockService.NewMockInAppStore(t)
	store.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *service.InAppNotification) { got = n }).
		Return("doc-1", nil)

	result := NewInAppAdapter(store, time.Second, nil).Deliver(context.Background(), alert, nil)

	require.True(t, result.Success)
	assert.Equal(t, "doc-1", result.MessageID)
	assert.Equal(t, []string{"view_product", "buy_now", "adjust_target"}, got.Actions)
	assert.Equal(t, alert.ProductID, got.Data["product_id"])
}

func TestAdapter_PanicAndTimeout(t *testing.T) {
	alert := newTestAlert(entity.ChannelInApp)

	t.Run("panic becomes failure", func(t *testing.T) {
		store := mockService.NewMockInAppStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *service.InAppNotification) (string, error) {
				panic("firestore exploded")
			})

		result := NewInAppAdapter(store, time.Second, nil).Deliver(context.Background(), alert, nil)

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "firestore exploded")
		assert.False(t, result.Retryable)
	})

	t.Run("slow transport times out", func(t *testing.T) {
		store := mockService.NewMockInAppStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *service.InAppNotification) (string, error) {
				<-ctx.Done()

				return "", ctx.Err()
			})

		result := NewInAppAdapter(store, 10*time.Millisecond, nil).Deliver(context.Background(), alert, nil)

		assert.False(t, result.Success)
		assert.Equal(t, entity.DeliveryErrTimeout, result.Error)
		assert.True(t, result.Retryable)
		assert.GreaterOrEqual(t, result.Metadata.DeliveryTimeMs, int64(10))
	})
}

func TestRenderSMS(t *testing.T) {
	alert := newTestAlert(entity.ChannelSMS)
	alert.Title = "Deal"
	alert.Message = "Short"

	assert.Equal(t, "Deal - Short", renderSMS(alert))

	alert.Priority = entity.PriorityHigh
	assert.Equal(t, "! Deal - Short", renderSMS(alert))

	alert.Message = strings.Repeat("é", 300)
	body := renderSMS(alert)
	assert.Equal(t, 160, utf8.RuneCountInString(body))
	assert.True(t, strings.HasSuffix(body, "..."))
}

func TestActionsFor(t *testing.T) {
	assert.Equal(t, []string{"view_product", "buy_now", "view_history"}, actionsFor(entity.AlertTypeHistoricalLow))
	assert.Equal(t, []string{"view_product", "add_to_cart"}, actionsFor(entity.AlertTypeBackInStock))
	assert.Equal(t, []string{"view_product"}, actionsFor(entity.AlertType("unknown")))
}
