package dispatch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/repository"

	"github.com/google/uuid"
)

// memAlertRepo is an in-memory AlertRepository with optimistic version checks.
type memAlertRepo struct {
	mu     sync.Mutex
	alerts map[uuid.UUID]*entity.Alert
	saves  int
}

func newMemAlertRepo(alerts ...*entity.Alert) *memAlertRepo {
	r := &memAlertRepo{alerts: make(map[uuid.UUID]*entity.Alert)}
	for _, a := range alerts {
		r.alerts[a.ID] = a.Clone()
	}

	return r
}

func (r *memAlertRepo) CreateAlert(_ context.Context, alert *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[alert.ID] = alert.Clone()

	return nil
}

func (r *memAlertRepo) FindAlertByID(_ context.Context, id uuid.UUID) (*entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[id]
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	return a.Clone(), nil
}

func (r *memAlertRepo) FindAlertsByUser(_ context.Context, userID uuid.UUID, _, _ int) ([]*entity.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Alert
	for _, a := range r.alerts {
		if a.UserID == userID {
			out = append(out, a.Clone())
		}
	}

	return out, nil
}

func (r *memAlertRepo) FindDueAlertIDs(_ context.Context, now time.Time, _ int) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uuid.UUID
	for _, a := range r.alerts {
		if a.IsDispatchable() && !a.IsExpired(now) {
			out = append(out, a.ID)
		}
	}

	return out, nil
}

func (r *memAlertRepo) SaveAlert(_ context.Context, alert *entity.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.alerts[alert.ID]
	if !ok {
		return repository.ErrAlertNotFound
	}
	if stored.Version != alert.Version {
		return repository.ErrAlertVersionConflict
	}
	alert.Version++
	r.alerts[alert.ID] = alert.Clone()
	r.saves++

	return nil
}

// update mutates the stored alert as a concurrent writer would.
func (r *memAlertRepo) update(id uuid.UUID, fn func(a *entity.Alert)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.alerts[id])
	r.alerts[id].Version++
}

func (r *memAlertRepo) get(t *testing.T, id uuid.UUID) *entity.Alert {
	t.Helper()
	a, err := r.FindAlertByID(context.Background(), id)
	if err != nil {
		t.Fatalf("alert %s not stored: %v", id, err)
	}

	return a
}

// memLogRepo keeps delivery logs in memory and answers history queries from them.
type memLogRepo struct {
	mu   sync.Mutex
	logs []*entity.DeliveryLog
	err  error
}

func (r *memLogRepo) AppendLogs(_ context.Context, logs []*entity.DeliveryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, logs...)

	return nil
}

func (r *memLogRepo) FindLogsByAlert(_ context.Context, alertID uuid.UUID, limit int) ([]*entity.DeliveryLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DeliveryLog
	for i := len(r.logs) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if r.logs[i].AlertID == alertID {
			out = append(out, r.logs[i])
		}
	}

	return out, nil
}

func (r *memLogRepo) LastSuccessfulDelivery(_ context.Context, userID uuid.UUID, productID string) (*time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var last *time.Time
	for _, l := range r.logs {
		if l.Success && l.UserID == userID && l.ProductID == productID && (last == nil || l.CreatedAt.After(*last)) {
			at := l.CreatedAt
			last = &at
		}
	}

	return last, nil
}

func (r *memLogRepo) countPasses(match func(l *entity.DeliveryLog) bool, since time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	passes := make(map[uuid.UUID]struct{})
	for _, l := range r.logs {
		if l.Success && !l.CreatedAt.Before(since) && match(l) {
			passes[l.PassID] = struct{}{}
		}
	}

	return len(passes)
}

func (r *memLogRepo) CountAlertPassesSince(_ context.Context, alertID uuid.UUID, since time.Time) (int, error) {
	return r.countPasses(func(l *entity.DeliveryLog) bool { return l.AlertID == alertID }, since), nil
}

func (r *memLogRepo) CountUserPassesSince(_ context.Context, userID uuid.UUID, since time.Time) (int, error) {
	return r.countPasses(func(l *entity.DeliveryLog) bool { return l.UserID == userID }, since), nil
}

// memTx runs the callback against the in-memory repositories and restores alerts on error.
// Transactions are serialized so a rollback never undoes another transaction's commit.
type memTx struct {
	mu     sync.Mutex
	alerts *memAlertRepo
	logs   *memLogRepo
}

func (m *memTx) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts.mu.Lock()
	snapshot := make(map[uuid.UUID]*entity.Alert, len(m.alerts.alerts))
	for id, a := range m.alerts.alerts {
		snapshot[id] = a.Clone()
	}
	m.alerts.mu.Unlock()

	if err := fn(m); err != nil {
		m.alerts.mu.Lock()
		m.alerts.alerts = snapshot
		m.alerts.mu.Unlock()

		return err
	}

	return nil
}

func (m *memTx) NewAlertRepository() repository.AlertRepository {
	return m.alerts
}

func (m *memTx) NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return m.logs
}

type stubPreferences struct {
	prefs map[uuid.UUID]*entity.NotificationPreferences
}

func (s stubPreferences) FindPreferencesByUser(_ context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	if p, ok := s.prefs[userID]; ok {
		return p, nil
	}

	return nil, repository.ErrPreferencesNotFound
}

type stubRecipients struct{}

func (stubRecipients) FindRecipient(_ context.Context, userID uuid.UUID) (*entity.Recipient, error) {
	return &entity.Recipient{
		UserID:       userID,
		Email:        "shopper@example.com",
		Phone:        "+15550100",
		DeviceTokens: []string{"token-1"},
	}, nil
}

// fakeAdapter answers Deliver with a scripted result per call.
type fakeAdapter struct {
	channel entity.NotificationChannel
	calls   atomic.Int32
	script  func(call int, alert *entity.Alert) entity.DeliveryResult
}

func (f *fakeAdapter) Channel() entity.NotificationChannel {
	return f.channel
}

func (f *fakeAdapter) Deliver(_ context.Context, alert *entity.Alert, _ *entity.Recipient) entity.DeliveryResult {
	call := int(f.calls.Add(1))
	if f.script != nil {
		return f.script(call, alert)
	}

	return succeed(alert, f.channel)
}

func (f *fakeAdapter) Preview(_ context.Context, alert *entity.Alert, _ *entity.Recipient) entity.DeliveryResult {
	r := entity.NewDeliveryResult(alert, f.channel)
	r.Success = true
	r.Metadata.DryRun = true

	return r
}

func succeed(alert *entity.Alert, ch entity.NotificationChannel) entity.DeliveryResult {
	r := entity.NewDeliveryResult(alert, ch)
	now := time.Now()
	r.Success = true
	r.DeliveredAt = &now
	r.MessageID = "msg-" + string(ch)
	r.Metadata.DeliveryTimeMs = 5

	return r
}

func fail(alert *entity.Alert, ch entity.NotificationChannel, msg string, retryable bool) entity.DeliveryResult {
	r := entity.NewDeliveryResult(alert, ch)
	r.Error = msg
	r.Retryable = retryable
	r.Metadata.DeliveryTimeMs = 5

	return r
}

func newTestAlert(channels ...entity.NotificationChannel) *entity.Alert {
	now := time.Now()

	return &entity.Alert{
		ID:                  uuid.New(),
		UserID:              uuid.New(),
		ProductID:           "sku-123",
		Type:                entity.AlertTypePriceDrop,
		Priority:            entity.PriorityMedium,
		Status:              entity.AlertStatusPending,
		Schedule:            entity.AlertSchedule{Active: true},
		Channels:            channels,
		Title:               "Price dropped",
		Message:             "Now 20% off",
		MaxDeliveryAttempts: entity.DefaultMaxDeliveryAttempts,
		CreatedAt:           now.Add(-time.Hour),
		ScheduledAt:         now.Add(-time.Hour),
		UpdatedAt:           now.Add(-time.Hour),
	}
}

type harness struct {
	alerts *memAlertRepo
	logs   *memLogRepo
	tx     *memTx
	prefs  stubPreferences
	stats  *Statistics
	locker *LocalLocker
	orch   *Orchestrator

	mu     sync.Mutex
	sleeps []time.Duration
}

func newHarness(t *testing.T, adapters []ChannelAdapter, alerts ...*entity.Alert) *harness {
	t.Helper()

	h := &harness{
		alerts: newMemAlertRepo(alerts...),
		logs:   &memLogRepo{},
		prefs:  stubPreferences{prefs: map[uuid.UUID]*entity.NotificationPreferences{}},
		stats:  NewStatistics(NewMemoryStatisticsStore(), nil),
		locker: NewLocalLocker(),
	}
	h.tx = &memTx{alerts: h.alerts, logs: h.logs}
	h.orch = h.newOrchestrator(h.locker, adapters)

	return h
}

// peer builds another orchestrator over the same storage with a locker of its own, the way a
// second process without a shared lock store would run.
func (h *harness) peer(adapters ...ChannelAdapter) *Orchestrator {
	return h.newOrchestrator(NewLocalLocker(), adapters)
}

func (h *harness) snapshot(t *testing.T) entity.AlertStatistics {
	t.Helper()
	stats, err := h.stats.Snapshot(context.Background(), nil)
	if err != nil {
		t.Fatalf("snapshot statistics: %v", err)
	}

	return stats
}

func (h *harness) newOrchestrator(locker *LocalLocker, adapters []ChannelAdapter) *Orchestrator {
	orch := NewOrchestrator(OrchestratorParams{
		Config: OrchestratorConfig{
			ChannelTimeout: time.Second,
			LockTTL:        time.Minute,
			SaveRetries:    2,
			Retry:          RetryPolicy{MaxAttempts: 3, BaseDelay: 10 * time.Millisecond},
		},
		Alerts:      h.alerts,
		Preferences: h.prefs,
		Recipients:  stubRecipients{},
		TxManager:   h.tx,
		Locker:      locker,
		Registry:    NewAdapterRegistry(adapters...),
		Suppression: NewSuppressionPolicy(h.logs),
		Stats:       h.stats,
	})
	orch.retrierOpts = []RetrierOption{WithSleep(func(_ context.Context, d time.Duration) error {
		h.mu.Lock()
		h.sleeps = append(h.sleeps, d)
		h.mu.Unlock()

		return nil
	})}

	return orch
}
