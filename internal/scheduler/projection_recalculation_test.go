package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/royalty-manager-api/internal/config"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
)

type fakeRecalculator struct {
	mu        sync.Mutex
	calls     int
	lastCtx   context.Context
	release   chan struct{}
	summaries []domain.RecalculationSummary
	err       error
}

func (f *fakeRecalculator) RecalculateAll(ctx context.Context) ([]domain.RecalculationSummary, error) {
	f.mu.Lock()
	f.calls++
	f.lastCtx = ctx
	f.mu.Unlock()

	if f.release != nil {
		<-f.release
	}

	return f.summaries, f.err
}

func (f *fakeRecalculator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeRecalculator) LastContext() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastCtx
}

func newTestRecalculationService(recalculator Recalculator, enabled bool) *ProjectionRecalculationService {
	return NewProjectionRecalculationService(recalculator, &config.Config{
		RecalculationSync: config.RecalculationSync{CronSchedule: "0 4 * * *", Enabled: enabled},
	})
}

func TestProjectionRecalculationService_RecalculateProjections(t *testing.T) {
	summaries := []domain.RecalculationSummary{
		{Kind: domain.ProjectionKindCatalog, Total: 3, Updated: 2, Failed: 1},
		{Kind: domain.ProjectionKindConcert, Total: 1, Updated: 1},
	}
	recalculator := &fakeRecalculator{summaries: summaries}
	service := newTestRecalculationService(recalculator, true)

	result, err := service.RecalculateProjections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summaries, result)

	status := service.GetStatus()
	assert.Equal(t, summaries, status["last_summaries"])
	assert.Equal(t, "", status["last_error"])
	assert.False(t, status["sync_running"].(bool))
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestProjectionRecalculationService_RecordsError(t *testing.T) {
	recalculator := &fakeRecalculator{err: errors.New("banco indisponível")}
	service := newTestRecalculationService(recalculator, true)

	_, err := service.RecalculateProjections(context.Background())
	require.Error(t, err)
	assert.Equal(t, "banco indisponível", service.GetStatus()["last_error"])
}

func TestProjectionRecalculationService_SkipsConcurrentRun(t *testing.T) {
	recalculator := &fakeRecalculator{release: make(chan struct{})}
	service := newTestRecalculationService(recalculator, true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.RecalculateProjections(context.Background())
	}()

	require.Eventually(t, func() bool { return recalculator.Calls() == 1 }, time.Second, 5*time.Millisecond)

	result, err := service.RecalculateProjections(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, recalculator.Calls())

	close(recalculator.release)
	<-done
}

func TestProjectionRecalculationService_StartDisabled(t *testing.T) {
	recalculator := &fakeRecalculator{}
	service := newTestRecalculationService(recalculator, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, 0, recalculator.Calls())
	assert.False(t, service.GetStatus()["sync_enabled"].(bool))
}

func TestProjectionRecalculationService_StartInvalidCron(t *testing.T) {
	service := NewProjectionRecalculationService(&fakeRecalculator{}, &config.Config{
		RecalculationSync: config.RecalculationSync{CronSchedule: "não é cron", Enabled: true},
	})

	assert.Error(t, service.Start(context.Background()))
}

func TestProjectionRecalculationService_TriggerManualSync(t *testing.T) {
	recalculator := &fakeRecalculator{}
	service := newTestRecalculationService(recalculator, false)

	service.TriggerManualSync()

	assert.Eventually(t, func() bool { return recalculator.Calls() == 1 }, time.Second, 5*time.Millisecond)
}

type ctxKey struct{}

func TestProjectionRecalculationService_TriggerManualSyncUsesStartContext(t *testing.T) {
	recalculator := &fakeRecalculator{}
	service := newTestRecalculationService(recalculator, false)

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "start"))
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.Start(ctx))
	}()
	go func() {
		defer wg.Done()
		service.TriggerManualSync()
	}()
	wg.Wait()

	require.Eventually(t, func() bool { return recalculator.Calls() == 1 }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return !service.GetStatus()["sync_running"].(bool) }, time.Second, 5*time.Millisecond)

	service.TriggerManualSync()

	require.Eventually(t, func() bool { return recalculator.Calls() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "start", recalculator.LastContext().Value(ctxKey{}))
}
