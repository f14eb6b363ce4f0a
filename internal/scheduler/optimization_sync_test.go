package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/lrlucasdurand-code/unify/internal/usecases/optimizing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubLister struct {
	ids []int
	err error
}

func (s stubLister) ListAutoScalingOrganizations(context.Context) ([]int, error) {
	return s.ids, s.err
}

func newSyncService(lister OrganizationLister, optimizer *mocks.MockOptimizer) *OptimizationSyncService {
	return NewOptimizationSyncService(lister, optimizer, &config.Config{
		OptimizationSync: config.OptimizationSync{
			CronSchedule:      "0 7 * * *",
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
		Optimizer: config.Optimizer{DryRun: true},
	})
}

func TestOptimizationSyncService_SyncAllOrganizations(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	optimizer := mocks.NewMockOptimizer(ctrl)

	var inFlight, maxInFlight atomic.Int32
	optimize := func(_ context.Context, orgID int, _ bool) (*domain.OptimizationResult, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			seen := maxInFlight.Load()
			if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if orgID == 2 {
			return nil, errors.New("meta fora do ar")
		}
		return &domain.OptimizationResult{
			DryRun:  true,
			Changes: []domain.BudgetChange{{Success: true}},
		}, nil
	}

	for _, id := range []int{1, 2, 3, 4} {
		optimizer.EXPECT().Optimize(gomock.Any(), id, true).DoAndReturn(optimize)
	}

	service := newSyncService(stubLister{ids: []int{1, 2, 3, 4}}, optimizer)
	service.syncAllOrganizations(ctx)

	status := service.GetStatus()
	assert.Equal(t, 4, status["last_organizations"])
	assert.Equal(t, 1, status["last_failures"])
	assert.Equal(t, false, status["running"])
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}

func TestOptimizationSyncService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	optimizer := mocks.NewMockOptimizer(ctrl)

	service := newSyncService(stubLister{ids: []int{1}}, optimizer)
	service.syncRunning = true

	service.syncAllOrganizations(context.Background())
	assert.False(t, service.TriggerManualSync())
}

func TestOptimizationSyncService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	optimizer := mocks.NewMockOptimizer(ctrl)

	service := newSyncService(stubLister{err: errors.New("db down")}, optimizer)
	service.syncAllOrganizations(context.Background())

	status := service.GetStatus()
	assert.Equal(t, 0, status["last_organizations"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestOptimizationSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newSyncService(stubLister{}, mocks.NewMockOptimizer(ctrl))
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}

func TestOptimizationSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := newSyncService(stubLister{}, mocks.NewMockOptimizer(ctrl))
	service.config.CronSchedule = "isso não é cron"

	assert.Error(t, service.Start(context.Background()))
}

type ctxKey struct{}

type recordingLister struct {
	seen chan context.Context
}

func (r recordingLister) ListAutoScalingOrganizations(ctx context.Context) ([]int, error) {
	r.seen <- ctx
	return nil, nil
}

func TestOptimizationSyncService_ManualSyncUsesStartContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	lister := recordingLister{seen: make(chan context.Context, 2)}
	service := newSyncService(lister, mocks.NewMockOptimizer(ctrl))
	service.config.SyncEnabled = false

	ctx := context.WithValue(context.Background(), ctxKey{}, "api")

	started := make(chan struct{})
	go func() {
		defer close(started)
		assert.NoError(t, service.Start(ctx))
	}()
	<-started

	assert.True(t, service.TriggerManualSync())

	select {
	case got := <-lister.seen:
		assert.Equal(t, "api", got.Value(ctxKey{}))
	case <-time.After(time.Second):
		t.Fatal("otimização manual não executou")
	}
}
