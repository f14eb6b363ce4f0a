package administering

import (
	"context"
	"errors"
	"testing"

	"github.com/lrlucasdurand-code/unify/infrastructure/repository/mocks"
	"github.com/lrlucasdurand-code/unify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("soma MRR por plano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepository(ctrl)
		userRepo := mocks.NewMockUserRepository(ctrl)

		orgRepo.EXPECT().CountByPlan(ctx).Return(map[domain.Plan]int{
			domain.PlanFree:    10,
			domain.PlanStarter: 2,
			domain.PlanGrowth:  1,
			domain.PlanSuper:   1,
		}, nil)
		userRepo.EXPECT().CountActive(ctx).Return(17, nil)

		stats, err := NewService(orgRepo, userRepo).Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 14, stats.TotalOrganizations)
		assert.Equal(t, 17, stats.ActiveUsers)
		assert.Equal(t, 526.0, stats.MRR)
	})

	t.Run("plano desconhecido não soma receita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepository(ctrl)
		userRepo := mocks.NewMockUserRepository(ctrl)

		orgRepo.EXPECT().CountByPlan(ctx).Return(map[domain.Plan]int{"legacy": 3}, nil)
		userRepo.EXPECT().CountActive(ctx).Return(3, nil)

		stats, err := NewService(orgRepo, userRepo).Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalOrganizations)
		assert.Zero(t, stats.MRR)
	})

	t.Run("erro no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orgRepo := mocks.NewMockOrganizationRepository(ctrl)
		userRepo := mocks.NewMockUserRepository(ctrl)

		orgRepo.EXPECT().CountByPlan(ctx).Return(nil, errors.New("timeout"))

		_, err := NewService(orgRepo, userRepo).Stats(ctx)
		assert.ErrorContains(t, err, "timeout")
	})
}

func TestService_Organizations(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	orgRepo := mocks.NewMockOrganizationRepository(ctrl)

	orgRepo.EXPECT().ListSummaries(ctx).Return(nil, nil)

	summaries, err := NewService(orgRepo, mocks.NewMockUserRepository(ctrl)).Organizations(ctx)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
