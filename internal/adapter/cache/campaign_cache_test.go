package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"milestone-escrow/internal/core/domain"
	"milestone-escrow/internal/core/port/mocks"
)

func newCampaign(t *testing.T, phase domain.Phase) *domain.Campaign {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := domain.NewCampaign(uuid.New(), domain.CampaignConfig{
		Creator:           "creator",
		Goal:              1000,
		FundsReceiver:     "receiver",
		FundStart:         start,
		FundEnd:           start.Add(24 * time.Hour),
		TotalMilestones:   2,
		Allocations:       []uint64{400, 600},
		ApprovalAuthority: "authority",
	}, domain.DefaultPolicy(), start)
	require.NoError(t, err)
	c.TakeEvents()
	c.State.Phase = phase
	return c
}

func TestCampaignRepository_CachesEndedCampaigns(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockCampaignRepository(t)
	c := newCampaign(t, domain.PhaseEnded)
	c.State.ReachedMilestone = domain.MilestoneAt(1)
	next.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil).Once()

	repo := New(next, 8*1024*1024, time.Minute, zaptest.NewLogger(t))
	first, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	second, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, c, first)
	assert.Equal(t, c.Config, second.Config)
	assert.Equal(t, c.State, second.State)
	assert.Equal(t, c.ID, second.ID)
	assert.Greater(t, repo.HitRate(), 0.0)
}

func TestCampaignRepository_SkipsLiveCampaigns(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockCampaignRepository(t)
	c := newCampaign(t, domain.PhaseFunding)
	next.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil).Times(2)

	repo := New(next, 8*1024*1024, time.Minute, zaptest.NewLogger(t))
	for i := 0; i < 2; i++ {
		_, err := repo.GetCampaign(ctx, c.ID)
		require.NoError(t, err)
	}
}

func TestCampaignRepository_UpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	next := mocks.NewMockCampaignRepository(t)
	c := newCampaign(t, domain.PhaseEnded)
	next.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil).Times(2)
	next.EXPECT().UpdateCampaign(mock.Anything, c).Return(nil).Once()

	repo := New(next, 8*1024*1024, time.Minute, zaptest.NewLogger(t))
	_, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateCampaign(ctx, c))
	_, err = repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
}

func TestCampaignRepository_MissingCampaign(t *testing.T) {
	next := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	next.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	repo := New(next, 8*1024*1024, time.Minute, zaptest.NewLogger(t))
	c, err := repo.GetCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, c)
}
