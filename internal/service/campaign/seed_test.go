package campaign_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotable/leadintel/internal/repository/memory"
	"github.com/quotable/leadintel/internal/service/campaign"
)

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCampaignRepo(memory.NoLatency())

	n, err := campaign.SeedIfEmpty(ctx, repo, memory.SeedCampaigns()...)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.Delete(ctx, "campaign-2"))
	n, err = campaign.SeedIfEmpty(ctx, repo, memory.SeedCampaigns()...)
	require.NoError(t, err)
	assert.Zero(t, n)

	cs, err := repo.List(ctx, campaign.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, cs, 2)
	_, err = repo.Get(ctx, "campaign-2")
	assert.ErrorIs(t, err, campaign.ErrNotFound)
}
