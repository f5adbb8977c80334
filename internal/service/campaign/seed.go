package campaign

import (
	"context"
	"fmt"

	"github.com/quotable/leadintel/internal/domain"
)

// SeedIfEmpty creates campaigns when repo holds none and returns how many
// were written. A store with any campaign is left alone, so deleted seed
// campaigns are not brought back on restart.
func SeedIfEmpty(ctx context.Context, repo Repository, campaigns ...domain.Campaign) (int, error) {
	existing, err := repo.List(ctx, ListFilter{Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("check campaigns: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := range campaigns {
		c := campaigns[i]
		if err := repo.Create(ctx, &c); err != nil {
			return i, fmt.Errorf("seed campaign %s: %w", c.ID, err)
		}
	}
	return len(campaigns), nil
}
