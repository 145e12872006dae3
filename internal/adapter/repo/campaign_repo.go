package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/givehope/givehope/internal/domain"
)

// CampaignRepositoryMem implements domain.CampaignRepository over the seeded
// in-memory catalog. Campaign order is the seed order.
type CampaignRepositoryMem struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	index     map[string]int
}

// NewCampaignRepository creates a campaign repo holding the given records.
func NewCampaignRepository(campaigns []domain.Campaign) *CampaignRepositoryMem {
	r := &CampaignRepositoryMem{
		campaigns: append([]domain.Campaign(nil), campaigns...),
		index:     make(map[string]int, len(campaigns)),
	}
	for i, c := range r.campaigns {
		r.index[c.ID] = i
	}
	return r
}

// List returns all campaigns in seed order. The returned slice is a copy.
func (r *CampaignRepositoryMem) List(ctx context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Campaign(nil), r.campaigns...), nil
}

// GetByID fetches a single campaign.
func (r *CampaignRepositoryMem) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := r.campaigns[i]
	return &c, nil
}

// AddAmount credits a completed donation against the campaign's raised total.
// The total may exceed the goal; progress clamping happens at read time.
func (r *CampaignRepositoryMem) AddAmount(ctx context.Context, id string, delta int64) error {
	if delta < 0 {
		return fmt.Errorf("%w: negative delta %d", domain.ErrInvalidAmount, delta)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.campaigns[i].CurrentAmount += delta
	return nil
}
