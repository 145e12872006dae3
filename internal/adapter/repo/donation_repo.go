package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/givehope/givehope/internal/domain"
)

// DonationRepositoryMem implements domain.DonationRepository in memory.
// Donations are append-only; there is no update or delete path.
type DonationRepositoryMem struct {
	mu    sync.RWMutex
	items []domain.Donation
}

// NewDonationRepository creates a donation repo pre-filled with seed records.
func NewDonationRepository(seed []domain.Donation) *DonationRepositoryMem {
	return &DonationRepositoryMem{items: append([]domain.Donation(nil), seed...)}
}

// Create appends a new donation record.
func (r *DonationRepositoryMem) Create(ctx context.Context, donation *domain.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *donation)
	return nil
}

// Count returns the total number of donations ever recorded.
func (r *DonationRepositoryMem) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

// ListByDonor returns the donor's donations, most recent first.
func (r *DonationRepositoryMem) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Donation
	for _, d := range r.items {
		if d.DonorID == donorID {
			items = append(items, d)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
