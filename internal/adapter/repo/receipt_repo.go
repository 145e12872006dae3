package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/givehope/givehope/internal/domain"
)

// ReceiptRepositoryMem implements domain.ReceiptRepository in memory.
type ReceiptRepositoryMem struct {
	mu    sync.RWMutex
	items []domain.Receipt
}

// NewReceiptRepository creates a receipt repo pre-filled with seed records.
func NewReceiptRepository(seed []domain.Receipt) *ReceiptRepositoryMem {
	return &ReceiptRepositoryMem{items: append([]domain.Receipt(nil), seed...)}
}

// Create stores a new receipt.
func (r *ReceiptRepositoryMem) Create(ctx context.Context, receipt *domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *receipt)
	return nil
}

// ListByDonor returns the donor's receipts, most recent first.
func (r *ReceiptRepositoryMem) ListByDonor(ctx context.Context, donorID string) ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []domain.Receipt
	for _, rc := range r.items {
		if rc.DonorID == donorID {
			items = append(items, rc)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}
