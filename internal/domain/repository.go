package domain

import "context"

// CampaignRepository defines access methods for campaigns. List returns
// campaigns in their seeded order; callers must not rely on it sorting.
type CampaignRepository interface {
	List(ctx context.Context) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	AddAmount(ctx context.Context, id string, delta int64) error
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	Count(ctx context.Context) (int, error)
	ListByDonor(ctx context.Context, donorID string) ([]Donation, error)
}

// ReceiptRepository handles receipt persistence.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *Receipt) error
	ListByDonor(ctx context.Context, donorID string) ([]Receipt, error)
}

// UserRepository defines access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}
