package domain

import "time"

// Donation represents a supporter contribution to a campaign. Records are
// immutable once created; there is no mutation path.
type Donation struct {
	ID            string
	Amount        int64
	CampaignID    string
	CampaignTitle string
	DonorID       string
	DonorName     string
	Message       string
	PaymentMethod string
	ReceiptID     string
	CreatedAt     time.Time
}

// ReceiptStatus enumerates receipt settlement states.
type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "pending"
	ReceiptStatusCompleted ReceiptStatus = "completed"
	ReceiptStatusFailed    ReceiptStatus = "failed"
)

// Receipt is the tax record issued for a donation. Number is the zero-padded
// ordinal of the donation it belongs to.
type Receipt struct {
	ID            string
	DonationID    string
	DonorID       string
	Number        string
	Amount        int64
	CampaignTitle string
	Date          time.Time
	PaymentMethod string
	Status        ReceiptStatus
}
