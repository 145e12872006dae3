// Package donate implements the donation intake pipeline. No real payment
// processing happens: card submissions settle immediately and QR submissions
// hand back a pending reference for the client's scan-to-pay screen. The
// Submit contract still returns an explicit result or error so a real payment
// backend can slot in behind it.
package donate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/domain"
)

// Method selects how a donation is paid.
type Method string

const (
	MethodCard Method = "card"
	MethodQR   Method = "qr"
)

// Display labels recorded on donation and receipt rows.
const (
	labelCard = "Credit Card"
	labelQR   = "QR Payment"
)

// Request describes a donation attempt.
type Request struct {
	CampaignID string
	Amount     int64
	Method     Method
	Message    string
}

// Acknowledgment is the outcome of a submitted donation.
type Acknowledgment struct {
	Donation *domain.Donation
	Receipt  *domain.Receipt
	// Pending is set for QR submissions that still need a scan to settle.
	Pending bool
	// QRReference identifies the code the client should display. No code is
	// generated here; rendering it is the payment provider's job.
	QRReference  string
	Instructions string
}

// Service validates and records donations.
type Service struct {
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
	receipts  domain.ReceiptRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService creates the donation intake service.
func NewService(campaigns domain.CampaignRepository, donations domain.DonationRepository, receipts domain.ReceiptRepository, logger zerolog.Logger) *Service {
	return &Service{
		campaigns: campaigns,
		donations: donations,
		receipts:  receipts,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit records a donation by the given donor. Card payments settle
// synchronously and credit the campaign total; QR payments are recorded with
// a pending receipt and do not move the total until settled.
func (s *Service) Submit(ctx context.Context, donor *domain.User, req Request) (*Acknowledgment, error) {
	if donor == nil {
		return nil, domain.ErrUnauthorized
	}
	if req.Amount < 1 {
		return nil, fmt.Errorf("%w: amount must be at least 1", domain.ErrInvalidAmount)
	}

	var label string
	switch req.Method {
	case MethodCard:
		label = labelCard
	case MethodQR:
		label = labelQR
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPayment, req.Method)
	}

	campaign, err := s.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", req.CampaignID, err)
	}

	now := s.now().UTC()
	donation := &domain.Donation{
		ID:            uuid.NewString(),
		Amount:        req.Amount,
		CampaignID:    campaign.ID,
		CampaignTitle: campaign.Title,
		DonorID:       donor.ID,
		DonorName:     donor.Name,
		Message:       req.Message,
		PaymentMethod: label,
		CreatedAt:     now,
	}

	status := domain.ReceiptStatusCompleted
	if req.Method == MethodQR {
		status = domain.ReceiptStatusPending
	}
	receipt := &domain.Receipt{
		ID:            uuid.NewString(),
		DonationID:    donation.ID,
		DonorID:       donor.ID,
		Amount:        req.Amount,
		CampaignTitle: campaign.Title,
		Date:          now,
		PaymentMethod: label,
		Status:        status,
	}
	donation.ReceiptID = receipt.ID

	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("record donation: %w", err)
	}
	count, err := s.donations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}
	receipt.Number = fmt.Sprintf("%06d", count)
	if err := s.receipts.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("record receipt: %w", err)
	}

	ack := &Acknowledgment{Donation: donation, Receipt: receipt}
	if req.Method == MethodQR {
		ack.Pending = true
		ack.QRReference = "qr-" + donation.ID
		ack.Instructions = "Scan this code with your mobile wallet or banking app to complete the donation."
		s.logger.Info().
			Str("donation_id", donation.ID).
			Str("campaign_id", campaign.ID).
			Int64("amount", req.Amount).
			Msg("donation pending qr settlement")
		return ack, nil
	}

	if err := s.campaigns.AddAmount(ctx, campaign.ID, req.Amount); err != nil {
		return nil, fmt.Errorf("credit campaign %s: %w", campaign.ID, err)
	}
	s.logger.Info().
		Str("donation_id", donation.ID).
		Str("campaign_id", campaign.ID).
		Int64("amount", req.Amount).
		Msg("donation settled")
	return ack, nil
}
