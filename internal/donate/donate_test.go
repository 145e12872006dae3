package donate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/adapter/repo"
	"github.com/givehope/givehope/internal/domain"
)

func testCampaign() domain.Campaign {
	return domain.Campaign{
		ID:            "1",
		Title:         "Clean Water for Rural Communities",
		GoalAmount:    50000,
		CurrentAmount: 32500,
		Category:      domain.CategoryWaterSanitation,
		Status:        domain.CampaignStatusActive,
		CreatedAt:     time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testDonor() *domain.User {
	return &domain.User{ID: "donor-1", Name: "John Doe", Email: "john.doe@example.com", Role: domain.UserRoleDonor}
}

type fixture struct {
	campaigns *repo.CampaignRepositoryMem
	donations *repo.DonationRepositoryMem
	receipts  *repo.ReceiptRepositoryMem
	service   *Service
}

func newFixture() *fixture {
	f := &fixture{
		campaigns: repo.NewCampaignRepository([]domain.Campaign{testCampaign()}),
		donations: repo.NewDonationRepository(nil),
		receipts:  repo.NewReceiptRepository(nil),
	}
	f.service = NewService(f.campaigns, f.donations, f.receipts, zerolog.Nop())
	return f
}

func TestSubmitCardSettlesImmediately(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	ack, err := f.service.Submit(ctx, testDonor(), Request{
		CampaignID: "1",
		Amount:     100,
		Method:     MethodCard,
		Message:    "Happy to support this great cause!",
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if ack.Pending {
		t.Fatal("card donation reported pending")
	}
	if ack.Receipt.Status != domain.ReceiptStatusCompleted {
		t.Fatalf("receipt status mismatch: got %q want completed", ack.Receipt.Status)
	}
	if ack.Receipt.Number != "000001" {
		t.Fatalf("receipt number mismatch: got %q want 000001", ack.Receipt.Number)
	}
	if ack.Donation.PaymentMethod != "Credit Card" {
		t.Fatalf("payment label mismatch: got %q", ack.Donation.PaymentMethod)
	}
	if ack.Donation.ReceiptID != ack.Receipt.ID {
		t.Fatal("donation not linked to its receipt")
	}

	campaign, err := f.campaigns.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if campaign.CurrentAmount != 32600 {
		t.Fatalf("campaign total mismatch: got %d want 32600", campaign.CurrentAmount)
	}
}

func TestSubmitQRStaysPending(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	ack, err := f.service.Submit(ctx, testDonor(), Request{CampaignID: "1", Amount: 50, Method: MethodQR})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if !ack.Pending {
		t.Fatal("qr donation not reported pending")
	}
	if ack.QRReference == "" {
		t.Fatal("qr donation missing reference")
	}
	if ack.Receipt.Status != domain.ReceiptStatusPending {
		t.Fatalf("receipt status mismatch: got %q want pending", ack.Receipt.Status)
	}

	// Pending payments must not move the campaign total.
	campaign, err := f.campaigns.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if campaign.CurrentAmount != 32500 {
		t.Fatalf("campaign total moved for pending qr: got %d want 32500", campaign.CurrentAmount)
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	tests := []struct {
		name    string
		donor   *domain.User
		req     Request
		wantErr error
	}{
		{name: "zero amount", donor: testDonor(), req: Request{CampaignID: "1", Amount: 0, Method: MethodCard}, wantErr: domain.ErrInvalidAmount},
		{name: "negative amount", donor: testDonor(), req: Request{CampaignID: "1", Amount: -5, Method: MethodCard}, wantErr: domain.ErrInvalidAmount},
		{name: "unknown method", donor: testDonor(), req: Request{CampaignID: "1", Amount: 10, Method: "crypto"}, wantErr: domain.ErrInvalidPayment},
		{name: "unknown campaign", donor: testDonor(), req: Request{CampaignID: "404", Amount: 10, Method: MethodCard}, wantErr: domain.ErrNotFound},
		{name: "anonymous donor", donor: nil, req: Request{CampaignID: "1", Amount: 10, Method: MethodCard}, wantErr: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Submit(ctx, tt.donor, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Submit error mismatch: got %v want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubmitReceiptNumbersAreSequential(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for i, want := range []string{"000001", "000002", "000003"} {
		ack, err := f.service.Submit(ctx, testDonor(), Request{CampaignID: "1", Amount: 25, Method: MethodCard})
		if err != nil {
			t.Fatalf("Submit %d error: %v", i, err)
		}
		if ack.Receipt.Number != want {
			t.Fatalf("receipt number mismatch: got %q want %q", ack.Receipt.Number, want)
		}
	}
}
