package seed

import (
	"errors"
	"strings"
	"testing"

	"github.com/givehope/givehope/internal/domain"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if len(data.Campaigns) != 4 {
		t.Fatalf("campaign count mismatch: got %d want 4", len(data.Campaigns))
	}
	for _, c := range data.Campaigns {
		if err := c.Validate(); err != nil {
			t.Fatalf("seeded campaign %s invalid: %v", c.ID, err)
		}
	}

	first := data.Campaigns[0]
	if first.Title != "Clean Water for Rural Communities" {
		t.Fatalf("first campaign mismatch: got %q", first.Title)
	}
	if first.GoalAmount != 50000 || first.CurrentAmount != 32500 {
		t.Fatalf("first campaign amounts mismatch: %d/%d", first.CurrentAmount, first.GoalAmount)
	}
	if got := first.CreatedAt.Format("2006-01-02"); got != "2024-12-01" {
		t.Fatalf("first campaign created_at mismatch: got %s", got)
	}

	if len(data.Users) != 1 || data.Users[0].Email != "john.doe@example.com" {
		t.Fatalf("seed users mismatch: %+v", data.Users)
	}
	if data.Users[0].PasswordHash == "" || data.Users[0].PasswordHash == "donate123" {
		t.Fatal("seed password stored unhashed")
	}

	if len(data.Donations) != 3 {
		t.Fatalf("donation count mismatch: got %d want 3", len(data.Donations))
	}
	if len(data.Receipts) != len(data.Donations) {
		t.Fatalf("receipt count mismatch: got %d want %d", len(data.Receipts), len(data.Donations))
	}
	for i, r := range data.Receipts {
		if r.DonationID != data.Donations[i].ID {
			t.Fatalf("receipt %d not linked to donation: %q vs %q", i, r.DonationID, data.Donations[i].ID)
		}
		if r.Status != domain.ReceiptStatusCompleted {
			t.Fatalf("seed receipt %s status mismatch: %q", r.ID, r.Status)
		}
	}
	if data.Donations[0].CampaignTitle != "Clean Water for Rural Communities" {
		t.Fatalf("donation campaign title not resolved: %q", data.Donations[0].CampaignTitle)
	}
}

func TestParseRejectsZeroGoal(t *testing.T) {
	fixture := `
campaigns:
  - id: "x"
    title: Broken
    description: zero goal
    organization_id: "1"
    organization_name: Org
    goal_amount: 0
    current_amount: 10
    category: Education
    status: active
    end_date: "2025-01-01"
    created_at: "2024-01-01"
`
	_, err := parse([]byte(fixture))
	if !errors.Is(err, domain.ErrInvalidCampaign) {
		t.Fatalf("zero goal error mismatch: got %v want ErrInvalidCampaign", err)
	}
}

func TestParseRejectsDanglingDonation(t *testing.T) {
	fixture := `
donations:
  - id: "d1"
    amount: 10
    campaign_id: "missing"
    donor_id: "u1"
    payment_method: Credit Card
    created_at: "2024-12-15T10:30:00Z"
`
	_, err := parse([]byte(fixture))
	if err == nil || !strings.Contains(err.Error(), "unknown campaign") {
		t.Fatalf("dangling donation error mismatch: got %v", err)
	}
}

func TestParseRejectsBadDate(t *testing.T) {
	fixture := `
campaigns:
  - id: "x"
    title: Broken
    description: bad date
    organization_id: "1"
    organization_name: Org
    goal_amount: 100
    current_amount: 0
    category: Education
    status: active
    end_date: "soon"
    created_at: "2024-01-01"
`
	if _, err := parse([]byte(fixture)); err == nil {
		t.Fatal("expected error for unparseable end_date")
	}
}
