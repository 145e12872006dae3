// Package seed loads the embedded demo dataset the platform serves. There is
// no database behind the API; the fixture is the entire catalog.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/session"
)

//go:embed data.yaml
var raw []byte

// Data is the fully validated demo dataset.
type Data struct {
	Campaigns []domain.Campaign
	Users     []domain.User
	Donations []domain.Donation
	Receipts  []domain.Receipt
}

type campaignDoc struct {
	ID               string           `yaml:"id"`
	Title            string           `yaml:"title"`
	Description      string           `yaml:"description"`
	GoalAmount       int64            `yaml:"goal_amount"`
	CurrentAmount    int64            `yaml:"current_amount"`
	ImageURL         string           `yaml:"image_url"`
	OrganizationID   string           `yaml:"organization_id"`
	OrganizationName string           `yaml:"organization_name"`
	Category         string           `yaml:"category"`
	Status           string           `yaml:"status"`
	EndDate          string           `yaml:"end_date"`
	CreatedAt        string           `yaml:"created_at"`
	Beneficiaries    []beneficiaryDoc `yaml:"beneficiaries"`
}

type beneficiaryDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Story    string `yaml:"story"`
	ImageURL string `yaml:"image_url"`
	Age      *int   `yaml:"age"`
	Location string `yaml:"location"`
}

type userDoc struct {
	ID        string `yaml:"id"`
	Email     string `yaml:"email"`
	Name      string `yaml:"name"`
	Role      string `yaml:"role"`
	Password  string `yaml:"password"`
	CreatedAt string `yaml:"created_at"`
}

type donationDoc struct {
	ID            string `yaml:"id"`
	Amount        int64  `yaml:"amount"`
	CampaignID    string `yaml:"campaign_id"`
	DonorID       string `yaml:"donor_id"`
	Message       string `yaml:"message"`
	PaymentMethod string `yaml:"payment_method"`
	CreatedAt     string `yaml:"created_at"`
}

type doc struct {
	Campaigns []campaignDoc `yaml:"campaigns"`
	Users     []userDoc     `yaml:"users"`
	Donations []donationDoc `yaml:"donations"`
}

// Load parses and validates the embedded dataset. Invalid campaigns (zero
// goals included) fail the load outright rather than surfacing later as
// non-finite progress values.
func Load() (*Data, error) {
	return parse(raw)
}

func parse(b []byte) (*Data, error) {
	var d doc
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	data := &Data{}

	for _, c := range d.Campaigns {
		endDate, err := time.Parse("2006-01-02", c.EndDate)
		if err != nil {
			return nil, fmt.Errorf("campaign %s end_date: %w", c.ID, err)
		}
		createdAt, err := time.Parse("2006-01-02", c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("campaign %s created_at: %w", c.ID, err)
		}
		campaign := domain.Campaign{
			ID:               c.ID,
			Title:            c.Title,
			Description:      c.Description,
			GoalAmount:       c.GoalAmount,
			CurrentAmount:    c.CurrentAmount,
			ImageURL:         c.ImageURL,
			OrganizationID:   c.OrganizationID,
			OrganizationName: c.OrganizationName,
			Category:         domain.Category(c.Category),
			Status:           domain.CampaignStatus(c.Status),
			EndDate:          endDate,
			CreatedAt:        createdAt,
		}
		for _, b := range c.Beneficiaries {
			campaign.Beneficiaries = append(campaign.Beneficiaries, domain.Beneficiary{
				ID:       b.ID,
				Name:     b.Name,
				Story:    b.Story,
				ImageURL: b.ImageURL,
				Age:      b.Age,
				Location: b.Location,
			})
		}
		if err := campaign.Validate(); err != nil {
			return nil, err
		}
		data.Campaigns = append(data.Campaigns, campaign)
	}

	users := make(map[string]domain.User, len(d.Users))
	for _, u := range d.Users {
		createdAt, err := time.Parse("2006-01-02", u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("user %s created_at: %w", u.ID, err)
		}
		salt := "seed-" + u.ID
		user := domain.User{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         domain.UserRole(u.Role),
			PasswordHash: session.HashPassword(u.Password, salt),
			PasswordSalt: salt,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		}
		users[user.ID] = user
		data.Users = append(data.Users, user)
	}

	campaigns := make(map[string]domain.Campaign, len(data.Campaigns))
	for _, c := range data.Campaigns {
		campaigns[c.ID] = c
	}

	for i, dn := range d.Donations {
		createdAt, err := time.Parse(time.RFC3339, dn.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("donation %s created_at: %w", dn.ID, err)
		}
		campaign, ok := campaigns[dn.CampaignID]
		if !ok {
			return nil, fmt.Errorf("donation %s references unknown campaign %s", dn.ID, dn.CampaignID)
		}
		donor, ok := users[dn.DonorID]
		if !ok {
			return nil, fmt.Errorf("donation %s references unknown donor %s", dn.ID, dn.DonorID)
		}
		if dn.Amount < 1 {
			return nil, fmt.Errorf("%w: donation %s amount %d", domain.ErrInvalidAmount, dn.ID, dn.Amount)
		}

		receipt := domain.Receipt{
			ID:            "r-" + dn.ID,
			DonationID:    dn.ID,
			DonorID:       donor.ID,
			Number:        fmt.Sprintf("%06d", i+1),
			Amount:        dn.Amount,
			CampaignTitle: campaign.Title,
			Date:          createdAt,
			PaymentMethod: dn.PaymentMethod,
			Status:        domain.ReceiptStatusCompleted,
		}
		data.Receipts = append(data.Receipts, receipt)
		data.Donations = append(data.Donations, domain.Donation{
			ID:            dn.ID,
			Amount:        dn.Amount,
			CampaignID:    campaign.ID,
			CampaignTitle: campaign.Title,
			DonorID:       donor.ID,
			DonorName:     donor.Name,
			Message:       dn.Message,
			PaymentMethod: dn.PaymentMethod,
			ReceiptID:     receipt.ID,
			CreatedAt:     createdAt,
		})
	}

	return data, nil
}
