package domain

import (
	"fmt"
	"time"
)

// CampaignStatus enumerates campaign lifecycle states.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// Category names a cause area. The set is fixed; campaigns outside it are
// rejected at ingestion.
type Category string

const (
	CategoryEducation       Category = "Education"
	CategoryHealthcare      Category = "Healthcare"
	CategoryFoodNutrition   Category = "Food & Nutrition"
	CategoryWaterSanitation Category = "Water & Sanitation"
	CategoryEnvironment     Category = "Environment"
	CategoryEmergencyRelief Category = "Emergency Relief"
)

// Categories returns the fixed set of valid campaign categories.
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryHealthcare,
		CategoryFoodNutrition,
		CategoryWaterSanitation,
		CategoryEnvironment,
		CategoryEmergencyRelief,
	}
}

// ValidCategory reports whether c is a member of the fixed category set.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Campaign represents a fundraising effort run by an organization.
// Amounts are whole US dollars. CurrentAmount may exceed GoalAmount;
// progress is always derived, never stored.
type Campaign struct {
	ID               string
	Title            string
	Description      string
	GoalAmount       int64
	CurrentAmount    int64
	ImageURL         string
	OrganizationID   string
	OrganizationName string
	Category         Category
	Status           CampaignStatus
	EndDate          time.Time
	CreatedAt        time.Time
	Beneficiaries    []Beneficiary
}

// Beneficiary is a person or group a campaign supports.
type Beneficiary struct {
	ID       string
	Name     string
	Story    string
	ImageURL string
	Age      *int
	Location string
}

// Progress returns the raised amount as a percentage of the goal, clamped
// to 100 so over-funded campaigns never report more.
func (c Campaign) Progress() float64 {
	p := float64(c.CurrentAmount) / float64(c.GoalAmount) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Validate checks the invariants every stored campaign must hold. A zero or
// negative goal is rejected here so Progress never divides by zero.
func (c Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCampaign)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: campaign %s has no title", ErrInvalidCampaign, c.ID)
	}
	if c.GoalAmount <= 0 {
		return fmt.Errorf("%w: campaign %s has goal %d", ErrInvalidCampaign, c.ID, c.GoalAmount)
	}
	if c.CurrentAmount < 0 {
		return fmt.Errorf("%w: campaign %s has negative raised amount", ErrInvalidCampaign, c.ID)
	}
	if !ValidCategory(c.Category) {
		return fmt.Errorf("%w: campaign %s has unknown category %q", ErrInvalidCampaign, c.ID, c.Category)
	}
	switch c.Status {
	case CampaignStatusActive, CampaignStatusCompleted, CampaignStatusPaused:
	default:
		return fmt.Errorf("%w: campaign %s has unknown status %q", ErrInvalidCampaign, c.ID, c.Status)
	}
	return nil
}
