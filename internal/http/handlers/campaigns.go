package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/givehope/givehope/internal/catalog"
	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/money"
)

const featuredCount = 3

type campaignDTO struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	GoalAmount       int64            `json:"goal_amount"`
	CurrentAmount    int64            `json:"current_amount"`
	GoalFormatted    string           `json:"goal_formatted"`
	RaisedFormatted  string           `json:"raised_formatted"`
	Progress         float64          `json:"progress"`
	ImageURL         string           `json:"image_url"`
	OrganizationID   string           `json:"organization_id"`
	OrganizationName string           `json:"organization_name"`
	Category         string           `json:"category"`
	Status           string           `json:"status"`
	EndDate          string           `json:"end_date"`
	CreatedAt        string           `json:"created_at"`
	Beneficiaries    []beneficiaryDTO `json:"beneficiaries,omitempty"`
}

type beneficiaryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Story    string `json:"story"`
	ImageURL string `json:"image_url,omitempty"`
	Age      *int   `json:"age,omitempty"`
	Location string `json:"location"`
}

func campaignToDTO(c domain.Campaign, withBeneficiaries bool) campaignDTO {
	dto := campaignDTO{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		GoalAmount:       c.GoalAmount,
		CurrentAmount:    c.CurrentAmount,
		GoalFormatted:    money.FormatUSD(c.GoalAmount),
		RaisedFormatted:  money.FormatUSD(c.CurrentAmount),
		Progress:         c.Progress(),
		ImageURL:         c.ImageURL,
		OrganizationID:   c.OrganizationID,
		OrganizationName: c.OrganizationName,
		Category:         string(c.Category),
		Status:           string(c.Status),
		EndDate:          c.EndDate.Format("2006-01-02"),
		CreatedAt:        c.CreatedAt.Format("2006-01-02"),
	}
	if withBeneficiaries {
		for _, b := range c.Beneficiaries {
			dto.Beneficiaries = append(dto.Beneficiaries, beneficiaryDTO{
				ID:       b.ID,
				Name:     b.Name,
				Story:    b.Story,
				ImageURL: b.ImageURL,
				Age:      b.Age,
				Location: b.Location,
			})
		}
	}
	return dto
}

// CampaignsList serves the filtered, sorted catalog view. An empty result is
// not an error: the payload carries a recovery hint so the client offers a
// filter reset instead of a dead end.
func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")
	sortKey, err := catalog.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if !catalog.ValidFilterCategory(category) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown category")
		return
	}

	records, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}

	visible := catalog.Visible(records, query, category, sortKey)
	items := make([]campaignDTO, 0, len(visible))
	for _, c := range visible {
		items = append(items, campaignToDTO(c, false))
	}

	payload := map[string]any{
		"items":   items,
		"showing": len(items),
		"total":   len(records),
	}
	if len(items) == 0 {
		payload["recovery"] = "reset_filters"
	}
	a.json(w, http.StatusOK, payload)
}

// CampaignsFeatured serves the home page highlight strip.
func (a *App) CampaignsFeatured(w http.ResponseWriter, r *http.Request) {
	records, err := a.Campaigns.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}
	featured := catalog.Featured(records, featuredCount)
	items := make([]campaignDTO, 0, len(featured))
	for _, c := range featured {
		items = append(items, campaignToDTO(c, false))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// CampaignsGet serves one campaign with its beneficiary stories.
func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := a.Campaigns.GetByID(r.Context(), id)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		return
	}
	a.json(w, http.StatusOK, campaignToDTO(*campaign, true))
}

// Categories serves the fixed filter list, "all" sentinel first.
func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	items := []string{catalog.CategoryAll}
	for _, c := range domain.Categories() {
		items = append(items, string(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
