package handlers

import (
	"net/http"
	"time"

	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/money"
)

type receiptDTO struct {
	ID              string `json:"id"`
	DonationID      string `json:"donation_id"`
	Number          string `json:"receipt_number"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	CampaignTitle   string `json:"campaign_title"`
	Date            string `json:"date"`
	PaymentMethod   string `json:"payment_method"`
	Status          string `json:"status"`
}

func receiptToDTO(r domain.Receipt) receiptDTO {
	return receiptDTO{
		ID:              r.ID,
		DonationID:      r.DonationID,
		Number:          r.Number,
		Amount:          r.Amount,
		AmountFormatted: money.FormatUSD(r.Amount),
		CampaignTitle:   r.CampaignTitle,
		Date:            r.Date.Format(time.RFC3339),
		PaymentMethod:   r.PaymentMethod,
		Status:          string(r.Status),
	}
}

// Dashboard serves the donor dashboard summary: lifetime totals plus the
// recent donation feed. Campaigns supported counts distinct campaigns, not
// donations.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	donor, ok := a.currentUser(w, r)
	if !ok {
		return
	}
	donations, err := a.Donations.ListByDonor(r.Context(), donor.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}

	var total int64
	campaigns := make(map[string]struct{})
	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		total += d.Amount
		campaigns[d.CampaignID] = struct{}{}
		items = append(items, donationToDTO(d))
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_donated":           total,
		"total_donated_formatted": money.FormatUSD(total),
		"campaigns_supported":     len(campaigns),
		"donation_count":          len(donations),
		"recent_donations":        items,
	})
}

// MyReceipts lists the authenticated donor's tax receipts.
func (a *App) MyReceipts(w http.ResponseWriter, r *http.Request) {
	donor, ok := a.currentUser(w, r)
	if !ok {
		return
	}
	receipts, err := a.Receipts.ListByDonor(r.Context(), donor.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list receipts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load receipts")
		return
	}
	items := make([]receiptDTO, 0, len(receipts))
	for _, rc := range receipts {
		items = append(items, receiptToDTO(rc))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
