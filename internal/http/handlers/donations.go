package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/givehope/givehope/internal/donate"
	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/money"
)

type donationRequest struct {
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Message       string `json:"message"`
}

type donationDTO struct {
	ID              string `json:"id"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
	CampaignID      string `json:"campaign_id"`
	CampaignTitle   string `json:"campaign_title"`
	DonorName       string `json:"donor_name"`
	Message         string `json:"message,omitempty"`
	PaymentMethod   string `json:"payment_method"`
	ReceiptID       string `json:"receipt_id"`
	CreatedAt       string `json:"created_at"`
}

func donationToDTO(d domain.Donation) donationDTO {
	return donationDTO{
		ID:              d.ID,
		Amount:          d.Amount,
		AmountFormatted: money.FormatUSD(d.Amount),
		CampaignID:      d.CampaignID,
		CampaignTitle:   d.CampaignTitle,
		DonorName:       d.DonorName,
		Message:         d.Message,
		PaymentMethod:   d.PaymentMethod,
		ReceiptID:       d.ReceiptID,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
}

// DonationsCreate submits a donation to the campaign in the URL. Card
// payments acknowledge synchronously; QR payments return a pending reference
// for the client's scan screen.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	donor, ok := a.currentUser(w, r)
	if !ok {
		return
	}
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	ack, err := a.Donate.Submit(r.Context(), donor, donate.Request{
		CampaignID: chi.URLParam(r, "id"),
		Amount:     req.Amount,
		Method:     donate.Method(req.PaymentMethod),
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			a.error(w, http.StatusBadRequest, "bad_request", "amount must be at least 1")
		case errors.Is(err, domain.ErrInvalidPayment):
			a.error(w, http.StatusBadRequest, "bad_request", "payment method must be card or qr")
		case errors.Is(err, domain.ErrNotFound):
			a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		default:
			a.Logger.Error().Err(err).Msg("donation submit failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to record donation")
		}
		return
	}

	payload := map[string]any{
		"donation": donationToDTO(*ack.Donation),
		"receipt":  receiptToDTO(*ack.Receipt),
	}
	status := http.StatusCreated
	if ack.Pending {
		status = http.StatusAccepted
		payload["qr"] = map[string]string{
			"reference":    ack.QRReference,
			"instructions": ack.Instructions,
		}
	}
	a.json(w, status, payload)
}

// MyDonations lists the authenticated donor's donations, most recent first.
func (a *App) MyDonations(w http.ResponseWriter, r *http.Request) {
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
	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationToDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
