package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/donate"
	"github.com/givehope/givehope/internal/domain"
	"github.com/givehope/givehope/internal/nav"
	"github.com/givehope/givehope/internal/session"
)

// App is the handler container; every route is a method on it.
type App struct {
	Logger    zerolog.Logger
	Campaigns domain.CampaignRepository
	Donations domain.DonationRepository
	Receipts  domain.ReceiptRepository
	Users     domain.UserRepository
	Sessions  *session.Manager
	Donate    *donate.Service
	Nav       *nav.Store
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
