package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/givehope/givehope/internal/middleware"
	"github.com/givehope/givehope/internal/nav"
)

// navCookie identifies a browser tab's navigation state. It is independent of
// the auth session so anonymous visitors keep their place too.
const navCookie = "nav_session"

type navigateRequest struct {
	Page       string `json:"page"`
	CampaignID string `json:"campaign_id"`
}

type navViewDTO struct {
	Page               string `json:"page"`
	SelectedCampaignID string `json:"selected_campaign_id,omitempty"`
	DonationModalOpen  bool   `json:"donation_modal_open"`
	AccessDenied       bool   `json:"access_denied,omitempty"`
	RedirectTo         string `json:"redirect_to,omitempty"`
}

func viewToDTO(v nav.View) navViewDTO {
	dto := navViewDTO{
		Page:               v.Page.String(),
		SelectedCampaignID: v.SelectedCampaignID,
		DonationModalOpen:  v.DonationModalOpen,
		AccessDenied:       v.AccessDenied,
	}
	if v.AccessDenied {
		dto.RedirectTo = v.RedirectTo.String()
	}
	return dto
}

// navSessionID reads the navigation cookie, minting one on first contact.
func (a *App) navSessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(navCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     navCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (a *App) resolveNav(r *http.Request, state nav.State) nav.View {
	authenticated := middleware.UserIDFromContext(r.Context()) != ""
	return nav.Resolve(state, authenticated)
}

// NavGet serves the current view decision for this client.
func (a *App) NavGet(w http.ResponseWriter, r *http.Request) {
	id := a.navSessionID(w, r)
	a.json(w, http.StatusOK, viewToDTO(a.resolveNav(r, a.Nav.Get(id))))
}

// NavNavigate applies a page transition. Every transition is accepted; gating
// shows up in the resolved view, not as a rejected request.
func (a *App) NavNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	page, err := nav.ParsePage(req.Page)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	id := a.navSessionID(w, r)
	state := a.Nav.Navigate(id, page, req.CampaignID)
	a.json(w, http.StatusOK, viewToDTO(a.resolveNav(r, state)))
}

// NavModalOpen shows the donation modal for this client.
func (a *App) NavModalOpen(w http.ResponseWriter, r *http.Request) {
	id := a.navSessionID(w, r)
	state := a.Nav.SetModal(id, true)
	a.json(w, http.StatusOK, viewToDTO(a.resolveNav(r, state)))
}

// NavModalClose hides the donation modal for this client.
func (a *App) NavModalClose(w http.ResponseWriter, r *http.Request) {
	id := a.navSessionID(w, r)
	state := a.Nav.SetModal(id, false)
	a.json(w, http.StatusOK, viewToDTO(a.resolveNav(r, state)))
}
