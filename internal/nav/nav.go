// Package nav holds the per-client navigation state: which top-level page is
// current, which campaign is selected, and whether the donation modal is open.
package nav

import "fmt"

// Page identifies a top-level view. The set is closed; unknown page names are
// rejected at the API boundary by ParsePage.
type Page int

const (
	PageHome Page = iota
	PageLogin
	PageSignup
	PageAbout
	PageCampaigns
	PageCampaignDetails
	PageDashboard
	PageProfile
)

// pageNames must cover every Page variant; the fixed-size array makes a gap a
// compile error when a new page is added.
var pageNames = [...]string{
	PageHome:            "home",
	PageLogin:           "login",
	PageSignup:          "signup",
	PageAbout:           "about",
	PageCampaigns:       "campaigns",
	PageCampaignDetails: "campaign-details",
	PageDashboard:       "dashboard",
	PageProfile:         "profile",
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// ParsePage maps a page name to its Page variant.
func ParsePage(s string) (Page, error) {
	for p, name := range pageNames {
		if name == s {
			return Page(p), nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", s)
}

// RequiresAuth reports whether the page may only be rendered for an
// authenticated session.
func (p Page) RequiresAuth() bool {
	return p == PageDashboard || p == PageProfile
}

// State is the navigation state for one client. The zero value renders the
// home page with nothing selected.
type State struct {
	Page               Page
	SelectedCampaignID string
	DonationModalOpen  bool
}

// Navigate sets the current page unconditionally. The campaign selection only
// changes when a new id is supplied; otherwise the previous selection is
// retained, so it stays sticky across unrelated navigations. Every transition
// is legal at this level; rendering guards live in Resolve.
func (s *State) Navigate(p Page, campaignID string) {
	s.Page = p
	if campaignID != "" {
		s.SelectedCampaignID = campaignID
	}
}

// OpenDonationModal shows the donation modal.
func (s *State) OpenDonationModal() {
	s.DonationModalOpen = true
}

// CloseDonationModal hides the donation modal. The selected campaign is kept
// so reopening targets the same campaign.
func (s *State) CloseDonationModal() {
	s.DonationModalOpen = false
}

// View is the render decision for a state. When AccessDenied is set the
// client must show an explicit access-denied screen and offer RedirectTo,
// never an empty region.
type View struct {
	Page               Page
	SelectedCampaignID string
	DonationModalOpen  bool
	AccessDenied       bool
	RedirectTo         Page
}

// Resolve decides what to render for the state given whether the session is
// authenticated. Gated pages reached without a session yield an access-denied
// view pointing at the login page.
func Resolve(s State, authenticated bool) View {
	v := View{
		Page:               s.Page,
		SelectedCampaignID: s.SelectedCampaignID,
		DonationModalOpen:  s.DonationModalOpen,
	}
	if s.Page.RequiresAuth() && !authenticated {
		v.AccessDenied = true
		v.RedirectTo = PageLogin
	}
	return v
}
