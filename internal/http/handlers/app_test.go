package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/givehope/givehope/internal/adapter/repo"
	"github.com/givehope/givehope/internal/donate"
	"github.com/givehope/givehope/internal/middleware"
	"github.com/givehope/givehope/internal/nav"
	"github.com/givehope/givehope/internal/seed"
	"github.com/givehope/givehope/internal/session"
)

// newTestApp builds an App backed by the embedded seed fixture.
func newTestApp(t *testing.T) *App {
	t.Helper()

	data, err := seed.Load()
	if err != nil {
		t.Fatalf("seed.Load() error: %v", err)
	}

	logger := zerolog.Nop()
	users := repo.NewUserRepository(data.Users)
	campaigns := repo.NewCampaignRepository(data.Campaigns)
	donations := repo.NewDonationRepository(data.Donations)
	receipts := repo.NewReceiptRepository(data.Receipts)

	return &App{
		Logger:    logger,
		Campaigns: campaigns,
		Donations: donations,
		Receipts:  receipts,
		Users:     users,
		Sessions:  session.NewManager("test-secret", time.Hour, users),
		Donate:    donate.NewService(campaigns, donations, receipts, logger),
		Nav:       nav.NewStore(),
	}
}

// asUser stamps the request context the way RequireAuth would.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.ContextWithUserID(r.Context(), userID))
}

// withURLParam attaches a chi route parameter so handlers reading URL params
// can be exercised without a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v\nbody: %s", err, rr.Body.String())
	}
	return body
}
