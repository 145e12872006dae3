package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDashboard_Summary(t *testing.T) {
	app := newTestApp(t)

	req := asUser(httptest.NewRequest("GET", "/v1/me/dashboard", nil), "u1")
	rr := httptest.NewRecorder()
	app.Dashboard(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
	body := decodeBody(t, rr)
	if got := body["total_donated"].(float64); got != 350 {
		t.Fatalf("total_donated = %v, want 350", got)
	}
	if got := body["total_donated_formatted"]; got != "$350" {
		t.Fatalf("total_donated_formatted = %v, want $350", got)
	}
	if got := body["campaigns_supported"].(float64); got != 3 {
		t.Fatalf("campaigns_supported = %v, want 3", got)
	}
	if got := body["donation_count"].(float64); got != 3 {
		t.Fatalf("donation_count = %v, want 3", got)
	}
	recent := body["recent_donations"].([]any)
	if len(recent) != 3 {
		t.Fatalf("recent_donations length = %d, want 3", len(recent))
	}
	if first := recent[0].(map[string]any); first["id"] != "d1" {
		t.Fatalf("first recent donation = %v, want d1", first["id"])
	}
}

func TestDashboard_CountsDistinctCampaigns(t *testing.T) {
	app := newTestApp(t)

	// Donate twice more to campaign 1; campaigns_supported must not grow.
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := asUser(httptest.NewRequest("POST", "/v1/campaigns/1/donations",
			strings.NewReader(`{"amount":10,"payment_method":"card"}`)), "u1")
		req = withURLParam(req, "id", "1")
		app.DonationsCreate(rr, req)
		if rr.Code != 201 {
			t.Fatalf("donation setup failed: status %d", rr.Code)
		}
	}

	req := asUser(httptest.NewRequest("GET", "/v1/me/dashboard", nil), "u1")
	rr := httptest.NewRecorder()
	app.Dashboard(rr, req)

	body := decodeBody(t, rr)
	if got := body["campaigns_supported"].(float64); got != 3 {
		t.Fatalf("campaigns_supported = %v, want 3", got)
	}
	if got := body["donation_count"].(float64); got != 5 {
		t.Fatalf("donation_count = %v, want 5", got)
	}
	if got := body["total_donated"].(float64); got != 370 {
		t.Fatalf("total_donated = %v, want 370", got)
	}
}

func TestMyReceipts_FormattedNumbers(t *testing.T) {
	app := newTestApp(t)

	req := asUser(httptest.NewRequest("GET", "/v1/me/receipts", nil), "u1")
	rr := httptest.NewRecorder()
	app.MyReceipts(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
	items := decodeBody(t, rr)["items"].([]any)
	if len(items) != 3 {
		t.Fatalf("receipt count = %d, want 3", len(items))
	}
	for _, it := range items {
		number := it.(map[string]any)["receipt_number"].(string)
		if len(number) != 6 {
			t.Fatalf("receipt number %q is not six digits", number)
		}
	}
}
