package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"salesboard-api/board"
	"salesboard-api/domain"
)

type mockBoardReader struct {
	lists    []domain.BoardList
	cards    []domain.Card
	listsErr error
	cardsErr error
}

func (m *mockBoardReader) ListLists(ctx context.Context, boardID string) ([]domain.BoardList, error) {
	return m.lists, m.listsErr
}

func (m *mockBoardReader) ListCards(ctx context.Context, boardID string) ([]domain.Card, error) {
	return m.cards, m.cardsErr
}

func dashboardRequest(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/today", nil)
	req.Header.Set("X-Api-Key", "k")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetDashboard(t *testing.T) {
	now := time.Now().UTC()
	reader := &mockBoardReader{
		lists: []domain.BoardList{{ID: "l1", Name: "Germany"}},
		cards: []domain.Card{
			{ID: "c1", Name: "Chase invoice", ListID: "l1", Due: now.Add(-48 * time.Hour).Format(time.RFC3339)},
			{ID: "c2", Name: "Send quote", ListID: "l1", Due: now.Add(time.Hour).Format(time.RFC3339)},
		},
	}
	c, rec := dashboardRequest(t)

	if err := getDashboard(reader, "board-1", allowAuth{})(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rec.Code)
	}

	var report domain.Report
	if err := sonic.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(report.Overdue) != 1 || report.Overdue[0].ID != "c1" {
		t.Fatalf("unexpected overdue bucket: %#v", report.Overdue)
	}
	if report.Overdue[0].Country != "Germany" {
		t.Fatalf("country not resolved from list: %#v", report.Overdue[0])
	}
	if report.GeneratedAt == "" {
		t.Fatal("generatedAt missing")
	}
}

func TestGetDashboardMissingBoardID(t *testing.T) {
	c, rec := dashboardRequest(t)

	if err := getDashboard(&mockBoardReader{}, "", allowAuth{})(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Error != "SERVER_MISCONFIGURED" {
		t.Fatalf("unexpected error kind: %q", body.Error)
	}
}

func TestGetDashboardUpstreamFailure(t *testing.T) {
	reader := &mockBoardReader{listsErr: &board.APIError{StatusCode: 503, Body: "down"}}
	c, rec := dashboardRequest(t)

	if err := getDashboard(reader, "board-1", allowAuth{})(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected upstream status got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Error != "UPSTREAM_ERROR" || body.Details != "down" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestGetDashboardUnauthorized(t *testing.T) {
	c, rec := dashboardRequest(t)

	if err := getDashboard(&mockBoardReader{}, "board-1", denyAuth{err: ErrBadAPIKey})(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 got %d", rec.Code)
	}
}

func TestBuildReportBuckets(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	lists := []domain.BoardList{{ID: "l1", Name: "Germany"}, {ID: "l2", Name: "Brazil"}}
	cards := []domain.Card{
		{ID: "overdue", ListID: "l1", Due: "2026-08-20T10:00:00Z"},
		{ID: "today-late", ListID: "l1", Due: "2026-09-01T09:00:00Z"},
		{ID: "today-ahead", ListID: "l2", Due: "2026-09-01T18:00:00Z"},
		{ID: "this-week", ListID: "l2", Due: "2026-09-05T10:00:00Z"},
		{ID: "far-future", ListID: "l1", Due: "2026-10-01T10:00:00Z"},
		{ID: "done", ListID: "l1", Due: "2026-08-20T10:00:00Z", DueComplete: true},
		{ID: "no-due", ListID: "l1"},
		{ID: "orphan", ListID: "zz", Due: "2026-09-05T12:00:00Z"},
	}

	report := buildReport(lists, cards, now)

	wantIDs := func(got []domain.ReportCard, want ...string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %#v", want, got)
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("expected %v, got %#v", want, got)
			}
		}
	}

	// A card due earlier today is both overdue and due today, like the
	// board's own dashboard counts it.
	wantIDs(report.Overdue, "overdue", "today-late")
	wantIDs(report.DueToday, "today-late", "today-ahead")
	wantIDs(report.Next7Days, "this-week", "orphan")

	for _, rc := range report.Next7Days {
		if rc.ID == "orphan" && rc.Country != "Unknown" {
			t.Fatalf("expected Unknown country for orphan card, got %q", rc.Country)
		}
	}
	if !report.Overdue[0].IsOverdue {
		t.Fatal("overdue card not flagged")
	}
}

func TestBuildReportSortsByDue(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	cards := []domain.Card{
		{ID: "b", ListID: "l1", Due: "2026-08-25T00:00:00Z"},
		{ID: "a", ListID: "l1", Due: "2026-08-20T00:00:00Z"},
		{ID: "c", ListID: "l1", Due: "2026-08-30T00:00:00Z"},
	}

	report := buildReport([]domain.BoardList{{ID: "l1", Name: "Germany"}}, cards, now)
	if len(report.Overdue) != 3 {
		t.Fatalf("expected 3 overdue cards, got %d", len(report.Overdue))
	}
	for i, want := range []string{"a", "b", "c"} {
		if report.Overdue[i].ID != want {
			t.Fatalf("unexpected order: %#v", report.Overdue)
		}
	}
}

func TestBuildReportEmptyBucketsAreArrays(t *testing.T) {
	report := buildReport(nil, nil, time.Now().UTC())
	data, err := sonic.Marshal(report)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"overdue":[]`, `"dueToday":[]`, `"next7Days":[]`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected %s in %s", key, data)
		}
	}
}
