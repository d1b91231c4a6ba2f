package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"salesboard-api/domain"
)

func getDashboard(reader BoardReader, boardID string, auth Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.Verify(c.Request().Header); err != nil {
			return writeAuthError(c, err)
		}
		if boardID == "" {
			return writeError(c, http.StatusInternalServerError, kindServerMisconfig, "board id not configured")
		}

		ctx := c.Request().Context()
		lists, err := reader.ListLists(ctx, boardID)
		if err != nil {
			c.Logger().Error(err)
			return writeUpstreamError(c, err)
		}
		cards, err := reader.ListCards(ctx, boardID)
		if err != nil {
			c.Logger().Error(err)
			return writeUpstreamError(c, err)
		}

		return c.JSON(http.StatusOK, buildReport(lists, cards, time.Now().UTC()))
	}
}

// buildReport buckets open cards into overdue / due today / next 7 days,
// using UTC day bounds. A card due earlier today lands in both overdue and
// dueToday; completed due dates count nowhere.
func buildReport(lists []domain.BoardList, cards []domain.Card, now time.Time) domain.Report {
	nameByID := make(map[string]string, len(lists))
	for _, l := range lists {
		nameByID[l.ID] = l.Name
	}

	startToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	endToday := startToday.Add(24 * time.Hour)
	end7 := startToday.Add(8 * 24 * time.Hour)

	report := domain.Report{
		Overdue:     []domain.ReportCard{},
		DueToday:    []domain.ReportCard{},
		Next7Days:   []domain.ReportCard{},
		GeneratedAt: now.Format(time.RFC3339),
	}

	for _, card := range cards {
		country, ok := nameByID[card.ListID]
		if !ok {
			country = "Unknown"
		}
		entry := domain.ReportCard{
			ID:          card.ID,
			Name:        card.Name,
			URL:         card.URL,
			Country:     country,
			Due:         card.Due,
			DueComplete: card.DueComplete,
		}
		if card.Due == "" || card.DueComplete {
			continue
		}
		due, err := time.Parse(time.RFC3339, card.Due)
		if err != nil {
			continue
		}

		entry.IsOverdue = due.Before(now)
		if entry.IsOverdue {
			report.Overdue = append(report.Overdue, entry)
		}
		if !due.Before(startToday) && due.Before(endToday) {
			report.DueToday = append(report.DueToday, entry)
		} else if !due.Before(endToday) && due.Before(end7) {
			report.Next7Days = append(report.Next7Days, entry)
		}
	}

	sortByDue(report.Overdue)
	sortByDue(report.DueToday)
	sortByDue(report.Next7Days)
	return report
}

func sortByDue(cards []domain.ReportCard) {
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Due < cards[j].Due })
}
