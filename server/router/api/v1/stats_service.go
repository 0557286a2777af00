package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phrasecoach/phrasecoach/plugin/srs"
	"github.com/phrasecoach/phrasecoach/store"
)

type unitStats struct {
	TotalItems int `json:"totalItems"`
	New        int `json:"new"`
	Learning   int `json:"learning"`
	Review     int `json:"review"`
	Mastered   int `json:"mastered"`
	DueNow     int `json:"dueNow"`
}

type statsResponse struct {
	TotalItems int                `json:"totalItems"`
	ByState    map[string]int     `json:"byState"`
	ByUnit     map[int]*unitStats `json:"byUnit"`
	DueCount   int                `json:"dueCount"`
	// Recent attempt quality over the last recentLogWindow attempts.
	RecentAttempts int `json:"recentAttempts"`
	RecentCorrect  int `json:"recentCorrect"`
}

const recentLogWindow = 100

// GetStats summarizes scheduling progress: how many items sit in each review
// stage, per unit and overall, how many are due now, and how the last
// attempts went.
// GET /api/v1/stats
func (s *APIV1Service) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	now := time.Now()

	items, err := s.Store.ListDrillItems(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items").SetInternal(err)
	}

	states, err := s.Store.ListReviewStates(ctx, &store.FindReviewState{})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list review states").SetInternal(err)
	}
	stateByItem := map[string]*srs.ReviewState{}
	for _, state := range states {
		stateByItem[state.ItemID] = state
	}

	byState := map[string]int{}
	byUnit := map[int]*unitStats{}
	dueCount := 0
	for _, item := range items {
		unit := byUnit[item.Unit]
		if unit == nil {
			unit = &unitStats{}
			byUnit[item.Unit] = unit
		}
		unit.TotalItems++

		state, tracked := stateByItem[item.ID]
		if !tracked {
			// Never graded, no persisted row.
			byState[srs.New.String()]++
			unit.New++
			continue
		}
		byState[state.State.String()]++
		switch state.State {
		case srs.New:
			unit.New++
		case srs.Learning:
			unit.Learning++
		case srs.Review:
			unit.Review++
		case srs.Mastered:
			unit.Mastered++
		}
		if state.IsDue(now) {
			dueCount++
			unit.DueNow++
		}
	}

	limit := recentLogWindow
	logs, err := s.Store.ListReviewLogs(ctx, &store.FindReviewLog{Limit: &limit})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list review logs").SetInternal(err)
	}
	recentCorrect := 0
	for _, log := range logs {
		if log.Rating == srs.Good.String() {
			recentCorrect++
		}
	}

	return c.JSON(http.StatusOK, &statsResponse{
		TotalItems:     len(items),
		ByState:        byState,
		ByUnit:         byUnit,
		DueCount:       dueCount,
		RecentAttempts: len(logs),
		RecentCorrect:  recentCorrect,
	})
}
