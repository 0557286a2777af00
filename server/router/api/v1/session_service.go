package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/session"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
	"github.com/phrasecoach/phrasecoach/server/service/drill"
	"github.com/phrasecoach/phrasecoach/store"
)

type createSessionRequest struct {
	// Unit restricts the session to one course unit when set.
	Unit *int `json:"unit"`
	// Cap overrides the profile session cap when set.
	Cap *int `json:"cap"`
}

type sessionResponse struct {
	UID          string          `json:"uid"`
	Items        []*catalog.Item `json:"items"`
	Current      *catalog.Item   `json:"current"`
	Position     int             `json:"position"`
	Total        int             `json:"total"`
	CorrectCount int             `json:"correctCount"`
	AttemptCount int             `json:"attemptCount"`
	Done         bool            `json:"done"`
}

func (s *APIV1Service) sessionToResponse(sess *drillSession) *sessionResponse {
	correct, total := sess.Queue.Counts()
	return &sessionResponse{
		UID:          sess.UID,
		Items:        sess.Queue.Items(),
		Current:      sess.Queue.Current(),
		Position:     sess.Queue.Position(),
		Total:        sess.Queue.Len(),
		CorrectCount: correct,
		AttemptCount: total,
		Done:         sess.Queue.Current() == nil,
	}
}

// CreateSession builds a practice queue from due and new items and returns
// the session with its first item.
// POST /api/v1/sessions
func (s *APIV1Service) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	request := &createSessionRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}

	find := &store.FindDrillItem{Unit: request.Unit}
	items, err := s.Store.ListDrillItems(ctx, find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list items").SetInternal(err)
	}

	itemIDs := make([]string, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}
	states := map[string]srs.ReviewState{}
	if len(itemIDs) > 0 {
		persisted, err := s.Store.ListReviewStates(ctx, &store.FindReviewState{ItemIDs: itemIDs})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list review states").SetInternal(err)
		}
		for _, state := range persisted {
			states[state.ItemID] = *state
		}
	}

	sessionCap := s.Profile.SessionCap
	if request.Cap != nil {
		sessionCap = *request.Cap
	}
	queue := session.BuildSession(items, states, time.Now(), sessionCap)
	sess := s.sessions.Create(queue)
	return c.JSON(http.StatusOK, s.sessionToResponse(sess))
}

// GetSession returns the live progress of a session.
// GET /api/v1/sessions/:uid
func (s *APIV1Service) GetSession(c echo.Context) error {
	sess, ok := s.sessions.Get(c.Param("uid"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return c.JSON(http.StatusOK, s.sessionToResponse(sess))
}

type createAttemptRequest struct {
	// ItemID, when set, must name the session's current item. It guards
	// against a stale client grading the wrong sentence after a reinsertion.
	ItemID string `json:"itemId"`
	Input  string `json:"input"`
}

type attemptResponse struct {
	Outcome *drill.Outcome   `json:"outcome"`
	Session *sessionResponse `json:"session"`
}

// CreateAttempt grades the learner's answer against the session's current
// item, advances the queue and, on a miss, splices the item back in a few
// positions ahead.
// POST /api/v1/sessions/:uid/attempts
func (s *APIV1Service) CreateAttempt(c echo.Context) error {
	ctx := c.Request().Context()

	sess, ok := s.sessions.Get(c.Param("uid"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}

	request := &createAttemptRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request").SetInternal(err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	item := sess.Queue.Current()
	if item == nil {
		return echo.NewHTTPError(http.StatusConflict, "session is finished")
	}
	if request.ItemID != "" && request.ItemID != item.ID {
		return echo.NewHTTPError(http.StatusConflict, "item is not the session's current item")
	}

	outcome, err := s.Drill.Grade(ctx, item, request.Input, sess.UID, time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to grade attempt").SetInternal(err)
	}

	if outcome.Rating == srs.Again {
		sess.Queue.ReinsertOnMiss(sess.Queue.Position(), item)
	}
	sess.Queue.Advance(outcome.Rating == srs.Good)

	return c.JSON(http.StatusOK, &attemptResponse{
		Outcome: outcome,
		Session: s.sessionToResponse(sess),
	})
}
