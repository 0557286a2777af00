package v1

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/phrasecoach/phrasecoach/internal/profile"
	"github.com/phrasecoach/phrasecoach/plugin/catalog"
	"github.com/phrasecoach/phrasecoach/plugin/srs"
	"github.com/phrasecoach/phrasecoach/store"
)

type fakeDriver struct {
	items  []*catalog.Item
	states map[string]*srs.ReviewState
	logs   []*store.ReviewLog
}

func newFakeDriver(items ...*catalog.Item) *fakeDriver {
	return &fakeDriver{items: items, states: map[string]*srs.ReviewState{}}
}

func (d *fakeDriver) GetDB() *sql.DB                              { return nil }
func (d *fakeDriver) Close() error                                { return nil }
func (d *fakeDriver) IsInitialized(context.Context) (bool, error) { return true, nil }

func (d *fakeDriver) CreateDrillItem(_ context.Context, create *catalog.Item) (*catalog.Item, error) {
	d.items = append(d.items, create)
	return create, nil
}

func (d *fakeDriver) ListDrillItems(_ context.Context, find *store.FindDrillItem) ([]*catalog.Item, error) {
	list := []*catalog.Item{}
	for _, item := range d.items {
		if find != nil && find.ID != nil && item.ID != *find.ID {
			continue
		}
		if find != nil && find.Unit != nil && item.Unit != *find.Unit {
			continue
		}
		list = append(list, item)
	}
	return list, nil
}

func (d *fakeDriver) UpsertReviewState(_ context.Context, upsert *srs.ReviewState) (*srs.ReviewState, error) {
	clone := *upsert
	d.states[upsert.ItemID] = &clone
	return upsert, nil
}

func (d *fakeDriver) GetReviewState(_ context.Context, itemID string) (*srs.ReviewState, error) {
	state, ok := d.states[itemID]
	if !ok {
		return nil, nil
	}
	clone := *state
	return &clone, nil
}

func (d *fakeDriver) ListReviewStates(_ context.Context, _ *store.FindReviewState) ([]*srs.ReviewState, error) {
	list := []*srs.ReviewState{}
	for _, state := range d.states {
		clone := *state
		list = append(list, &clone)
	}
	return list, nil
}

func (d *fakeDriver) CreateReviewLog(_ context.Context, create *store.ReviewLog) (*store.ReviewLog, error) {
	d.logs = append(d.logs, create)
	return create, nil
}

func (d *fakeDriver) ListReviewLogs(_ context.Context, _ *store.FindReviewLog) ([]*store.ReviewLog, error) {
	return d.logs, nil
}

func newTestService(t *testing.T, driver store.Driver) (*APIV1Service, *echo.Echo) {
	t.Helper()
	testProfile := &profile.Profile{Mode: "dev", Driver: "sqlite", SessionCap: 20, SoftSpelling: true}
	testStore := store.New(driver, testProfile)
	t.Cleanup(func() { _ = testStore.Close() })

	service := NewAPIV1Service(testProfile, testStore)
	e := echo.New()
	service.RegisterRoutes(e)
	return service, e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	payload := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHealthz(t *testing.T) {
	_, e := newTestService(t, newFakeDriver())
	rec, payload := doJSON(t, e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", payload["status"])
}

func TestSessionLifecycle(t *testing.T) {
	driver := newFakeDriver(
		&catalog.Item{ID: "u9-001", TargetText: "je voudrais un café", Unit: 9, Commonality: 0.9, Type: catalog.TypeTranslation},
		&catalog.Item{ID: "u9-002", TargetText: "le chat noir", Unit: 9, Commonality: 0.5, Type: catalog.TypeTranslation},
	)
	_, e := newTestService(t, driver)

	rec, created := doJSON(t, e, http.MethodPost, "/api/v1/sessions", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	uid, _ := created["uid"].(string)
	require.NotEmpty(t, uid)
	require.Equal(t, float64(2), created["total"])
	require.False(t, created["done"].(bool))

	// New items are ordered by commonality, so u9-001 comes first.
	current := created["current"].(map[string]any)
	require.Equal(t, "u9-001", current["id"])

	// A correct answer advances the queue and persists Good.
	rec, attempt := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"itemId":"u9-001","input":"je voudrais un café"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	outcome := attempt["outcome"].(map[string]any)
	require.Equal(t, "Good", outcome["rating"])
	require.True(t, outcome["result"].(map[string]any)["isCorrect"].(bool))

	state, err := driver.GetReviewState(context.Background(), "u9-001")
	require.NoError(t, err)
	require.Equal(t, srs.Learning, state.State)
	require.Len(t, driver.logs, 1)

	// A wrong word order rates Again and splices the item back in, so the
	// session grows by one.
	rec, attempt = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"input":"chat le noir"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	outcome = attempt["outcome"].(map[string]any)
	require.Equal(t, "Again", outcome["rating"])
	sessionState := attempt["session"].(map[string]any)
	require.Equal(t, float64(3), sessionState["total"])

	rec, fetched := doJSON(t, e, http.MethodGet, "/api/v1/sessions/"+uid, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), fetched["attemptCount"])
	require.Equal(t, float64(1), fetched["correctCount"])
}

func TestSessionNotFound(t *testing.T) {
	_, e := newTestService(t, newFakeDriver())
	rec, _ := doJSON(t, e, http.MethodGet, "/api/v1/sessions/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttemptOnFinishedSessionConflicts(t *testing.T) {
	driver := newFakeDriver(
		&catalog.Item{ID: "u9-001", TargetText: "bonjour", Unit: 9, Commonality: 1, Type: catalog.TypeTranslation},
	)
	_, e := newTestService(t, driver)

	rec, created := doJSON(t, e, http.MethodPost, "/api/v1/sessions", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	uid := created["uid"].(string)

	rec, _ = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"input":"bonjour"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"input":"bonjour"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestStats(t *testing.T) {
	driver := newFakeDriver(
		&catalog.Item{ID: "u9-001", TargetText: "bonjour", Unit: 9, Commonality: 1, Type: catalog.TypeTranslation},
		&catalog.Item{ID: "u9-002", TargetText: "merci", Unit: 9, Commonality: 0.8, Type: catalog.TypeTranslation},
	)
	_, e := newTestService(t, driver)

	rec, created := doJSON(t, e, http.MethodPost, "/api/v1/sessions", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	uid := created["uid"].(string)
	rec, _ = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"input":"bonjour"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, stats := doJSON(t, e, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(2), stats["totalItems"])
	byState := stats["byState"].(map[string]any)
	require.Equal(t, float64(1), byState["Learning"])
	require.Equal(t, float64(1), byState["New"])
	byUnit := stats["byUnit"].(map[string]any)
	unit9 := byUnit["9"].(map[string]any)
	require.Equal(t, float64(2), unit9["totalItems"])
	require.Equal(t, float64(1), unit9["learning"])
	require.Equal(t, float64(1), unit9["new"])
	require.Equal(t, float64(1), stats["recentAttempts"])
	require.Equal(t, float64(1), stats["recentCorrect"])
}

func TestAttemptItemMismatchConflicts(t *testing.T) {
	driver := newFakeDriver(
		&catalog.Item{ID: "u9-001", TargetText: "bonjour", Unit: 9, Commonality: 1, Type: catalog.TypeTranslation},
	)
	_, e := newTestService(t, driver)

	rec, created := doJSON(t, e, http.MethodPost, "/api/v1/sessions", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	uid := created["uid"].(string)

	rec, _ = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+uid+"/attempts", `{"itemId":"u9-999","input":"bonjour"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}
