package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/phrasecoach/phrasecoach/internal/profile"
	"github.com/phrasecoach/phrasecoach/server/middleware"
	"github.com/phrasecoach/phrasecoach/server/service/drill"
	"github.com/phrasecoach/phrasecoach/store"
)

// APIV1Service wires the HTTP surface: catalog reads, session lifecycle,
// attempt grading and stats.
type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store
	Drill   *drill.Service

	sessions *sessionRegistry
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store) *APIV1Service {
	return &APIV1Service{
		Profile:  profile,
		Store:    store,
		Drill:    drill.NewService(store, profile),
		sessions: newSessionRegistry(),
	}
}

// RegisterRoutes mounts the v1 API on the given echo instance.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	rateLimiter := middleware.NewRateLimiter()

	echoServer.GET("/healthz", s.GetHealthz)

	apiV1 := echoServer.Group("/api/v1")
	apiV1.Use(echomw.CORS())
	apiV1.Use(rateLimiter.Middleware())

	apiV1.GET("/items", s.ListDrillItems)
	apiV1.POST("/sessions", s.CreateSession)
	apiV1.GET("/sessions/:uid", s.GetSession)
	apiV1.POST("/sessions/:uid/attempts", s.CreateAttempt)
	apiV1.GET("/stats", s.GetStats)
}

// GetHealthz reports liveness.
// GET /healthz
func (s *APIV1Service) GetHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.Profile.Version,
	})
}
