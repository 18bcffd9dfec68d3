package handler

import (
	"log/slog"
	"net/http"

	"reviewer/model"
	"reviewer/session"
	"reviewer/upload"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	filesystem upload.Filesystem
	sessions   *session.Registry
	logger     *slog.Logger
}

func NewReviewHandler(filesystem upload.Filesystem, sessions *session.Registry, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		filesystem: filesystem,
		sessions:   sessions,
		logger:     logger,
	}
}

// Sessions exposes the registry for the session middleware.
func (m *ReviewHandler) Sessions() *session.Registry {
	return m.sessions
}

// session resolves the state object for the current request. The session
// middleware put the RID into the request context; without it the zero
// RID still maps to a usable (shared) session, which keeps plain
// httptest requests working.
func (m *ReviewHandler) session(c echo.Context) *session.Session {
	rc := model.GetRequestContext(c)
	return m.sessions.GetOrCreate(rc.SessionRID)
}

// Health check handler
func (m *ReviewHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "mapped-data-reviewer",
	})
}
