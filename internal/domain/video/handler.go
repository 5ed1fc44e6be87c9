// Package video hands out conference room URLs. The conferencing itself is
// fully delegated to the external provider.
package video

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/auth"
)

const roomBaseURL = "https://meet.jit.si"

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/create-video-session", h.CreateSession)
}

// CreateSession mints a fresh room URL for the caller. Rooms are unguessable
// UUIDs; no session state is kept server-side.
func (h *Handler) CreateSession(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   fmt.Sprintf("Video session created by %s", id.Username),
		"video_url": fmt.Sprintf("%s/%s", roomBaseURL, uuid.NewString()),
	})
}
