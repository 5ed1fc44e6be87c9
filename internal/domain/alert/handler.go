package alert

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/auth"
	"github.com/telecare/telecare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Any authenticated user may raise an alert; only staff review them.
	e.POST("/trigger-alert", h.TriggerAlert)
	e.GET("/active-alerts", h.ListAlerts, auth.RequireRole(auth.RoleMedicalStaff))
	e.PUT("/alerts/:alert_id/status", h.UpdateAlertStatus, auth.RequireRole(auth.RoleMedicalStaff))
}

// TriggerAlert raises an active alert attributed to the caller.
func (h *Handler) TriggerAlert(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
	}

	a, err := h.svc.Trigger(c.Request().Context(), id.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":  fmt.Sprintf("Alert triggered by %s", id.Username),
		"alert_id": a.AlertID,
	})
}

// ListAlerts returns alerts, optionally filtered by ?status=.
func (h *Handler) ListAlerts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// StatusRequest is the alert status update body.
type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateAlertStatus transitions an alert between active and resolved.
func (h *Handler) UpdateAlertStatus(c echo.Context) error {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("alert_id"), req.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "alert updated"})
}
