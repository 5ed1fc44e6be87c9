package triage

import (
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
	e.POST("/submit-symptoms", h.SubmitSymptoms, auth.RequireRole(auth.RolePatient))
	e.GET("/patient-symptoms", h.ListPatientSymptoms, auth.RequireRole(auth.RoleMedicalStaff))
}

// SubmitRequest is the submit-symptoms request body.
type SubmitRequest struct {
	Symptom  string `json:"symptom"`
	Severity int    `json:"severity"`
}

// SubmitSymptoms records a symptom report for the authenticated patient.
func (h *Handler) SubmitSymptoms(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report, err := h.svc.Submit(c.Request().Context(), id.Username, req.Symptom, req.Severity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, report)
}

// ListPatientSymptoms returns the report history for one patient, newest
// first.
func (h *Handler) ListPatientSymptoms(c echo.Context) error {
	patient := c.QueryParam("patient")
	if patient == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient is required")
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), patient, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
