package sar

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
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
	staff := auth.RequireRole(auth.RoleMedicalStaff)
	e.POST("/sar-request", h.CreateRequest, staff)
	e.POST("/sar-with-satellite", h.CreateWithSatellite, staff)
	e.GET("/sar-requests", h.ListRequests, staff)
	e.PUT("/update-sar-request", h.UpdateRequest, staff)
}

// RequestBody is the SAR request payload.
type RequestBody struct {
	ID            string                 `json:"id,omitempty"`
	EmergencyType string                 `json:"emergency_type"`
	Location      string                 `json:"location"`
	Urgency       string                 `json:"urgency"`
	Description   string                 `json:"description"`
	ContactNumber string                 `json:"contact_number"`
	SatelliteData map[string]interface{} `json:"satellite_data"`
}

func (b *RequestBody) toModel() *Request {
	return &Request{
		EmergencyType: b.EmergencyType,
		Location:      b.Location,
		Urgency:       b.Urgency,
		Description:   b.Description,
		ContactNumber: b.ContactNumber,
		SatelliteData: b.SatelliteData,
	}
}

// CreateRequest stores a SAR request exactly as submitted.
func (h *Handler) CreateRequest(c echo.Context) error {
	var body RequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.Create(c.Request().Context(), body.toModel())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "SAR request submitted successfully",
		"id":      r.ID,
	})
}

// CreateWithSatellite geocodes the location and attaches satellite imagery
// before storing the request.
func (h *Handler) CreateWithSatellite(c echo.Context) error {
	var body RequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.CreateWithImagery(c.Request().Context(), body.toModel())
	if err != nil {
		var unresolved *ErrUnresolvedLocation
		if errors.As(err, &unresolved) {
			return echo.NewHTTPError(http.StatusBadRequest, "could not geocode location name")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "SAR request submitted successfully",
		"id":       r.ID,
		"location": r.Location,
	})
}

// ListRequests returns SAR requests, newest first.
func (h *Handler) ListRequests(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// UpdateRequest rewrites an existing request identified by its id.
func (h *Handler) UpdateRequest(c echo.Context) error {
	var body RequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := uuid.Parse(body.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid id is required")
	}
	r := body.toModel()
	r.ID = id
	if err := h.svc.Update(c.Request().Context(), r); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "SAR request updated successfully"})
}
