package delivery

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
	staff := auth.RequireRole(auth.RoleMedicalStaff)
	e.POST("/request-delivery", h.RequestDelivery, staff)
	e.GET("/deliveries", h.ListDeliveries, staff)
}

// RequestBody is the delivery request payload.
type RequestBody struct {
	Destination  string `json:"destination"`
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	Vehicle      string `json:"vehicle"`
	DeliveryTime string `json:"delivery_time"`
}

// RequestDelivery schedules a supply drop-off.
func (h *Handler) RequestDelivery(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
	}

	var req RequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.Request(c.Request().Context(), &Delivery{
		Destination:  req.Destination,
		Item:         req.Item,
		Quantity:     req.Quantity,
		Vehicle:      req.Vehicle,
		DeliveryTime: req.DeliveryTime,
		RequestedBy:  id.Username,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

// ListDeliveries returns scheduled deliveries, newest first.
func (h *Handler) ListDeliveries(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
