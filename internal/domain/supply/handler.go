package supply

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
	e.POST("/update-supply", h.UpdateSupply, staff)
	e.GET("/medical-supplies", h.ListSupplies, staff)
	e.DELETE("/delete-supply", h.DeleteSupply, staff)
}

// UpdateRequest is the stock update body.
type UpdateRequest struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// UpdateSupply sets the stock level for an item, inserting it on first use.
func (h *Handler) UpdateSupply(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	it, err := h.svc.Set(c.Request().Context(), req.Item, req.Quantity)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, it)
}

// ListSupplies returns the current inventory.
func (h *Handler) ListSupplies(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// DeleteRequest names the item to remove from inventory.
type DeleteRequest struct {
	Item string `json:"item"`
}

// DeleteSupply removes an item from inventory entirely.
func (h *Handler) DeleteSupply(c echo.Context) error {
	var req DeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Delete(c.Request().Context(), req.Item); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "supply item deleted"})
}
