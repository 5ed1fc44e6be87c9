package browse

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/table/:name", h.BrowseTable, auth.RequireRole(auth.RoleMedicalStaff))
}

// BrowseTable dumps rows of an allowlisted table as JSON objects keyed by
// column name.
func (h *Handler) BrowseTable(c echo.Context) error {
	limit := DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	rows, err := h.svc.Browse(c.Request().Context(), c.Param("name"), limit)
	if err != nil {
		var unknown *ErrUnknownTable
		if errors.As(err, &unknown) {
			return echo.NewHTTPError(http.StatusNotFound, unknown.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"table": c.Param("name"),
		"count": len(rows),
		"rows":  rows,
	})
}
