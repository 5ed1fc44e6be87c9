package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the login endpoint.
type Handler struct {
	authority *Authority
}

func NewHandler(authority *Authority) *Handler {
	return &Handler{authority: authority}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/token", h.IssueToken)
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

// IssueToken handles POST /token. The body is form-encoded username/password.
// Failures return a single generic 401 so the response gives no
// user-enumeration signal.
func (h *Handler) IssueToken(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	token, id, err := h.authority.Issue(c.Request().Context(), username, password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "incorrect username or password")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        id.Role,
	})
}
