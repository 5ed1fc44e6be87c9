package sar

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateRequest(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, "/sar-request", `{"emergency_type":"flood","location":"riverbank","urgency":"high","description":"rising water"}`)

	if err := h.CreateRequest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "SAR request submitted successfully") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandler_CreateRequest_MissingFields(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, "/sar-request", `{"location":"riverbank"}`)

	err := h.CreateRequest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateWithSatellite_PlaceName(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, "/sar-with-satellite", `{"emergency_type":"earthquake","location":"Riga","urgency":"critical"}`)

	if err := h.CreateWithSatellite(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Riga[56.9496,24.1052]") {
		t.Errorf("expected annotated location, got %s", rec.Body.String())
	}
}

func TestHandler_CreateWithSatellite_UnresolvedName(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, "/sar-with-satellite", `{"emergency_type":"flood","location":"atlantis","urgency":"high"}`)

	err := h.CreateWithSatellite(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "could not geocode") {
		t.Errorf("unexpected message %v", he.Message)
	}
}

func TestHandler_ListRequests(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(nil, &Request{EmergencyType: "flood", Location: "riverbank", Urgency: "high"})

	req := httptest.NewRequest(http.MethodGet, "/sar-requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListRequests(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"emergency_type":"flood"`) {
		t.Errorf("expected request in response, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"satellite_data":{}`) {
		t.Errorf("expected empty satellite_data object, got %s", rec.Body.String())
	}
}

func TestHandler_UpdateRequest(t *testing.T) {
	h, e := newTestHandler()
	r, _ := h.svc.Create(nil, &Request{EmergencyType: "flood", Location: "riverbank", Urgency: "high"})

	body := `{"id":"` + r.ID.String() + `","emergency_type":"flood","location":"riverbank","urgency":"critical"}`
	req := httptest.NewRequest(http.MethodPut, "/update-sar-request", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.UpdateRequest(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "updated successfully") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandler_UpdateRequest_BadID(t *testing.T) {
	h, e := newTestHandler()

	for _, body := range []string{
		`{"location":"riverbank","urgency":"high"}`,
		`{"id":"not-a-uuid","location":"riverbank","urgency":"high"}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/update-sar-request", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.UpdateRequest(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestHandler_UpdateRequest_Unknown(t *testing.T) {
	h, e := newTestHandler()
	body := `{"id":"` + uuid.NewString() + `","location":"riverbank","urgency":"high"}`
	req := httptest.NewRequest(http.MethodPut, "/update-sar-request", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.UpdateRequest(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
