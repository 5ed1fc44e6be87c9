package triage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc := NewService(&mockRepo{})
	return NewHandler(svc), echo.New()
}

func submitAs(t *testing.T, h *Handler, e *echo.Echo, identity auth.Identity, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/submit-symptoms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.SubmitSymptoms(c)
}

func TestHandler_SubmitSymptoms(t *testing.T) {
	h, e := newTestHandler()
	rec, err := submitAs(t, h, e, auth.Identity{Username: "patient1", Role: auth.RolePatient},
		`{"symptom":"fever","severity":5}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report SymptomReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if report.Patient != "patient1" {
		t.Errorf("expected patient1, got %s", report.Patient)
	}
	if report.CalculatedSeverity != 10 {
		t.Errorf("expected calculated severity 10, got %d", report.CalculatedSeverity)
	}
}

func TestHandler_SubmitSymptoms_MissingSymptom(t *testing.T) {
	h, e := newTestHandler()
	_, err := submitAs(t, h, e, auth.Identity{Username: "patient1", Role: auth.RolePatient},
		`{"severity":5}`)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_SubmitSymptoms_NoIdentity(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/submit-symptoms", strings.NewReader(`{"symptom":"fever","severity":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SubmitSymptoms(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without identity, got %v", err)
	}
}

func TestHandler_ListPatientSymptoms(t *testing.T) {
	h, e := newTestHandler()
	submitAs(t, h, e, auth.Identity{Username: "patient1", Role: auth.RolePatient}, `{"symptom":"cough","severity":5}`)

	req := httptest.NewRequest(http.MethodGet, "/patient-symptoms?patient=patient1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPatientSymptoms(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"symptom":"cough"`) {
		t.Errorf("expected report in response, got %s", rec.Body.String())
	}
}

func TestHandler_ListPatientSymptoms_RequiresPatientParam(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/patient-symptoms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListPatientSymptoms(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
