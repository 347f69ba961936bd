package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

func newVenueHandlerMock(t *testing.T) (*VenueHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewVenueHandler(repository.NewVenueRepo(db)), mock
}

func TestListVenuesReturnsNestedShape(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	cols := []string{"id", "name", "center_head", "address", "google_url",
		"slot_id", "start_time", "end_time", "day"}
	mock.ExpectQuery("SELECT (.+) FROM venues_data v").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "North", "Asha", "1 Main St", nil, 10, "16:00:00", "18:00:00", "Monday").
			AddRow(1, "North", "Asha", "1 Main St", nil, 10, "16:00:00", "18:00:00", "Wednesday"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/venues-Details", nil)
	rec := httptest.NewRecorder()

	if err := h.ListVenues(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListVenues: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var views []VenueView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 || len(views[0].TimeSlots) != 1 {
		t.Fatalf("unexpected shape: %+v", views)
	}
	if got := views[0].TimeSlots[0].Days; len(got) != 2 || got[0] != "Monday" || got[1] != "Wednesday" {
		t.Errorf("days = %v", got)
	}
}

func TestListVenuesEmptyTableServesEmptyArray(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	cols := []string{"id", "name", "center_head", "address", "google_url",
		"slot_id", "start_time", "end_time", "day"}
	mock.ExpectQuery("SELECT (.+) FROM venues_data v").
		WillReturnRows(sqlmock.NewRows(cols))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/venues-Details", nil)
	rec := httptest.NewRecorder()

	if err := h.ListVenues(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ListVenues: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestAddVenueRejectsMissingTopLevelFields(t *testing.T) {
	h, _ := newVenueHandlerMock(t)

	e := echo.New()
	body := `{"name":"North","centerHead":"","address":"1 Main St","timeSlots":[{"startTime":"16:00","endTime":"18:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/venue-data/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddVenue(e.NewContext(req, rec)); err != nil {
		t.Fatalf("AddVenue: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing venue details or time slot data.") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAddVenueReportsCreatedGraph(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venues_data").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("INSERT INTO venuetime_slots").
		WillReturnResult(sqlmock.NewResult(50, 1))
	mock.ExpectExec("INSERT INTO venuetimeslot_days").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	e := echo.New()
	body := `{"name":"North","centerHead":"Asha","address":"1 Main St",
	          "timeSlots":[{"startTime":"16:00","endTime":"18:00","days":["monday"]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/venue-data/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddVenue(e.NewContext(req, rec)); err != nil {
		t.Fatalf("AddVenue: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		VenueID  uint64 `json:"venue_id"`
		Inserted int    `json:"time_slots_inserted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.VenueID != 5 || resp.Inserted != 1 {
		t.Errorf("response = %+v", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddVenueValidationFailureIs400(t *testing.T) {
	h, _ := newVenueHandlerMock(t)

	e := echo.New()
	body := `{"name":"North","centerHead":"Asha","address":"1 Main St",
	          "timeSlots":[{"startTime":"18:00","endTime":"16:00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/venue-data/add", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.AddVenue(e.NewContext(req, rec)); err != nil {
		t.Fatalf("AddVenue: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "start time must precede end time") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDeleteVenueUnknownIDIs404(t *testing.T) {
	h, mock := newVenueHandlerMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE venuetimeslot_days").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE venuetime_slots").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE venues_data").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/venues-delete/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.DeleteVenue(c); err != nil {
		t.Fatalf("DeleteVenue: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Venue with ID 99 not found.") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDeleteVenueInvalidID(t *testing.T) {
	h, _ := newVenueHandlerMock(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/venues-delete/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.DeleteVenue(c); err != nil {
		t.Fatalf("DeleteVenue: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
