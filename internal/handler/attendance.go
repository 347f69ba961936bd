package handler // attendance marking endpoint used by the coach dashboard

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	qmodel "github.com/academyhq/academy-admin/internal/queue"
	"github.com/academyhq/academy-admin/internal/repository"
	queue_publisher "github.com/academyhq/academy-admin/internal/service"
)

// AttendanceHandler bundles the attendance repository for the marking
// endpoint.
type AttendanceHandler struct {
	Attendance *repository.AttendanceRepo
}

func NewAttendanceHandler(r *repository.AttendanceRepo) *AttendanceHandler {
	if r == nil {
		panic("nil repository passed to NewAttendanceHandler")
	}
	return &AttendanceHandler{Attendance: r}
}

type attendanceReq struct {
	PlayerID  uint64 `json:"player_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	IsPresent *bool  `json:"is_present"`
	CoachID   uint64 `json:"coach_id"`
}

// Record handles POST /api/attendance. After a successful insert the mark
// is also published to the broker; a broker failure never fails the
// request, the mark is already durable in the database.
func (h *AttendanceHandler) Record(c echo.Context) error {
	var req attendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.PlayerID == 0 || req.CoachID == 0 || req.IsPresent == nil || strings.TrimSpace(req.Date) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required fields: player_id, date, is_present, coach_id.",
		})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be formatted YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entry := &repository.AttendanceEntry{
		PlayerID:  req.PlayerID,
		Date:      req.Date,
		IsPresent: *req.IsPresent,
		CoachID:   req.CoachID,
	}
	if err := h.Attendance.Insert(ctx, entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to record attendance.",
			"details": err.Error(),
		})
	}

	go func(e repository.AttendanceEntry) {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = queue_publisher.PublishAttendanceRecorded(pctx, qmodel.AttendanceRecordedEvent{
			AttendanceID: e.AttendanceID,
			PlayerID:     e.PlayerID,
			CoachID:      e.CoachID,
			Date:         e.Date,
			IsPresent:    e.IsPresent,
			RecordedAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}(*entry)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "Attendance recorded successfully",
		"attendance_id": entry.AttendanceID,
	})
}
