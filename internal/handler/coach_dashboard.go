package handler // coach dashboard: assigned roster with attendance percentages

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

// CoachDashboardHandler serves the coach's own roster view.
type CoachDashboardHandler struct {
	Attendance *repository.AttendanceRepo
}

func NewCoachDashboardHandler(r *repository.AttendanceRepo) *CoachDashboardHandler {
	if r == nil {
		panic("nil repository passed to NewCoachDashboardHandler")
	}
	return &CoachDashboardHandler{Attendance: r}
}

// Roster handles GET /api/coach-data/:coachId. A coach can only read their
// own roster: the path id must match the authenticated user id.
func (h *CoachDashboardHandler) Roster(c echo.Context) error {
	coachID, err := strconv.ParseUint(c.Param("coachId"), 10, 64)
	if err != nil || coachID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coach id"})
	}

	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token claims"})
	}
	if getRole(c) != "coach" || uid != coachID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	rows, err := h.Attendance.CoachRoster(c.Request().Context(), coachID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to retrieve coach dashboard data.",
			"details": err.Error(),
		})
	}

	type rosterResp struct {
		PlayerID   uint64   `json:"player_id"`
		Name       string   `json:"name"`
		Age        *int32   `json:"age"`
		Category   *string  `json:"category"`
		Status     *string  `json:"status"`
		Percentage *float64 `json:"attendance_percentage"`
	}
	players := make([]rosterResp, 0, len(rows))
	for _, r := range rows {
		p := rosterResp{
			PlayerID: r.PlayerID,
			Name:     r.Name,
			Age:      nint(r.Age),
			Category: nstr(r.Category),
			Status:   nstr(r.Status),
		}
		if r.Percentage.Valid {
			p.Percentage = &r.Percentage.Float64
		}
		players = append(players, p)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "success",
		"coach_id": coachID,
		"count":    len(players),
		"players":  players,
	})
}
