package handler // parent dashboard: children of a guardian account

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

// ParentDashboardHandler serves the guardian's view of their children.
type ParentDashboardHandler struct {
	Attendance *repository.AttendanceRepo
}

func NewParentDashboardHandler(r *repository.AttendanceRepo) *ParentDashboardHandler {
	if r == nil {
		panic("nil repository passed to NewParentDashboardHandler")
	}
	return &ParentDashboardHandler{Attendance: r}
}

// Children handles GET /api/player-details/:email. A guardian can only read
// the players linked to their own email; the path email must match the
// token's email claim.
func (h *ParentDashboardHandler) Children(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	if getRole(c) != "parent" || strings.ToLower(strings.TrimSpace(getEmail(c))) != email {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx := c.Request().Context()
	rows, err := h.Attendance.PlayersByGuardianEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to retrieve player details.",
			"details": err.Error(),
		})
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{
			"message": "No players found for this guardian email.",
		})
	}

	type activityItem struct {
		Date      string `json:"date"`
		IsPresent bool   `json:"is_present"`
	}
	type childResp struct {
		PlayerID   uint64         `json:"player_id"`
		Name       string         `json:"name"`
		Age        *int32         `json:"age"`
		CenterName *string        `json:"center_name"`
		CoachName  *string        `json:"coach_name"`
		Category   *string        `json:"category"`
		PhoneNo    *string        `json:"phone_no"`
		EmailID    *string        `json:"email_id"`
		Percentage float64        `json:"attendance_percentage"`
		Recent     []activityItem `json:"recent_attendance"`
	}

	children := make([]childResp, 0, len(rows))
	for _, r := range rows {
		child := childResp{
			PlayerID:   r.PlayerID,
			Name:       r.Name,
			Age:        nint(r.Age),
			CenterName: nstr(r.Center),
			CoachName:  nstr(r.Coach),
			Category:   nstr(r.Position),
			PhoneNo:    nstr(r.PhoneNo),
			EmailID:    nstr(r.Email),
			Percentage: r.Percentage,
			Recent:     []activityItem{},
		}
		// Best effort: a feed failure should not hide the child row.
		if marks, err := h.Attendance.RecentMarks(ctx, r.PlayerID, 10); err == nil {
			for _, m := range marks {
				child.Recent = append(child.Recent, activityItem{Date: m.Date, IsPresent: m.IsPresent})
			}
		}
		children = append(children, child)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"count":   len(children),
		"players": children,
	})
}
