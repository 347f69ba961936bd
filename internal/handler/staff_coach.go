package handler // coach management for the staff dashboard

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

// CoachHandler bundles the coach repository for the coach endpoints.
type CoachHandler struct {
	Coaches *repository.CoachRepo
}

func NewCoachHandler(r *repository.CoachRepo) *CoachHandler {
	if r == nil {
		panic("nil repository passed to NewCoachHandler")
	}
	return &CoachHandler{Coaches: r}
}

type coachReq struct {
	CoachName    string  `json:"coach_name"`
	PhoneNumbers string  `json:"phone_numbers"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Players      int     `json:"players"`
	Salary       float64 `json:"salary"`
	WeekSalary   float64 `json:"week_salary"`
	Category     string  `json:"category"`
	Active       *bool   `json:"active"`
	Status       string  `json:"status"`
}

func (req *coachReq) toModel() *repository.Coach {
	c := &repository.Coach{
		CoachName:    strings.TrimSpace(req.CoachName),
		PhoneNumbers: toNullString(req.PhoneNumbers),
		Email:        strings.TrimSpace(req.Email),
		Address:      toNullString(req.Address),
		Players:      req.Players,
		Salary:       req.Salary,
		WeekSalary:   req.WeekSalary,
		Category:     toNullString(req.Category),
		Active:       true,
		Status:       "Active",
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	if s := strings.TrimSpace(req.Status); s != "" {
		c.Status = s
	}
	return c
}

type coachResp struct {
	CoachID      uint64  `json:"coach_id"`
	Players      int     `json:"players"`
	CoachName    string  `json:"coach_name"`
	PhoneNumbers *string `json:"phone_numbers"`
	Salary       float64 `json:"salary"`
	Attendance   *string `json:"attendance"`
	WeekSalary   float64 `json:"week_salary"`
	Category     *string `json:"category"`
	Status       string  `json:"status"`
}

// ListCoaches handles GET /api/coach-details.
func (h *CoachHandler) ListCoaches(c echo.Context) error {
	coaches, err := h.Coaches.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to retrieve coach data.",
			"details": err.Error(),
		})
	}
	out := make([]coachResp, 0, len(coaches))
	for _, co := range coaches {
		out = append(out, coachResp{
			CoachID:      co.CoachID,
			Players:      co.Players,
			CoachName:    co.CoachName,
			PhoneNumbers: nstr(co.PhoneNumbers),
			Salary:       co.Salary,
			Attendance:   nstr(co.Attendance),
			WeekSalary:   co.WeekSalary,
			Category:     nstr(co.Category),
			Status:       co.Status,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ListCoachNames handles GET /api/coaches-list, feeding the coach dropdown
// on the player assignment screen.
func (h *CoachHandler) ListCoachNames(c echo.Context) error {
	entries, err := h.Coaches.ListNames(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  "error",
			"message": "Failed to retrieve coach list.",
			"details": err.Error(),
		})
	}
	type entryResp struct {
		CoachID   uint64  `json:"coach_id"`
		CoachName string  `json:"coach_name"`
		Category  *string `json:"category"`
	}
	coaches := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		coaches = append(coaches, entryResp{CoachID: e.CoachID, CoachName: e.CoachName, Category: nstr(e.Category)})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"count":   len(coaches),
		"coaches": coaches,
	})
}

// AddCoach handles POST /api/coaches-add.
func (h *CoachHandler) AddCoach(c echo.Context) error {
	var req coachReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.CoachName) == "" || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "coach_name and email are required"})
	}
	if req.Salary < 0 || req.WeekSalary < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "salary values must not be negative"})
	}

	coach := req.toModel()
	if err := h.Coaches.Insert(c.Request().Context(), coach); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to add coach.",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Coach added successfully",
		"coach":   echo.Map{"coach_id": coach.CoachID, "coach_name": coach.CoachName},
	})
}

// UpdateCoach handles PUT /api/coaches-update/:coach_id.
func (h *CoachHandler) UpdateCoach(c echo.Context) error {
	coachID, err := strconv.ParseUint(c.Param("coach_id"), 10, 64)
	if err != nil || coachID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coach_id"})
	}
	var req coachReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.CoachName) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No fields provided to update."})
	}

	coach := req.toModel()
	coach.CoachID = coachID
	if err := h.Coaches.Update(c.Request().Context(), coach); err != nil {
		if err == repository.ErrCoachNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Coach not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to update coach details.",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Coach details updated successfully"})
}

// DeactivateCoach handles PUT /api/coaches-deactivate/:coach_id.
func (h *CoachHandler) DeactivateCoach(c echo.Context) error {
	coachID, err := strconv.ParseUint(c.Param("coach_id"), 10, 64)
	if err != nil || coachID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coach_id"})
	}
	coach, err := h.Coaches.Deactivate(c.Request().Context(), coachID)
	if err != nil {
		if err == repository.ErrCoachNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Coach not found or already deactivated."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to deactivate coach.",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Coach " + coach.CoachName + " deactivated successfully",
		"coach":   echo.Map{"coach_id": coachID, "status": coach.Status},
	})
}
