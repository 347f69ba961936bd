package handler // player roster management for the staff dashboard

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

// PlayerHandler bundles the player repository for roster endpoints.
type PlayerHandler struct {
	Players *repository.PlayerRepo
}

func NewPlayerHandler(p *repository.PlayerRepo) *PlayerHandler {
	if p == nil {
		panic("nil repository passed to NewPlayerHandler")
	}
	return &PlayerHandler{Players: p}
}

// nullable column helpers: the intake form leaves most personal fields
// blank, which must round-trip as JSON null rather than "".

func nstr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nint(ni sql.NullInt32) *int32 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int32
}

func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

type playerReq struct {
	Name                   string `json:"name"`
	Age                    *int32 `json:"age"`
	Address                string `json:"address"`
	PhoneNo                string `json:"phone_no"`
	CenterName             string `json:"center_name"`
	CoachName              string `json:"coach_name"`
	Category               string `json:"category"`
	Active                 *bool  `json:"active"`
	Status                 string `json:"status"`
	FatherName             string `json:"father_name"`
	MotherName             string `json:"mother_name"`
	Gender                 string `json:"gender"`
	DateOfBirth            string `json:"date_of_birth"`
	BloodGroup             string `json:"blood_group"`
	EmailID                string `json:"email_id"`
	EmergencyContactNumber string `json:"emergency_contact_number"`
	GuardianContactNumber  string `json:"guardian_contact_number"`
	GuardianEmailID        string `json:"guardian_email_id"`
	MedicalCondition       string `json:"medical_condition"`
}

func (req *playerReq) toModel() *repository.Player {
	p := &repository.Player{
		Name:                   strings.TrimSpace(req.Name),
		Address:                toNullString(req.Address),
		PhoneNo:                toNullString(req.PhoneNo),
		CenterName:             toNullString(req.CenterName),
		CoachName:              toNullString(req.CoachName),
		Category:               toNullString(req.Category),
		Active:                 true,
		Status:                 toNullString(req.Status),
		FatherName:             toNullString(req.FatherName),
		MotherName:             toNullString(req.MotherName),
		Gender:                 toNullString(req.Gender),
		DateOfBirth:            toNullString(req.DateOfBirth),
		BloodGroup:             toNullString(req.BloodGroup),
		EmailID:                toNullString(req.EmailID),
		EmergencyContactNumber: toNullString(req.EmergencyContactNumber),
		GuardianContactNumber:  toNullString(req.GuardianContactNumber),
		GuardianEmailID:        toNullString(req.GuardianEmailID),
		MedicalCondition:       toNullString(req.MedicalCondition),
	}
	if req.Age != nil {
		p.Age = sql.NullInt32{Int32: *req.Age, Valid: true}
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	return p
}

type playerResp struct {
	ID          uint64  `json:"id"`
	PlayerID    uint64  `json:"player_id"`
	Name        string  `json:"name"`
	Age         *int32  `json:"age"`
	Address     *string `json:"address"`
	PhoneNo     *string `json:"phone_no"`
	CenterName  *string `json:"center_name"`
	CoachName   *string `json:"coach_name"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	Active      bool    `json:"active"`
	FatherName  *string `json:"father_name,omitempty"`
	MotherName  *string `json:"mother_name,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	BloodGroup  *string `json:"blood_group,omitempty"`
	EmailID     *string `json:"email_id,omitempty"`
	Emergency   *string `json:"emergency_contact_number,omitempty"`
	GuardianNo  *string `json:"guardian_contact_number,omitempty"`
	GuardianEm  *string `json:"guardian_email_id,omitempty"`
	Medical     *string `json:"medical_condition,omitempty"`
}

func toPlayerResp(p *repository.Player) playerResp {
	return playerResp{
		ID:          p.ID,
		PlayerID:    p.PlayerID,
		Name:        p.Name,
		Age:         nint(p.Age),
		Address:     nstr(p.Address),
		PhoneNo:     nstr(p.PhoneNo),
		CenterName:  nstr(p.CenterName),
		CoachName:   nstr(p.CoachName),
		Category:    nstr(p.Category),
		Status:      nstr(p.Status),
		Active:      p.Active,
		FatherName:  nstr(p.FatherName),
		MotherName:  nstr(p.MotherName),
		Gender:      nstr(p.Gender),
		DateOfBirth: nstr(p.DateOfBirth),
		BloodGroup:  nstr(p.BloodGroup),
		EmailID:     nstr(p.EmailID),
		Emergency:   nstr(p.EmergencyContactNumber),
		GuardianNo:  nstr(p.GuardianContactNumber),
		GuardianEm:  nstr(p.GuardianEmailID),
		Medical:     nstr(p.MedicalCondition),
	}
}

// ListPlayers handles GET /api/players-details.
func (h *PlayerHandler) ListPlayers(c echo.Context) error {
	players, err := h.Players.ListDetails(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Fetch failed"})
	}
	out := make([]playerResp, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerResp(p))
	}
	return c.JSON(http.StatusOK, out)
}

// AddPlayer handles POST /api/players-add. A duplicate email answers 409
// with the conflicting address so the intake form can point at the field.
func (h *PlayerHandler) AddPlayer(c echo.Context) error {
	var req playerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	p := req.toModel()
	if err := h.Players.Insert(c.Request().Context(), p); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":   "A player with this email address already exists.",
				"details": req.EmailID,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Internal Server Error: Database insertion failed.",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Player added successfully",
		"player":  echo.Map{"player_id": p.PlayerID, "name": p.Name},
	})
}

// GetPlayerForEdit handles GET /api/Player-edit?id=&player_id=.
func (h *PlayerHandler) GetPlayerForEdit(c echo.Context) error {
	id, err1 := strconv.ParseUint(c.QueryParam("id"), 10, 64)
	playerID, err2 := strconv.ParseUint(c.QueryParam("player_id"), 10, 64)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required parameters: id and player_id"})
	}
	p, err := h.Players.GetByIDs(c.Request().Context(), id, playerID)
	if err != nil {
		if err == repository.ErrPlayerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Player details not found for the given IDs."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, toPlayerResp(p))
}

// UpdatePlayer handles PUT /api/Player-Edit/:id where :id is the player_id.
func (h *PlayerHandler) UpdatePlayer(c echo.Context) error {
	playerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing player id in URL."})
	}
	var req playerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No fields provided to update."})
	}

	if err := h.Players.UpdateByPlayerID(c.Request().Context(), playerID, req.toModel()); err != nil {
		if err == repository.ErrPlayerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Player not found or player_id incorrect."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to update player details",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Player details updated successfully"})
}

// DeletePlayer handles DELETE /api/Player-Delete/:id (soft delete).
func (h *PlayerHandler) DeletePlayer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	name, err := h.Players.Deactivate(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrPlayerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Player not found or ID was incorrect. No record updated."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to deactivate player details",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Player " + name + " successfully deactivated",
		"playerId": id,
	})
}

// ListAssignments handles GET /api/players-agssign; the misspelled path is
// what the deployed client calls.
func (h *PlayerHandler) ListAssignments(c echo.Context) error {
	rows, err := h.Players.ListForAssignment(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"status":  "error",
			"message": "Failed to retrieve player data from the database.",
			"details": err.Error(),
		})
	}
	type assignResp struct {
		ID        uint64  `json:"id"`
		PlayerID  uint64  `json:"player_id"`
		Name      string  `json:"name"`
		CoachID   *int64  `json:"coachId"`
		Category  *string `json:"category"`
		CoachName *string `json:"coach_name"`
	}
	players := make([]assignResp, 0, len(rows))
	for _, r := range rows {
		a := assignResp{ID: r.ID, PlayerID: r.PlayerID, Name: r.Name,
			Category: nstr(r.Category), CoachName: nstr(r.CoachName)}
		if r.CoachID.Valid {
			a.CoachID = &r.CoachID.Int64
		}
		players = append(players, a)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"count":   len(players),
		"players": players,
	})
}

// AssignCoach handles POST /api/update-coach.
func (h *PlayerHandler) AssignCoach(c echo.Context) error {
	var req struct {
		CoachName string `json:"coach_name"`
		CoachID   uint64 `json:"coach_id"`
		PlayerID  uint64 `json:"player_id"`
		ID        uint64 `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.CoachName == "" || req.CoachID == 0 || req.PlayerID == 0 || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing required parameters: coach_name, coach_id, player_id, or id.",
		})
	}
	if err := h.Players.AssignCoach(c.Request().Context(), req.CoachName, req.CoachID, req.PlayerID, req.ID); err != nil {
		if err == repository.ErrPlayerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No record found matching the criteria for update."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to update coach assignment.",
			"details": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Coach assigned successfully."})
}
