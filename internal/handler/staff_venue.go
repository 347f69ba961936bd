// Package handler defines HTTP handlers for the staff dashboard. This file
// implements the venue endpoints: the aggregated list, the transactional
// create and the transactional deactivation.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/academyhq/academy-admin/internal/repository"
)

// VenueHandler bundles the venue repository for the venue endpoints.
type VenueHandler struct {
	Venues *repository.VenueRepo
}

func NewVenueHandler(v *repository.VenueRepo) *VenueHandler {
	if v == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: v}
}

// ListVenues handles GET /api/venues-Details. It runs the flat join for
// active venues and returns the nested venue views. The list is rebuilt on
// every request; the data set is small and a fresh view matters more than
// latency here.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	rows, err := h.Venues.ListActiveRows(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to retrieve venue data.",
			"details": err.Error(),
		})
	}
	views := BuildVenueViews(rows)
	if views == nil {
		views = []VenueView{}
	}
	return c.JSON(http.StatusOK, views)
}

type timeSlotReq struct {
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Days      []string `json:"days"`
}

type addVenueReq struct {
	Name       string        `json:"name"`
	CenterHead string        `json:"centerHead"`
	Address    string        `json:"address"`
	GoogleURL  string        `json:"googleUrl"`
	TimeSlots  []timeSlotReq `json:"timeSlots"`
}

// AddVenue handles POST /api/venue-data/add. The venue row, its time slots
// and their days are written in one transaction; a failure anywhere leaves
// no trace of the venue. Validation failures come back as 400 with the
// offending detail, store failures as 500 with the underlying error for
// operator diagnosis.
func (h *VenueHandler) AddVenue(c echo.Context) error {
	var req addVenueReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || req.CenterHead == "" || req.Address == "" || len(req.TimeSlots) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing venue details or time slot data."})
	}

	slots := make([]repository.TimeSlotInput, 0, len(req.TimeSlots))
	for _, s := range req.TimeSlots {
		slots = append(slots, repository.TimeSlotInput{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Days:      s.Days,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venueID, inserted, err := h.Venues.CreateVenue(ctx, req.Name, req.CenterHead, req.Address, req.GoogleURL, slots)
	if err != nil {
		if ve, ok := repository.AsValidation(err); ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Msg})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error":   "Failed to complete venue insertion transaction.",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":             "Venue and all associated time slots added successfully.",
		"venue_id":            venueID,
		"time_slots_inserted": inserted,
	})
}

// DeleteVenue handles DELETE /api/venues-delete/:id. Deactivation cascades
// through the ownership chain inside one transaction; an unknown id rolls
// everything back and reports 404.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	venueID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || venueID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid venue ID provided."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Venues.DeactivateVenue(ctx, venueID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Venue with ID " + strconv.FormatUint(venueID, 10) + " not found.",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete venue due to a server or database error.",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Venue ID " + strconv.FormatUint(venueID, 10) + " and related data deactivated successfully.",
	})
}
