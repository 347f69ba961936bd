package handler

// venue_view.go builds the nested venue -> time slots -> days shape served
// by the venues list endpoint out of the flat left-join rows. The fold
// relies on the query's (venue id, slot id, day) ordering only for the
// output order; correctness needs just one pass and two small maps.

import (
	"strconv"

	"github.com/academyhq/academy-admin/internal/repository"
)

// TimeSlotView is one recurring window inside a VenueView. Identifiers are
// serialized as strings because the web client treats them as opaque keys.
type TimeSlotView struct {
	ID        string   `json:"id"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Days      []string `json:"days"`
}

// VenueView is the aggregated shape of one venue as returned to readers.
type VenueView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	CenterHead string         `json:"centerHead"`
	Address    string         `json:"address"`
	TimeSlots  []TimeSlotView `json:"timeSlots"`
}

// BuildVenueViews folds flat join rows into nested venue views.
//
// Venues and slots keep first-appearance order. A NULL slot id means the
// venue has no slots; the venue still appears with an empty timeSlots list.
// Day labels are appended once per slot: the join fans out duplicate
// (venue, slot, day) rows whenever a slot carries several days, and a day
// row whose slot id is NULL is an artifact of the left join and is dropped.
// The function performs no I/O and cannot fail.
func BuildVenueViews(rows []repository.VenueDetailRow) []VenueView {
	type slotAgg struct {
		view TimeSlotView
		seen map[string]bool // day labels already appended
	}
	type venueAgg struct {
		view      VenueView
		slotOrder []int64
		slots     map[int64]*slotAgg
	}

	var order []uint64
	venues := make(map[uint64]*venueAgg)

	for _, row := range rows {
		v, ok := venues[row.VenueID]
		if !ok {
			v = &venueAgg{
				view: VenueView{
					ID:         strconv.FormatUint(row.VenueID, 10),
					Name:       row.VenueName,
					CenterHead: row.CenterHead,
					Address:    row.Address,
				},
				slots: make(map[int64]*slotAgg),
			}
			venues[row.VenueID] = v
			order = append(order, row.VenueID)
		}

		if !row.SlotID.Valid {
			continue
		}
		sid := row.SlotID.Int64
		s, ok := v.slots[sid]
		if !ok {
			s = &slotAgg{
				view: TimeSlotView{
					ID:        strconv.FormatInt(sid, 10),
					StartTime: row.StartTime.String,
					EndTime:   row.EndTime.String,
					Days:      []string{},
				},
				seen: make(map[string]bool),
			}
			v.slots[sid] = s
			v.slotOrder = append(v.slotOrder, sid)
		}

		if row.Day.Valid && !s.seen[row.Day.String] {
			s.seen[row.Day.String] = true
			s.view.Days = append(s.view.Days, row.Day.String)
		}
	}

	out := make([]VenueView, 0, len(order))
	for _, id := range order {
		v := venues[id]
		v.view.TimeSlots = make([]TimeSlotView, 0, len(v.slotOrder))
		for _, sid := range v.slotOrder {
			v.view.TimeSlots = append(v.view.TimeSlots, v.slots[sid].view)
		}
		out = append(out, v.view)
	}
	return out
}
