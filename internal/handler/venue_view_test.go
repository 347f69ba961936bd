package handler

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/academyhq/academy-admin/internal/repository"
)

func ns(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func ni(n int64) sql.NullInt64   { return sql.NullInt64{Int64: n, Valid: true} }

func row(venueID uint64, name string, slotID sql.NullInt64, start, end, day sql.NullString) repository.VenueDetailRow {
	return repository.VenueDetailRow{
		VenueID:    venueID,
		VenueName:  name,
		CenterHead: "Head " + name,
		Address:    "Addr " + name,
		SlotID:     slotID,
		StartTime:  start,
		EndTime:    end,
		Day:        day,
	}
}

func TestBuildVenueViewsFoldsDaysIntoSlots(t *testing.T) {
	rows := []repository.VenueDetailRow{
		row(1, "North", ni(10), ns("16:00:00"), ns("18:00:00"), ns("Monday")),
		row(1, "North", ni(10), ns("16:00:00"), ns("18:00:00"), ns("Wednesday")),
		row(1, "North", ni(11), ns("09:00:00"), ns("11:00:00"), ns("Saturday")),
		row(2, "South", ni(20), ns("17:00:00"), ns("19:00:00"), ns("Friday")),
	}

	views := BuildVenueViews(rows)
	if len(views) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(views))
	}

	north := views[0]
	if north.ID != "1" || north.Name != "North" {
		t.Fatalf("unexpected first venue: %+v", north)
	}
	if len(north.TimeSlots) != 2 {
		t.Fatalf("expected 2 slots for North, got %d", len(north.TimeSlots))
	}
	if got := north.TimeSlots[0].Days; !reflect.DeepEqual(got, []string{"Monday", "Wednesday"}) {
		t.Errorf("slot 10 days = %v", got)
	}
	if got := north.TimeSlots[1].Days; !reflect.DeepEqual(got, []string{"Saturday"}) {
		t.Errorf("slot 11 days = %v", got)
	}

	south := views[1]
	if south.ID != "2" || len(south.TimeSlots) != 1 {
		t.Fatalf("unexpected second venue: %+v", south)
	}
}

func TestBuildVenueViewsKeepsFirstAppearanceOrder(t *testing.T) {
	rows := []repository.VenueDetailRow{
		row(5, "Charlie", ni(52), ns("10:00"), ns("12:00"), ns("Sunday")),
		row(5, "Charlie", ni(50), ns("08:00"), ns("09:00"), ns("Monday")),
		row(3, "Alpha", ni(30), ns("14:00"), ns("15:00"), ns("Tuesday")),
	}

	views := BuildVenueViews(rows)
	if len(views) != 2 || views[0].ID != "5" || views[1].ID != "3" {
		t.Fatalf("venue order not preserved: %+v", views)
	}
	slots := views[0].TimeSlots
	if len(slots) != 2 || slots[0].ID != "52" || slots[1].ID != "50" {
		t.Fatalf("slot order not preserved: %+v", slots)
	}
}

func TestBuildVenueViewsVenueWithoutSlots(t *testing.T) {
	rows := []repository.VenueDetailRow{
		row(7, "Empty", sql.NullInt64{}, sql.NullString{}, sql.NullString{}, sql.NullString{}),
	}

	views := BuildVenueViews(rows)
	if len(views) != 1 {
		t.Fatalf("expected 1 venue, got %d", len(views))
	}
	if views[0].TimeSlots == nil || len(views[0].TimeSlots) != 0 {
		t.Fatalf("expected empty, non-nil slot list, got %#v", views[0].TimeSlots)
	}
}

func TestBuildVenueViewsSlotWithoutDays(t *testing.T) {
	rows := []repository.VenueDetailRow{
		row(1, "North", ni(10), ns("16:00"), ns("18:00"), sql.NullString{}),
	}

	views := BuildVenueViews(rows)
	slot := views[0].TimeSlots[0]
	if slot.Days == nil || len(slot.Days) != 0 {
		t.Fatalf("expected empty, non-nil day list, got %#v", slot.Days)
	}
}

func TestBuildVenueViewsDropsDuplicateDayRows(t *testing.T) {
	rows := []repository.VenueDetailRow{
		row(1, "North", ni(10), ns("16:00"), ns("18:00"), ns("Monday")),
		row(1, "North", ni(10), ns("16:00"), ns("18:00"), ns("Monday")),
	}

	views := BuildVenueViews(rows)
	if got := views[0].TimeSlots[0].Days; !reflect.DeepEqual(got, []string{"Monday"}) {
		t.Fatalf("duplicate day not collapsed: %v", got)
	}
}

func TestBuildVenueViewsEmptyInput(t *testing.T) {
	if views := BuildVenueViews(nil); len(views) != 0 {
		t.Fatalf("expected no views, got %+v", views)
	}
}
