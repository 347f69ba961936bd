package repository

import (
	"reflect"
	"strings"
	"testing"
)

func slot(start, end string, days ...string) TimeSlotInput {
	return TimeSlotInput{StartTime: start, EndTime: end, Days: days}
}

func TestNormalizeSlotsAcceptsValidInput(t *testing.T) {
	out, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{
		slot("16:00", "18:00", "monday", "WEDNESDAY"),
		slot("09:00:00", "11:00:00", " friday "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(out))
	}
	if !reflect.DeepEqual(out[0].Days, []string{"Monday", "Wednesday"}) {
		t.Errorf("days not canonicalized: %v", out[0].Days)
	}
	if !reflect.DeepEqual(out[1].Days, []string{"Friday"}) {
		t.Errorf("days not trimmed: %v", out[1].Days)
	}
}

func TestNormalizeSlotsRejectsMissingVenueFields(t *testing.T) {
	cases := []struct {
		name, head, addr string
	}{
		{"", "Asha", "1 Main St"},
		{"North", "  ", "1 Main St"},
		{"North", "Asha", ""},
	}
	for _, c := range cases {
		_, err := NormalizeSlots(c.name, c.head, c.addr, []TimeSlotInput{slot("16:00", "18:00")})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("(%q,%q,%q): expected validation error, got %v", c.name, c.head, c.addr, err)
		}
	}
}

func TestNormalizeSlotsRejectsEmptySlotList(t *testing.T) {
	_, err := NormalizeSlots("North", "Asha", "1 Main St", nil)
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeSlotsRejectsUnorderedTimes(t *testing.T) {
	for _, s := range []TimeSlotInput{
		slot("18:00", "16:00", "monday"), // reversed
		slot("16:00", "16:00", "monday"), // equal
	} {
		_, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{s})
		ve, ok := AsValidation(err)
		if !ok {
			t.Fatalf("%v: expected validation error, got %v", s, err)
		}
		if !strings.Contains(ve.Msg, "start time must precede end time") {
			t.Errorf("unexpected message: %q", ve.Msg)
		}
	}
}

func TestNormalizeSlotsRejectsUnparseableTime(t *testing.T) {
	_, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{slot("4pm", "18:00")})
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNormalizeSlotsRejectsUnknownDay(t *testing.T) {
	_, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{slot("16:00", "18:00", "Funday")})
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(ve.Msg, "Funday") {
		t.Errorf("message should name the bad day: %q", ve.Msg)
	}
}

func TestNormalizeSlotsCollapsesDuplicateDays(t *testing.T) {
	out, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{
		slot("16:00", "18:00", "monday", "Monday", "MONDAY"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out[0].Days, []string{"Monday"}) {
		t.Fatalf("duplicates not collapsed: %v", out[0].Days)
	}
}

func TestNormalizeSlotsAllowsDaylessSlot(t *testing.T) {
	out, err := NormalizeSlots("North", "Asha", "1 Main St", []TimeSlotInput{slot("16:00", "18:00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out[0].Days) != 0 {
		t.Fatalf("expected no days, got %v", out[0].Days)
	}
}
