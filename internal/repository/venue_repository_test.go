package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newVenueRepoMock(t *testing.T) (*VenueRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewVenueRepo(db), mock
}

func TestCreateVenueCommitsFullGraph(t *testing.T) {
	repo, mock := newVenueRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venues_data").
		WithArgs("North", "Asha", "1 Main St", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO venuetime_slots").
		WithArgs(42, "16:00", "18:00").
		WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectExec("INSERT INTO venuetimeslot_days").
		WithArgs(100, "Monday").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO venuetimeslot_days").
		WithArgs(100, "Wednesday").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT INTO venuetime_slots").
		WithArgs(42, "09:00", "11:00").
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	id, inserted, err := repo.CreateVenue(context.Background(), "North", "Asha", "1 Main St", "",
		[]TimeSlotInput{
			{StartTime: "16:00", EndTime: "18:00", Days: []string{"monday", "wednesday"}},
			{StartTime: "09:00", EndTime: "11:00"},
		})
	if err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}
	if id != 42 {
		t.Errorf("venue id = %d, want 42", id)
	}
	if inserted != 2 {
		t.Errorf("slots inserted = %d, want 2", inserted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateVenueRollsBackOnSlotFailure(t *testing.T) {
	repo, mock := newVenueRepoMock(t)
	boom := errors.New("slot insert failed")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO venues_data").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("INSERT INTO venuetime_slots").
		WillReturnResult(sqlmock.NewResult(100, 1))
	mock.ExpectExec("INSERT INTO venuetimeslot_days").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// second slot fails mid-transaction
	mock.ExpectExec("INSERT INTO venuetime_slots").
		WillReturnError(boom)
	mock.ExpectRollback()

	_, _, err := repo.CreateVenue(context.Background(), "North", "Asha", "1 Main St", "",
		[]TimeSlotInput{
			{StartTime: "16:00", EndTime: "18:00", Days: []string{"monday"}},
			{StartTime: "09:00", EndTime: "11:00"},
		})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the slot error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateVenueValidationRunsBeforeTransaction(t *testing.T) {
	repo, mock := newVenueRepoMock(t)
	// no expectations: nothing may reach the database

	_, _, err := repo.CreateVenue(context.Background(), "North", "Asha", "1 Main St", "",
		[]TimeSlotInput{{StartTime: "18:00", EndTime: "16:00"}})
	if _, ok := AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("database was touched: %v", err)
	}
}

func TestDeactivateVenueCascadesByOwnership(t *testing.T) {
	repo, mock := newVenueRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE venuetimeslot_days").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("UPDATE venuetime_slots").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE venues_data").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeactivateVenue(context.Background(), 7); err != nil {
		t.Fatalf("DeactivateVenue: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeactivateVenueUnknownIDRollsBack(t *testing.T) {
	repo, mock := newVenueRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE venuetimeslot_days").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE venuetime_slots").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE venues_data").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeactivateVenue(context.Background(), 999)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListActiveRowsScansNullableColumns(t *testing.T) {
	repo, mock := newVenueRepoMock(t)

	cols := []string{"id", "name", "center_head", "address", "google_url",
		"slot_id", "start_time", "end_time", "day"}
	mock.ExpectQuery("SELECT (.+) FROM venues_data v").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "North", "Asha", "1 Main St", "https://maps.example/north",
				10, "16:00:00", "18:00:00", "Monday").
			AddRow(2, "Empty", "Ben", "2 Side St", nil, nil, nil, nil, nil))

	rows, err := repo.ListActiveRows(context.Background())
	if err != nil {
		t.Fatalf("ListActiveRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].SlotID.Valid || rows[0].SlotID.Int64 != 10 {
		t.Errorf("row 0 slot id: %+v", rows[0].SlotID)
	}
	if rows[1].SlotID.Valid || rows[1].GoogleURL.Valid || rows[1].Day.Valid {
		t.Errorf("row 1 should carry NULLs: %+v", rows[1])
	}
}
