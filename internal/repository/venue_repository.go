// Package repository contains data access logic separated from HTTP handlers.
// This file defines the venue models and the VenueRepo, which owns the two
// multi-statement write paths of the system (venue creation and venue
// deactivation) as well as the flat read feeding the aggregated venue view.
// A Venue owns its time slots exclusively; each time slot owns its slot days.
// Rows are never physically removed: deactivation flips the active flag so
// attendance history keeps valid references.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
)

// Venue represents one physical training location persisted in venues_data.
type Venue struct {
	ID         uint64         // ID is the auto-generated primary key
	Name       string         // Name is the human-friendly venue name
	CenterHead string         // CenterHead is the person responsible for the venue
	Address    string         // Address is the street address
	GoogleURL  sql.NullString // GoogleURL is an optional map link; nullable
	Active     bool           // Active is the soft-delete flag, true on creation
	UpdatedAt  string         // UpdatedAt stores the last modification timestamp
}

// TimeSlotInput carries one requested recurring window for CreateVenue.
// Days holds canonical weekday names; it may be empty (a window with no
// recurrence is allowed, see NormalizeSlots).
type TimeSlotInput struct {
	StartTime string
	EndTime   string
	Days      []string
}

// VenueDetailRow is one row of the venues left join, decoded once at the
// store boundary. The slot and day columns are nullable because a venue may
// have no slots and a slot may have no days; the join then fans out NULLs.
type VenueDetailRow struct {
	VenueID    uint64
	VenueName  string
	CenterHead string
	Address    string
	GoogleURL  sql.NullString
	SlotID     sql.NullInt64
	StartTime  sql.NullString
	EndTime    sql.NullString
	Day        sql.NullString
}

// ErrVenueNotFound is returned when a venue lookup or deactivation matches
// no row.
var ErrVenueNotFound = errors.New("venue not found")

// VenueRepo encapsulates all database queries related to venues, their time
// slots and slot days. It depends on an injected *sql.DB handle.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// ListActiveRows runs the left join over venues, time slots and slot days
// for active venues and returns the flat result. The ORDER BY clause is a
// required precondition of the aggregation step: rows for one venue must be
// contiguous, and rows for one slot contiguous within its venue. The
// aggregation does not sort on its own.
func (r *VenueRepo) ListActiveRows(ctx context.Context) ([]VenueDetailRow, error) {
	const q = `SELECT v.id, v.name, v.center_head, v.address, v.google_url,
	                  ts.id, ts.start_time, ts.end_time, d.day
	           FROM venues_data v
	           LEFT JOIN venuetime_slots ts ON ts.venue_id = v.id
	           LEFT JOIN venuetimeslot_days d ON d.time_slot_id = ts.id
	           WHERE v.active = TRUE
	           ORDER BY v.id, ts.id, d.day`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []VenueDetailRow
	for rows.Next() {
		var row VenueDetailRow
		if err := rows.Scan(&row.VenueID, &row.VenueName, &row.CenterHead, &row.Address,
			&row.GoogleURL, &row.SlotID, &row.StartTime, &row.EndTime, &row.Day); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateVenue inserts a venue together with its time slots and slot days as
// a single transaction. Input is validated and normalized before the
// transaction begins; a *ValidationError means nothing was written. On any
// statement failure the whole graph is rolled back, so readers never observe
// a venue with a partial slot/day set. It returns the generated venue id and
// the number of time slots inserted.
func (r *VenueRepo) CreateVenue(ctx context.Context, name, centerHead, address, googleURL string, slots []TimeSlotInput) (venueID uint64, slotsInserted int, err error) {
	slots, err = NormalizeSlots(name, centerHead, address, slots)
	if err != nil {
		return 0, 0, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	mapRef := sql.NullString{String: googleURL, Valid: googleURL != ""}
	res, execErr := tx.ExecContext(ctx,
		`INSERT INTO venues_data (name, center_head, address, google_url, active)
		 VALUES (?, ?, ?, ?, TRUE)`,
		name, centerHead, address, mapRef)
	if execErr != nil {
		err = execErr
		return 0, 0, err
	}
	id, idErr := res.LastInsertId()
	if idErr != nil {
		err = idErr
		return 0, 0, err
	}
	venueID = uint64(id)

	for _, slot := range slots {
		res, execErr := tx.ExecContext(ctx,
			`INSERT INTO venuetime_slots (venue_id, start_time, end_time, active)
			 VALUES (?, ?, ?, TRUE)`,
			venueID, slot.StartTime, slot.EndTime)
		if execErr != nil {
			err = execErr
			return 0, 0, err
		}
		slotID, idErr := res.LastInsertId()
		if idErr != nil {
			err = idErr
			return 0, 0, err
		}
		for _, day := range slot.Days {
			if _, execErr := tx.ExecContext(ctx,
				`INSERT INTO venuetimeslot_days (time_slot_id, day, active)
				 VALUES (?, ?, TRUE)`,
				slotID, day); execErr != nil {
				err = execErr
				return 0, 0, err
			}
		}
		slotsInserted++
	}
	return venueID, slotsInserted, nil
}

// DeactivateVenue soft-deletes a venue and everything it owns inside one
// transaction: slot days whose owning time slot belongs to the venue, then
// the venue's time slots, then the venue row itself. Child rows are matched
// through their ownership columns, not their own primary keys. If the final
// venue update affects zero rows the venue does not exist and the whole
// transaction is rolled back, leaving the child tables untouched.
func (r *VenueRepo) DeactivateVenue(ctx context.Context, venueID uint64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`UPDATE venuetimeslot_days d
		 JOIN venuetime_slots ts ON ts.id = d.time_slot_id
		 SET d.active = FALSE, d.updated_at = CURRENT_TIMESTAMP
		 WHERE ts.venue_id = ?`, venueID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE venuetime_slots
		 SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		 WHERE venue_id = ?`, venueID); err != nil {
		return err
	}

	res, execErr := tx.ExecContext(ctx,
		`UPDATE venues_data
		 SET active = FALSE, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`, venueID)
	if execErr != nil {
		err = execErr
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrVenueNotFound
		return err
	}
	return nil
}
