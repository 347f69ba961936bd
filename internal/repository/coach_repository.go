package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Coach mirrors the 'coaches_details' table.
type Coach struct {
	CoachID      uint64
	CoachName    string
	PhoneNumbers sql.NullString
	Email        string
	Address      sql.NullString
	Players      int
	Salary       float64
	WeekSalary   float64
	Category     sql.NullString
	Active       bool
	Status       string
	Attendance   sql.NullString
}

// ErrCoachNotFound is returned when a coach lookup or update matches no row.
var ErrCoachNotFound = errors.New("coach not found")

type CoachRepo struct{ db *sql.DB }

func NewCoachRepo(db *sql.DB) *CoachRepo { return &CoachRepo{db: db} }

// Insert adds a coach and populates CoachID with the generated key.
func (r *CoachRepo) Insert(ctx context.Context, c *Coach) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO coaches_details
		 (coach_name, phone_numbers, email, address, players, salary, week_salary,
		  category, active, status, attendance)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		c.CoachName, c.PhoneNumbers, c.Email, c.Address, c.Players, c.Salary,
		c.WeekSalary, c.Category, c.Active, c.Status, c.Attendance)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.CoachID = uint64(id)
	return nil
}

// ListDetails returns the staff dashboard projection of all coaches.
func (r *CoachRepo) ListDetails(ctx context.Context) ([]*Coach, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT coach_id, players, coach_name, phone_numbers, salary, attendance,
		        week_salary, category, status
		 FROM coaches_details ORDER BY coach_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Coach
	for rows.Next() {
		c := new(Coach)
		if err := rows.Scan(&c.CoachID, &c.Players, &c.CoachName, &c.PhoneNumbers,
			&c.Salary, &c.Attendance, &c.WeekSalary, &c.Category, &c.Status); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CoachListEntry is the minimal projection the player-intake form binds its
// coach dropdown to.
type CoachListEntry struct {
	CoachID   uint64
	CoachName string
	Category  sql.NullString
}

// ListNames returns coach id/name/category pairs for selection lists.
func (r *CoachRepo) ListNames(ctx context.Context) ([]CoachListEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT coach_id, coach_name, category FROM coaches_details ORDER BY coach_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoachListEntry
	for rows.Next() {
		var e CoachListEntry
		if err := rows.Scan(&e.CoachID, &e.CoachName, &e.Category); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites the editable coach fields. Returns ErrCoachNotFound when
// the id matches no row.
func (r *CoachRepo) Update(ctx context.Context, c *Coach) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coaches_details SET
		   coach_name = ?, phone_numbers = ?, email = ?, address = ?,
		   salary = ?, week_salary = ?, active = ?, status = ?
		 WHERE coach_id = ?`,
		c.CoachName, c.PhoneNumbers, c.Email, c.Address, c.Salary, c.WeekSalary,
		c.Active, c.Status, c.CoachID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCoachNotFound
	}
	return nil
}

// Deactivate soft-deletes a coach and returns the updated name/status for
// the confirmation payload.
func (r *CoachRepo) Deactivate(ctx context.Context, coachID uint64) (*Coach, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coaches_details SET active = FALSE, status = 'Inactive' WHERE coach_id = ?`,
		coachID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrCoachNotFound
	}
	c := &Coach{CoachID: coachID}
	err = r.db.QueryRowContext(ctx,
		`SELECT coach_name, status FROM coaches_details WHERE coach_id = ?`,
		coachID).Scan(&c.CoachName, &c.Status)
	if err != nil {
		return nil, err
	}
	return c, nil
}
