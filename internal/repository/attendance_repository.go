package repository

import (
	"context"
	"database/sql"
	"time"
)

// AttendanceEntry mirrors one row of 'attendance_sheet'.
type AttendanceEntry struct {
	AttendanceID uint64
	PlayerID     uint64
	Date         string
	IsPresent    bool
	CoachID      uint64
}

type AttendanceRepo struct{ db *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{db: db} }

// Insert records one attendance mark and fills in the generated id.
func (r *AttendanceRepo) Insert(ctx context.Context, e *AttendanceEntry) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance_sheet (player_id, attendance_date, is_present, recorded_by_coach_id)
		 VALUES (?,?,?,?)`,
		e.PlayerID, e.Date, e.IsPresent, e.CoachID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.AttendanceID = uint64(id)
	return nil
}

// RosterRow is one assigned player with their attendance percentage, as
// shown on the coach dashboard. Percentage is NULL until the player has at
// least one attendance mark.
type RosterRow struct {
	PlayerID   uint64
	Name       string
	Age        sql.NullInt32
	Category   sql.NullString
	Status     sql.NullString
	Percentage sql.NullFloat64
}

// CoachRoster returns the active players assigned to the given coach user
// with their attendance percentage computed over the full sheet.
func (r *AttendanceRepo) CoachRoster(ctx context.Context, coachUserID uint64) ([]RosterRow, error) {
	const q = `SELECT p.player_id, p.name, p.age, p.category, p.status,
	                  ROUND(SUM(CASE WHEN a.is_present THEN 1 ELSE 0 END) * 100.0
	                        / NULLIF(COUNT(a.attendance_id), 0), 2)
	           FROM player_details p
	           LEFT JOIN attendance_sheet a ON p.player_id = a.player_id
	           INNER JOIN users_login u ON p.coach_id = u.id
	           WHERE u.id = ? AND u.role = 'coach' AND p.active = TRUE
	           GROUP BY p.player_id, p.name, p.age, p.category, p.status
	           ORDER BY p.name`
	rows, err := r.db.QueryContext(ctx, q, coachUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RosterRow
	for rows.Next() {
		var row RosterRow
		if err := rows.Scan(&row.PlayerID, &row.Name, &row.Age, &row.Category,
			&row.Status, &row.Percentage); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GuardianPlayerRow is one child of a guardian account with aggregate
// attendance, as shown on the parent dashboard.
type GuardianPlayerRow struct {
	PlayerID   uint64
	Name       string
	Age        sql.NullInt32
	Center     sql.NullString
	Coach      sql.NullString
	Position   sql.NullString
	PhoneNo    sql.NullString
	Email      sql.NullString
	Percentage float64
}

// PlayersByGuardianEmail matches players to a parent login through the
// guardian email column. The comparison is case-insensitive and
// whitespace-safe because both values are entered by hand on different
// screens.
func (r *AttendanceRepo) PlayersByGuardianEmail(ctx context.Context, email string) ([]GuardianPlayerRow, error) {
	const q = `SELECT pd.player_id, pd.name, pd.age, pd.center_name, pd.coach_name,
	                  pd.category, pd.phone_no, pd.email_id,
	                  COALESCE(SUM(CASE WHEN a.is_present THEN 1 ELSE 0 END) * 100.0
	                           / NULLIF(COUNT(a.attendance_id), 0), 0)
	           FROM player_details pd
	           LEFT JOIN attendance_sheet a ON pd.player_id = a.player_id
	           INNER JOIN users_login ul ON ul.email = pd.guardian_email_id
	           WHERE LOWER(TRIM(ul.email)) = LOWER(TRIM(?)) AND ul.role = 'parent'
	           GROUP BY pd.player_id, pd.name, pd.age, pd.center_name, pd.coach_name,
	                    pd.category, pd.phone_no, pd.email_id`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GuardianPlayerRow
	for rows.Next() {
		var row GuardianPlayerRow
		if err := rows.Scan(&row.PlayerID, &row.Name, &row.Age, &row.Center, &row.Coach,
			&row.Position, &row.PhoneNo, &row.Email, &row.Percentage); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentMarks returns the latest attendance marks for one player, newest
// first, for the parent dashboard's activity feed.
func (r *AttendanceRepo) RecentMarks(ctx context.Context, playerID uint64, limit int) ([]AttendanceEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT attendance_id, player_id, attendance_date, is_present, recorded_by_coach_id
		 FROM attendance_sheet WHERE player_id = ?
		 ORDER BY attendance_date DESC LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AttendanceEntry
	for rows.Next() {
		var e AttendanceEntry
		var date time.Time
		if err := rows.Scan(&e.AttendanceID, &e.PlayerID, &date, &e.IsPresent, &e.CoachID); err != nil {
			return nil, err
		}
		e.Date = date.Format("2006-01-02")
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
