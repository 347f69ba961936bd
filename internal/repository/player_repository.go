package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Player mirrors the 'player_details' table. The table carries two
// identifiers: id is the primary key, player_id a secondary registration
// number issued by the academy. Most personal fields are optional on intake
// and therefore nullable.
type Player struct {
	ID                     uint64
	PlayerID               uint64
	Name                   string
	Age                    sql.NullInt32
	Address                sql.NullString
	PhoneNo                sql.NullString
	CenterName             sql.NullString
	CoachName              sql.NullString
	CoachID                sql.NullInt64
	Category               sql.NullString
	Active                 bool
	Status                 sql.NullString
	FatherName             sql.NullString
	MotherName             sql.NullString
	Gender                 sql.NullString
	DateOfBirth            sql.NullString
	BloodGroup             sql.NullString
	EmailID                sql.NullString
	EmergencyContactNumber sql.NullString
	GuardianContactNumber  sql.NullString
	GuardianEmailID        sql.NullString
	MedicalCondition       sql.NullString
}

// ErrPlayerNotFound is returned when a player lookup or update matches no row.
var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepo struct{ db *sql.DB }

func NewPlayerRepo(db *sql.DB) *PlayerRepo { return &PlayerRepo{db: db} }

const playerColumns = `id, player_id, name, age, address, phone_no, center_name,
	coach_name, coach_id, category, active, status, father_name, mother_name,
	gender, date_of_birth, blood_group, email_id, emergency_contact_number,
	guardian_contact_number, guardian_email_id, medical_condition`

func scanPlayer(row interface{ Scan(...any) error }, p *Player) error {
	return row.Scan(&p.ID, &p.PlayerID, &p.Name, &p.Age, &p.Address, &p.PhoneNo,
		&p.CenterName, &p.CoachName, &p.CoachID, &p.Category, &p.Active, &p.Status,
		&p.FatherName, &p.MotherName, &p.Gender, &p.DateOfBirth, &p.BloodGroup,
		&p.EmailID, &p.EmergencyContactNumber, &p.GuardianContactNumber,
		&p.GuardianEmailID, &p.MedicalCondition)
}

// ListDetails returns all players ordered by id for the staff roster view.
func (r *PlayerRepo) ListDetails(ctx context.Context) ([]*Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+playerColumns+` FROM player_details ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Player
	for rows.Next() {
		p := new(Player)
		if err := scanPlayer(rows, p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert adds a new player. A duplicate email (MySQL error 1062 on the
// email_id unique index) surfaces as ErrConflict so the handler can answer
// 409 instead of a generic server error.
func (r *PlayerRepo) Insert(ctx context.Context, p *Player) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO player_details
		 (name, age, address, phone_no, center_name, coach_name, category, active, status,
		  father_name, mother_name, gender, date_of_birth, blood_group, email_id,
		  emergency_contact_number, guardian_contact_number, guardian_email_id, medical_condition)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.Name, p.Age, p.Address, p.PhoneNo, p.CenterName, p.CoachName, p.Category,
		p.Active, p.Status, p.FatherName, p.MotherName, p.Gender, p.DateOfBirth,
		p.BloodGroup, p.EmailID, p.EmergencyContactNumber, p.GuardianContactNumber,
		p.GuardianEmailID, p.MedicalCondition)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	// player_id mirrors the primary key until a separate registration
	// sequence is introduced.
	p.PlayerID = p.ID
	return nil
}

// GetByIDs fetches one player by both identifiers, used by the edit screen.
func (r *PlayerRepo) GetByIDs(ctx context.Context, id, playerID uint64) (*Player, error) {
	var p Player
	err := scanPlayer(r.db.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM player_details WHERE id = ? AND player_id = ?`,
		id, playerID), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateByPlayerID overwrites the editable fields of a player record.
// Returns ErrPlayerNotFound when no row matches.
func (r *PlayerRepo) UpdateByPlayerID(ctx context.Context, playerID uint64, p *Player) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE player_details SET
		   name = ?, age = ?, address = ?, phone_no = ?, center_name = ?, coach_name = ?,
		   category = ?, active = ?, status = ?, father_name = ?, mother_name = ?,
		   gender = ?, date_of_birth = ?, blood_group = ?, email_id = ?,
		   emergency_contact_number = ?, guardian_contact_number = ?,
		   guardian_email_id = ?, medical_condition = ?
		 WHERE player_id = ?`,
		p.Name, p.Age, p.Address, p.PhoneNo, p.CenterName, p.CoachName, p.Category,
		p.Active, p.Status, p.FatherName, p.MotherName, p.Gender, p.DateOfBirth,
		p.BloodGroup, p.EmailID, p.EmergencyContactNumber, p.GuardianContactNumber,
		p.GuardianEmailID, p.MedicalCondition, playerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Deactivate soft-deletes a player and returns its name for the
// confirmation message.
func (r *PlayerRepo) Deactivate(ctx context.Context, id uint64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT name FROM player_details WHERE id = ?`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrPlayerNotFound
		}
		return "", err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE player_details SET active = FALSE, status = 'Inactive' WHERE id = ?`, id)
	if err != nil {
		return "", err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", ErrPlayerNotFound
	}
	return name, nil
}

// AssignmentRow is the trimmed projection used by the coach-assignment screen.
type AssignmentRow struct {
	ID        uint64
	PlayerID  uint64
	Name      string
	Category  sql.NullString
	CoachName sql.NullString
	CoachID   sql.NullInt64
}

// ListForAssignment returns all players with just the columns the
// assignment screen binds to.
func (r *PlayerRepo) ListForAssignment(ctx context.Context) ([]AssignmentRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player_id, name, category, coach_name, coach_id
		 FROM player_details ORDER BY player_id, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AssignmentRow
	for rows.Next() {
		var a AssignmentRow
		if err := rows.Scan(&a.ID, &a.PlayerID, &a.Name, &a.Category, &a.CoachName, &a.CoachID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignCoach points a player at a coach. Both identifiers are required in
// the WHERE clause so a stale assignment screen cannot retarget the wrong row.
func (r *PlayerRepo) AssignCoach(ctx context.Context, coachName string, coachID, playerID, id uint64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE player_details SET coach_name = ?, coach_id = ?
		 WHERE player_id = ? AND id = ?`,
		coachName, coachID, playerID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}
