package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/naiapps/pg-backend/internal/models"
)

// Duplicate-key sentinels surfaced when the database unique constraints fire.
// The pre-write existence checks catch most duplicates first; these close the
// race between check and insert.
var (
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrDuplicateRoomNo = errors.New("room number already assigned")
)

const (
	emailConstraint  = "students_email_key"
	roomNoConstraint = "students_room_no_key"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns all students, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, name, email, phone, room_no, created_at, updated_at
        FROM students ORDER BY created_at DESC`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	const query = `SELECT id, name, email, phone, room_no, created_at, updated_at
        FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByEmail fetches the student holding the given email, if any.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	const query = `SELECT id, name, email, phone, room_no, created_at, updated_at
        FROM students WHERE email = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, email); err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByRoomNo fetches the student assigned to the given room, if any.
func (r *StudentRepository) FindByRoomNo(ctx context.Context, roomNo string) (*models.Student, error) {
	const query = `SELECT id, name, email, phone, room_no, created_at, updated_at
        FROM students WHERE room_no = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, roomNo); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByEmail checks if a student with the given email exists, optionally
// excluding an ID.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM students WHERE email = $1"
	args := []interface{}{email}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check email: %w", err)
	}
	return true, nil
}

// ExistsByRoomNo checks if a student occupies the given room, optionally
// excluding an ID.
func (r *StudentRepository) ExistsByRoomNo(ctx context.Context, roomNo string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM students WHERE room_no = $1"
	args := []interface{}{roomNo}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check room number: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	const query = `INSERT INTO students (id, name, email, phone, room_no, created_at, updated_at)
        VALUES (:id, :name, :email, :phone, :room_no, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if dup := duplicateStudentError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const query = `UPDATE students SET name = :name, email = :email, phone = :phone, room_no = :room_no, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if dup := duplicateStudentError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student; associated fees go with it via ON DELETE CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM students WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// duplicateStudentError maps a unique-constraint violation to the matching
// sentinel, or nil when the error is something else.
func duplicateStudentError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case emailConstraint:
		return ErrDuplicateEmail
	case roomNoConstraint:
		return ErrDuplicateRoomNo
	}
	return nil
}
