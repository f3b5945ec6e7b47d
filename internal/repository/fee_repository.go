package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/naiapps/pg-backend/internal/models"
)

const feeColumns = "id, student_id, amount, status, payment_date, mode, created_at, updated_at"

// FeeRepository manages persistence for fee payments.
type FeeRepository struct {
	db *sqlx.DB
}

// NewFeeRepository constructs a FeeRepository.
func NewFeeRepository(db *sqlx.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// List returns fees matching the provided filters, newest first.
func (r *FeeRepository) List(ctx context.Context, filter models.FeeFilter) ([]models.Fee, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("mode = $%d", len(args)+1))
		args = append(args, filter.Mode)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("payment_date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("payment_date <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf("SELECT %s FROM fees WHERE %s ORDER BY created_at DESC",
		feeColumns, strings.Join(conditions, " AND "))

	fees := []models.Fee{}
	if err := r.db.SelectContext(ctx, &fees, query, args...); err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	return fees, nil
}

// FindByID fetches a fee by ID.
func (r *FeeRepository) FindByID(ctx context.Context, id string) (*models.Fee, error) {
	query := fmt.Sprintf("SELECT %s FROM fees WHERE id = $1", feeColumns)
	var fee models.Fee
	if err := r.db.GetContext(ctx, &fee, query, id); err != nil {
		return nil, err
	}
	return &fee, nil
}

// ListByStudent returns a student's fees ordered by payment date descending.
// The query reads the foreign-key column directly; no student row is joined.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	query := fmt.Sprintf("SELECT %s FROM fees WHERE student_id = $1 ORDER BY payment_date DESC", feeColumns)
	fees := []models.Fee{}
	if err := r.db.SelectContext(ctx, &fees, query, studentID); err != nil {
		return nil, fmt.Errorf("list fees by student: %w", err)
	}
	return fees, nil
}

// TotalPaidByStudent sums the amounts of a student's PAID fees. A student
// with no matching rows yields 0, not NULL.
func (r *FeeRepository) TotalPaidByStudent(ctx context.Context, studentID string) (float64, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM fees WHERE student_id = $1 AND status = $2`
	var total float64
	if err := r.db.GetContext(ctx, &total, query, studentID, models.FeeStatusPaid); err != nil {
		return 0, fmt.Errorf("total paid by student: %w", err)
	}
	return total, nil
}

// Create inserts a new fee record.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	if fee.ID == "" {
		fee.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if fee.CreatedAt.IsZero() {
		fee.CreatedAt = now
	}
	fee.UpdatedAt = now
	const query = `INSERT INTO fees (id, student_id, amount, status, payment_date, mode, created_at, updated_at)
        VALUES (:id, :student_id, :amount, :status, :payment_date, :mode, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, fee); err != nil {
		return fmt.Errorf("create fee: %w", err)
	}
	return nil
}

// Update persists the full fee row; field merging happens in the service.
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	fee.UpdatedAt = time.Now().UTC()
	const query = `UPDATE fees SET amount = :amount, status = :status, payment_date = :payment_date, mode = :mode, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, fee); err != nil {
		return fmt.Errorf("update fee: %w", err)
	}
	return nil
}

// Delete removes a fee independent of its student.
func (r *FeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM fees WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete fee: %w", err)
	}
	return nil
}
