package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/naiapps/pg-backend/internal/models"
	appErrors "github.com/naiapps/pg-backend/pkg/errors"
)

type feeRepository interface {
	List(ctx context.Context, filter models.FeeFilter) ([]models.Fee, error)
	FindByID(ctx context.Context, id string) (*models.Fee, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error)
	TotalPaidByStudent(ctx context.Context, studentID string) (float64, error)
	Create(ctx context.Context, fee *models.Fee) error
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id string) error
}

type studentFinder interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// CreateFeeRequest holds the typed payload for recording a payment.
type CreateFeeRequest struct {
	StudentID   string      `json:"studentId" validate:"required"`
	Amount      float64     `json:"amount" validate:"required,gte=1"`
	PaymentDate models.Date `json:"paymentDate" validate:"required"`
	Mode        string      `json:"mode" validate:"required"`
}

// UpdateFeeRequest patches a fee. Only supplied fields are overwritten;
// absent fields keep their prior values.
type UpdateFeeRequest struct {
	Amount      *float64     `json:"amount" validate:"omitempty,gte=1"`
	PaymentDate *models.Date `json:"paymentDate"`
	Mode        *string      `json:"mode" validate:"omitempty,min=1"`
	Status      *string      `json:"status" validate:"omitempty,min=1"`
}

// FeeService handles fee use-cases.
type FeeService struct {
	fees      feeRepository
	students  studentFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeeService constructs the fee service.
func NewFeeService(fees feeRepository, students studentFinder, validate *validator.Validate, logger *zap.Logger) *FeeService {
	if validate == nil {
		validate = newValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{fees: fees, students: students, validator: validate, logger: logger}
}

// List returns fees matching the optional filters.
func (s *FeeService) List(ctx context.Context, filter models.FeeFilter) ([]models.Fee, error) {
	fees, err := s.fees.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees")
	}
	return fees, nil
}

// Get returns a fee by id.
func (s *FeeService) Get(ctx context.Context, id string) (*models.Fee, error) {
	fee, err := s.fees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "fee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee")
	}
	return fee, nil
}

// Create records a payment for an existing student. New fees always start in
// PAID status.
func (s *FeeService) Create(ctx context.Context, req CreateFeeRequest) (*models.Fee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Error creating fee: invalid payload")
	}

	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Student not found with ID: %s", req.StudentID))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	fee := &models.Fee{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Status:      models.FeeStatusPaid,
		PaymentDate: req.PaymentDate,
		Mode:        req.Mode,
	}
	if err := s.fees.Create(ctx, fee); err != nil {
		s.logger.Error("fee create failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create fee")
	}
	return fee, nil
}

// Update applies a partial update to an existing fee.
func (s *FeeService) Update(ctx context.Context, id string, req UpdateFeeRequest) (*models.Fee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Error updating fee: invalid payload")
	}

	fee, err := s.fees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "fee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee")
	}

	if req.Amount != nil {
		fee.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		fee.PaymentDate = *req.PaymentDate
	}
	if req.Mode != nil {
		fee.Mode = *req.Mode
	}
	if req.Status != nil {
		fee.Status = *req.Status
	}

	if err := s.fees.Update(ctx, fee); err != nil {
		s.logger.Error("fee update failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update fee")
	}
	return fee, nil
}

// Delete removes a fee by id. Storage failures here surface their message in
// the response body, unlike other internal errors.
func (s *FeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.fees.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "fee not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load fee")
	}
	if err := s.fees.Delete(ctx, id); err != nil {
		s.logger.Error("fee delete failed", zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status,
			fmt.Sprintf("Error deleting fee: %v", err)).Exposed()
	}
	return nil
}

// ListByStudent returns a student's fees, most recent payment first.
func (s *FeeService) ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	fees, err := s.fees.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list fees by student")
	}
	return fees, nil
}

// TotalPaidByStudent sums a student's PAID fees; zero when none exist.
func (s *FeeService) TotalPaidByStudent(ctx context.Context, studentID string) (float64, error) {
	total, err := s.fees.TotalPaidByStudent(ctx, studentID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to total fees")
	}
	return total, nil
}
