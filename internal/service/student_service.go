package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/naiapps/pg-backend/internal/models"
	"github.com/naiapps/pg-backend/internal/repository"
	appErrors "github.com/naiapps/pg-backend/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindByRoomNo(ctx context.Context, roomNo string) (*models.Student, error)
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
	ExistsByRoomNo(ctx context.Context, roomNo string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// Duplicate messages mirror the field errors the frontend displays.
const (
	msgEmailTaken  = "Email already exists"
	msgRoomNoTaken = "Room number already assigned"
)

// CreateStudentRequest holds payload for registering students.
type CreateStudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	RoomNo string `json:"roomNo" validate:"required"`
}

// UpdateStudentRequest holds payload for updating students. Updates replace
// all four mutable fields regardless of which ones logically changed.
type UpdateStudentRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	RoomNo string `json:"roomNo" validate:"required"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = newValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student after field validation and uniqueness checks.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WithFields(validationFields(err))
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
	}
	if taken {
		return nil, appErrors.WithFields(map[string]string{"email": msgEmailTaken})
	}

	taken, err = s.repo.ExistsByRoomNo(ctx, req.RoomNo, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate room number")
	}
	if taken {
		return nil, appErrors.WithFields(map[string]string{"roomNo": msgRoomNoTaken})
	}

	student := &models.Student{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		RoomNo: req.RoomNo,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, s.studentWriteError(err, "failed to create student")
	}
	return student, nil
}

// Update overwrites a student's mutable fields. Uniqueness is re-checked only
// when the email or room number actually changes.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.WithFields(validationFields(err))
	}

	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	if req.Email != student.Email {
		taken, err := s.repo.ExistsByEmail(ctx, req.Email, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate email")
		}
		if taken {
			return nil, appErrors.WithFields(map[string]string{"email": msgEmailTaken})
		}
	}
	if req.RoomNo != student.RoomNo {
		taken, err := s.repo.ExistsByRoomNo(ctx, req.RoomNo, id)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate room number")
		}
		if taken {
			return nil, appErrors.WithFields(map[string]string{"roomNo": msgRoomNoTaken})
		}
	}

	student.Name = req.Name
	student.Email = req.Email
	student.Phone = req.Phone
	student.RoomNo = req.RoomNo
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, s.studentWriteError(err, "failed to update student")
	}
	return student, nil
}

// Delete removes a student by id.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}

// Search finds students by exact email or room number. Email wins when both
// filters are supplied; with neither, all students are returned.
func (s *StudentService) Search(ctx context.Context, email, roomNo string) ([]models.Student, error) {
	switch {
	case email != "":
		return s.searchOne(ctx, func(ctx context.Context) (*models.Student, error) {
			return s.repo.FindByEmail(ctx, email)
		})
	case roomNo != "":
		return s.searchOne(ctx, func(ctx context.Context) (*models.Student, error) {
			return s.repo.FindByRoomNo(ctx, roomNo)
		})
	default:
		return s.List(ctx)
	}
}

func (s *StudentService) searchOne(ctx context.Context, find func(context.Context) (*models.Student, error)) ([]models.Student, error) {
	student, err := find(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Student{}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
	}
	return []models.Student{*student}, nil
}

// studentWriteError converts constraint-race duplicates into the same field
// errors the pre-checks produce; anything else becomes an internal error.
func (s *StudentService) studentWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return appErrors.WithFields(map[string]string{"email": msgEmailTaken})
	case errors.Is(err, repository.ErrDuplicateRoomNo):
		return appErrors.WithFields(map[string]string{"roomNo": msgRoomNoTaken})
	default:
		s.logger.Error("student write failed", zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
	}
}
