package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/naiapps/pg-backend/internal/models"
	"github.com/naiapps/pg-backend/internal/repository"
	appErrors "github.com/naiapps/pg-backend/pkg/errors"
)

type mockStudentRepo struct {
	students         map[string]models.Student
	emailOwners      map[string]string
	roomOwners       map[string]string
	emailChecks      int
	roomChecks       int
	deleted          []string
	createErr        error
	updateErr        error
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.students[id]; ok {
		return &s, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	if id, ok := m.emailOwners[email]; ok {
		if s, ok := m.students[id]; ok {
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) FindByRoomNo(ctx context.Context, roomNo string) (*models.Student, error) {
	if id, ok := m.roomOwners[roomNo]; ok {
		if s, ok := m.students[id]; ok {
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	m.emailChecks++
	if id, ok := m.emailOwners[email]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) ExistsByRoomNo(ctx context.Context, roomNo string, excludeID string) (bool, error) {
	m.roomChecks++
	if id, ok := m.roomOwners[roomNo]; ok {
		if excludeID == "" || id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.students == nil {
		m.students = make(map[string]models.Student)
	}
	if student.ID == "" {
		student.ID = "generated"
	}
	m.students[student.ID] = *student
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.students[student.ID] = *student
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.students, id)
	return nil
}

func newStudentRepoMock() *mockStudentRepo {
	return &mockStudentRepo{
		students:    make(map[string]models.Student),
		emailOwners: make(map[string]string),
		roomOwners:  make(map[string]string),
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	return appErr.Fields
}

func TestStudentServiceCreate(t *testing.T) {
	repo := newStudentRepoMock()
	svc := NewStudentService(repo, nil, zap.NewNop())

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		Name:   "Asha",
		Email:  "asha@x.com",
		Phone:  "111",
		RoomNo: "101",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.Len(t, repo.students, 1)
}

func TestStudentServiceCreateMissingFields(t *testing.T) {
	repo := newStudentRepoMock()
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{Email: "not-an-email"})
	require.Error(t, err)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "roomNo")
	assert.Zero(t, repo.emailChecks, "validation failures must not reach the store")
}

func TestStudentServiceCreateDuplicateEmail(t *testing.T) {
	repo := newStudentRepoMock()
	repo.emailOwners["asha@x.com"] = "other"
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101",
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"email": "Email already exists"}, fieldsOf(t, err))
	assert.Empty(t, repo.students)
}

func TestStudentServiceCreateDuplicateRoomNo(t *testing.T) {
	repo := newStudentRepoMock()
	repo.roomOwners["101"] = "other"
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101",
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"roomNo": "Room number already assigned"}, fieldsOf(t, err))
}

func TestStudentServiceCreateConstraintRace(t *testing.T) {
	repo := newStudentRepoMock()
	repo.createErr = repository.ErrDuplicateEmail
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateStudentRequest{
		Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101",
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"email": "Email already exists"}, fieldsOf(t, err))
}

func TestStudentServiceUpdateOverwritesAllFields(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1", Name: "Old", Email: "old@x.com", Phone: "111", RoomNo: "101"}
	svc := NewStudentService(repo, nil, zap.NewNop())

	updated, err := svc.Update(context.Background(), "s1", UpdateStudentRequest{
		Name: "New", Email: "new@x.com", Phone: "222", RoomNo: "102",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, "102", updated.RoomNo)
	assert.Equal(t, *updated, repo.students["s1"])
}

func TestStudentServiceUpdateSameEmailSkipsDuplicateCheck(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1", Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101"}
	repo.emailOwners["asha@x.com"] = "s1"
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), "s1", UpdateStudentRequest{
		Name: "Asha Renamed", Email: "asha@x.com", Phone: "111", RoomNo: "101",
	})
	require.NoError(t, err)
	assert.Zero(t, repo.emailChecks)
	assert.Zero(t, repo.roomChecks)
}

func TestStudentServiceUpdateDuplicateEmail(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1", Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101"}
	repo.emailOwners["ben@x.com"] = "s2"
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), "s1", UpdateStudentRequest{
		Name: "Asha", Email: "ben@x.com", Phone: "111", RoomNo: "101",
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"email": "Email already exists"}, fieldsOf(t, err))
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	repo := newStudentRepoMock()
	svc := NewStudentService(repo, nil, zap.NewNop())

	_, err := svc.Update(context.Background(), "ghost", UpdateStudentRequest{
		Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101",
	})
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestStudentServiceDeleteNotFound(t *testing.T) {
	repo := newStudentRepoMock()
	svc := NewStudentService(repo, nil, zap.NewNop())

	err := svc.Delete(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
	assert.Empty(t, repo.deleted)
}

func TestStudentServiceDelete(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1", Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101"}
	svc := NewStudentService(repo, nil, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "s1"))
	assert.Contains(t, repo.deleted, "s1")
}

func TestStudentServiceSearchEmailWinsOverRoomNo(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1", Name: "Asha", Email: "asha@x.com", Phone: "111", RoomNo: "101"}
	repo.students["s2"] = models.Student{ID: "s2", Name: "Ben", Email: "ben@x.com", Phone: "222", RoomNo: "102"}
	repo.emailOwners["asha@x.com"] = "s1"
	repo.roomOwners["102"] = "s2"
	svc := NewStudentService(repo, nil, zap.NewNop())

	students, err := svc.Search(context.Background(), "asha@x.com", "102")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)
}

func TestStudentServiceSearchUnknownEmailReturnsEmptyList(t *testing.T) {
	repo := newStudentRepoMock()
	svc := NewStudentService(repo, nil, zap.NewNop())

	students, err := svc.Search(context.Background(), "ghost@x.com", "")
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentServiceSearchNoFiltersListsAll(t *testing.T) {
	repo := newStudentRepoMock()
	repo.students["s1"] = models.Student{ID: "s1"}
	repo.students["s2"] = models.Student{ID: "s2"}
	svc := NewStudentService(repo, nil, zap.NewNop())

	students, err := svc.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
