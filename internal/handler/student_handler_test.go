package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naiapps/pg-backend/internal/models"
	"github.com/naiapps/pg-backend/internal/service"
	appErrors "github.com/naiapps/pg-backend/pkg/errors"
)

type studentServiceMock struct {
	listResp   []models.Student
	listErr    error
	getResp    *models.Student
	getErr     error
	createResp *models.Student
	createErr  error
	updateResp *models.Student
	updateErr  error
	deleteErr  error
	searchResp []models.Student
	searchErr  error

	lastCreate service.CreateStudentRequest
	lastEmail  string
	lastRoomNo string
}

func (m *studentServiceMock) List(ctx context.Context) ([]models.Student, error) {
	return m.listResp, m.listErr
}

func (m *studentServiceMock) Get(ctx context.Context, id string) (*models.Student, error) {
	return m.getResp, m.getErr
}

func (m *studentServiceMock) Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	m.lastCreate = req
	return m.createResp, m.createErr
}

func (m *studentServiceMock) Update(ctx context.Context, id string, req service.UpdateStudentRequest) (*models.Student, error) {
	return m.updateResp, m.updateErr
}

func (m *studentServiceMock) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}

func (m *studentServiceMock) Search(ctx context.Context, email, roomNo string) ([]models.Student, error) {
	m.lastEmail = email
	m.lastRoomNo = roomNo
	return m.searchResp, m.searchErr
}

func newStudentRouter(svc *studentServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewStudentHandler(svc), NewFeeHandler(&feeServiceMock{}))
	return r
}

func TestStudentHandlerList(t *testing.T) {
	svc := &studentServiceMock{listResp: []models.Student{{ID: "s1", Name: "Asha"}}}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "s1", students[0].ID)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	svc := &studentServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "student not found")}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, w.Body.Len(), "404 responses carry no body")
}

func TestStudentHandlerCreate(t *testing.T) {
	svc := &studentServiceMock{createResp: &models.Student{ID: "s1", Name: "Asha", Email: "asha@x.com", Phone: "1", RoomNo: "101"}}
	r := newStudentRouter(svc)

	body := bytes.NewBufferString(`{"name":"Asha","email":"asha@x.com","phone":"1","roomNo":"101"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "asha@x.com", svc.lastCreate.Email)
	var created models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "s1", created.ID)
}

func TestStudentHandlerCreateDuplicateEmailBody(t *testing.T) {
	svc := &studentServiceMock{createErr: appErrors.WithFields(map[string]string{"email": "Email already exists"})}
	r := newStudentRouter(svc)

	body := bytes.NewBufferString(`{"name":"Asha","email":"asha@x.com","phone":"1","roomNo":"101"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"email":"Email already exists"}`, w.Body.String())
}

func TestStudentHandlerDelete(t *testing.T) {
	svc := &studentServiceMock{}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/students/s1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStudentHandlerSearchPassesFilters(t *testing.T) {
	svc := &studentServiceMock{searchResp: []models.Student{}}
	r := newStudentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/search?email=asha@x.com&roomNo=101", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asha@x.com", svc.lastEmail)
	assert.Equal(t, "101", svc.lastRoomNo)
	assert.JSONEq(t, `[]`, w.Body.String())
}
