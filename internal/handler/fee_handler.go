package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naiapps/pg-backend/internal/models"
	"github.com/naiapps/pg-backend/internal/service"
	appErrors "github.com/naiapps/pg-backend/pkg/errors"
	"github.com/naiapps/pg-backend/pkg/response"
)

type feeService interface {
	List(ctx context.Context, filter models.FeeFilter) ([]models.Fee, error)
	Get(ctx context.Context, id string) (*models.Fee, error)
	Create(ctx context.Context, req service.CreateFeeRequest) (*models.Fee, error)
	Update(ctx context.Context, id string, req service.UpdateFeeRequest) (*models.Fee, error)
	Delete(ctx context.Context, id string) error
	ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error)
	TotalPaidByStudent(ctx context.Context, studentID string) (float64, error)
}

// FeeHandler exposes fee endpoints.
type FeeHandler struct {
	fees feeService
}

// NewFeeHandler constructs FeeHandler.
func NewFeeHandler(fees feeService) *FeeHandler {
	return &FeeHandler{fees: fees}
}

// List godoc
// @Summary List fees
// @Tags Fees
// @Produce json
// @Param mode query string false "Payment mode"
// @Param status query string false "Fee status"
// @Param from query string false "Earliest payment date (YYYY-MM-DD)"
// @Param to query string false "Latest payment date (YYYY-MM-DD)"
// @Success 200 {array} models.Fee
// @Router /api/fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	filter := models.FeeFilter{
		Mode:   c.Query("mode"),
		Status: c.Query("status"),
	}
	if raw := c.Query("from"); raw != "" {
		from, err := models.ParseDate(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid from date"))
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := models.ParseDate(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid to date"))
			return
		}
		filter.To = &to
	}

	fees, err := h.fees.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees)
}

// Get godoc
// @Summary Get fee detail
// @Tags Fees
// @Produce json
// @Param id path string true "Fee ID"
// @Success 200 {object} models.Fee
// @Router /api/fees/{id} [get]
func (h *FeeHandler) Get(c *gin.Context) {
	fee, err := h.fees.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fee)
}

// Create godoc
// @Summary Record a fee payment
// @Tags Fees
// @Accept json
// @Produce json
// @Param payload body service.CreateFeeRequest true "Fee payload"
// @Success 201 {object} models.Fee
// @Router /api/fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	var req service.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Error creating fee: invalid payload"))
		return
	}
	fee, err := h.fees.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, fee)
}

// Update godoc
// @Summary Update a fee (partial)
// @Tags Fees
// @Accept json
// @Produce json
// @Param id path string true "Fee ID"
// @Param payload body service.UpdateFeeRequest true "Fields to change"
// @Success 200 {object} models.Fee
// @Router /api/fees/{id} [put]
func (h *FeeHandler) Update(c *gin.Context) {
	var req service.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Error updating fee: invalid payload"))
		return
	}
	fee, err := h.fees.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fee)
}

// Delete godoc
// @Summary Delete fee
// @Tags Fees
// @Produce json
// @Param id path string true "Fee ID"
// @Success 204
// @Router /api/fees/{id} [delete]
func (h *FeeHandler) Delete(c *gin.Context) {
	if err := h.fees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListByStudent godoc
// @Summary List a student's fees, newest payment first
// @Tags Fees
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} models.Fee
// @Router /api/fees/student/{studentId} [get]
func (h *FeeHandler) ListByStudent(c *gin.Context) {
	fees, err := h.fees.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, fees)
}

// TotalByStudent godoc
// @Summary Total amount paid by a student
// @Tags Fees
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} object{totalPaid=number}
// @Router /api/fees/student/{studentId}/total [get]
func (h *FeeHandler) TotalByStudent(c *gin.Context) {
	total, err := h.fees.TotalPaidByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"totalPaid": total})
}
