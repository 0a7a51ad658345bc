package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"reimbursement-backend/internal/models"
	"reimbursement-backend/internal/repository"
	service "reimbursement-backend/internal/services/reimburse"

	"github.com/gin-gonic/gin"
)

type ReimbursementHandler struct {
	service *service.Service
}

func NewReimbursementHandler(s *service.Service) *ReimbursementHandler {
	return &ReimbursementHandler{service: s}
}

// Pointer fields so presence is required but zero values stay legal: an
// amount of 0 binds fine, an absent amount fails validation.
type createReimbursementRequest struct {
	BankAccountID *int64  `json:"bank_account_id" binding:"required"`
	BankID        *int64  `json:"bank_id" binding:"required"`
	Amount        *int64  `json:"amount" binding:"required"`
	Description   *string `json:"description" binding:"required"`
}

// The contract only admits the two terminal states; setting a reimbursement
// back to pending is rejected before any lookup happens.
type updateReimbursementRequest struct {
	Status       models.Status `json:"status" binding:"required,oneof=approved rejected"`
	DecisionByID *int64        `json:"decision_by_id" binding:"required"`
}

func (h *ReimbursementHandler) Create(c *gin.Context) {
	var payload createReimbursementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Create(*payload.BankAccountID, *payload.BankID, *payload.Amount, *payload.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ReimbursementHandler) List(c *gin.Context) {
	var filters repository.SearchFilters

	if v := c.Query("created_at_date"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid created_at_date, expected YYYY-MM-DD"})
			return
		}
		filters.CreatedAtDate = &d
	}

	if v := c.Query("status"); v != "" {
		status := models.Status(v)
		if !status.Valid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid status"})
			return
		}
		filters.Status = status
	}

	if v := c.Query("bank_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid bank_id"})
			return
		}
		filters.BankID = &id
	}

	items, err := h.service.List(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ReimbursementHandler) Get(c *gin.Context) {
	id, ok := reimbursementID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ReimbursementHandler) Update(c *gin.Context) {
	id, ok := reimbursementID(c)
	if !ok {
		return
	}

	var payload updateReimbursementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	item, err := h.service.Decide(id, payload.Status, *payload.DecisionByID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ReimbursementHandler) Delete(c *gin.Context) {
	id, ok := reimbursementID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func reimbursementID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid reimbursement ID"})
		return 0, false
	}
	return id, true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotPending):
		return http.StatusBadRequest
	default:
		// ErrMultipleFound and storage errors
		return http.StatusInternalServerError
	}
}
