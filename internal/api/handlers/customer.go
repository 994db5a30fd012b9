package handlers

import (
	"net/http"

	"salonbook/internal/auth"
	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customer records
type CustomerHandler struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// Create godoc
// @Summary Register a customer
// @Description Creates a customer record belonging to the authenticated salon
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCustomerRequest true "Customer details"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	customer := &models.Customer{
		SalonID: salon.ID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	}
	if err := h.customerRepo.Create(c.Request.Context(), customer); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}
