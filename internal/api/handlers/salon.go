package handlers

import (
	"errors"
	"net/http"

	"salonbook/internal/auth"
	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/gin-gonic/gin"
)

// SalonHandler handles HTTP requests for salon account settings
type SalonHandler struct {
	salonRepo repository.SalonRepository
}

// NewSalonHandler creates a new salon handler
func NewSalonHandler(salonRepo repository.SalonRepository) *SalonHandler {
	return &SalonHandler{salonRepo: salonRepo}
}

// UpdateTimezone godoc
// @Summary Change the salon timezone
// @Description Updates the IANA timezone used for all slot generation
// @Tags salons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateTimezoneRequest true "New timezone"
// @Success 200 {object} models.Salon
// @Failure 400 {object} models.ErrorResponse "Invalid timezone"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /salons/timezone [patch]
func (h *SalonHandler) UpdateTimezone(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	var req models.UpdateTimezoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.salonRepo.UpdateTimezone(c.Request.Context(), salon.ID, req.Timezone); err != nil {
		if errors.Is(err, repository.ErrInvalidTimezone) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid timezone"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update timezone"})
		return
	}

	salon.Timezone = req.Timezone
	c.JSON(http.StatusOK, salon)
}
