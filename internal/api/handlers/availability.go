package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"salonbook/internal/auth"
	"salonbook/internal/models"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles HTTP requests for the weekly schedule
type AvailabilityHandler struct {
	availabilityRepo repository.AvailabilityRepository
	salonRepo        repository.SalonRepository
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityRepo repository.AvailabilityRepository, salonRepo repository.SalonRepository) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityRepo: availabilityRepo,
		salonRepo:        salonRepo,
	}
}

// Get godoc
// @Summary Get a salon's weekly schedule
// @Description Returns the salon's weekly availability rules, one per day of week
// @Tags availability
// @Produce json
// @Param salonId path string true "Salon ID" format(uuid)
// @Success 200 {object} models.AvailabilityResponse
// @Failure 400 {object} models.ErrorResponse "Invalid salon id"
// @Failure 404 {object} models.ErrorResponse "Salon not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /availability/{salonId} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid salon id"})
		return
	}

	if _, err := h.salonRepo.GetByID(c.Request.Context(), salonID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load salon"})
		return
	}

	rules, err := h.availabilityRepo.ListBySalon(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{Availability: rules})
}

// Replace godoc
// @Summary Replace weekly schedule
// @Description Replaces the salon's whole weekly schedule in one transaction
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReplaceAvailabilityRequest true "Seven availability rows, one per day of week"
// @Success 201 {object} models.AvailabilityResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /availability [post]
func (h *AvailabilityHandler) Replace(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	var req models.ReplaceAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	rules, err := buildRules(req.AvailabilitySettings)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.availabilityRepo.Replace(c.Request.Context(), salon.ID, rules)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save availability"})
		return
	}

	c.JSON(http.StatusCreated, models.AvailabilityResponse{Availability: saved})
}

// UpdateRule godoc
// @Summary Patch one availability rule
// @Description Updates a single day's rule; omitted fields are left unchanged
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID" format(uuid)
// @Param request body models.UpdateAvailabilityRequest true "Fields to change"
// @Success 200 {object} models.AvailabilityRule
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Rule not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /availability/{id} [patch]
func (h *AvailabilityHandler) UpdateRule(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid rule id"})
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if req.StartTime != nil {
		normalized := normalizeTimeOfDay(*req.StartTime)
		req.StartTime = &normalized
	}
	if req.EndTime != nil {
		normalized := normalizeTimeOfDay(*req.EndTime)
		req.EndTime = &normalized
	}

	rule, err := h.availabilityRepo.UpdateRule(c.Request.Context(), id, salon.ID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "rule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update rule"})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// buildRules turns the incoming settings into the canonical 7-row schedule.
// Every day of week must appear exactly once. Non-working days get placeholder
// times so the row shape stays uniform.
func buildRules(settings []models.AvailabilitySetting) ([]models.AvailabilityRule, error) {
	if len(settings) != 7 {
		return nil, fmt.Errorf("expected 7 availability rows, got %d", len(settings))
	}

	var seen [7]bool
	rules := make([]models.AvailabilityRule, 0, 7)
	for _, s := range settings {
		if seen[s.DayOfWeek] {
			return nil, fmt.Errorf("duplicate day of week %d", s.DayOfWeek)
		}
		seen[s.DayOfWeek] = true

		rule := models.AvailabilityRule{
			DayOfWeek:    s.DayOfWeek,
			IsWorkingDay: s.IsWorkingDay,
			StartTime:    models.PlaceholderStartTime,
			EndTime:      models.PlaceholderEndTime,
			SlotDuration: s.SlotDuration,
		}
		if rule.SlotDuration == 0 {
			rule.SlotDuration = models.DefaultSlotDuration
		}
		if s.StartTime != "" {
			rule.StartTime = normalizeTimeOfDay(s.StartTime)
		}
		if s.EndTime != "" {
			rule.EndTime = normalizeTimeOfDay(s.EndTime)
		}

		if s.IsWorkingDay {
			sh, sm, ss, err := schedule.ParseTimeOfDay(rule.StartTime)
			if err != nil {
				return nil, fmt.Errorf("invalid start time for %s", models.DayName(s.DayOfWeek))
			}
			eh, em, es, err := schedule.ParseTimeOfDay(rule.EndTime)
			if err != nil {
				return nil, fmt.Errorf("invalid end time for %s", models.DayName(s.DayOfWeek))
			}
			if sh*3600+sm*60+ss >= eh*3600+em*60+es {
				return nil, fmt.Errorf("start time must be before end time on %s", models.DayName(s.DayOfWeek))
			}
		}

		rules = append(rules, rule)
	}
	return rules, nil
}

// normalizeTimeOfDay pads HH:MM to HH:MM:SS so stored values are uniform.
func normalizeTimeOfDay(s string) string {
	if len(s) == 5 {
		return s + ":00"
	}
	return s
}
