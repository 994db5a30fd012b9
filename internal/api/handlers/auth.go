package handlers

import (
	"errors"
	"net/http"

	"salonbook/internal/auth"
	"salonbook/internal/config"
	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for salon registration and login
type AuthHandler struct {
	salonRepo        repository.SalonRepository
	availabilityRepo repository.AvailabilityRepository
	authService      *auth.Service
	config           *config.Config
}

// NewAuthHandler creates a new authentication handler with the given dependencies
func NewAuthHandler(
	salonRepo repository.SalonRepository,
	availabilityRepo repository.AvailabilityRepository,
	authService *auth.Service,
	config *config.Config,
) *AuthHandler {
	return &AuthHandler{
		salonRepo:        salonRepo,
		availabilityRepo: availabilityRepo,
		authService:      authService,
		config:           config,
	}
}

// Register godoc
// @Summary Register a salon
// @Description Create a new salon account with default availability placeholders
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterSalonRequest true "Salon details"
// @Success 201 {object} models.Salon "Salon created"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 403 {object} models.ErrorResponse "Registration closed"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	if !h.config.Auth.RegistrationOpen {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "registration is closed"})
		return
	}

	var req models.RegisterSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	hashed, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process registration"})
		return
	}

	salon := &models.Salon{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Timezone: req.Timezone,
	}
	if err := h.salonRepo.Create(c.Request.Context(), salon); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already registered"})
			return
		}
		if errors.Is(err, repository.ErrInvalidTimezone) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid timezone"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create salon"})
		return
	}

	// Seed the week so the schedule always has exactly 7 rows. Every day
	// starts non-working with placeholder hours until the owner configures it.
	rules := make([]models.AvailabilityRule, 0, 7)
	for day := 0; day < 7; day++ {
		rules = append(rules, models.AvailabilityRule{
			DayOfWeek:    day,
			IsWorkingDay: false,
			StartTime:    models.PlaceholderStartTime,
			EndTime:      models.PlaceholderEndTime,
			SlotDuration: models.DefaultSlotDuration,
		})
	}
	if _, err := h.availabilityRepo.Replace(c.Request.Context(), salon.ID, rules); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create salon"})
		return
	}

	c.JSON(http.StatusCreated, salon)
}

// Login godoc
// @Summary Salon login
// @Description Authenticate a salon account and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	salon, err := h.salonRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	if err := h.authService.ComparePasswords(salon.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	token, err := h.authService.GenerateToken(salon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, Salon: salon})
}
