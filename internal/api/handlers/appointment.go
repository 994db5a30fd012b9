package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salonbook/internal/auth"
	"salonbook/internal/booking"
	"salonbook/internal/config"
	"salonbook/internal/models"
	"salonbook/internal/repository"
	"salonbook/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppointmentHandler handles HTTP requests for slots and the appointment
// lifecycle
type AppointmentHandler struct {
	appointmentRepo  repository.AppointmentRepository
	availabilityRepo repository.AvailabilityRepository
	salonRepo        repository.SalonRepository
	customerRepo     repository.CustomerRepository
	subscriptionRepo repository.SubscriptionRepository
	config           *config.Config
}

// NewAppointmentHandler creates a new appointment handler with the given dependencies
func NewAppointmentHandler(
	appointmentRepo repository.AppointmentRepository,
	availabilityRepo repository.AvailabilityRepository,
	salonRepo repository.SalonRepository,
	customerRepo repository.CustomerRepository,
	subscriptionRepo repository.SubscriptionRepository,
	config *config.Config,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		salonRepo:        salonRepo,
		customerRepo:     customerRepo,
		subscriptionRepo: subscriptionRepo,
		config:           config,
	}
}

// AvailableSlots godoc
// @Summary List available slots
// @Description Returns bookable UTC instants for a salon over the requested horizon
// @Tags appointments
// @Produce json
// @Param salonId query string true "Salon ID" format(uuid)
// @Param days query int false "Horizon in days (default 30, max 90)"
// @Success 200 {object} models.SlotsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 404 {object} models.ErrorResponse "Salon not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/available-slots [get]
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	salonID, err := uuid.Parse(c.Query("salonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid salon id"})
		return
	}

	days := h.config.Booking.DefaultHorizonDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 || days > h.config.Booking.MaxHorizonDays {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid days parameter"})
			return
		}
	}

	salon, err := h.salonRepo.GetByID(c.Request.Context(), salonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load salon"})
		return
	}

	loc, err := time.LoadLocation(salon.Timezone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "invalid salon timezone"})
		return
	}

	rules, err := h.availabilityRepo.ListBySalon(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load availability"})
		return
	}

	committed, err := h.appointmentRepo.ListCommittedTimes(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load appointments"})
		return
	}

	times := schedule.Generate(rules, days, committed, loc, time.Now().UTC())
	slots := make([]models.Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, models.Slot{Time: t, Available: true})
	}

	c.JSON(http.StatusOK, models.SlotsResponse{Slots: slots, SalonTimezone: salon.Timezone})
}

// Create godoc
// @Summary Book an appointment
// @Description Creates a PENDING appointment unless a confirmed appointment already occupies the slot
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body models.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} models.AppointmentResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 404 {object} models.ErrorResponse "Salon or customer not found"
// @Failure 409 {object} models.ErrorResponse "Slot is no longer available"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	now := time.Now().UTC()
	requested := req.RequestedTime.UTC()
	if !requested.After(now) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "requested time must be in the future"})
		return
	}

	salon, err := h.salonRepo.GetByID(c.Request.Context(), req.SalonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load salon"})
		return
	}

	customer, err := h.customerRepo.GetByID(c.Request.Context(), req.CustomerID)
	if err != nil || customer.SalonID != salon.ID {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load customer"})
			return
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "customer not found"})
		return
	}

	if req.SubscriptionID != nil {
		sub, err := h.subscriptionRepo.GetByID(c.Request.Context(), *req.SubscriptionID)
		if err != nil || sub.SalonID != salon.ID || sub.CustomerID != customer.ID {
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load subscription"})
				return
			}
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "subscription not found"})
			return
		}
		if sub.VisitsUsed >= sub.VisitsTotal {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no visits remaining on subscription"})
			return
		}
	}

	window, err := h.slotWindow(c, salon, requested)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load availability"})
		return
	}

	apt := &models.Appointment{
		SalonID:        salon.ID,
		CustomerID:     customer.ID,
		SubscriptionID: req.SubscriptionID,
		RequestedTime:  requested,
		Notes:          req.Notes,
	}
	if err := h.appointmentRepo.CreateIfFree(c.Request.Context(), apt, window); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "slot is no longer available"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, models.AppointmentResponse{Appointment: apt})
}

// slotWindow returns the occupancy window for an appointment at t: the slot
// duration of the salon's rule for that salon-local day, or the default when
// the day has no usable rule.
func (h *AppointmentHandler) slotWindow(c *gin.Context, salon *models.Salon, t time.Time) (time.Duration, error) {
	duration := models.DefaultSlotDuration

	loc, err := time.LoadLocation(salon.Timezone)
	if err != nil {
		return 0, err
	}

	rules, err := h.availabilityRepo.ListBySalon(c.Request.Context(), salon.ID)
	if err != nil {
		return 0, err
	}

	dow := schedule.DayOfWeek(t, loc)
	for _, rule := range rules {
		if rule.DayOfWeek == dow && rule.SlotDuration > 0 {
			duration = rule.SlotDuration
			break
		}
	}
	return time.Duration(duration) * time.Minute, nil
}

// ListOwner godoc
// @Summary List a salon's appointments
// @Description Returns the authenticated salon's appointments with customer details, newest first
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, CONFIRMED, RESCHEDULE_PROPOSED, CANCELLED)
// @Success 200 {object} models.AppointmentsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid status filter"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/owner [get]
func (h *AppointmentHandler) ListOwner(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	var filter repository.AppointmentFilter
	if raw := c.Query("status"); raw != "" {
		status := models.AppointmentStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status filter"})
			return
		}
		filter.Status = &status
	}

	appointments, err := h.appointmentRepo.ListBySalon(c.Request.Context(), salon.ID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load appointments"})
		return
	}

	c.JSON(http.StatusOK, models.AppointmentsResponse{
		Appointments:  appointments,
		SalonTimezone: salon.Timezone,
	})
}

// ListCustomer godoc
// @Summary List a customer's appointments
// @Description Returns all appointments for a customer, newest first
// @Tags appointments
// @Produce json
// @Param customerId path string true "Customer ID" format(uuid)
// @Success 200 {object} models.AppointmentsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid customer id"
// @Failure 404 {object} models.ErrorResponse "Customer not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/customer/{customerId} [get]
func (h *AppointmentHandler) ListCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid customer id"})
		return
	}

	if _, err := h.customerRepo.GetByID(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load customer"})
		return
	}

	appointments, err := h.appointmentRepo.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load appointments"})
		return
	}

	c.JSON(http.StatusOK, models.AppointmentsResponse{Appointments: appointments})
}

// Confirm godoc
// @Summary Confirm a pending appointment
// @Description Moves a PENDING appointment to CONFIRMED
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID" format(uuid)
// @Success 200 {object} models.AppointmentResponse
// @Failure 400 {object} models.ErrorResponse "Invalid transition"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Appointment not found"
// @Failure 409 {object} models.ErrorResponse "Concurrent change or slot conflict"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/{id}/confirm [patch]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	apt, ok := h.loadOwned(c, salon.ID)
	if !ok {
		return
	}
	h.transition(c, apt, booking.ActionConfirm, nil)
}

// Propose godoc
// @Summary Propose a new time
// @Description Counters a PENDING appointment with a new time, moving it to RESCHEDULE_PROPOSED
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID" format(uuid)
// @Param request body models.ProposeTimeRequest true "Proposed time"
// @Success 200 {object} models.AppointmentResponse
// @Failure 400 {object} models.ErrorResponse "Invalid transition or request format"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Appointment not found"
// @Failure 409 {object} models.ErrorResponse "Concurrent change"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/{id}/propose [patch]
func (h *AppointmentHandler) Propose(c *gin.Context) {
	salon := auth.GetSalonFromContext(c)

	var req models.ProposeTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	proposed := req.ProposedTime.UTC()
	if !proposed.After(time.Now().UTC()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "proposed time must be in the future"})
		return
	}

	apt, ok := h.loadOwned(c, salon.ID)
	if !ok {
		return
	}
	h.transition(c, apt, booking.ActionPropose, &proposed)
}

// AcceptProposal godoc
// @Summary Accept a proposed time
// @Description Moves a RESCHEDULE_PROPOSED appointment to CONFIRMED at the proposed time
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID" format(uuid)
// @Success 200 {object} models.AppointmentResponse
// @Failure 400 {object} models.ErrorResponse "Invalid transition"
// @Failure 404 {object} models.ErrorResponse "Appointment not found"
// @Failure 409 {object} models.ErrorResponse "Concurrent change or slot conflict"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/{id}/accept-proposal [patch]
func (h *AppointmentHandler) AcceptProposal(c *gin.Context) {
	apt, ok := h.load(c)
	if !ok {
		return
	}
	h.transition(c, apt, booking.ActionAccept, nil)
}

// Cancel godoc
// @Summary Cancel an appointment
// @Description Moves any live appointment to CANCELLED
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID" format(uuid)
// @Success 200 {object} models.AppointmentResponse
// @Failure 400 {object} models.ErrorResponse "Already cancelled"
// @Failure 404 {object} models.ErrorResponse "Appointment not found"
// @Failure 409 {object} models.ErrorResponse "Concurrent change"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	apt, ok := h.load(c)
	if !ok {
		return
	}
	h.transition(c, apt, booking.ActionCancel, nil)
}

// load fetches the appointment from the :id path param, writing the error
// response itself when the lookup fails.
func (h *AppointmentHandler) load(c *gin.Context) (*models.Appointment, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid appointment id"})
		return nil, false
	}

	apt, err := h.appointmentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "appointment not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load appointment"})
		return nil, false
	}
	return apt, true
}

// loadOwned is load scoped to the authenticated salon; appointments of other
// salons are reported as not found.
func (h *AppointmentHandler) loadOwned(c *gin.Context, salonID uuid.UUID) (*models.Appointment, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid appointment id"})
		return nil, false
	}

	apt, err := h.appointmentRepo.GetBySalon(c.Request.Context(), id, salonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "appointment not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load appointment"})
		return nil, false
	}
	return apt, true
}

// transition runs the state machine and persists the result, guarded by the
// status the change was computed from.
func (h *AppointmentHandler) transition(c *gin.Context, apt *models.Appointment, action booking.Action, proposedTime *time.Time) {
	change, err := booking.Transition(apt, action, proposedTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.appointmentRepo.ApplyTransition(c.Request.Context(), apt.ID, apt.Status, change)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "appointment was changed concurrently"})
		case errors.Is(err, repository.ErrSlotTaken):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "slot is no longer available"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "appointment not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, models.AppointmentResponse{Appointment: updated})
}
