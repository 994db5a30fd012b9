package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salonbook/internal/api/middleware"
	"salonbook/internal/auth"
	"salonbook/internal/config"
	"salonbook/internal/models"
	"salonbook/internal/testutil"
	"salonbook/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router        *gin.Engine
	cfg           *config.Config
	salons        *fakeSalonRepo
	customers     *fakeCustomerRepo
	subscriptions *fakeSubscriptionRepo
	availability  *fakeAvailabilityRepo
	appointments  *fakeAppointmentRepo
	authService   *auth.Service
}

// newTestEnv wires the full route table onto in-memory repositories.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		JWTSecret:        "test_secret_key",
		JWTExpiration:    1,
		RegistrationOpen: true,
	}
	cfg.Booking = config.BookingConfig{DefaultHorizonDays: 30, MaxHorizonDays: 90}

	env := &testEnv{
		cfg:           cfg,
		salons:        newFakeSalonRepo(),
		customers:     newFakeCustomerRepo(),
		subscriptions: newFakeSubscriptionRepo(),
		availability:  newFakeAvailabilityRepo(),
	}
	env.appointments = newFakeAppointmentRepo(env.customers)
	env.authService = auth.NewService(cfg)

	authMiddleware := middleware.NewAuthMiddleware(env.authService, env.salons)
	authHandler := NewAuthHandler(env.salons, env.availability, env.authService, cfg)
	customerHandler := NewCustomerHandler(env.customers)
	salonHandler := NewSalonHandler(env.salons)
	availabilityHandler := NewAvailabilityHandler(env.availability, env.salons)
	appointmentHandler := NewAppointmentHandler(
		env.appointments, env.availability, env.salons, env.customers, env.subscriptions, cfg,
	)

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)

		salons := v1.Group("/salons")
		salons.Use(authMiddleware.OwnerRequired())
		salons.PATCH("/timezone", salonHandler.UpdateTimezone)

		customers := v1.Group("/customers")
		customers.Use(authMiddleware.OwnerRequired())
		customers.POST("", customerHandler.Create)

		availability := v1.Group("/availability")
		availability.GET("/:salonId", availabilityHandler.Get)
		availability.POST("", authMiddleware.OwnerRequired(), availabilityHandler.Replace)
		availability.PATCH("/:id", authMiddleware.OwnerRequired(), availabilityHandler.UpdateRule)

		appointments := v1.Group("/appointments")
		appointments.GET("/available-slots", appointmentHandler.AvailableSlots)
		appointments.GET("/customer/:customerId", appointmentHandler.ListCustomer)
		appointments.GET("/owner", authMiddleware.OwnerRequired(), appointmentHandler.ListOwner)
		appointments.POST("", appointmentHandler.Create)
		appointments.PATCH("/:id/confirm", authMiddleware.OwnerRequired(), appointmentHandler.Confirm)
		appointments.PATCH("/:id/propose", authMiddleware.OwnerRequired(), appointmentHandler.Propose)
		appointments.PATCH("/:id/accept-proposal", appointmentHandler.AcceptProposal)
		appointments.PATCH("/:id/cancel", appointmentHandler.Cancel)
	}
	env.router = r
	return env
}

// addSalon creates a salon account directly in the fake store and returns it
// with a valid bearer token.
func (e *testEnv) addSalon(t *testing.T, timezone string) (*models.Salon, string) {
	t.Helper()

	hashed, err := e.authService.HashPassword("mypassword123")
	require.NoError(t, err)

	salon := &models.Salon{
		Name:     "Shear Genius",
		Email:    uuid.NewString() + "@example.com",
		Password: hashed,
		Timezone: timezone,
	}
	require.NoError(t, e.salons.Create(nil, salon))

	token, err := e.authService.GenerateToken(salon)
	require.NoError(t, err)
	return salon, token
}

func (e *testEnv) addCustomer(t *testing.T, salonID uuid.UUID) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		SalonID: salonID,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   testutil.String("+1 555 0100"),
	}
	require.NoError(t, e.customers.Create(nil, customer))
	return customer
}

// doRequest performs a request against the test router. A non-empty token is
// sent as a bearer token; a non-nil body is JSON encoded.
func (e *testEnv) doRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.doRequest(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Shear Genius",
		"email":    "owner@sheargenius.com",
		"password": "mypassword123",
		"timezone": "America/Los_Angeles",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	salon := decode[models.Salon](t, w)
	require.Equal(t, "America/Los_Angeles", salon.Timezone)
	require.NotEqual(t, uuid.Nil, salon.ID)

	// Registration seeds a full placeholder week.
	rules, err := env.availability.ListBySalon(nil, salon.ID)
	require.NoError(t, err)
	require.Len(t, rules, 7)
	for i, rule := range rules {
		require.Equal(t, i, rule.DayOfWeek)
		require.False(t, rule.IsWorkingDay)
		require.Equal(t, models.PlaceholderStartTime, rule.StartTime)
		require.Equal(t, models.PlaceholderEndTime, rule.EndTime)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	body := gin.H{"name": "A", "email": "dup@example.com", "password": "mypassword123"}
	require.Equal(t, http.StatusCreated, env.doRequest(t, http.MethodPost, "/api/v1/auth/register", body, "").Code)
	require.Equal(t, http.StatusConflict, env.doRequest(t, http.MethodPost, "/api/v1/auth/register", body, "").Code)
}

func TestRegisterInvalidTimezone(t *testing.T) {
	env := newTestEnv(t)

	w := env.doRequest(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "A",
		"email":    "tz@example.com",
		"password": "mypassword123",
		"timezone": "Not/AZone",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterClosed(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Auth.RegistrationOpen = false

	w := env.doRequest(t, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name": "A", "email": "closed@example.com", "password": "mypassword123",
	}, "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	salon, _ := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    salon.Email,
		"password": "mypassword123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.LoginResponse](t, w)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, salon.ID, resp.Salon.ID)

	// The issued token works on an owner endpoint.
	owner := env.doRequest(t, http.MethodGet, "/api/v1/appointments/owner", nil, resp.Token)
	require.Equal(t, http.StatusOK, owner.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	salon, _ := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    salon.Email,
		"password": "not-the-password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOwnerEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusUnauthorized, env.doRequest(t, http.MethodGet, "/api/v1/appointments/owner", nil, "").Code)
	require.Equal(t, http.StatusUnauthorized, env.doRequest(t, http.MethodPost, "/api/v1/customers", gin.H{}, "").Code)
	require.Equal(t, http.StatusUnauthorized, env.doRequest(t, http.MethodGet, "/api/v1/appointments/owner", nil, "garbage").Code)
}

func TestUpdateSalonTimezone(t *testing.T) {
	env := newTestEnv(t)
	salon, token := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPatch, "/api/v1/salons/timezone", gin.H{
		"timezone": "Europe/Stockholm",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[models.Salon](t, w)
	require.Equal(t, salon.ID, updated.ID)
	require.Equal(t, "Europe/Stockholm", updated.Timezone)

	stored, err := env.salons.GetByID(nil, salon.ID)
	require.NoError(t, err)
	require.Equal(t, "Europe/Stockholm", stored.Timezone)
}

func TestUpdateSalonTimezoneRejectsUnknownZone(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPatch, "/api/v1/salons/timezone", gin.H{
		"timezone": "Mars/Olympus_Mons",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)
	salon, token := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"phone": "+1 555 0100",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	customer := decode[models.Customer](t, w)
	require.Equal(t, salon.ID, customer.SalonID)
	require.Equal(t, "Jane Doe", customer.Name)
	require.NotNil(t, customer.Phone)
}

func TestCreateCustomerInvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.addSalon(t, "UTC")

	w := env.doRequest(t, http.MethodPost, "/api/v1/customers", gin.H{
		"name":  "Jane Doe",
		"email": "not-an-email",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
