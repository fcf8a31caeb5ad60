package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/gateway"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/middleware"
	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/service"
)

const testSecret = "test-secret"

// fakeBookingRepo is an in-memory BookingRepository for handler tests
type fakeBookingRepo struct {
	mu       sync.Mutex
	seats    map[uuid.UUID]int
	bookings map[uuid.UUID]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		seats:    make(map[uuid.UUID]int),
		bookings: make(map[uuid.UUID]*domain.Booking),
	}
}

func (r *fakeBookingRepo) CreateWithInventory(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	available, ok := r.seats[booking.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if available < booking.SeatCount {
		return &domain.InsufficientSeatsError{Requested: booking.SeatCount, Remaining: available}
	}
	r.seats[booking.EventID] = available - booking.SeatCount
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Status != from {
		return domain.ErrInvalidTransition
	}
	b.Status = to
	return nil
}

func (r *fakeBookingRepo) CancelWithRestock(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if err := b.Status.ValidateTransition(domain.StatusCancelled); err != nil {
		return err
	}
	b.Status = domain.StatusCancelled
	r.seats[b.EventID] += b.SeatCount
	return nil
}

// fakeHireRepo is an in-memory HireRepository for handler tests
type fakeHireRepo struct {
	mu    sync.Mutex
	hires map[uuid.UUID]*domain.Hire
}

func newFakeHireRepo() *fakeHireRepo {
	return &fakeHireRepo{hires: make(map[uuid.UUID]*domain.Hire)}
}

func (r *fakeHireRepo) Create(ctx context.Context, hire *domain.Hire) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *hire
	r.hires[hire.ID] = &copied
	return nil
}

func (r *fakeHireRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hire, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hires[id]
	if !ok {
		return nil, domain.ErrHireNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *fakeHireRepo) Update(ctx context.Context, hire *domain.Hire) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.hires[hire.ID]
	if !ok {
		return domain.ErrHireNotFound
	}
	existing.ContactName = hire.ContactName
	existing.ContactEmail = hire.ContactEmail
	existing.PreferredDate = hire.PreferredDate
	existing.Description = hire.Description
	existing.Payment = hire.Payment
	return nil
}

func (r *fakeHireRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hires[id]
	if !ok {
		return domain.ErrHireNotFound
	}
	if h.Status != from {
		return domain.ErrInvalidTransition
	}
	h.Status = to
	return nil
}

func (r *fakeHireRepo) ConfirmPayment(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hires[id]
	if !ok || h.Status != domain.StatusPending {
		return false, nil
	}
	h.Status = domain.StatusConfirmed
	h.Payment = true
	return true, nil
}

// testEnv bundles the fakes and the router under test
type testEnv struct {
	router      *gin.Engine
	bookingRepo *fakeBookingRepo
	hireRepo    *fakeHireRepo
	gateway     *gateway.MockGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bookingRepo := newFakeBookingRepo()
	hireRepo := newFakeHireRepo()
	gw := gateway.NewMockGateway("http://localhost:8080")

	notifier := service.NewLogNotifier()
	bookingSvc := service.NewBookingService(bookingRepo, notifier)
	hireSvc := service.NewHireService(hireRepo, notifier)
	paymentSvc := service.NewPaymentService(hireRepo, gw, 250, "usd")

	bookingHandler := NewBookingHandler(bookingSvc)
	hireHandler := NewHireHandler(hireSvc)
	paymentHandler := NewPaymentHandler(paymentSvc)

	r := gin.New()
	r.Use(middleware.Identify(testSecret))
	r.POST("/bookings/create", bookingHandler.Create)
	r.GET("/bookings/:id", bookingHandler.Get)
	r.PATCH("/bookings/:id", middleware.RequireRole(middleware.RoleAdmin), bookingHandler.UpdateStatus)
	r.POST("/hire/create", middleware.RequireUser(), hireHandler.Create)
	r.GET("/hire/payment/success", hireHandler.SuccessPage)
	r.GET("/hire/payment/canceled", hireHandler.CancelPage)
	r.GET("/hire/:id", hireHandler.Get)
	r.PATCH("/hire/:id", middleware.RequireRole(middleware.RoleAdmin), hireHandler.Update)
	r.PATCH("/hire/:id/success", hireHandler.PaymentSuccess)
	r.POST("/payment/checkout", middleware.RequireUser(), paymentHandler.Checkout)

	return &testEnv{
		router:      r,
		bookingRepo: bookingRepo,
		hireRepo:    hireRepo,
		gateway:     gw,
	}
}

func (e *testEnv) addEvent(seats int) uuid.UUID {
	id := uuid.New()
	e.bookingRepo.seats[id] = seats
	return id
}

func (e *testEnv) addPendingHire(t *testing.T, ownerID string) *domain.Hire {
	t.Helper()
	hire := &domain.Hire{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		ContactName:   "Ben Example",
		ContactEmail:  "ben@example.com",
		PreferredDate: time.Date(2026, 10, 12, 19, 0, 0, 0, time.UTC),
		Description:   "Private show",
		Status:        domain.StatusPending,
		ReferenceCode: "HR-TESTCODE",
	}
	require.NoError(t, e.hireRepo.Create(context.Background(), hire))
	return hire
}

func (e *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, userID, role string) map[string]string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   userID + "@example.com",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + signed}
}
