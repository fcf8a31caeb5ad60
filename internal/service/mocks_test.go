package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

// mockBookingRepo is a function-field mock for BookingRepository
type mockBookingRepo struct {
	CreateWithInventoryFunc func(ctx context.Context, booking *domain.Booking) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, from, to domain.Status) error
	CancelWithRestockFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBookingRepo) CreateWithInventory(ctx context.Context, booking *domain.Booking) error {
	return m.CreateWithInventoryFunc(ctx, booking)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	return m.UpdateStatusFunc(ctx, id, from, to)
}

func (m *mockBookingRepo) CancelWithRestock(ctx context.Context, id uuid.UUID) error {
	return m.CancelWithRestockFunc(ctx, id)
}

// mockHireRepo is a function-field mock for HireRepository
type mockHireRepo struct {
	CreateFunc         func(ctx context.Context, hire *domain.Hire) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Hire, error)
	UpdateFunc         func(ctx context.Context, hire *domain.Hire) error
	UpdateStatusFunc   func(ctx context.Context, id uuid.UUID, from, to domain.Status) error
	ConfirmPaymentFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockHireRepo) Create(ctx context.Context, hire *domain.Hire) error {
	return m.CreateFunc(ctx, hire)
}

func (m *mockHireRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hire, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockHireRepo) Update(ctx context.Context, hire *domain.Hire) error {
	return m.UpdateFunc(ctx, hire)
}

func (m *mockHireRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	return m.UpdateStatusFunc(ctx, id, from, to)
}

func (m *mockHireRepo) ConfirmPayment(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.ConfirmPaymentFunc(ctx, id)
}

// recordingNotifier captures dispatched notices
type recordingNotifier struct {
	mu       sync.Mutex
	bookings []string
	hires    []string
}

func (n *recordingNotifier) BookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, booking.ID.String())
	return nil
}

func (n *recordingNotifier) HirePaymentConfirmed(ctx context.Context, hire *domain.Hire) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.hires = append(n.hires, hire.ID.String())
	return nil
}

// memBookingRepo is an in-memory BookingRepository whose critical section
// mirrors the database transaction: check, decrement, insert under one lock.
type memBookingRepo struct {
	mu       sync.Mutex
	seats    map[uuid.UUID]int
	bookings map[uuid.UUID]*domain.Booking
	refCodes map[string]bool
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{
		seats:    make(map[uuid.UUID]int),
		bookings: make(map[uuid.UUID]*domain.Booking),
		refCodes: make(map[string]bool),
	}
}

func (r *memBookingRepo) CreateWithInventory(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	available, ok := r.seats[booking.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if available < booking.SeatCount {
		return &domain.InsufficientSeatsError{Requested: booking.SeatCount, Remaining: available}
	}
	if r.refCodes[booking.ReferenceCode] {
		return domain.ErrDuplicateReferenceCode
	}

	r.seats[booking.EventID] = available - booking.SeatCount
	r.refCodes[booking.ReferenceCode] = true
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
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

func (r *memBookingRepo) CancelWithRestock(ctx context.Context, id uuid.UUID) error {
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

func (r *memBookingRepo) availableSeats(eventID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats[eventID]
}

func (r *memBookingRepo) bookingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// memHireRepo is an in-memory HireRepository
type memHireRepo struct {
	mu    sync.Mutex
	hires map[uuid.UUID]*domain.Hire
}

func newMemHireRepo() *memHireRepo {
	return &memHireRepo{hires: make(map[uuid.UUID]*domain.Hire)}
}

func (r *memHireRepo) Create(ctx context.Context, hire *domain.Hire) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *hire
	r.hires[hire.ID] = &copied
	return nil
}

func (r *memHireRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hire, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hires[id]
	if !ok {
		return nil, domain.ErrHireNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *memHireRepo) Update(ctx context.Context, hire *domain.Hire) error {
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

func (r *memHireRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
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

func (r *memHireRepo) ConfirmPayment(ctx context.Context, id uuid.UUID) (bool, error) {
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
