package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/telemetry"
)

const pgUniqueViolation = "23505"

// PostgresBookingRepository implements BookingRepository using PostgreSQL
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// CreateWithInventory runs the reservation transaction: lock the event row,
// check capacity, decrement, insert the booking. Serializable isolation plus
// the row lock serializes concurrent decrements against one event, so the
// pool can never be oversold even across process replicas.
func (r *PostgresBookingRepository) CreateWithInventory(ctx context.Context, booking *domain.Booking) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.create_with_inventory")
	defer span.End()

	span.SetAttributes(
		attribute.String("event_id", booking.EventID.String()),
		attribute.Int("seat_count", booking.SeatCount),
	)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var available int
	err = tx.QueryRow(ctx,
		`SELECT available_seats FROM events WHERE id = $1 FOR UPDATE`,
		booking.EventID,
	).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "event not found")
			return domain.ErrEventNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to lock event row: %w", err)
	}

	if available < booking.SeatCount {
		span.SetAttributes(attribute.Int("remaining_seats", available))
		span.SetStatus(codes.Error, "insufficient seats")
		return &domain.InsufficientSeatsError{
			Requested: booking.SeatCount,
			Remaining: available,
		}
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET available_seats = available_seats - $1, updated_at = NOW() WHERE id = $2`,
		booking.SeatCount, booking.EventID,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to decrement seats: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (id, event_id, seat_count, reference_code, contact_name, contact_email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		booking.ID,
		booking.EventID,
		booking.SeatCount,
		booking.ReferenceCode,
		booking.ContactName,
		booking.ContactEmail,
		string(booking.Status),
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			span.SetStatus(codes.Error, "reference code collision")
			return domain.ErrDuplicateReferenceCode
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a booking by its ID
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("booking_id", id.String()))

	query := `
		SELECT id, event_id, seat_count, reference_code, contact_name, contact_email,
		       status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	booking := &domain.Booking{}
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.SeatCount,
		&booking.ReferenceCode,
		&booking.ContactName,
		&booking.ContactEmail,
		&status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrBookingNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	booking.Status = domain.Status(status)

	span.SetStatus(codes.Ok, "")
	return booking, nil
}

// UpdateStatus applies a guarded status change. RowsAffected distinguishes
// a missing row from a row that is no longer in the expected state.
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("booking_id", id.String()),
		attribute.String("from_status", string(from)),
		attribute.String("to_status", string(to)),
	)

	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("failed to diagnose status update: %w", err)
		}
		if !exists {
			span.SetStatus(codes.Error, "not found")
			return domain.ErrBookingNotFound
		}
		span.SetStatus(codes.Error, "stale status")
		return domain.ErrInvalidTransition
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// CancelWithRestock cancels a booking and returns its seats to the event's
// pool in the same transaction, so a cancelled booking never holds seats.
func (r *PostgresBookingRepository) CancelWithRestock(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.booking.cancel_with_restock")
	defer span.End()

	span.SetAttributes(attribute.String("booking_id", id.String()))

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		eventID   uuid.UUID
		seatCount int
		status    string
	)
	err = tx.QueryRow(ctx,
		`SELECT event_id, seat_count, status FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&eventID, &seatCount, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return domain.ErrBookingNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to lock booking row: %w", err)
	}

	if err := domain.Status(status).ValidateTransition(domain.StatusCancelled); err != nil {
		span.SetStatus(codes.Error, "invalid transition")
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(domain.StatusCancelled), id,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE events SET available_seats = available_seats + $1, updated_at = NOW() WHERE id = $2`,
		seatCount, eventID,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to restock seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}
