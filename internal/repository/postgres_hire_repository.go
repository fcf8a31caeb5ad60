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

// PostgresHireRepository implements HireRepository using PostgreSQL
type PostgresHireRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHireRepository creates a new PostgresHireRepository
func NewPostgresHireRepository(pool *pgxpool.Pool) *PostgresHireRepository {
	return &PostgresHireRepository{pool: pool}
}

// Create inserts a new hire request
func (r *PostgresHireRepository) Create(ctx context.Context, hire *domain.Hire) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.hire.create")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", hire.ID.String()))

	err := r.pool.QueryRow(ctx, `
		INSERT INTO hires (id, owner_id, contact_name, contact_email, preferred_date,
		                   description, status, payment, reference_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		hire.ID,
		hire.OwnerID,
		hire.ContactName,
		hire.ContactEmail,
		hire.PreferredDate,
		hire.Description,
		string(hire.Status),
		hire.Payment,
		hire.ReferenceCode,
	).Scan(&hire.CreatedAt, &hire.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			span.SetStatus(codes.Error, "reference code collision")
			return domain.ErrDuplicateReferenceCode
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create hire: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a hire request by its ID
func (r *PostgresHireRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hire, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.hire.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", id.String()))

	query := `
		SELECT id, owner_id, contact_name, contact_email, preferred_date,
		       description, status, payment, reference_code, created_at, updated_at
		FROM hires
		WHERE id = $1
	`

	hire := &domain.Hire{}
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&hire.ID,
		&hire.OwnerID,
		&hire.ContactName,
		&hire.ContactEmail,
		&hire.PreferredDate,
		&hire.Description,
		&status,
		&hire.Payment,
		&hire.ReferenceCode,
		&hire.CreatedAt,
		&hire.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrHireNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get hire: %w", err)
	}
	hire.Status = domain.Status(status)

	span.SetStatus(codes.Ok, "")
	return hire, nil
}

// Update overwrites the mutable fields of an existing hire
func (r *PostgresHireRepository) Update(ctx context.Context, hire *domain.Hire) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.hire.update")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", hire.ID.String()))

	tag, err := r.pool.Exec(ctx, `
		UPDATE hires
		SET contact_name = $1, contact_email = $2, preferred_date = $3,
		    description = $4, payment = $5, updated_at = NOW()
		WHERE id = $6
	`,
		hire.ContactName,
		hire.ContactEmail,
		hire.PreferredDate,
		hire.Description,
		hire.Payment,
		hire.ID,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update hire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrHireNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// UpdateStatus applies a guarded status change
func (r *PostgresHireRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.Status) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.hire.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("hire_id", id.String()),
		attribute.String("from_status", string(from)),
		attribute.String("to_status", string(to)),
	)

	tag, err := r.pool.Exec(ctx,
		`UPDATE hires SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update hire status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM hires WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("failed to diagnose status update: %w", err)
		}
		if !exists {
			span.SetStatus(codes.Error, "not found")
			return domain.ErrHireNotFound
		}
		span.SetStatus(codes.Error, "stale status")
		return domain.ErrInvalidTransition
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// ConfirmPayment flips a pending hire to confirmed with payment recorded.
// The WHERE status = 'pending' guard makes repeated gateway callbacks
// harmless: only the first one changes the row.
func (r *PostgresHireRepository) ConfirmPayment(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.hire.confirm_payment")
	defer span.End()

	span.SetAttributes(attribute.String("hire_id", id.String()))

	tag, err := r.pool.Exec(ctx, `
		UPDATE hires
		SET status = $1, payment = TRUE, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`,
		string(domain.StatusConfirmed), id, string(domain.StatusPending),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("failed to confirm hire payment: %w", err)
	}

	applied := tag.RowsAffected() > 0
	span.SetAttributes(attribute.Bool("applied", applied))
	span.SetStatus(codes.Ok, "")
	return applied, nil
}
