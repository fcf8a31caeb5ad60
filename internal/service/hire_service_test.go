package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
)

func newHire() *domain.Hire {
	return &domain.Hire{
		ContactName:   "Ben Example",
		ContactEmail:  "ben@example.com",
		PreferredDate: time.Date(2026, 10, 12, 19, 0, 0, 0, time.UTC),
		Description:   "Wedding reception, two sets",
	}
}

func TestCreateHireRequiresAuthentication(t *testing.T) {
	created := false
	repo := &mockHireRepo{
		CreateFunc: func(ctx context.Context, hire *domain.Hire) error {
			created = true
			return nil
		},
	}
	svc := NewHireService(repo, &recordingNotifier{})

	err := svc.CreateHire(context.Background(), "", newHire())
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
	assert.False(t, created, "no hire row may be created for anonymous callers")
}

func TestCreateHireValidation(t *testing.T) {
	svc := NewHireService(newMemHireRepo(), &recordingNotifier{})

	h := newHire()
	h.ContactEmail = ""
	err := svc.CreateHire(context.Background(), "user-1", h)
	assert.ErrorIs(t, err, domain.ErrInvalidContactInfo)

	h = newHire()
	h.PreferredDate = time.Time{}
	err = svc.CreateHire(context.Background(), "user-1", h)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	h = newHire()
	h.Description = ""
	err = svc.CreateHire(context.Background(), "user-1", h)
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)
}

func TestHirePaymentRoundTrip(t *testing.T) {
	repo := newMemHireRepo()
	notifier := &recordingNotifier{}
	svc := NewHireService(repo, notifier)

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))
	assert.Equal(t, domain.StatusPending, hire.Status)
	assert.False(t, hire.Payment)
	assert.Regexp(t, `^HR-[A-Z0-9]{8}$`, hire.ReferenceCode)
	assert.Equal(t, "user-1", hire.OwnerID)

	// Success callback confirms and records payment.
	confirmed, err := svc.ConfirmPayment(context.Background(), hire.ID, "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.True(t, confirmed.Payment)
	assert.Len(t, notifier.hires, 1)

	// A repeated callback is a no-op returning the confirmed record.
	again, err := svc.ConfirmPayment(context.Background(), hire.ID, "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, again.Status)
	assert.True(t, again.Payment)
	assert.Len(t, notifier.hires, 1, "duplicate confirmation must not re-dispatch")

	// A late cancel redirect does not revert the confirmation.
	after, err := svc.RecordCancelledCheckout(context.Background(), hire.ID, "changed_mind")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, after.Status)
	assert.True(t, after.Payment)
}

func TestConfirmPaymentOnCancelledHire(t *testing.T) {
	repo := newMemHireRepo()
	svc := NewHireService(repo, &recordingNotifier{})

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))
	require.NoError(t, repo.UpdateStatus(context.Background(), hire.ID, domain.StatusPending, domain.StatusCancelled))

	_, err := svc.ConfirmPayment(context.Background(), hire.ID, "cs_test_999")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestConfirmPaymentUnknownHire(t *testing.T) {
	svc := NewHireService(newMemHireRepo(), &recordingNotifier{})

	_, err := svc.ConfirmPayment(context.Background(), uuid.New(), "cs_test_1")
	assert.ErrorIs(t, err, domain.ErrHireNotFound)
}

func TestRecordCancelledCheckoutKeepsPending(t *testing.T) {
	repo := newMemHireRepo()
	svc := NewHireService(repo, &recordingNotifier{})

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))

	// An abandoned checkout leaves the hire pending for a retry.
	after, err := svc.RecordCancelledCheckout(context.Background(), hire.ID, "card_declined")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, after.Status)
	assert.False(t, after.Payment)
}

func TestUpdateHire(t *testing.T) {
	repo := newMemHireRepo()
	svc := NewHireService(repo, &recordingNotifier{})

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))

	name := "Ben B. Example"
	status := "confirmed"
	updated, err := svc.UpdateHire(context.Background(), hire.ID, &UpdateHireInput{
		ContactName: &name,
		Status:      &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ben B. Example", updated.ContactName)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	// confirmed -> pending is never allowed.
	status = "pending"
	_, err = svc.UpdateHire(context.Background(), hire.ID, &UpdateHireInput{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	status = "rescheduled"
	_, err = svc.UpdateHire(context.Background(), hire.ID, &UpdateHireInput{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateHireRejectedPatchLeavesNoPartialState(t *testing.T) {
	repo := newMemHireRepo()
	svc := NewHireService(repo, &recordingNotifier{})

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))

	// A patch carrying a valid status change plus an invalid field must be
	// rejected as a whole: no status flip, no field change.
	status := "cancelled"
	empty := ""
	_, err := svc.UpdateHire(context.Background(), hire.ID, &UpdateHireInput{
		Status:       &status,
		ContactEmail: &empty,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContactInfo)

	stored, err := repo.GetByID(context.Background(), hire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Equal(t, "ben@example.com", stored.ContactEmail)
}

func TestUpdateHireCannotClearDescription(t *testing.T) {
	repo := newMemHireRepo()
	svc := NewHireService(repo, &recordingNotifier{})

	hire := newHire()
	require.NoError(t, svc.CreateHire(context.Background(), "user-1", hire))

	empty := ""
	_, err := svc.UpdateHire(context.Background(), hire.ID, &UpdateHireInput{Description: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)

	stored, err := repo.GetByID(context.Background(), hire.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wedding reception, two sets", stored.Description)
}
