package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/PramudithaWeerakoon/radio-reservation-service/internal/domain"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/kafka"
	"github.com/PramudithaWeerakoon/radio-reservation-service/pkg/logger"
)

// Notice topics / event types
const (
	NoticeBookingConfirmed     = "reservation.confirmed"
	NoticeHirePaymentConfirmed = "hire.payment_confirmed"
)

// Notifier dispatches confirmation notices. Dispatch failures are reported
// to the caller for logging only; a committed reservation is never rolled
// back because its notice could not be sent.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking *domain.Booking) error
	HirePaymentConfirmed(ctx context.Context, hire *domain.Hire) error
}

// bookingConfirmedNotice is the published payload for a confirmed booking
type bookingConfirmedNotice struct {
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	EventID       string    `json:"event_id"`
	ReferenceCode string    `json:"reference_code"`
	SeatCount     int       `json:"seat_count"`
	ContactEmail  string    `json:"contact_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// hireConfirmedNotice is the published payload for a paid hire
type hireConfirmedNotice struct {
	Type          string    `json:"type"`
	HireID        string    `json:"hire_id"`
	ReferenceCode string    `json:"reference_code"`
	ContactEmail  string    `json:"contact_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// KafkaNotifier publishes notices to a Kafka topic
type KafkaNotifier struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaNotifier creates a Kafka-backed notifier
func NewKafkaNotifier(producer *kafka.Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) BookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	notice := bookingConfirmedNotice{
		Type:          NoticeBookingConfirmed,
		BookingID:     booking.ID.String(),
		EventID:       booking.EventID.String(),
		ReferenceCode: booking.ReferenceCode,
		SeatCount:     booking.SeatCount,
		ContactEmail:  booking.ContactEmail,
		OccurredAt:    time.Now().UTC(),
	}
	return n.producer.ProduceJSON(ctx, n.topic, booking.ID.String(), notice)
}

func (n *KafkaNotifier) HirePaymentConfirmed(ctx context.Context, hire *domain.Hire) error {
	notice := hireConfirmedNotice{
		Type:          NoticeHirePaymentConfirmed,
		HireID:        hire.ID.String(),
		ReferenceCode: hire.ReferenceCode,
		ContactEmail:  hire.ContactEmail,
		OccurredAt:    time.Now().UTC(),
	}
	return n.producer.ProduceJSON(ctx, n.topic, hire.ID.String(), notice)
}

// LogNotifier writes notices to the application log. Used when no broker is
// configured or reachable; email delivery is a log-only side effect anyway.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingConfirmed(ctx context.Context, booking *domain.Booking) error {
	logger.Get().Info("booking confirmation notice",
		zap.String("type", NoticeBookingConfirmed),
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference_code", booking.ReferenceCode),
		zap.String("contact_email", booking.ContactEmail),
	)
	return nil
}

func (n *LogNotifier) HirePaymentConfirmed(ctx context.Context, hire *domain.Hire) error {
	logger.Get().Info("hire payment confirmation notice",
		zap.String("type", NoticeHirePaymentConfirmed),
		zap.String("hire_id", hire.ID.String()),
		zap.String("reference_code", hire.ReferenceCode),
		zap.String("contact_email", hire.ContactEmail),
	)
	return nil
}
