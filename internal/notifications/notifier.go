package notifications

import (
	"context"
	"time"

	"flightly/pkg/logger"
)

// Notifier emits reservation-lifecycle notifications. Implementations
// must never block the caller or propagate delivery failures; booking
// and cancellation outcomes do not depend on messaging.
type Notifier interface {
	ReservationConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo)
	ReservationCancelled(ctx context.Context, recipient Recipient, info ReservationInfo)
	ReservationExpired(ctx context.Context, recipient Recipient, info ReservationInfo)
	SlipPaymentConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo)
}

// publishTimeout bounds the background send so an unreachable broker
// cannot pile up goroutines forever.
const publishTimeout = 15 * time.Second

// ProducerNotifier publishes through a Producer, detached from the
// caller's goroutine and context.
type ProducerNotifier struct {
	producer Producer
	log      *logger.Logger
}

func NewProducerNotifier(producer Producer) *ProducerNotifier {
	return &ProducerNotifier{
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (n *ProducerNotifier) ReservationConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.publish(NotificationTypeReservationConfirmed, recipient, info)
}

func (n *ProducerNotifier) ReservationCancelled(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.publish(NotificationTypeReservationCancelled, recipient, info)
}

func (n *ProducerNotifier) ReservationExpired(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.publish(NotificationTypeReservationExpired, recipient, info)
}

func (n *ProducerNotifier) SlipPaymentConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.publish(NotificationTypeSlipPaymentConfirmed, recipient, info)
}

func (n *ProducerNotifier) publish(t NotificationType, recipient Recipient, info ReservationInfo) {
	notification := NewNotification(t, recipient, info)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := n.producer.Publish(ctx, notification); err != nil {
			n.log.WithError(err).Error("failed to publish notification",
				"type", string(t),
				"recipient", recipient.Email,
			)
		}
	}()
}

// LogNotifier is the fallback when no brokers are configured: every
// notification lands in the structured log instead of a topic.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.GetDefault()}
}

func (n *LogNotifier) ReservationConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.logNotification(NotificationTypeReservationConfirmed, recipient, info)
}

func (n *LogNotifier) ReservationCancelled(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.logNotification(NotificationTypeReservationCancelled, recipient, info)
}

func (n *LogNotifier) ReservationExpired(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.logNotification(NotificationTypeReservationExpired, recipient, info)
}

func (n *LogNotifier) SlipPaymentConfirmed(ctx context.Context, recipient Recipient, info ReservationInfo) {
	n.logNotification(NotificationTypeSlipPaymentConfirmed, recipient, info)
}

func (n *LogNotifier) logNotification(t NotificationType, recipient Recipient, info ReservationInfo) {
	n.log.Info("notification",
		"type", string(t),
		"recipient", recipient.Email,
		"reservation_number", info.ReservationNumber,
		"flight_number", info.FlightNumber,
	)
}
