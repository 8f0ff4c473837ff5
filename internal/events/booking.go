package events

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"bookinn/config"
	"bookinn/infras/kafka"
	"bookinn/infras/otel"
	"bookinn/internal/domains/booking/model"
	"bookinn/shared/constant"
)

const (
	TypeBookingCreated  = "booking.created"
	TypeBookingCanceled = "booking.canceled"
)

// BookingEvent is the payload published for every booking lifecycle change.
type BookingEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// BookingPublisher emits booking lifecycle events.
type BookingPublisher interface {
	BookingCreated(ctx context.Context, booking model.Booking)
	BookingCanceled(ctx context.Context, booking model.Booking)
}

type bookingPublisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewBookingPublisher(client kafka.Client, cfg *config.Config, ot otel.Otel) BookingPublisher {
	return &bookingPublisherImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *bookingPublisherImpl) BookingCreated(ctx context.Context, booking model.Booking) {
	p.publish(ctx, BookingEvent{
		Type:      TypeBookingCreated,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
		StartDate: booking.StartDate.Format(constant.DateOnlyFormat),
		EndDate:   booking.EndDate.Format(constant.DateOnlyFormat),
	})
}

func (p *bookingPublisherImpl) BookingCanceled(ctx context.Context, booking model.Booking) {
	p.publish(ctx, BookingEvent{
		Type:      TypeBookingCanceled,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
	})
}

// publish sends the event keyed by booking id so all events of one booking
// land in the same partition. Delivery failures are logged and swallowed;
// the booking itself has already committed.
func (p *bookingPublisherImpl) publish(ctx context.Context, event BookingEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Type)
	defer scope.End()

	topic := p.cfg.Kafka.Topic.BookingEvents

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Str("type", event.Type).Msg("failed to publish booking event")
	}
}
