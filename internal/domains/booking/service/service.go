package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookinn/config"
	"bookinn/infras/otel"
	"bookinn/internal/domains/booking/model"
	"bookinn/internal/domains/booking/model/dto"
	"bookinn/internal/domains/booking/repository"
	"bookinn/internal/events"
	"bookinn/shared"
	"bookinn/shared/cache"
	"bookinn/shared/constant"
	gDto "bookinn/shared/dto"
	"bookinn/shared/failure"
)

const (
	cacheMineBooking = "booking:mine"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	ListMine(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.BookingPublisher
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.BookingPublisher) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

// Create validates the requested range, then hands the booking to the
// repository which inserts it under the room row lock. Overlap with an
// active booking surfaces as a conflict, a missing room as a bad request.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := req.ToModel(userID, username)
	if err != nil {
		return res, err
	}

	if err = s.repo.CreateExclusive(ctx, booking); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
		case errors.Is(err, repository.ErrOverlap):
			return res, failure.Conflict("room already booked for the selected dates") //nolint:wrapcheck
		default:
			log.Error().Err(err).Msg("failed to create booking")

			return res, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publisher.BookingCreated(c, booking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheMineBooking, userID))
	}()

	res.FromModel(booking)

	return res, nil
}

// Cancel marks the booking canceled for the acting user. Admins may cancel
// any booking; everyone else only their own. A booking that is absent or not
// theirs comes back as not found, a repeated cancel as a conflict.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	privileged := role == constant.RoleAdmin

	if err = s.repo.CancelExclusive(ctx, bookingID, userID, username, privileged); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return failure.NotFound("booking") //nolint:wrapcheck
		case errors.Is(err, repository.ErrAlreadyCanceled):
			return failure.Conflict("booking already canceled") //nolint:wrapcheck
		default:
			log.Error().Err(err).Msg("failed to cancel booking")

			return fmt.Errorf("failed to cancel booking: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		booking, err := s.repo.Get(c, shared.FilterByID(bookingID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to load canceled booking for event")

			return
		}

		s.publisher.BookingCanceled(c, booking)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheMineBooking, booking.UserID))
	}()

	return nil
}

// ListMine returns the acting user's bookings, newest first, with the room
// name joined in.
func (s *serviceImpl) ListMine(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Newest bookings first unless the caller asked for something else. The
	// column is qualified because the listing query joins rooms, which carries
	// its own created_at.
	if req.SortBy == "" {
		req.SortBy = model.TableName + "." + constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	filter := repository.MineFilter(userID)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheMineBooking, userID), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}
