package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"bookinn/infras/otel"
	"bookinn/infras/postgres"
	"bookinn/internal/domains/booking/model"
	roomModel "bookinn/internal/domains/room/model"
	"bookinn/shared"
	"bookinn/shared/constant"
	"bookinn/shared/daterange"
	gDto "bookinn/shared/dto"
	"bookinn/shared/logger"
	gRepo "bookinn/shared/repository"
	"bookinn/shared/timezone"
)

var (
	// ErrRoomNotFound means the booking references a room that does not exist.
	ErrRoomNotFound = errors.New("room does not exist")
	// ErrOverlap means an active booking already covers part of the range.
	ErrOverlap = errors.New("room already booked for an overlapping date range")
	// ErrBookingNotFound means no booking row is visible to the acting user.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyCanceled means the booking was canceled before this request.
	ErrAlreadyCanceled = errors.New("booking already canceled")
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CreateExclusive(ctx context.Context, booking model.Booking) error
	CancelExclusive(ctx context.Context, bookingID, actingUserID, username string, privileged bool) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error().Err(err).Msg("failed to rollback transaction")
	}
}

// CreateExclusive inserts the booking while holding the row lock of its room.
// Locking the room row serializes concurrent creates for the same room, so
// the overlap re-check inside the transaction sees every committed booking
// and no two conflicting bookings can both pass it. Creates for different
// rooms do not block each other.
func (r *repositoryImpl) CreateExclusive(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateExclusive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	lockQuery := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 FOR UPDATE",
		roomModel.FieldID, roomModel.TableName, roomModel.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var roomID string

	err = tx.GetContext(ctx, &roomID, lockQuery, booking.RoomID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoomNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	conflict, err := r.ExistTx(ctx, tx, activeOverlapFilter(booking))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if conflict {
		return ErrOverlap
	}

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CancelExclusive flips is_canceled under the booking row lock. Only the
// booking row is locked, never the room row, so cancels do not serialize
// against creates for the same room. A booking that is absent or belongs to
// another non-privileged user is reported identically as not found.
func (r *repositoryImpl) CancelExclusive(ctx context.Context, bookingID, actingUserID, username string, privileged bool) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CancelExclusive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		},
	}

	if !privileged {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    actingUserID,
			Table:    model.TableName,
		})
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	booking, err := r.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if booking.ID == "" {
		return ErrBookingNotFound
	}

	if booking.IsCanceled {
		return ErrAlreadyCanceled
	}

	updatedFields := map[string]any{
		model.FieldIsCanceled:   true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err = r.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// activeOverlapFilter matches active bookings of the same room whose date
// range intersects the new booking's range.
func activeOverlapFilter(booking model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.RoomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldIsCanceled,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
			daterange.OverlapFilter(model.TableName, model.FieldStartDate, model.FieldEndDate, booking.StartDate, booking.EndDate),
		},
	}
}

// MineFilter selects every booking owned by the given user.
func MineFilter(userID string) gDto.FilterGroup {
	return shared.FilterByID(userID, model.FieldUserID, model.TableName)
}
