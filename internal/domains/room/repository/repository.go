package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingModel "bookinn/internal/domains/booking/model"
	"bookinn/infras/otel"
	"bookinn/infras/postgres"
	"bookinn/internal/domains/room/model"
	"bookinn/shared/constant"
	"bookinn/shared/daterange"
	gDto "bookinn/shared/dto"
	"bookinn/shared/logger"
	gRepo "bookinn/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListAvailable(ctx context.Context, start, end time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

var roomColumns = strings.Join([]string{
	model.TableName + "." + model.FieldID,
	model.TableName + "." + model.FieldName,
	model.TableName + "." + model.FieldCapacity,
	model.TableName + "." + model.FieldCostPerDay,
	model.TableName + ".created_at",
	model.TableName + ".modified_at",
	model.TableName + ".created_by",
	model.TableName + ".modified_by",
}, ", ")

// ListAvailable returns every room with no active booking overlapping
// [start, end]. It is a plain snapshot read on the read connection and takes
// no locks; the NOT EXISTS anti-join also deduplicates rooms with several
// bookings. The overlap fragment is the same one the booking create path
// re-checks under its lock.
func (r *repositoryImpl) ListAvailable(ctx context.Context, start, end time.Time) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ListAvailable")
	defer scope.End()

	query, args := availableRoomsQuery(start, end)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return rooms, nil
}

func availableRoomsQuery(start, end time.Time) (string, map[string]any) {
	overlapFilter := daterange.OverlapFilter(
		bookingModel.TableName,
		bookingModel.FieldStartDate,
		bookingModel.FieldEndDate,
		start,
		end,
	)
	overlap, args := overlapFilter.GetWhereClause()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE NOT EXISTS (
		SELECT 1 FROM %s
		WHERE %s.%s = %s.%s
		AND %s.%s = false
		AND %s
	) ORDER BY %s.%s ASC`,
		roomColumns, model.TableName,
		bookingModel.TableName,
		bookingModel.TableName, bookingModel.FieldRoomID, model.TableName, model.FieldID,
		bookingModel.TableName, bookingModel.FieldIsCanceled,
		overlap,
		model.TableName, model.FieldName,
	)

	return query, args
}
