package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"bookinn/infras/otel"
	"bookinn/internal/domains/room/model/dto"
	"bookinn/internal/domains/room/service"
	"bookinn/shared/constant"
	gDto "bookinn/shared/dto"
	"bookinn/shared/validator"
	"bookinn/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details. Admin only.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms handles listing rooms with optional filters.
// @Summary List rooms
// @Description List rooms with optional capacity, min_price, and ordering filters.
// @Tags Room
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param capacity query int false "Exact capacity"
// @Param min_price query number false "Minimum cost per day"
// @Param ordering query string false "Ordering: capacity, -capacity, cost_per_day, -cost_per_day"
// @Success 200 {object} dto.GetRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(request, true)

	query := request.URL.Query()

	listReq := dto.ListRoomsRequest{}
	err := listReq.FromQuery(
		query.Get(constant.RequestParamCapacity),
		query.Get(constant.RequestParamMinPrice),
		query.Get(constant.RequestParamOrdering),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse listing filters")

		response.WithError(writer, err)

		return
	}

	listReq.ApplyOrdering(&params)

	res, err := handler.service.GetAll(ctx, params, listReq.ToFilter())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAvailableRooms lists rooms free for an inclusive date range.
// @Summary List available rooms
// @Description List rooms with no active booking overlapping [start_date, end_date].
// @Tags Room
// @Produce json
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailableRoomsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	query := request.URL.Query()

	req := dto.AvailabilityRequest{
		StartDate: query.Get(constant.RequestParamStartDate),
		EndDate:   query.Get(constant.RequestParamEndDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability range")

		response.WithError(writer, err)

		return
	}

	start, end, err := req.Range()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid availability range")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListAvailable(ctx, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list available rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID returns a single room.
// @Summary Get room by id
// @Description Get one room by its id.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
