package dto

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"bookinn/internal/domains/room/model"
	"bookinn/shared"
	"bookinn/shared/constant"
	gDto "bookinn/shared/dto"
	"bookinn/shared/failure"
	gModel "bookinn/shared/model"
	"bookinn/shared/timezone"
)

type CreateRoomRequest struct {
	Name       string `json:"name"         validate:"required,max=100"`
	Capacity   int    `json:"capacity"     validate:"required,min=1"`
	CostPerDay string `json:"cost_per_day" validate:"required,numeric"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Capacity:   c.Capacity,
		CostPerDay: c.CostPerDay,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

const (
	OrderingCapacity       = "capacity"
	OrderingCapacityDesc   = "-capacity"
	OrderingCostPerDay     = "cost_per_day"
	OrderingCostPerDayDesc = "-cost_per_day"
)

// ListRoomsRequest carries the optional listing filters. Malformed values
// are rejected during FromQuery rather than silently dropped.
type ListRoomsRequest struct {
	Capacity *int
	MinPrice *string
	Ordering string
}

// FromQuery parses the raw query string values. Each value is optional but
// must parse when present.
func (r *ListRoomsRequest) FromQuery(capacity, minPrice, ordering string) error {
	if capacity != "" {
		value, err := shared.ConvertStringToInt(capacity)
		if err != nil {
			return failure.BadRequestFromString("capacity must be an integer") //nolint:wrapcheck
		}

		r.Capacity = &value
	}

	if minPrice != "" {
		if err := validateNumeric(minPrice); err != nil {
			return failure.BadRequestFromString("min_price must be numeric") //nolint:wrapcheck
		}

		r.MinPrice = &minPrice
	}

	switch ordering {
	case "", OrderingCapacity, OrderingCapacityDesc, OrderingCostPerDay, OrderingCostPerDayDesc:
		r.Ordering = ordering
	default:
		return failure.BadRequestFromString("invalid ordering field") //nolint:wrapcheck
	}

	return nil
}

func validateNumeric(value string) error {
	_, err := strconv.ParseFloat(value, 64)

	return err //nolint:wrapcheck
}

// ToFilter converts the parsed filters into the repository filter group.
func (r *ListRoomsRequest) ToFilter() gDto.FilterGroup {
	filters := []any{}

	if r.Capacity != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorEq,
			Value:    *r.Capacity,
			Table:    model.TableName,
		})
	}

	if r.MinPrice != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldCostPerDay,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *r.MinPrice,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// ApplyOrdering maps the ordering value onto the generic query params.
func (r *ListRoomsRequest) ApplyOrdering(params *gDto.QueryParams) {
	switch r.Ordering {
	case OrderingCapacity:
		params.SortBy = model.FieldCapacity
		params.SortDir = gDto.SortDirAsc
	case OrderingCapacityDesc:
		params.SortBy = model.FieldCapacity
		params.SortDir = gDto.SortDirDesc
	case OrderingCostPerDay:
		params.SortBy = model.FieldCostPerDay
		params.SortDir = gDto.SortDirAsc
	case OrderingCostPerDayDesc:
		params.SortBy = model.FieldCostPerDay
		params.SortDir = gDto.SortDirDesc
	}
}

// AvailabilityRequest is the date range for the availability listing.
type AvailabilityRequest struct {
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

// Range parses both dates and enforces start <= end.
func (a *AvailabilityRequest) Range() (start, end time.Time, err error) {
	start, err = time.Parse(constant.DateOnlyFormat, a.StartDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("start_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	end, err = time.Parse(constant.DateOnlyFormat, a.EndDate)
	if err != nil {
		return start, end, failure.BadRequestFromString("end_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if start.After(end) {
		return start, end, failure.BadRequestFromString("start_date must be before or equal to end_date") //nolint:wrapcheck
	}

	return start, end, nil
}

type RoomResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	CostPerDay string `json:"cost_per_day"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.CostPerDay = model.CostPerDay
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
