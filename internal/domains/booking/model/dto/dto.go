package dto

import (
	"time"

	"github.com/google/uuid"

	"bookinn/internal/domains/booking/model"
	"bookinn/shared"
	"bookinn/shared/constant"
	gDto "bookinn/shared/dto"
	"bookinn/shared/failure"
	gModel "bookinn/shared/model"
	"bookinn/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,dateonly"`
	EndDate   string `json:"end_date"   validate:"required,dateonly"`
}

// ToModel builds the booking for the authenticated user. Dates are date-only
// and the range is inclusive; start must not be after end.
func (c *CreateBookingRequest) ToModel(userID, username string) (model.Booking, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("start_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("end_date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if startDate.After(endDate) {
		return model.Booking{}, failure.BadRequestFromString("start_date must be before or equal to end_date") //nolint:wrapcheck
	}

	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		RoomID:     c.RoomID,
		StartDate:  startDate,
		EndDate:    endDate,
		IsCanceled: false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}, nil
}

type BookingResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	RoomID     string `json:"room_id"`
	RoomName   string `json:"room_name,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsCanceled bool   `json:"is_canceled"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.IsCanceled = model.IsCanceled
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
