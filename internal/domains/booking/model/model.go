package model

import (
	"fmt"
	"time"

	roomModel "bookinn/internal/domains/room/model"
	"bookinn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldRoomID     = "room_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldIsCanceled = "is_canceled"
)

// Booking is one reservation of a room for an inclusive date range.
// RoomName is joined in from rooms for read paths and never written.
type Booking struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	RoomID     string    `db:"room_id"`
	RoomName   string    `db:"room_name" table:"rooms" column:"name"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsCanceled bool      `db:"is_canceled"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %s ON %s.%s = %s.%s",
		roomModel.TableName,
		TableName, FieldRoomID,
		roomModel.TableName, roomModel.FieldID,
	)
}
