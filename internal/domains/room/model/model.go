package model

import "bookinn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldCapacity   = "capacity"
	FieldCostPerDay = "cost_per_day"
)

// Room is a bookable room. CostPerDay is a numeric(10,2) column scanned as
// a string so no precision is lost round-tripping through the API.
type Room struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Capacity   int    `db:"capacity"`
	CostPerDay string `db:"cost_per_day"`
	model.Metadata
}
