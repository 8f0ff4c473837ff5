package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailableRoomsQuery(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	query, args := availableRoomsQuery(start, end)

	assert.Contains(t, query, "NOT EXISTS")
	assert.Contains(t, query, "bookings.room_id = rooms.id")
	assert.Contains(t, query, "bookings.is_canceled = false")
	assert.Contains(t, query, "bookings.start_date <= :range_end")
	assert.Contains(t, query, "bookings.end_date >= :range_start")
	assert.Contains(t, query, "ORDER BY rooms.name ASC")

	assert.Equal(t, start, args["range_start"])
	assert.Equal(t, end, args["range_end"])
}
