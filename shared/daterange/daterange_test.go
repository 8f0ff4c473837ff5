package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookinn/shared/daterange"
)

func day(offset int) time.Time {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return base.AddDate(0, 0, offset)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		expected                       bool
	}{
		{
			name:   "identical ranges overlap",
			aStart: 0, aEnd: 2, bStart: 0, bEnd: 2,
			expected: true,
		},
		{
			name:   "single day range overlaps itself",
			aStart: 1, aEnd: 1, bStart: 1, bEnd: 1,
			expected: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: 0, aEnd: 2, bStart: 2, bEnd: 4,
			expected: true,
		},
		{
			name:   "containment",
			aStart: 0, aEnd: 5, bStart: 2, bEnd: 3,
			expected: true,
		},
		{
			name:   "single day inside range",
			aStart: 1, aEnd: 1, bStart: 0, bEnd: 2,
			expected: true,
		},
		{
			name:   "adjacent ranges share boundary day",
			aStart: 0, aEnd: 2, bStart: 2, bEnd: 2,
			expected: true,
		},
		{
			name:   "disjoint ranges",
			aStart: 0, aEnd: 1, bStart: 3, bEnd: 4,
			expected: false,
		},
		{
			name:   "disjoint by one day",
			aStart: 0, aEnd: 1, bStart: 2, bEnd: 3,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.expected, got)

			// The predicate is symmetric by definition.
			mirrored := daterange.Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			assert.Equal(t, got, mirrored)
		})
	}
}

func TestOverlapsReflexive(t *testing.T) {
	for offset := range 10 {
		start := day(offset)
		end := day(offset + offset%3)

		assert.True(t, daterange.Overlaps(start, end, start, end))
	}
}

func TestOverlapFilter(t *testing.T) {
	filter := daterange.OverlapFilter("bookings", "start_date", "end_date", day(0), day(2))

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.start_date <= :range_end")
	assert.Contains(t, where, "bookings.end_date >= :range_start")
	assert.Contains(t, where, " AND ")
	assert.Equal(t, day(2), args["range_end"])
	assert.Equal(t, day(0), args["range_start"])
}
