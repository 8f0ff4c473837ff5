// Package daterange holds the closed-interval date overlap predicate shared
// by booking creation and room availability. Both code paths must use this
// package so the two checks can never drift apart.
package daterange

import (
	"time"

	"bookinn/shared/dto"
)

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] intersect. Single-day ranges (start == end) are valid
// intervals, a range always overlaps itself, and the test is symmetric.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// OverlapFilter builds the SQL form of Overlaps for rows of the given table
// with start/end date columns: startField <= :range_end AND endField >= :range_start.
func OverlapFilter(table, startField, endField string, rangeStart, rangeEnd time.Time) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "range_end",
				Field:    startField,
				Operator: dto.FilterOperatorLessEq,
				Value:    rangeEnd,
				Table:    table,
			},
			dto.Filter{
				ArgName:  "range_start",
				Field:    endField,
				Operator: dto.FilterOperatorGreaterEq,
				Value:    rangeStart,
				Table:    table,
			},
		},
	}
}
