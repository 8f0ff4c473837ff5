package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookinn/internal/domains/room/model"
	"bookinn/internal/domains/room/model/dto"
	gDto "bookinn/shared/dto"
)

func TestListRoomsRequest_FromQuery(t *testing.T) {
	tests := []struct {
		name     string
		capacity string
		minPrice string
		ordering string
		wantErr  bool
	}{
		{name: "all empty", wantErr: false},
		{name: "valid capacity", capacity: "4", wantErr: false},
		{name: "valid min price", minPrice: "99.99", wantErr: false},
		{name: "valid ordering asc", ordering: "capacity", wantErr: false},
		{name: "valid ordering desc", ordering: "-cost_per_day", wantErr: false},
		{name: "non-integer capacity", capacity: "four", wantErr: true},
		{name: "fractional capacity", capacity: "4.5", wantErr: true},
		{name: "non-numeric min price", minPrice: "cheap", wantErr: true},
		{name: "unknown ordering", ordering: "name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ListRoomsRequest{}
			err := req.FromQuery(tt.capacity, tt.minPrice, tt.ordering)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestListRoomsRequest_ToFilter(t *testing.T) {
	req := dto.ListRoomsRequest{}
	require.NoError(t, req.FromQuery("4", "50", ""))

	filter := req.ToFilter()

	assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)
	assert.Len(t, filter.Filters, 2)

	// Capacity filters by exact match, min_price is a lower bound.
	capacityFilter, ok := filter.Filters[0].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, model.FieldCapacity, capacityFilter.Field)
	assert.Equal(t, gDto.FilterOperatorEq, capacityFilter.Operator)
	assert.Equal(t, 4, capacityFilter.Value)

	priceFilter, ok := filter.Filters[1].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, model.FieldCostPerDay, priceFilter.Field)
	assert.Equal(t, gDto.FilterOperatorGreaterEq, priceFilter.Operator)
	assert.Equal(t, "50", priceFilter.Value)
}

func TestListRoomsRequest_ApplyOrdering(t *testing.T) {
	tests := []struct {
		name        string
		ordering    string
		wantSortBy  string
		wantSortDir string
	}{
		{name: "capacity ascending", ordering: "capacity", wantSortBy: model.FieldCapacity, wantSortDir: gDto.SortDirAsc},
		{name: "capacity descending", ordering: "-capacity", wantSortBy: model.FieldCapacity, wantSortDir: gDto.SortDirDesc},
		{name: "cost ascending", ordering: "cost_per_day", wantSortBy: model.FieldCostPerDay, wantSortDir: gDto.SortDirAsc},
		{name: "cost descending", ordering: "-cost_per_day", wantSortBy: model.FieldCostPerDay, wantSortDir: gDto.SortDirDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.ListRoomsRequest{}
			require.NoError(t, req.FromQuery("", "", tt.ordering))

			params := gDto.QueryParams{}
			req.ApplyOrdering(&params)

			assert.Equal(t, tt.wantSortBy, params.SortBy)
			assert.Equal(t, tt.wantSortDir, params.SortDir)
		})
	}
}

func TestAvailabilityRequest_Range(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		req := dto.AvailabilityRequest{StartDate: "2026-06-01", EndDate: "2026-06-03"}

		start, end, err := req.Range()

		require.NoError(t, err)
		assert.True(t, start.Before(end))
	})

	t.Run("single day range", func(t *testing.T) {
		req := dto.AvailabilityRequest{StartDate: "2026-06-01", EndDate: "2026-06-01"}

		start, end, err := req.Range()

		require.NoError(t, err)
		assert.Equal(t, start, end)
	})

	t.Run("start after end", func(t *testing.T) {
		req := dto.AvailabilityRequest{StartDate: "2026-06-05", EndDate: "2026-06-01"}

		_, _, err := req.Range()

		assert.Error(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := dto.AvailabilityRequest{StartDate: "01-06-2026", EndDate: "2026-06-03"}

		_, _, err := req.Range()

		assert.Error(t, err)
	})
}
