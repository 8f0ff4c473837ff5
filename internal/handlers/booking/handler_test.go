package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "bookinn/infras/otel/mocks"
	"bookinn/internal/domains/booking/model/dto"
	serviceMocks "bookinn/internal/domains/booking/service/mocks"
	"bookinn/internal/handlers/booking"
	"bookinn/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func TestCreateBooking(t *testing.T) {
	validBody := `{"room_id":"1f7a6f9e-9f1a-4a5e-8d4f-2b6c1a8e3d90","start_date":"2026-06-01","end_date":"2026-06-03"}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *serviceMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{ID: "booking-id-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid room id rejected before the service",
			body:      `{"room_id":"not-a-uuid","start_date":"2026-06-01","end_date":"2026-06-03"}`,
			setupMock: func(svc *serviceMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date rejected before the service",
			body:      `{"room_id":"1f7a6f9e-9f1a-4a5e-8d4f-2b6c1a8e3d90","start_date":"June 1st","end_date":"2026-06-03"}`,
			setupMock: func(svc *serviceMocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "overlap maps to conflict",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.Conflict("room already booked for the selected dates"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "missing room maps to bad request",
			body: validBody,
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.BadRequestFromString("room does not exist"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/bookings/", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(svc *serviceMocks.MockBooking)
		wantCode  int
	}{
		{
			name: "canceled",
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Cancel(gomock.Any(), "booking-id-1").
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Cancel(gomock.Any(), "booking-id-1").
					Return(failure.NotFound("booking"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already canceled maps to conflict",
			setupMock: func(svc *serviceMocks.MockBooking) {
				svc.EXPECT().
					Cancel(gomock.Any(), "booking-id-1").
					Return(failure.Conflict("booking already canceled"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			tt.setupMock(mockService)

			request := httptest.NewRequest(http.MethodPost, "/bookings/booking-id-1/cancel", nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestGetMyBookings(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().
		ListMine(gomock.Any(), gomock.Any()).
		Return(dto.GetBookingsResponse{
			Bookings:  []dto.BookingResponse{{ID: "booking-id-1", RoomName: "Boardroom"}},
			TotalData: 1,
			TotalPage: 1,
		}, nil)

	request := httptest.NewRequest(http.MethodGet, "/bookings/mine?page=1&limit=10", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Boardroom")
}
