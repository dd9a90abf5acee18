package updateBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/booking/updateBooking/mocks"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "ola"}}

	update := booking.UpdateRequest{
		CheckIn:  time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
		Guests:   3,
	}
	body := `{"checkIn":"2024-03-16","checkOut":"2024-03-19","guests":3}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: body,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("Update", mock.Anything, sess, "b1", update).
					Return(&models.Booking{ID: "b1", Guests: 3}, &booking.Quote{Nights: 3}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Another user's booking",
			requestBody: body,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("Update", mock.Anything, sess, "b1", update).Return(nil, nil, booking.ErrNotOwner).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking belongs to another user"}`,
		},
		{
			name:        "Cancelled booking",
			requestBody: body,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("Update", mock.Anything, sess, "b1", update).Return(nil, nil, booking.ErrCancelled).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking is cancelled"}`,
		},
		{
			name:        "Past check-in",
			requestBody: body,
			mockSetup: func(m *mocks.BookingUpdater) {
				m.On("Update", mock.Anything, sess, "b1", update).Return(nil, nil, &availability.DateBlockedError{
					Date:  update.CheckIn,
					Past:  true,
					Field: "checkIn",
				}).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"2024-03-16 is in the past","fields":{"checkIn":"2024-03-16 is in the past"}}`,
		},
		{
			name:           "Missing check-out",
			requestBody:    `{"checkIn":"2024-03-16","guests":3}`,
			mockSetup:      func(m *mocks.BookingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field CheckOut is a required field","fields":{"CheckOut":"field CheckOut is a required field"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewBookingUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/api/bookings/{id}", New(logger, updater))

			req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1", bytes.NewBufferString(tc.requestBody))
			req = req.WithContext(auth.WithSession(req.Context(), sess))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
