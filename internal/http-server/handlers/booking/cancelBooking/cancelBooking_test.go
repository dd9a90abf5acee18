package cancelBooking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/booking/cancelBooking/mocks"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/logger/handlers/slogdiscard"
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	sess := &session.Session{ID: "sid", Token: "jwt", User: models.Profile{Name: "ola"}}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, sess, "b1").Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name: "Unknown booking",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, sess, "b1").Return(booking.ErrBookingNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name: "Not owner",
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, sess, "b1").Return(booking.ErrNotOwner).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking belongs to another user"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			canceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(canceller)

			router := chi.NewRouter()
			router.Delete("/api/bookings/{id}", New(logger, canceller))

			req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
			req = req.WithContext(auth.WithSession(req.Context(), sess))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
