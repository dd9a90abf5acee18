package quoteBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/venue/quoteBooking/mocks"
	"holidaze/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuoteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	request := booking.QuoteRequest{
		VenueID:  "v1",
		CheckIn:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 23, 0, 0, 0, 0, time.UTC),
		Guests:   2,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Quoter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"checkIn":"2024-03-20","checkOut":"2024-03-23","guests":2}`,
			mockSetup: func(m *mocks.Quoter) {
				m.On("Quote", mock.Anything, "", request).Return(&booking.Quote{
					VenueID:       "v1",
					CheckIn:       "2024-03-20",
					CheckOut:      "2024-03-23",
					Guests:        2,
					Nights:        3,
					NightlyPrice:  100,
					Total:         300,
					BookingsKnown: true,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","quote":{"venueId":"v1","checkIn":"2024-03-20","checkOut":"2024-03-23",` +
				`"guests":2,"nights":3,"nightlyPrice":100,"total":300,"bookingsKnown":true}}`,
		},
		{
			name:        "Editing excludes the booking",
			requestBody: `{"checkIn":"2024-03-20","checkOut":"2024-03-23","guests":2,"bookingId":"b1"}`,
			mockSetup: func(m *mocks.Quoter) {
				withExclusion := request
				withExclusion.ExcludeBookingID = "b1"
				m.On("Quote", mock.Anything, "", withExclusion).Return(&booking.Quote{Nights: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","quote":{"venueId":"","checkIn":"","checkOut":"","guests":0,"nights":3,"nightlyPrice":0,"total":0,"bookingsKnown":false}}`,
		},
		{
			name:           "Missing dates",
			requestBody:    `{"guests":2}`,
			mockSetup:      func(m *mocks.Quoter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{"status":"Error","error":"field CheckIn is a required field, field CheckOut is a required field",` +
				`"fields":{"CheckIn":"field CheckIn is a required field","CheckOut":"field CheckOut is a required field"}}`,
		},
		{
			name:           "Unparseable date",
			requestBody:    `{"checkIn":"tomorrow","checkOut":"2024-03-23","guests":2}`,
			mockSetup:      func(m *mocks.Quoter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date format","fields":{"checkIn":"invalid date format"}}`,
		},
		{
			name:        "Booked dates",
			requestBody: `{"checkIn":"2024-03-20","checkOut":"2024-03-23","guests":2}`,
			mockSetup: func(m *mocks.Quoter) {
				m.On("Quote", mock.Anything, "", request).Return(nil, &availability.DateBlockedError{
					Date:  time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC),
					Field: "dates",
				}).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"2024-03-21 is already booked","fields":{"dates":"2024-03-21 is already booked"}}`,
		},
		{
			name:        "Too many guests",
			requestBody: `{"checkIn":"2024-03-20","checkOut":"2024-03-23","guests":2}`,
			mockSetup: func(m *mocks.Quoter) {
				m.On("Quote", mock.Anything, "", request).Return(nil, &booking.GuestsError{Guests: 2, Max: 1}).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"this venue allows at most 1 guests","fields":{"guests":"this venue allows at most 1 guests"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			quoter := mocks.NewQuoter(t)
			tc.mockSetup(quoter)

			router := chi.NewRouter()
			router.Post("/api/venues/{id}/quote", New(logger, quoter))

			req := httptest.NewRequest(http.MethodPost, "/api/venues/v1/quote", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
