package quoteBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"holidaze/internal/availability"
	"holidaze/internal/booking"
	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
	Guests    int    `json:"guests"`
	BookingID string `json:"bookingId,omitempty"`
}

type Response struct {
	response.Response
	Quote *booking.Quote `json:"quote"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Quoter
type Quoter interface {
	Quote(ctx context.Context, token string, req booking.QuoteRequest) (*booking.Quote, error)
}

// New prices a candidate stay without booking it. bookingId names a booking being
// edited, whose own dates do not count as taken.
func New(log *slog.Logger, quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.quoteBooking.New"

		log := log.With(slog.String("op", op))

		venueID := chi.URLParam(r, "id")
		if venueID == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		checkIn, err := availability.ParseDate(req.CheckIn)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("checkIn", "invalid date format"))
			return
		}

		checkOut, err := availability.ParseDate(req.CheckOut)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("checkOut", "invalid date format"))
			return
		}

		q, err := quoter.Quote(r.Context(), auth.Token(r.Context()), booking.QuoteRequest{
			VenueID:          venueID,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			Guests:           req.Guests,
			ExcludeBookingID: req.BookingID,
		})
		if err != nil {
			httperr.Render(w, r, log, err, "failed to price stay")
			return
		}

		log.Info("stay priced", slog.String("venue_id", venueID), slog.Int("nights", q.Nights))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Quote:    q,
		})
	}
}
