package updateBooking

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
	"holidaze/internal/models"
	"holidaze/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
	Guests   int    `json:"guests"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking"`
	Quote   *booking.Quote  `json:"quote"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	Update(ctx context.Context, s *session.Session, bookingID string, req booking.UpdateRequest) (*models.Booking, *booking.Quote, error)
}

// New changes the dates or guest count of one of the user's bookings.
func New(log *slog.Logger, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to update booking")
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", bookingID))

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

		b, q, err := updater.Update(r.Context(), sess, bookingID, booking.UpdateRequest{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   req.Guests,
		})
		if err != nil {
			httperr.Render(w, r, log, err, "failed to update booking")
			return
		}

		log.Info("booking updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
			Quote:    q,
		})
	}
}
