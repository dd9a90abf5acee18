package createBooking

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	VenueID  string `json:"venueId" validate:"required"`
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
	Guests   int    `json:"guests"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
	Quote   *booking.Quote  `json:"quote"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, s *session.Session, req booking.QuoteRequest) (*models.Booking, *booking.Quote, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		sess, ok := auth.SessionFrom(r.Context())
		if !ok {
			httperr.Render(w, r, log, session.ErrNotFound, "failed to book venue")
			return
		}

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

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

		b, q, err := creator.Create(r.Context(), sess, booking.QuoteRequest{
			VenueID:  req.VenueID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   req.Guests,
		})
		if err != nil {
			httperr.Render(w, r, log, err, "failed to book venue")
			return
		}

		log.Info("venue booked", slog.String("booking_id", b.ID), slog.String("user", sess.User.Name))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, b, q)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking, q *booking.Quote) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
		Quote:    q,
	})
}
