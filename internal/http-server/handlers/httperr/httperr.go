// Package httperr renders service errors as API responses.
package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"holidaze/internal/availability"
	"holidaze/internal/booking"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/noroff"
	"holidaze/internal/session"
	"holidaze/internal/venues"

	"github.com/go-chi/render"
)

const (
	LoginUser    = "/login/user"
	LoginManager = "/login/venue-manager"
	Home         = "/"
)

// Render writes err with the status of its class. Unknown errors become a 500 carrying
// fallback; the error itself is only logged.
func Render(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status, body := Classify(err, fallback)

	if status >= http.StatusInternalServerError {
		log.Error(fallback, sl.Err(err))
	} else {
		log.Warn(fallback, sl.Err(err), slog.Int("status", status))
	}

	render.Status(r, status)
	render.JSON(w, r, body)
}

func Classify(err error, fallback string) (int, response.Response) {
	var (
		blocked *availability.DateBlockedError
		guests  *booking.GuestsError
		apiErr  *noroff.APIError
		decErr  *noroff.DecodeError
	)

	switch {
	case errors.Is(err, availability.ErrInvalidRange):
		return http.StatusUnprocessableEntity, response.FieldError("checkOut", availability.ErrInvalidRange.Error())
	case errors.Is(err, availability.ErrStayTooLong):
		return http.StatusUnprocessableEntity, response.FieldError("checkOut", availability.ErrStayTooLong.Error())
	case errors.As(err, &blocked):
		return http.StatusUnprocessableEntity, response.FieldError(blocked.Field, blocked.Error())
	case errors.As(err, &guests):
		return http.StatusBadRequest, response.FieldError("guests", guests.Error())

	case errors.Is(err, booking.ErrVenueNotFound), errors.Is(err, venues.ErrNotFound):
		return http.StatusNotFound, response.Redirect("venue not found", Home)
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound, response.Error(booking.ErrBookingNotFound.Error())

	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		return http.StatusUnauthorized, response.Redirect("please log in", LoginUser)
	case errors.Is(err, venues.ErrNotManager):
		return http.StatusForbidden, response.Redirect(venues.ErrNotManager.Error(), LoginManager)
	case errors.Is(err, venues.ErrNotOwner):
		return http.StatusForbidden, response.Error(venues.ErrNotOwner.Error())
	case errors.Is(err, booking.ErrNotOwner):
		return http.StatusForbidden, response.Error(booking.ErrNotOwner.Error())
	case errors.Is(err, booking.ErrCancelled):
		return http.StatusConflict, response.Error(booking.ErrCancelled.Error())

	case errors.As(err, &apiErr):
		if apiErr.Status == http.StatusUnauthorized {
			return http.StatusUnauthorized, response.Redirect(apiErr.Message, LoginUser)
		}
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return apiErr.Status, response.Error(apiErr.Message)
		}
		return http.StatusBadGateway, response.Error(apiErr.Message)
	case errors.As(err, &decErr):
		return http.StatusBadGateway, response.Error("unexpected response from the booking service")

	default:
		return http.StatusInternalServerError, response.Error(fallback)
	}
}
