package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"holidaze/internal/account"
	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/http-server/middleware/auth"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name         string        `json:"name" validate:"required,max=20"`
	Email        string        `json:"email" validate:"required,email"`
	Password     string        `json:"password" validate:"required,min=8"`
	Bio          string        `json:"bio,omitempty" validate:"max=160"`
	Avatar       *models.Media `json:"avatar,omitempty"`
	Banner       *models.Media `json:"banner,omitempty"`
	VenueManager bool          `json:"venueManager"`
}

type Response struct {
	response.Response
	SessionID string         `json:"sessionId"`
	User      models.Profile `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, reg models.Registration) (*account.LoginResult, error)
}

func New(log *slog.Logger, registrar Registrar, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded",
			slog.String("name", req.Name),
			slog.Bool("venue_manager", req.VenueManager),
		)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		res, err := registrar.Register(r.Context(), models.Registration{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			Bio:          req.Bio,
			Avatar:       req.Avatar,
			Banner:       req.Banner,
			VenueManager: req.VenueManager,
		})
		if err != nil {
			httperr.Render(w, r, log, err, "failed to register")
			return
		}

		auth.SetCookie(w, res.Session, secureCookie)

		log.Info("user registered", slog.String("name", req.Name))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, res)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, res *account.LoginResult) {
	resp := response.OK()
	resp.Redirect = res.Redirect

	render.JSON(w, r, Response{
		Response:  resp,
		SessionID: res.Session.ID,
		User:      res.Session.User,
	})
}
