package login

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

type Response struct {
	response.Response
	SessionID string         `json:"sessionId"`
	User      models.Profile `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*account.LoginResult, error)
}

func New(log *slog.Logger, authenticator Authenticator, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.Credentials

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		res, err := authenticator.Login(r.Context(), req)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to log in")
			return
		}

		auth.SetCookie(w, res.Session, secureCookie)

		log.Info("user logged in", slog.String("name", res.Session.User.Name))

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
