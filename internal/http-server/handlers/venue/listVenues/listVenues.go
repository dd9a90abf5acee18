package listVenues

import (
	"context"
	"log/slog"
	"net/http"

	"holidaze/internal/http-server/handlers/httperr"
	"holidaze/internal/lib/api/response"
	"holidaze/internal/lib/logger/sl"
	"holidaze/internal/venues"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	venues.Result
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueSearcher
type VenueSearcher interface {
	Search(ctx context.Context, q venues.Query) (venues.Result, error)
}

func New(log *slog.Logger, searcher VenueSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(slog.String("op", op))

		q, err := venues.ParseQuery(r.URL.Query())
		if err != nil {
			log.Error("invalid query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		res, err := searcher.Search(r.Context(), q)
		if err != nil {
			httperr.Render(w, r, log, err, "failed to get venues")
			return
		}

		log.Info("venues listed",
			slog.Int("total", res.Total),
			slog.Int("shown", len(res.Venues)),
		)

		responseOK(w, r, res)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, res venues.Result) {
	if res.Venues == nil {
		res.Venues = []venues.Summary{}
	}

	render.JSON(w, r, Response{
		Response: response.OK(),
		Result:   res,
	})
}
