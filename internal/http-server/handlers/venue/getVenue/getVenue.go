package getVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Venue *models.VenueDetail `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	VenueDetail(ctx context.Context, id int) (*models.VenueDetail, error)
}

func New(log *slog.Logger, venues VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log := log.With(slog.String("op", op))

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", id))

		venue, err := venues.VenueDetail(r.Context(), id)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))
			return
		}

		log.Info("venue received",
			slog.Int("past_shows", venue.PastShowsCount),
			slog.Int("upcoming_shows", venue.UpcomingShowsCount),
		)

		responseOK(w, r, venue)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venue *models.VenueDetail) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Venue:    venue,
	})
}
