package deleteVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int) error
}

// New deletes a venue. A venue that still hosts shows is kept and the
// request fails with 409.
func New(log *slog.Logger, venues VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(slog.String("op", op))

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", id))

		err = venues.DeleteVenue(r.Context(), id)
		switch {
		case errors.Is(err, storage.ErrVenueNotFound):
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		case errors.Is(err, storage.ErrVenueHasShows):
			log.Info("venue still has shows")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("venue still has shows"))
			return
		case err != nil:
			log.Error("failed to delete venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("venue could not be deleted"))
			return
		}

		log.Info("venue deleted")

		render.JSON(w, r, response.OK())
	}
}
