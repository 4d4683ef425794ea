package deleteArtist

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistDeleter
type ArtistDeleter interface {
	DeleteArtist(ctx context.Context, id int) error
}

// New deletes an artist. An artist still booked for shows is kept and the
// request fails with 409.
func New(log *slog.Logger, artists ArtistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.deleteArtist.New"

		log := log.With(slog.String("op", op))

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", id))

		err = artists.DeleteArtist(r.Context(), id)
		switch {
		case errors.Is(err, storage.ErrArtistNotFound):
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		case errors.Is(err, storage.ErrArtistHasShows):
			log.Info("artist still has shows")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("artist still has shows"))
			return
		case err != nil:
			log.Error("failed to delete artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist could not be deleted"))
			return
		}

		log.Info("artist deleted")

		render.JSON(w, r, response.OK())
	}
}
