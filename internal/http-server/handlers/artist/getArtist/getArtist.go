package getArtist

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
	Artist *models.ArtistDetail `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	ArtistDetail(ctx context.Context, id int) (*models.ArtistDetail, error)
}

func New(log *slog.Logger, artists ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtist.New"

		log := log.With(slog.String("op", op))

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", id))

		artist, err := artists.ArtistDetail(r.Context(), id)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))
			return
		}

		log.Info("artist received",
			slog.Int("past_shows", artist.PastShowsCount),
			slog.Int("upcoming_shows", artist.UpcomingShowsCount),
		)

		responseOK(w, r, artist)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artist *models.ArtistDetail) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Artist:   artist,
	})
}
