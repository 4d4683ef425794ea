package listArtists

import (
	"context"
	"log/slog"
	"net/http"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Artists []models.ArtistSummary `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistLister
type ArtistLister interface {
	Artists(ctx context.Context) ([]models.ArtistSummary, error)
}

func New(log *slog.Logger, artists ArtistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.listArtists.New"

		log := log.With(slog.String("op", op))

		list, err := artists.Artists(r.Context())
		if err != nil {
			log.Error("failed to list artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list artists"))
			return
		}

		log.Info("artists listed", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artists []models.ArtistSummary) {
	if artists == nil {
		artists = []models.ArtistSummary{}
	}

	render.JSON(w, r, Response{
		Response: response.OK(),
		Artists:  artists,
	})
}
