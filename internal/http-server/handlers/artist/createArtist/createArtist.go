package createArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/directory"
	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, in models.ArtistInput) (int, error)
}

func New(log *slog.Logger, artists ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.New"

		log := log.With(
			slog.String("op", op),
		)

		var req forms.ArtistForm

		if err := forms.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		id, err := artists.CreateArtist(r.Context(), req.Input())
		if errors.Is(err, directory.ErrInvalidInput) {
			log.Error("artist rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist"))

			return
		}
		if err != nil {
			log.Error("failed to create artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist could not be listed"))

			return
		}

		log.Info("artist created", slog.Int("id", id))

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		ArtistID: id,
	})
}
