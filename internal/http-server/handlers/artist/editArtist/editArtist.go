package editArtist

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
	"fyyur/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	response.Response
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistUpdater
type ArtistUpdater interface {
	UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error
}

// New replaces every editable field of the artist with the submitted form.
// Fields left out of the form are cleared.
func New(log *slog.Logger, artists ArtistUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.New"

		log := log.With(
			slog.String("op", op),
		)

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))

			return
		}

		log = log.With(slog.Int("artist_id", id))

		var req forms.ArtistForm

		if err := forms.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		err = artists.UpdateArtist(r.Context(), id, req.Input())
		switch {
		case errors.Is(err, storage.ErrArtistNotFound):
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))

			return
		case errors.Is(err, directory.ErrInvalidInput):
			log.Error("artist rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist"))

			return
		case err != nil:
			log.Error("failed to update artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist could not be updated"))

			return
		}

		log.Info("artist updated")

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		ArtistID: id,
	})
}
