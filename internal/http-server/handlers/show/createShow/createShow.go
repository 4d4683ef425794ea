package createShow

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
	ShowID int `json:"show_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowCreator
type ShowCreator interface {
	CreateShow(ctx context.Context, in models.ShowInput) (int, error)
}

func New(log *slog.Logger, shows ShowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.createShow.New"

		log := log.With(
			slog.String("op", op),
		)

		var req forms.ShowForm

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

		in, err := req.Input()
		if err != nil {
			log.Error("invalid start time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start time"))

			return
		}

		id, err := shows.CreateShow(r.Context(), in)
		switch {
		case errors.Is(err, storage.ErrVenueNotFound):
			log.Info("venue not found", slog.Int("venue_id", in.VenueID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		case errors.Is(err, storage.ErrArtistNotFound):
			log.Info("artist not found", slog.Int("artist_id", in.ArtistID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))

			return
		case errors.Is(err, directory.ErrInvalidInput):
			log.Error("show rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid show"))

			return
		case err != nil:
			log.Error("failed to create show", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("show could not be listed"))

			return
		}

		log.Info("show created", slog.Int("id", id))

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		ShowID:   id,
	})
}
