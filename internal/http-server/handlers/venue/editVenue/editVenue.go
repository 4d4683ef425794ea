package editVenue

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
	VenueID int `json:"venue_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueUpdater
type VenueUpdater interface {
	UpdateVenue(ctx context.Context, id int, in models.VenueInput) error
}

// New replaces every editable field of the venue with the submitted form.
// Fields left out of the form are cleared.
func New(log *slog.Logger, venues VenueUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.New"

		log := log.With(
			slog.String("op", op),
		)

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))

			return
		}

		log = log.With(slog.Int("venue_id", id))

		var req forms.VenueForm

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

		err = venues.UpdateVenue(r.Context(), id, req.Input())
		switch {
		case errors.Is(err, storage.ErrVenueNotFound):
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		case errors.Is(err, directory.ErrInvalidInput):
			log.Error("venue rejected", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue"))

			return
		case err != nil:
			log.Error("failed to update venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("venue could not be updated"))

			return
		}

		log.Info("venue updated")

		responseOK(w, r, id)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id int) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		VenueID:  id,
	})
}
