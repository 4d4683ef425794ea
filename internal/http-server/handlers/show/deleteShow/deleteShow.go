package deleteShow

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowDeleter
type ShowDeleter interface {
	DeleteShow(ctx context.Context, id int) error
}

func New(log *slog.Logger, shows ShowDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.deleteShow.New"

		log := log.With(slog.String("op", op))

		id, err := forms.ID(r)
		if err != nil {
			log.Error("invalid show id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid show id"))
			return
		}

		log = log.With(slog.Int("show_id", id))

		err = shows.DeleteShow(r.Context(), id)
		if errors.Is(err, storage.ErrShowNotFound) {
			log.Info("show not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("show not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete show", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("show could not be deleted"))
			return
		}

		log.Info("show deleted")

		render.JSON(w, r, response.OK())
	}
}
