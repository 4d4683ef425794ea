package listVenues

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
	Areas []models.VenueArea `json:"areas"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueLister
type VenueLister interface {
	VenueAreas(ctx context.Context) ([]models.VenueArea, error)
}

// New lists every venue grouped by city and state.
func New(log *slog.Logger, venues VenueLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(slog.String("op", op))

		areas, err := venues.VenueAreas(r.Context())
		if err != nil {
			log.Error("failed to list venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list venues"))
			return
		}

		log.Info("venues listed", slog.Int("areas", len(areas)))

		responseOK(w, r, areas)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, areas []models.VenueArea) {
	if areas == nil {
		areas = []models.VenueArea{}
	}

	render.JSON(w, r, Response{
		Response: response.OK(),
		Areas:    areas,
	})
}
