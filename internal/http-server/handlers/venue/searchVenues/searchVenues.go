package searchVenues

import (
	"context"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Results    models.SearchResult[models.VenueSummary] `json:"results"`
	SearchTerm string                                   `json:"search_term"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueSearcher
type VenueSearcher interface {
	SearchVenues(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error)
}

// New searches venue names. The term comes from the query string on GET and
// from the body on POST.
func New(log *slog.Logger, venues VenueSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.searchVenues.New"

		log := log.With(slog.String("op", op))

		term, err := forms.SearchTerm(r)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		results, err := venues.SearchVenues(r.Context(), term)
		if err != nil {
			log.Error("failed to search venues", sl.Err(err), slog.String("search_term", term))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search venues"))
			return
		}

		log.Info("venues searched", slog.String("search_term", term), slog.Int("count", results.Count))

		responseOK(w, r, results, term)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, results models.SearchResult[models.VenueSummary], term string) {
	if results.Data == nil {
		results.Data = []models.VenueSummary{}
	}

	render.JSON(w, r, Response{
		Response:   response.OK(),
		Results:    results,
		SearchTerm: term,
	})
}
