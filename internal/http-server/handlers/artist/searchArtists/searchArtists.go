package searchArtists

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
	Results    models.SearchResult[models.ArtistSummary] `json:"results"`
	SearchTerm string                                    `json:"search_term"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistSearcher
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error)
}

// New searches artist names. The term comes from the query string on GET and
// from the body on POST.
func New(log *slog.Logger, artists ArtistSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.searchArtists.New"

		log := log.With(slog.String("op", op))

		term, err := forms.SearchTerm(r)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		results, err := artists.SearchArtists(r.Context(), term)
		if err != nil {
			log.Error("failed to search artists", sl.Err(err), slog.String("search_term", term))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search artists"))
			return
		}

		log.Info("artists searched", slog.String("search_term", term), slog.Int("count", results.Count))

		responseOK(w, r, results, term)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, results models.SearchResult[models.ArtistSummary], term string) {
	if results.Data == nil {
		results.Data = []models.ArtistSummary{}
	}

	render.JSON(w, r, Response{
		Response:   response.OK(),
		Results:    results,
		SearchTerm: term,
	})
}
