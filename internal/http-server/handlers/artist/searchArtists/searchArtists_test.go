package searchArtists

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fyyur/internal/http-server/handlers/artist/searchArtists/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchArtistsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	petals := models.SearchResult[models.ArtistSummary]{
		Count: 1,
		Data:  []models.ArtistSummary{{ID: 1, Name: "Guns N Petals", NumUpcomingShows: 2}},
	}

	testCases := []struct {
		name           string
		method         string
		target         string
		contentType    string
		body           string
		mockSetup      func(m *mocks.ArtistSearcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Form post",
			method:      http.MethodPost,
			target:      "/artists/search",
			contentType: "application/x-www-form-urlencoded",
			body:        "search_term=Petals&csrf_token=abc",
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "Petals").Return(petals, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","search_term":"Petals","results":{"count":1,"data":[
				{"id":1,"name":"Guns N Petals","num_upcoming_shows":2}]}}`,
		},
		{
			name:   "Query string",
			method: http.MethodGet,
			target: "/artists/search?search_term=petals",
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "petals").Return(petals, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","search_term":"petals","results":{"count":1,"data":[
				{"id":1,"name":"Guns N Petals","num_upcoming_shows":2}]}}`,
		},
		{
			name:   "Empty term and no match",
			method: http.MethodGet,
			target: "/artists/search",
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "").Return(models.SearchResult[models.ArtistSummary]{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","search_term":"","results":{"count":0,"data":[]}}`,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			target:         "/artists/search",
			contentType:    "application/json",
			body:           "{",
			mockSetup:      func(m *mocks.ArtistSearcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:   "Internal server error",
			method: http.MethodGet,
			target: "/artists/search?search_term=x",
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "x").
					Return(models.SearchResult[models.ArtistSummary]{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to search artists"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			searcher := mocks.NewArtistSearcher(t)
			tc.mockSetup(searcher)

			handler := New(logger, searcher)

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}

			req := httptest.NewRequest(tc.method, tc.target, body)
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
