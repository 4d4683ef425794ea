package getArtist

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/http-server/handlers/artist/getArtist/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetArtistHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	detail := &models.ArtistDetail{
		Artist: models.Artist{
			ID:           1,
			Name:         "Guns N Petals",
			City:         "San Francisco",
			State:        "CA",
			SeekingVenue: true,
		},
		PastShows: []models.ArtistShow{},
		UpcomingShows: []models.ArtistShow{
			{ShowID: 5, VenueID: 4, VenueName: "The Musical Hop", StartTime: start},
		},
		UpcomingShowsCount: 1,
	}

	testCases := []struct {
		name           string
		artistID       string
		mockSetup      func(m *mocks.ArtistGetter)
		expectedStatus int
		expectedBody   string
		checkResponse  func(t *testing.T, resp Response)
	}{
		{
			name:    "Success",
			artistID: "1",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("ArtistDetail", mock.Anything, 1).Return(detail, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Artist)
				assert.Equal(t, "Guns N Petals", resp.Artist.Name)
				assert.True(t, resp.Artist.SeekingVenue)
				assert.Equal(t, 1, resp.Artist.UpcomingShowsCount)
				assert.Equal(t, 0, resp.Artist.PastShowsCount)
				require.Len(t, resp.Artist.UpcomingShows, 1)
				assert.Equal(t, "The Musical Hop", resp.Artist.UpcomingShows[0].VenueName)
				assert.True(t, start.Equal(resp.Artist.UpcomingShows[0].StartTime))
			},
		},
		{
			name:           "Invalid id",
			artistID:       "abc",
			mockSetup:      func(m *mocks.ArtistGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist id"}`,
		},
		{
			name:    "Not found",
			artistID: "404",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("ArtistDetail", mock.Anything, 404).Return(nil, storage.ErrArtistNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"artist not found"}`,
		},
		{
			name:    "Internal server error",
			artistID: "1",
			mockSetup: func(m *mocks.ArtistGetter) {
				m.On("ArtistDetail", mock.Anything, 1).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get artist"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewArtistGetter(t)
			tc.mockSetup(getter)

			r := chi.NewRouter()
			r.Get("/artists/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/artists/"+tc.artistID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}

			if tc.checkResponse != nil {
				var resp Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				tc.checkResponse(t, resp)
			}
		})
	}
}

func TestResponseShape(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, &models.ArtistDetail{
		Artist:         models.Artist{ID: 2, Name: "Matt Quevedo"},
		PastShows:     []models.ArtistShow{},
		UpcomingShows: []models.ArtistShow{},
	})

	assert.Contains(t, rr.Body.String(), `"past_shows":[]`)
	assert.Contains(t, rr.Body.String(), `"upcoming_shows":[]`)
	assert.Contains(t, rr.Body.String(), `"past_shows_count":0`)
	assert.Contains(t, rr.Body.String(), `"upcoming_shows_count":0`)
	assert.Contains(t, rr.Body.String(), `"name":"Matt Quevedo"`)
}
