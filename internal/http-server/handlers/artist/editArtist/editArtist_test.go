package editArtist

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur/internal/directory"
	"fyyur/internal/http-server/handlers/artist/editArtist/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditArtistHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	form := url.Values{
		"name":  {"Guns N Petals"},
		"city":  {"Oakland"},
		"state": {"CA"},
	}.Encode()

	// Nothing but the required fields was submitted, so everything else is cleared.
	replaced := models.ArtistInput{
		Name:  "Guns N Petals",
		City:  "Oakland",
		State: "CA",
	}

	testCases := []struct {
		name           string
		artistID       string
		requestBody    string
		mockSetup      func(m *mocks.ArtistUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			artistID:    "3",
			requestBody: form,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, 3, replaced).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","artist_id":3}`,
		},
		{
			name:           "Invalid id",
			artistID:       "abc",
			requestBody:    form,
			mockSetup:      func(m *mocks.ArtistUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist id"}`,
		},
		{
			name:           "Missing name",
			artistID:       "3",
			requestBody:    "city=Oakland&state=CA&seeking_venue=y",
			mockSetup:      func(m *mocks.ArtistUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Name is a required field"}`,
		},
		{
			name:        "Not found",
			artistID:    "99",
			requestBody: form,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, 99, replaced).
					Return(fmt.Errorf("storage.postgres.UpdateArtist: %w", storage.ErrArtistNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"artist not found"}`,
		},
		{
			name:        "Rejected by directory",
			artistID:    "3",
			requestBody: form,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, 3, replaced).Return(directory.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist"}`,
		},
		{
			name:        "Internal server error",
			artistID:    "3",
			requestBody: form,
			mockSetup: func(m *mocks.ArtistUpdater) {
				m.On("UpdateArtist", mock.Anything, 3, replaced).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"artist could not be updated"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewArtistUpdater(t)
			tc.mockSetup(updater)

			r := chi.NewRouter()
			r.Post("/artists/{id}/edit", New(logger, updater))

			req, err := http.NewRequest(http.MethodPost, "/artists/"+tc.artistID+"/edit", strings.NewReader(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
