package createArtist

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fyyur/internal/directory"
	"fyyur/internal/http-server/handlers/artist/createArtist/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateArtistHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	petals := models.ArtistInput{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Genres:       "Rock n Roll",
		SeekingVenue: true,
	}

	testCases := []struct {
		name           string
		contentType    string
		requestBody    string
		mockSetup      func(m *mocks.ArtistCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success form",
			contentType: "application/x-www-form-urlencoded",
			requestBody: url.Values{
				"csrf_token":    {"token"},
				"name":          {"Guns N Petals"},
				"city":          {"San Francisco"},
				"state":         {"CA"},
				"genres":        {"Rock n Roll"},
				"seeking_venue": {"y"},
			}.Encode(),
			mockSetup: func(m *mocks.ArtistCreator) {
				m.On("CreateArtist", mock.Anything, petals).Return(7, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","artist_id":7}`,
		},
		{
			name:        "Success JSON",
			contentType: "application/json",
			requestBody: `{
				"name": "Guns N Petals",
				"city": "San Francisco",
				"state": "CA",
				"genres": "Rock n Roll",
				"seeking_venue": "y"
			}`,
			mockSetup: func(m *mocks.ArtistCreator) {
				m.On("CreateArtist", mock.Anything, petals).Return(8, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","artist_id":8}`,
		},
		{
			name:           "Invalid JSON",
			contentType:    "application/json",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.ArtistCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing state",
			contentType:    "application/json",
			requestBody:    `{"name":"Guns N Petals","city":"San Francisco"}`,
			mockSetup:      func(m *mocks.ArtistCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "State")
			},
		},
		{
			name:        "Invalid website link",
			contentType: "application/json",
			requestBody: `{"name":"Guns N Petals","city":"San Francisco","state":"CA",
				"website_link":"not a link"}`,
			mockSetup:      func(m *mocks.ArtistCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "WebsiteLink")
			},
		},
		{
			name:        "Rejected by directory",
			contentType: "application/json",
			requestBody: `{"name":"Guns N Petals","city":"San Francisco","state":"CA","genres":"Rock n Roll",
				"seeking_venue":"y"}`,
			mockSetup: func(m *mocks.ArtistCreator) {
				m.On("CreateArtist", mock.Anything, petals).
					Return(0, fmt.Errorf("directory.CreateArtist: %w", directory.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid artist"}`,
		},
		{
			name:        "Internal server error",
			contentType: "application/json",
			requestBody: `{"name":"Guns N Petals","city":"San Francisco","state":"CA","genres":"Rock n Roll",
				"seeking_venue":"y"}`,
			mockSetup: func(m *mocks.ArtistCreator) {
				m.On("CreateArtist", mock.Anything, petals).Return(0, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"artist could not be listed"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewArtistCreator(t)
			tc.mockSetup(creator)

			handler := New(logger, creator)

			req, err := http.NewRequest(http.MethodPost, "/artists/create", strings.NewReader(tc.requestBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", tc.contentType)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, 456)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actual Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &actual))

	assert.Equal(t, "OK", actual.Status)
	assert.Equal(t, "", actual.Error)
	assert.Equal(t, 456, actual.ArtistID)
}
