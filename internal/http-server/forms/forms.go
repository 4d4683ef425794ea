// Package forms holds the raw request payloads accepted by the write and
// search endpoints and turns them into typed inputs.
//
// Bodies may arrive as JSON or as application/x-www-form-urlencoded. Form
// keys that no field claims (csrf tokens, submit buttons) are ignored.
package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/models"

	"github.com/ajg/form"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidStartTime = errors.New("invalid start time")
)

// Accepted start_time layouts, tried in order. Layouts without a zone are read as UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Tags is a multi-select value. A form body repeats the key once per tag; a
// JSON body may send an array or a single comma separated string.
type Tags []string

func (t *Tags) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("genres must be a string or a list of strings: %w", err)
	}

	*t = nil
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			*t = append(*t, tag)
		}
	}

	return nil
}

// String joins the tags into the stored comma separated form.
func (t Tags) String() string {
	out := make([]string, 0, len(t))
	for _, tag := range t {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return strings.Join(out, ",")
}

// multiValued is implemented by forms whose keys may repeat in a urlencoded body.
type multiValued interface {
	multiValueKeys() []string
}

type VenueForm struct {
	Name               string `json:"name" form:"name" validate:"required,max=120"`
	City               string `json:"city" form:"city" validate:"required,max=120"`
	State              string `json:"state" form:"state" validate:"required,max=120"`
	Address            string `json:"address" form:"address" validate:"required,max=120"`
	Phone              string `json:"phone" form:"phone" validate:"max=120"`
	Genres             Tags   `json:"genres" form:"genres" validate:"max=20,dive,max=120"`
	ImageLink          string `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	SeekingTalent      string `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" form:"seeking_description"`
}

func (VenueForm) multiValueKeys() []string { return []string{"genres"} }

func (f VenueForm) Input() models.VenueInput {
	return models.VenueInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres.String(),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingTalent:      Checked(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string `json:"name" form:"name" validate:"required,max=120"`
	City               string `json:"city" form:"city" validate:"required,max=120"`
	State              string `json:"state" form:"state" validate:"required,max=120"`
	Phone              string `json:"phone" form:"phone" validate:"max=120"`
	Genres             Tags   `json:"genres" form:"genres" validate:"max=20,dive,max=120"`
	ImageLink          string `json:"image_link" form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string `json:"facebook_link" form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string `json:"website_link" form:"website_link" validate:"omitempty,url,max=500"`
	SeekingVenue       string `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" form:"seeking_description" validate:"max=500"`
}

func (ArtistForm) multiValueKeys() []string { return []string{"genres"} }

func (f ArtistForm) Input() models.ArtistInput {
	return models.ArtistInput{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres.String(),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.WebsiteLink,
		SeekingVenue:       Checked(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  int    `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
	VenueID   int    `json:"venue_id" form:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
}

func (f ShowForm) Input() (models.ShowInput, error) {
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return models.ShowInput{}, err
	}

	return models.ShowInput{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: start,
	}, nil
}

type SearchForm struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

// Decode reads the request body into v, picking the decoder from Content-Type.
func Decode(r *http.Request, v any) error {
	if render.GetRequestContentType(r) == render.ContentTypeForm {
		return decodeForm(r.Body, v)
	}

	return render.DecodeJSON(r.Body, v)
}

func decodeForm(body io.Reader, v any) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return err
	}

	// The decoder keeps only the last value of a repeated key, so list keys
	// are rewritten to explicit indexes (genres.0, genres.1, ...).
	if mv, ok := v.(multiValued); ok {
		for _, key := range mv.multiValueKeys() {
			list, ok := values[key]
			if !ok {
				continue
			}
			delete(values, key)
			for i, s := range list {
				values.Set(key+"."+strconv.Itoa(i), s)
			}
		}
	}

	d := form.NewDecoder(nil)
	d.IgnoreUnknownKeys(true)

	return d.DecodeValues(v, values)
}

// SearchTerm returns the search_term of a GET query string or of a POST body.
// A missing term is the empty string, which matches everything.
func SearchTerm(r *http.Request) (string, error) {
	if r.Method == http.MethodGet || r.ContentLength == 0 {
		return r.URL.Query().Get("search_term"), nil
	}

	var f SearchForm
	if err := Decode(r, &f); err != nil {
		return "", err
	}

	return f.SearchTerm, nil
}

// Checked reports whether a checkbox value is set. Only "y" counts.
func Checked(v string) bool {
	return v == "y"
}

// ID parses the {id} URL parameter as a positive integer.
func ID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return id, nil
}

func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, s)
}
