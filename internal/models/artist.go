package models

import "time"

type Artist struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	Genres             string `json:"genres"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	Website            string `json:"website"`
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

// ArtistInput carries every editable artist field. Updates replace all of them.
type ArtistInput struct {
	Name               string `validate:"required,max=120"`
	City               string `validate:"required,max=120"`
	State              string `validate:"required,max=120"`
	Phone              string `validate:"max=120"`
	Genres             string `validate:"max=120"`
	ImageLink          string `validate:"omitempty,url,max=500"`
	FacebookLink       string `validate:"omitempty,url,max=120"`
	Website            string `validate:"omitempty,url,max=500"`
	SeekingVenue       bool
	SeekingDescription string `validate:"max=500"`
}

func (in ArtistInput) Artist(id int) Artist {
	return Artist{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             in.Genres,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

type ArtistSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistShow is a show seen from its artist: the counterpart is the venue.
type ArtistShow struct {
	ShowID         int       `json:"show_id"`
	VenueID        int       `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

type ArtistDetail struct {
	Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}
