package models

import "time"

type Venue struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Genres             string `json:"genres"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	Website            string `json:"website"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
}

// VenueInput carries every editable venue field. Updates replace all of them.
type VenueInput struct {
	Name               string `validate:"required,max=120"`
	City               string `validate:"required,max=120"`
	State              string `validate:"required,max=120"`
	Address            string `validate:"required,max=120"`
	Phone              string `validate:"max=120"`
	Genres             string `validate:"max=500"`
	ImageLink          string `validate:"omitempty,url,max=500"`
	FacebookLink       string `validate:"omitempty,url,max=120"`
	Website            string `validate:"omitempty,url,max=500"`
	SeekingTalent      bool
	SeekingDescription string
}

func (in VenueInput) Venue(id int) Venue {
	return Venue{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             in.Genres,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueArea groups the venues sharing one (city, state) pair.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueShow is a show seen from its venue: the counterpart is the artist.
type VenueShow struct {
	ShowID          int       `json:"show_id"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type VenueDetail struct {
	Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}
