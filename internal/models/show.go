package models

import "time"

type Show struct {
	ID        int       `json:"id"`
	VenueID   int       `json:"venue_id"`
	ArtistID  int       `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

type ShowInput struct {
	VenueID   int       `validate:"required,gt=0"`
	ArtistID  int       `validate:"required,gt=0"`
	StartTime time.Time `validate:"required"`
}

// ShowDetail is a show joined with the names and images of both sides.
type ShowDetail struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func (d ShowDetail) AtVenue() VenueShow {
	return VenueShow{
		ShowID:          d.ID,
		ArtistID:        d.ArtistID,
		ArtistName:      d.ArtistName,
		ArtistImageLink: d.ArtistImageLink,
		StartTime:       d.StartTime,
	}
}

func (d ShowDetail) ByArtist() ArtistShow {
	return ArtistShow{
		ShowID:         d.ID,
		VenueID:        d.VenueID,
		VenueName:      d.VenueName,
		VenueImageLink: d.VenueImageLink,
		StartTime:      d.StartTime,
	}
}

// SearchResult is what both search pages return; Data holds venue or artist summaries.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}
