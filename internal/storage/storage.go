package storage

import "errors"

var (
	ErrVenueNotFound  = errors.New("venue not found")
	ErrArtistNotFound = errors.New("artist not found")
	ErrShowNotFound   = errors.New("show not found")

	// ErrVenueHasShows and ErrArtistHasShows reject deletes that would orphan shows.
	ErrVenueHasShows  = errors.New("venue has shows")
	ErrArtistHasShows = errors.New("artist has shows")
)
