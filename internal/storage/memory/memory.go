// Package memory keeps venues, artists and shows in process memory.
// Every operation holds the store lock for its whole duration, so each one is atomic.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fyyur/internal/lib/schedule"
	"fyyur/internal/models"
	"fyyur/internal/storage"
)

type Storage struct {
	mu sync.RWMutex

	venues  map[int]models.Venue
	artists map[int]models.Artist
	shows   map[int]models.Show

	lastVenueID  int
	lastArtistID int
	lastShowID   int
}

func New() *Storage {
	return &Storage{
		venues:  make(map[int]models.Venue),
		artists: make(map[int]models.Artist),
		shows:   make(map[int]models.Show),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) Venue(_ context.Context, id int) (*models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venue, ok := s.venues[id]
	if !ok {
		return nil, storage.ErrVenueNotFound
	}

	return &venue, nil
}

// Venues lists every venue ordered by state, city and id.
func (s *Storage) Venues(_ context.Context) ([]models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]models.Venue, 0, len(s.venues))
	for _, v := range s.venues {
		venues = append(venues, v)
	}

	sort.Slice(venues, func(i, j int) bool {
		a, b := venues[i], venues[j]
		if a.State != b.State {
			return a.State < b.State
		}
		if a.City != b.City {
			return a.City < b.City
		}
		return a.ID < b.ID
	})

	return venues, nil
}

func (s *Storage) SearchVenues(_ context.Context, term string) ([]models.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]models.Venue, 0)
	for _, v := range s.venues {
		if matches(v.Name, term) {
			venues = append(venues, v)
		}
	}

	sort.Slice(venues, func(i, j int) bool {
		return byName(venues[i].Name, venues[i].ID, venues[j].Name, venues[j].ID)
	})

	return venues, nil
}

func (s *Storage) CreateVenue(_ context.Context, in models.VenueInput) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastVenueID++
	s.venues[s.lastVenueID] = in.Venue(s.lastVenueID)

	return s.lastVenueID, nil
}

func (s *Storage) UpdateVenue(_ context.Context, id int, in models.VenueInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return storage.ErrVenueNotFound
	}

	s.venues[id] = in.Venue(id)

	return nil
}

func (s *Storage) DeleteVenue(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[id]; !ok {
		return storage.ErrVenueNotFound
	}

	for _, show := range s.shows {
		if show.VenueID == id {
			return storage.ErrVenueHasShows
		}
	}

	delete(s.venues, id)

	return nil
}

func (s *Storage) UpcomingShowsByVenue(_ context.Context, now time.Time) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, show := range s.shows {
		if schedule.IsUpcoming(show.StartTime, now) {
			counts[show.VenueID]++
		}
	}

	return counts, nil
}

func (s *Storage) Artist(_ context.Context, id int) (*models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artist, ok := s.artists[id]
	if !ok {
		return nil, storage.ErrArtistNotFound
	}

	return &artist, nil
}

// Artists lists every artist ordered by name and id.
func (s *Storage) Artists(ctx context.Context) ([]models.Artist, error) {
	return s.SearchArtists(ctx, "")
}

func (s *Storage) SearchArtists(_ context.Context, term string) ([]models.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artists := make([]models.Artist, 0)
	for _, a := range s.artists {
		if matches(a.Name, term) {
			artists = append(artists, a)
		}
	}

	sort.Slice(artists, func(i, j int) bool {
		return byName(artists[i].Name, artists[i].ID, artists[j].Name, artists[j].ID)
	})

	return artists, nil
}

func (s *Storage) CreateArtist(_ context.Context, in models.ArtistInput) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastArtistID++
	s.artists[s.lastArtistID] = in.Artist(s.lastArtistID)

	return s.lastArtistID, nil
}

func (s *Storage) UpdateArtist(_ context.Context, id int, in models.ArtistInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[id]; !ok {
		return storage.ErrArtistNotFound
	}

	s.artists[id] = in.Artist(id)

	return nil
}

func (s *Storage) DeleteArtist(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artists[id]; !ok {
		return storage.ErrArtistNotFound
	}

	for _, show := range s.shows {
		if show.ArtistID == id {
			return storage.ErrArtistHasShows
		}
	}

	delete(s.artists, id)

	return nil
}

func (s *Storage) UpcomingShowsByArtist(_ context.Context, now time.Time) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[int]int)
	for _, show := range s.shows {
		if schedule.IsUpcoming(show.StartTime, now) {
			counts[show.ArtistID]++
		}
	}

	return counts, nil
}

func (s *Storage) CreateShow(_ context.Context, in models.ShowInput) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.venues[in.VenueID]; !ok {
		return 0, storage.ErrVenueNotFound
	}
	if _, ok := s.artists[in.ArtistID]; !ok {
		return 0, storage.ErrArtistNotFound
	}

	s.lastShowID++
	s.shows[s.lastShowID] = models.Show{
		ID:        s.lastShowID,
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
		StartTime: in.StartTime,
	}

	return s.lastShowID, nil
}

func (s *Storage) DeleteShow(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shows[id]; !ok {
		return storage.ErrShowNotFound
	}

	delete(s.shows, id)

	return nil
}

// Shows lists every show joined with its venue and artist, earliest first.
func (s *Storage) Shows(_ context.Context) ([]models.ShowDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.details(func(models.Show) bool { return true }), nil
}

func (s *Storage) VenueShows(_ context.Context, venueID int) ([]models.ShowDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.details(func(show models.Show) bool { return show.VenueID == venueID }), nil
}

func (s *Storage) ArtistShows(_ context.Context, artistID int) ([]models.ShowDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.details(func(show models.Show) bool { return show.ArtistID == artistID }), nil
}

// details must be called with the lock held.
func (s *Storage) details(keep func(models.Show) bool) []models.ShowDetail {
	out := make([]models.ShowDetail, 0)

	for _, show := range s.shows {
		if !keep(show) {
			continue
		}

		venue := s.venues[show.VenueID]
		artist := s.artists[show.ArtistID]

		out = append(out, models.ShowDetail{
			ID:              show.ID,
			VenueID:         show.VenueID,
			VenueName:       venue.Name,
			VenueImageLink:  venue.ImageLink,
			ArtistID:        show.ArtistID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func matches(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

func byName(nameA string, idA int, nameB string, idB int) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}
