package directory

import (
	"context"
	"fmt"

	"fyyur/internal/models"
	"fyyur/internal/notify"
)

type areaKey struct {
	city  string
	state string
}

// VenueAreas groups all venues by (city, state). Areas appear in the order
// the store first returns a venue for them.
func (s *Service) VenueAreas(ctx context.Context) ([]models.VenueArea, error) {
	const op = "directory.VenueAreas"

	now := s.now()

	venues, err := s.store.Venues(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := s.store.UpcomingShowsByVenue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	areas := make([]models.VenueArea, 0)
	index := make(map[areaKey]int)

	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}

		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, models.VenueArea{City: v.City, State: v.State, Venues: make([]models.VenueSummary, 0, 1)})
		}

		areas[i].Venues = append(areas[i].Venues, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	return areas, nil
}

// SearchVenues matches venue names case-insensitively. An empty term matches every venue.
func (s *Service) SearchVenues(ctx context.Context, term string) (models.SearchResult[models.VenueSummary], error) {
	const op = "directory.SearchVenues"

	now := s.now()

	venues, err := s.store.SearchVenues(ctx, term)
	if err != nil {
		return models.SearchResult[models.VenueSummary]{}, fmt.Errorf("%s: %w", op, err)
	}

	counts, err := s.store.UpcomingShowsByVenue(ctx, now)
	if err != nil {
		return models.SearchResult[models.VenueSummary]{}, fmt.Errorf("%s: %w", op, err)
	}

	data := make([]models.VenueSummary, 0, len(venues))
	for _, v := range venues {
		data = append(data, models.VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}

	return models.SearchResult[models.VenueSummary]{Count: len(data), Data: data}, nil
}

func (s *Service) VenueDetail(ctx context.Context, id int) (*models.VenueDetail, error) {
	const op = "directory.VenueDetail"

	now := s.now()

	venue, err := s.store.Venue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shows, err := s.store.VenueShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	past, upcoming := partitionVenueShows(shows, now)

	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Service) CreateVenue(ctx context.Context, in models.VenueInput) (int, error) {
	const op = "directory.CreateVenue"

	if err := s.check(in); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.store.CreateVenue(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.VenueCreated, id, in.Name)

	return id, nil
}

// UpdateVenue replaces every editable field of the venue with in.
func (s *Service) UpdateVenue(ctx context.Context, id int, in models.VenueInput) error {
	const op = "directory.UpdateVenue"

	if err := s.check(in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.UpdateVenue(ctx, id, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.VenueUpdated, id, in.Name)

	return nil
}

func (s *Service) DeleteVenue(ctx context.Context, id int) error {
	const op = "directory.DeleteVenue"

	if err := s.store.DeleteVenue(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.VenueDeleted, id, "")

	return nil
}
