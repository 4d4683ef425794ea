package directory

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/notify"
)

func (s *Service) Artists(ctx context.Context) ([]models.ArtistSummary, error) {
	const op = "directory.Artists"

	now := s.now()

	artists, err := s.store.Artists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summaries, err := s.artistSummaries(ctx, artists, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return summaries, nil
}

func (s *Service) SearchArtists(ctx context.Context, term string) (models.SearchResult[models.ArtistSummary], error) {
	const op = "directory.SearchArtists"

	now := s.now()

	artists, err := s.store.SearchArtists(ctx, term)
	if err != nil {
		return models.SearchResult[models.ArtistSummary]{}, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.artistSummaries(ctx, artists, now)
	if err != nil {
		return models.SearchResult[models.ArtistSummary]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.SearchResult[models.ArtistSummary]{Count: len(data), Data: data}, nil
}

func (s *Service) artistSummaries(ctx context.Context, artists []models.Artist, now time.Time) ([]models.ArtistSummary, error) {
	counts, err := s.store.UpcomingShowsByArtist(ctx, now)
	if err != nil {
		return nil, err
	}

	out := make([]models.ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, models.ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}

	return out, nil
}

func (s *Service) ArtistDetail(ctx context.Context, id int) (*models.ArtistDetail, error) {
	const op = "directory.ArtistDetail"

	now := s.now()

	artist, err := s.store.Artist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	shows, err := s.store.ArtistShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	past, upcoming := partitionArtistShows(shows, now)

	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Service) CreateArtist(ctx context.Context, in models.ArtistInput) (int, error) {
	const op = "directory.CreateArtist"

	if err := s.check(in); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.store.CreateArtist(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.ArtistCreated, id, in.Name)

	return id, nil
}

// UpdateArtist replaces every editable field of the artist with in.
func (s *Service) UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error {
	const op = "directory.UpdateArtist"

	if err := s.check(in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.UpdateArtist(ctx, id, in); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.ArtistUpdated, id, in.Name)

	return nil
}

func (s *Service) DeleteArtist(ctx context.Context, id int) error {
	const op = "directory.DeleteArtist"

	if err := s.store.DeleteArtist(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.ArtistDeleted, id, "")

	return nil
}
