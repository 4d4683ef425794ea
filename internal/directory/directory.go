// Package directory implements the venue, artist and show use cases on top of
// a record store. Each call captures the current time once and uses that
// instant for every past/upcoming decision it makes.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/lib/schedule"
	"fyyur/internal/models"
	"fyyur/internal/notify"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInput = errors.New("invalid input")

const publishTimeout = 2 * time.Second

type Store interface {
	Venue(ctx context.Context, id int) (*models.Venue, error)
	Venues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	CreateVenue(ctx context.Context, in models.VenueInput) (int, error)
	UpdateVenue(ctx context.Context, id int, in models.VenueInput) error
	DeleteVenue(ctx context.Context, id int) error
	UpcomingShowsByVenue(ctx context.Context, now time.Time) (map[int]int, error)

	Artist(ctx context.Context, id int) (*models.Artist, error)
	Artists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	CreateArtist(ctx context.Context, in models.ArtistInput) (int, error)
	UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error
	DeleteArtist(ctx context.Context, id int) error
	UpcomingShowsByArtist(ctx context.Context, now time.Time) (map[int]int, error)

	CreateShow(ctx context.Context, in models.ShowInput) (int, error)
	DeleteShow(ctx context.Context, id int) error
	Shows(ctx context.Context) ([]models.ShowDetail, error)
	VenueShows(ctx context.Context, venueID int) ([]models.ShowDetail, error)
	ArtistShows(ctx context.Context, artistID int) ([]models.ShowDetail, error)
}

type Service struct {
	log       *slog.Logger
	store     Store
	publisher notify.Publisher
	validate  *validator.Validate
	now       func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of the reference instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(log *slog.Logger, store Store, publisher notify.Publisher, opts ...Option) *Service {
	if publisher == nil {
		publisher = notify.Discard{}
	}

	s := &Service{
		log:       log.With(slog.String("component", "directory")),
		store:     store,
		publisher: publisher,
		validate:  validator.New(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) check(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// publish sends the event without letting a broker failure reach the caller:
// by the time it runs the change is already committed.
func (s *Service) publish(ctx context.Context, t notify.Type, id int, name string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := notify.NewEvent(t, id, name, s.now())

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish change event",
			slog.String("type", string(t)),
			slog.Int("entity_id", id),
			sl.Err(err),
		)
	}
}

func partitionVenueShows(shows []models.ShowDetail, now time.Time) (past, upcoming []models.VenueShow) {
	views := make([]models.VenueShow, 0, len(shows))
	for _, d := range shows {
		views = append(views, d.AtVenue())
	}

	return schedule.Split(views, now, func(v models.VenueShow) time.Time { return v.StartTime })
}

func partitionArtistShows(shows []models.ShowDetail, now time.Time) (past, upcoming []models.ArtistShow) {
	views := make([]models.ArtistShow, 0, len(shows))
	for _, d := range shows {
		views = append(views, d.ByArtist())
	}

	return schedule.Split(views, now, func(v models.ArtistShow) time.Time { return v.StartTime })
}
