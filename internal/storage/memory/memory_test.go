package memory

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	id, err := s.CreateVenue(ctx, models.VenueInput{Name: "The Fillmore", City: "San Francisco", State: "CA", Address: "1805 Geary Blvd", SeekingTalent: true})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	venue, err := s.Venue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore", venue.Name)
	assert.True(t, venue.SeekingTalent)

	err = s.UpdateVenue(ctx, id, models.VenueInput{Name: "The Fillmore West", City: "San Francisco", State: "CA", Address: "10 South Van Ness"})
	require.NoError(t, err)

	venue, err = s.Venue(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "The Fillmore West", venue.Name)
	assert.False(t, venue.SeekingTalent)

	require.NoError(t, s.DeleteVenue(ctx, id))

	_, err = s.Venue(ctx, id)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)
}

func TestMissingRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	_, err := s.Venue(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)

	_, err = s.Artist(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrArtistNotFound)

	assert.ErrorIs(t, s.UpdateVenue(ctx, 42, models.VenueInput{Name: "x"}), storage.ErrVenueNotFound)
	assert.ErrorIs(t, s.UpdateArtist(ctx, 42, models.ArtistInput{Name: "x"}), storage.ErrArtistNotFound)
	assert.ErrorIs(t, s.DeleteVenue(ctx, 42), storage.ErrVenueNotFound)
	assert.ErrorIs(t, s.DeleteArtist(ctx, 42), storage.ErrArtistNotFound)
	assert.ErrorIs(t, s.DeleteShow(ctx, 42), storage.ErrShowNotFound)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	for _, name := range []string{"John Smith", "Guns N Petals", "The Smiths"} {
		_, err := s.CreateArtist(ctx, models.ArtistInput{Name: name, City: "c", State: "s"})
		require.NoError(t, err)
	}

	found, err := s.SearchArtists(ctx, "smith")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "John Smith", found[0].Name)
	assert.Equal(t, "The Smiths", found[1].Name)

	all, err := s.SearchArtists(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.SearchArtists(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateShowChecksReferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	start := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)

	venueID, err := s.CreateVenue(ctx, models.VenueInput{Name: "Venue"})
	require.NoError(t, err)
	artistID, err := s.CreateArtist(ctx, models.ArtistInput{Name: "Artist"})
	require.NoError(t, err)

	_, err = s.CreateShow(ctx, models.ShowInput{VenueID: 99, ArtistID: artistID, StartTime: start})
	assert.ErrorIs(t, err, storage.ErrVenueNotFound)

	_, err = s.CreateShow(ctx, models.ShowInput{VenueID: venueID, ArtistID: 99, StartTime: start})
	assert.ErrorIs(t, err, storage.ErrArtistNotFound)

	showID, err := s.CreateShow(ctx, models.ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: start})
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteVenue(ctx, venueID), storage.ErrVenueHasShows)
	assert.ErrorIs(t, s.DeleteArtist(ctx, artistID), storage.ErrArtistHasShows)

	require.NoError(t, s.DeleteShow(ctx, showID))
	assert.NoError(t, s.DeleteVenue(ctx, venueID))
	assert.NoError(t, s.DeleteArtist(ctx, artistID))
}

func TestShowsJoinedAndOrdered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	venueID, err := s.CreateVenue(ctx, models.VenueInput{Name: "Venue", ImageLink: "https://img/v"})
	require.NoError(t, err)
	otherVenueID, err := s.CreateVenue(ctx, models.VenueInput{Name: "Other"})
	require.NoError(t, err)
	artistID, err := s.CreateArtist(ctx, models.ArtistInput{Name: "Artist", ImageLink: "https://img/a"})
	require.NoError(t, err)

	_, err = s.CreateShow(ctx, models.ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.CreateShow(ctx, models.ShowInput{VenueID: venueID, ArtistID: artistID, StartTime: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = s.CreateShow(ctx, models.ShowInput{VenueID: otherVenueID, ArtistID: artistID, StartTime: now})
	require.NoError(t, err)

	shows, err := s.Shows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 3)
	assert.Equal(t, 2, shows[0].ID)
	assert.Equal(t, 3, shows[1].ID)
	assert.Equal(t, 1, shows[2].ID)
	assert.Equal(t, "Venue", shows[0].VenueName)
	assert.Equal(t, "https://img/v", shows[0].VenueImageLink)
	assert.Equal(t, "Artist", shows[0].ArtistName)
	assert.Equal(t, "https://img/a", shows[0].ArtistImageLink)

	venueShows, err := s.VenueShows(ctx, venueID)
	require.NoError(t, err)
	assert.Len(t, venueShows, 2)

	artistShows, err := s.ArtistShows(ctx, artistID)
	require.NoError(t, err)
	assert.Len(t, artistShows, 3)

	byVenue, err := s.UpcomingShowsByVenue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{venueID: 1, otherVenueID: 1}, byVenue)

	byArtist, err := s.UpcomingShowsByArtist(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{artistID: 2}, byArtist)
}

func TestVenuesOrderedByArea(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	inputs := []models.VenueInput{
		{Name: "A", City: "San Francisco", State: "CA"},
		{Name: "B", City: "New York", State: "NY"},
		{Name: "C", City: "Oakland", State: "CA"},
		{Name: "D", City: "San Francisco", State: "CA"},
	}
	for _, in := range inputs {
		_, err := s.CreateVenue(ctx, in)
		require.NoError(t, err)
	}

	venues, err := s.Venues(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(venues))
	for _, v := range venues {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"C", "A", "D", "B"}, names)
}
