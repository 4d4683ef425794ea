package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/lib/pq"
)

// foreignKeyViolation is the SQLSTATE PostgreSQL reports when a row references a missing parent.
const foreignKeyViolation = "23503"

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	s := New(db)

	if err = s.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func New(db *sql.DB) *Storage {
	return &Storage{DB: db}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description`

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description`

type scanner interface {
	Scan(dest ...any) error
}

func scanVenue(row scanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.City,
		&v.State,
		&v.Address,
		&v.Phone,
		&v.Genres,
		&v.ImageLink,
		&v.FacebookLink,
		&v.Website,
		&v.SeekingTalent,
		&v.SeekingDescription,
	)
	return v, err
}

func scanArtist(row scanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.City,
		&a.State,
		&a.Phone,
		&a.Genres,
		&a.ImageLink,
		&a.FacebookLink,
		&a.Website,
		&a.SeekingVenue,
		&a.SeekingDescription,
	)
	return a, err
}

func (s *Storage) Venue(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.postgres.Venue"

	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVenueNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &venue, nil
}

func (s *Storage) Venues(ctx context.Context) ([]models.Venue, error) {
	const op = "storage.postgres.Venues"

	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, id`

	venues, err := s.queryVenues(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	const op = "storage.postgres.SearchVenues"

	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1 ORDER BY name, id`

	venues, err := s.queryVenues(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get venues: %w", err)
	}
	defer rows.Close()

	venues := make([]models.Venue, 0)
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating venues: %w", err)
	}

	return venues, nil
}

func (s *Storage) CreateVenue(ctx context.Context, in models.VenueInput) (int, error) {
	const op = "storage.postgres.CreateVenue"

	query := `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link, facebook_link, website, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Address,
		in.Phone,
		in.Genres,
		in.ImageLink,
		in.FacebookLink,
		in.Website,
		in.SeekingTalent,
		in.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create venue: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateVenue(ctx context.Context, id int, in models.VenueInput) error {
	const op = "storage.postgres.UpdateVenue"

	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			image_link = $7, facebook_link = $8, website = $9, seeking_talent = $10, seeking_description = $11
		WHERE id = $12`

	result, err := s.DB.ExecContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Address,
		in.Phone,
		in.Genres,
		in.ImageLink,
		in.FacebookLink,
		in.Website,
		in.SeekingTalent,
		in.SeekingDescription,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update venue: %w", op, err)
	}

	return affectedOne(op, result, storage.ErrVenueNotFound)
}

func (s *Storage) DeleteVenue(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteVenue"

	return s.deleteParent(ctx, op, "venues", "venue_id", id, storage.ErrVenueNotFound, storage.ErrVenueHasShows)
}

func (s *Storage) UpcomingShowsByVenue(ctx context.Context, now time.Time) (map[int]int, error) {
	const op = "storage.postgres.UpcomingShowsByVenue"

	query := `
		SELECT venue_id, COUNT(*)
		FROM shows
		WHERE start_time >= $1
		GROUP BY venue_id`

	counts, err := s.countByOwner(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return counts, nil
}

func (s *Storage) Artist(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.postgres.Artist"

	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &artist, nil
}

func (s *Storage) Artists(ctx context.Context) ([]models.Artist, error) {
	const op = "storage.postgres.Artists"

	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name, id`

	artists, err := s.queryArtists(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	const op = "storage.postgres.SearchArtists"

	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1 ORDER BY name, id`

	artists, err := s.queryArtists(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}
	defer rows.Close()

	artists := make([]models.Artist, 0)
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artists: %w", err)
	}

	return artists, nil
}

func (s *Storage) CreateArtist(ctx context.Context, in models.ArtistInput) (int, error) {
	const op = "storage.postgres.CreateArtist"

	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Phone,
		in.Genres,
		in.ImageLink,
		in.FacebookLink,
		in.Website,
		in.SeekingVenue,
		in.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create artist: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateArtist(ctx context.Context, id int, in models.ArtistInput) error {
	const op = "storage.postgres.UpdateArtist"

	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5, image_link = $6,
			facebook_link = $7, website = $8, seeking_venue = $9, seeking_description = $10
		WHERE id = $11`

	result, err := s.DB.ExecContext(ctx, query,
		in.Name,
		in.City,
		in.State,
		in.Phone,
		in.Genres,
		in.ImageLink,
		in.FacebookLink,
		in.Website,
		in.SeekingVenue,
		in.SeekingDescription,
		id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update artist: %w", op, err)
	}

	return affectedOne(op, result, storage.ErrArtistNotFound)
}

func (s *Storage) DeleteArtist(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteArtist"

	return s.deleteParent(ctx, op, "artists", "artist_id", id, storage.ErrArtistNotFound, storage.ErrArtistHasShows)
}

func (s *Storage) UpcomingShowsByArtist(ctx context.Context, now time.Time) (map[int]int, error) {
	const op = "storage.postgres.UpcomingShowsByArtist"

	query := `
		SELECT artist_id, COUNT(*)
		FROM shows
		WHERE start_time >= $1
		GROUP BY artist_id`

	counts, err := s.countByOwner(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return counts, nil
}

// CreateShow checks both references and inserts inside one transaction. The
// foreign keys still guard against a parent deleted concurrently.
func (s *Storage) CreateShow(ctx context.Context, in models.ShowInput) (int, error) {
	const op = "storage.postgres.CreateShow"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var venueExists, artistExists bool

	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM venues WHERE id = $1)`, in.VenueID).Scan(&venueExists)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check venue: %w", op, err)
	}
	if !venueExists {
		return 0, storage.ErrVenueNotFound
	}

	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM artists WHERE id = $1)`, in.ArtistID).Scan(&artistExists)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check artist: %w", op, err)
	}
	if !artistExists {
		return 0, storage.ErrArtistNotFound
	}

	insertQuery := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err = tx.QueryRowContext(ctx, insertQuery, in.VenueID, in.ArtistID, in.StartTime).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			if strings.Contains(pqErr.Constraint, "artist") {
				return 0, storage.ErrArtistNotFound
			}
			return 0, storage.ErrVenueNotFound
		}
		return 0, fmt.Errorf("%s: failed to create show: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return id, nil
}

func (s *Storage) DeleteShow(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteShow"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete show: %w", op, err)
	}

	return affectedOne(op, result, storage.ErrShowNotFound)
}

const showDetailQuery = `
	SELECT s.id, s.venue_id, v.name, v.image_link, s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

func (s *Storage) Shows(ctx context.Context) ([]models.ShowDetail, error) {
	const op = "storage.postgres.Shows"

	shows, err := s.queryShows(ctx, showDetailQuery+` ORDER BY s.start_time, s.id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

func (s *Storage) VenueShows(ctx context.Context, venueID int) ([]models.ShowDetail, error) {
	const op = "storage.postgres.VenueShows"

	shows, err := s.queryShows(ctx, showDetailQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

func (s *Storage) ArtistShows(ctx context.Context, artistID int) ([]models.ShowDetail, error) {
	const op = "storage.postgres.ArtistShows"

	shows, err := s.queryShows(ctx, showDetailQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

func (s *Storage) queryShows(ctx context.Context, query string, args ...any) ([]models.ShowDetail, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get shows: %w", err)
	}
	defer rows.Close()

	shows := make([]models.ShowDetail, 0)
	for rows.Next() {
		var d models.ShowDetail
		err = rows.Scan(
			&d.ID,
			&d.VenueID,
			&d.VenueName,
			&d.VenueImageLink,
			&d.ArtistID,
			&d.ArtistName,
			&d.ArtistImageLink,
			&d.StartTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shows: %w", err)
	}

	return shows, nil
}

func (s *Storage) countByOwner(ctx context.Context, query string, args ...any) (map[int]int, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count shows: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var id, n int
		if err = rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan show count: %w", err)
		}
		counts[id] = n
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating show counts: %w", err)
	}

	return counts, nil
}

// deleteParent removes a venue or artist row after locking it and making sure
// no show still references it. table and fkColumn are package constants.
func (s *Storage) deleteParent(ctx context.Context, op, table, fkColumn string, id int, notFound, hasShows error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var locked int
	err = tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("%s: failed to lock row: %w", op, err)
	}

	var referenced bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM shows WHERE `+fkColumn+` = $1)`, id).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("%s: failed to check shows: %w", op, err)
	}
	if referenced {
		return hasShows
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func affectedOne(op string, result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: could not get rows affected: %w", op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

// likePattern turns a search term into an ILIKE substring pattern, escaping
// the wildcard characters so they match literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
