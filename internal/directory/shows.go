package directory

import (
	"context"
	"fmt"

	"fyyur/internal/models"
	"fyyur/internal/notify"
)

// Shows lists every show with both sides joined, earliest first.
func (s *Service) Shows(ctx context.Context) ([]models.ShowDetail, error) {
	const op = "directory.Shows"

	shows, err := s.store.Shows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

func (s *Service) CreateShow(ctx context.Context, in models.ShowInput) (int, error) {
	const op = "directory.CreateShow"

	if err := s.check(in); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.store.CreateShow(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.ShowCreated, id, "")

	return id, nil
}

func (s *Service) DeleteShow(ctx context.Context, id int) error {
	const op = "directory.DeleteShow"

	if err := s.store.DeleteShow(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, notify.ShowDeleted, id, "")

	return nil
}
