package booking

import (
	"context"
	"time"

	"github.com/metinatakli/seat-booking/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type SuggestionQuery struct {
	MovieID       int
	Count         int
	PreferredTime *time.Time
}

// SuggestAlternativeShows lists every show of the movie that still has a block
// of Count adjacent seats. With a preferred time the closest shows come first,
// otherwise shows are ordered by id.
func (s *Service) SuggestAlternativeShows(ctx context.Context, q SuggestionQuery) ([]domain.Suggestion, error) {
	ctx, span := s.tracer.Start(ctx, "SuggestAlternativeShows", trace.WithAttributes(
		attribute.Int("movie.id", q.MovieID),
		attribute.Int("seats.count", q.Count),
	))
	defer span.End()

	if _, err := s.catalog.GetMovie(ctx, q.MovieID); err != nil {
		return nil, err
	}

	listings, err := s.catalog.GetShowsByMovie(ctx, q.MovieID)
	if err != nil {
		return nil, err
	}

	found := make([][]domain.Seat, len(listings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.suggestionWorkers)

	for i, listing := range listings {
		g.Go(func() error {
			block, err := s.findBlock(gctx, listing.ID, q.Count)
			if err != nil {
				return err
			}

			found[i] = block
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	suggestions := make([]domain.Suggestion, 0)
	for i, listing := range listings {
		if len(found[i]) == 0 {
			continue
		}

		suggestions = append(suggestions, domain.NewSuggestion(listing, found[i]))
	}

	domain.SortSuggestions(suggestions, q.PreferredTime)

	span.SetAttributes(attribute.Int("suggestions.count", len(suggestions)))

	return suggestions, nil
}
