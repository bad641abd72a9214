package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrlokans/buzzwords/internal/entities"
)

// Totals are the record counts shown on the stats page.
type Totals struct {
	TotalWords     int64 `json:"totalWords"`
	TotalUsers     int64 `json:"totalUsers"`
	TotalBookmarks int64 `json:"totalBookmarks"`
}

// Stats holds a random word (nil when there are none) and the totals.
type Stats struct {
	RandomWord *entities.Word `json:"randomWord"`
	Stats      Totals         `json:"stats"`
}

type StatsService struct {
	words     WordStore
	users     UserCounter
	bookmarks BookmarkStore
}

func NewStatsService(words WordStore, users UserCounter, bookmarks BookmarkStore) *StatsService {
	return &StatsService{words: words, users: users, bookmarks: bookmarks}
}

// Get runs the four independent reads concurrently.
func (s *StatsService) Get(ctx context.Context) (*Stats, error) {
	var result Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		word, err := s.words.Random(gctx)
		result.RandomWord = word
		return err
	})
	g.Go(func() error {
		n, err := s.words.Count(gctx)
		result.Stats.TotalWords = n
		return err
	})
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		result.Stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.bookmarks.Count(gctx)
		result.Stats.TotalBookmarks = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
