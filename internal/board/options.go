package board

import (
	"time"

	"github.com/plaisio/plaisio/internal/models"
)

// Option is a functional option for configuring a Store.
type Option func(*Store)

// WithHistory attaches a history sink that receives a snapshot after every
// history-worthy mutation.
func WithHistory(sink HistorySink) Option {
	return func(s *Store) {
		s.history = sink
	}
}

// WithClock overrides the timestamp source. Tests use this to make
// CreatedAt/UpdatedAt deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides task ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithColumnTitles overrides the display titles of the three columns.
func WithColumnTitles(titles map[models.Status]string) Option {
	return func(s *Store) {
		for i := range s.snap.Columns {
			if title, ok := titles[s.snap.Columns[i].ID]; ok && title != "" {
				s.snap.Columns[i].Title = title
			}
		}
	}
}
