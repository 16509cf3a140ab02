package memtree

import (
	"time"

	"github.com/vvka-141/memtree/internal/logging"
)

// settings is shared by every directory of one FileSystem.
type settings struct {
	sep           rune
	now           func() time.Time
	logger        Logger
	reportMissing bool
}

func defaultSettings() *settings {
	return &settings{
		sep:    DefaultSeparator,
		now:    time.Now,
		logger: logging.NewNullLogger(),
	}
}

// Option configures a FileSystem created by New.
type Option func(*settings)

// WithSeparator sets the rune that separates path segments.
func WithSeparator(sep rune) Option {
	return func(s *settings) {
		s.sep = sep
	}
}

// WithClock replaces the clock used to stamp node timestamps.
// The clock is read exactly once per created node.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger receiving Verbose traces of path operations.
func WithLogger(logger Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReportMissing makes Delete return ErrNotFound for absent paths
// instead of silently succeeding.
func WithReportMissing(report bool) Option {
	return func(s *settings) {
		s.reportMissing = report
	}
}
