package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
)

const defaultSweepInterval = 10 * time.Minute

// SessionSweeper periodically drops expired sessions so the in-memory
// store does not grow with abandoned logins.
type SessionSweeper struct {
	sessions Sweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper returns a sweeper ticking every interval. A zero or
// negative interval falls back to ten minutes.
func NewSessionSweeper(sessions Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-t.C:
			if removed := s.sessions.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
