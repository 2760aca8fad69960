package ui

import (
	"sync/atomic"
	"time"

	"github.com/brogergvhs/erosscans/internal/util"
)

type Stats struct {
	TotalChapters atomic.Int64
	TotalPages    atomic.Int64
	TotalBytes    atomic.Int64
	Failed        atomic.Int64

	start time.Time
}

func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// Summary logs one line with the totals of the run.
func (s *Stats) Summary(log *Logger) {
	log.Infof("resolved %d chapters, %d pages (%s fetched, %d failed) in %s",
		s.TotalChapters.Load(),
		s.TotalPages.Load(),
		util.Human(s.TotalBytes.Load()),
		s.Failed.Load(),
		time.Since(s.start).Round(time.Millisecond),
	)
}
