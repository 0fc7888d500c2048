package services

import (
	"time"

	"github.com/qkitzero/github-contribution-growth-graph/internal/core/ports"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

var _ ports.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
