package ports

import (
	"context"
	"time"
)

// GraphParams defines the input for rendering a graph.
type GraphParams struct {
	Login string
	From  *time.Time // nil means one year before To
	To    *time.Time // nil means now
	Theme string     // preset name, unknown falls back to default
	Size  string     // preset name, unknown falls back to medium
	Types []string   // allow-list of contribution types, empty means all
}

// GraphService defines the core business operations for building graphs.
type GraphService interface {
	ContributionsGraph(ctx context.Context, params GraphParams) ([]byte, error)
	LanguagesGraph(ctx context.Context, params GraphParams) ([]byte, error)
}
