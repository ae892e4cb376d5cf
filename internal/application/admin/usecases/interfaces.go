package usecases

import "context"

// PortfolioCounter counts portfolio items platform-wide and per owner.
type PortfolioCounter interface {
	CountAll(ctx context.Context) (int64, error)
	Count(ctx context.Context, ownerID uint) (int64, error)
}

// DatabasePinger checks store reachability.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
