package application

import (
	"context"

	"finbot-service/internal/domain"
)

// MarketSource produces a fresh QuoteSet for one upstream page. A non-nil
// error means the whole fetch failed and the set is empty; a nil error with
// missing instruments means partial data. No call may panic across this
// boundary.
type MarketSource interface {
	Fetch(ctx context.Context) (*domain.QuoteSet, error)
}

// PortfolioStore persists whole Holdings records keyed by a stable user id.
// Writes replace the record; Load returns ErrNotFound when the user has no
// portfolio yet.
type PortfolioStore interface {
	Load(ctx context.Context, userID string) (domain.Holdings, error)
	Save(ctx context.Context, userID string, h domain.Holdings) error
}
