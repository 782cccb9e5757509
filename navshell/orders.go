package navshell

import (
	"context"

	"github.com/jrsteele09/go-backoffice/backoffice"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// OrderCounts are the order totals shown in the shell. Total feeds the sidebar badge.
type OrderCounts struct {
	Total     int
	Confirmed int
	Cancelled int
}

// OrderSource counts one order collection of a hotel
type OrderSource interface {
	OrderCount(ctx context.Context, token string, kind backoffice.OrderKind, hotelID string) (int, error)
}

type Counter struct {
	source OrderSource
}

func NewCounter(source OrderSource) *Counter {
	return &Counter{source: source}
}

// Fetch requests the three collections concurrently. A failed request leaves its count at
// zero and never affects the others.
func (c *Counter) Fetch(ctx context.Context, token, hotelID string) OrderCounts {
	var counts OrderCounts
	if hotelID == "" {
		return counts
	}

	targets := []struct {
		kind  backoffice.OrderKind
		count *int
	}{
		{backoffice.OrdersTotal, &counts.Total},
		{backoffice.OrdersConfirmed, &counts.Confirmed},
		{backoffice.OrdersCancelled, &counts.Cancelled},
	}

	var g errgroup.Group
	for _, target := range targets {
		g.Go(func() error {
			n, err := c.source.OrderCount(ctx, token, target.kind, hotelID)
			if err != nil {
				log.Debug().Err(err).Str("hotel_id", hotelID).Str("orders", string(target.kind)).Msg("Order count unavailable")
				return nil
			}
			*target.count = n
			return nil
		})
	}
	_ = g.Wait()

	return counts
}
