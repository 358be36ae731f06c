package queries

import (
	"context"

	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/usecase/shared"
)

// QuoteQueries prices a selection against a freshly loaded catalog without
// creating a draft.
type QuoteQueries interface {
	Quote(ctx context.Context, sess *session.Session, req reqdto.QuoteRequest) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	catalog    shared.CatalogLoader
	bookings   shared.BookingGateway
	calculator pricing.Calculator
	clock      clock.Clock
}

func NewQuoteQueries(catalog shared.CatalogLoader, bookings shared.BookingGateway, calculator pricing.Calculator, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		catalog:    catalog,
		bookings:   bookings,
		calculator: calculator,
		clock:      clk,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, sess *session.Session, req reqdto.QuoteRequest) (*QuoteView, error) {
	snapshot, err := q.catalog.LoadSnapshot(ctx)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}

	mine, err := q.bookings.MyBookings(ctx, sess.MarketplaceToken)
	if err != nil {
		return nil, shared.MarkUpstream(err, nil)
	}
	loyalty := shared.LoyaltyFor(mine, nil)

	now := q.clock.Now()
	sel := req.ToSelection()
	billing := q.calculator.Calculate(sel, snapshot, loyalty, now)

	promoApplied := false
	if sel.PromoID != nil {
		if p, ok := snapshot.Promo(*sel.PromoID); ok {
			promoApplied = p.IsSelectableAt(now)
		}
	}

	return &QuoteView{
		Billing:         billing,
		LoyaltyDiscount: loyalty,
		PromoApplied:    promoApplied,
		CatalogLoadedAt: snapshot.LoadedAt(),
	}, nil
}
