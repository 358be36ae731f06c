package shared

import (
	"context"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/review"
	"wedding-console/internal/domain/session"
	"wedding-console/internal/domain/user"
	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Marketplace ports. The marketplace API owns accounts, catalogs and
// bookings; token is the marketplace access token held by the session.

type MarketplaceAuth interface {
	Signup(ctx context.Context, reg *user.Registration) (session.User, string, error)
	Login(ctx context.Context, creds user.Credentials) (session.User, string, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (session.User, error)
}

type CatalogLoader interface {
	LoadSnapshot(ctx context.Context) (*catalog.Snapshot, error)
}

type BookingGateway interface {
	GetBooking(ctx context.Context, token string, id uuid.UUID) (readmodel.BookingRM, error)
	MyBookings(ctx context.Context, token string) ([]readmodel.BookingRM, error)
	AllBookings(ctx context.Context, token string) ([]readmodel.BookingRM, error)
	CreateBooking(ctx context.Context, token string, sub booking.Submission) (readmodel.BookingRM, error)
	UpdateBooking(ctx context.Context, token string, id uuid.UUID, sub booking.Submission) (readmodel.BookingRM, error)
	UpdateBookingStatus(ctx context.Context, token string, id uuid.UUID, status booking.Status) (readmodel.BookingRM, error)
	DeleteBooking(ctx context.Context, token string, id uuid.UUID) error
	ReserveCar(ctx context.Context, token string, carID, bookingID uuid.UUID) (readmodel.CarReservationRM, error)
	ReleaseCarReservation(ctx context.Context, token string, reservationID uuid.UUID) error
}

type PromoGateway interface {
	CreatePromo(ctx context.Context, token string, p catalog.Promo) (catalog.Promo, error)
	DeletePromo(ctx context.Context, token string, id uuid.UUID) error
}

type ReviewGateway interface {
	ListVenueReviews(ctx context.Context, venueID uuid.UUID) ([]review.Review, error)
	CreateVenueReview(ctx context.Context, token string, sub review.Submission) (review.Review, error)
	DeleteVenueReview(ctx context.Context, token string, reviewID uuid.UUID) error
}

// CatalogAdminGateway edits the catalogs the booking form picks from. Open
// drafts keep the snapshot they were opened with.
type CatalogAdminGateway interface {
	DeleteCatalogItem(ctx context.Context, token string, kind catalog.ItemKind, id uuid.UUID) error
	LinkCateringDish(ctx context.Context, token string, cateringID, dishID uuid.UUID) error
	UnlinkCateringDish(ctx context.Context, token string, cateringID, dishID uuid.UUID) error
}

type UserDirectory interface {
	ListUsers(ctx context.Context, token string) ([]session.User, error)
}

// Redis-backed stores

type SessionStore interface {
	Save(ctx context.Context, sess *session.Session) error
	Load(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type IdempotencyStore interface {
	Begin(ctx context.Context, key string, userID uuid.UUID, requestHash string) (*readmodel.IdempotencyKeyRM, bool, error)
	Complete(ctx context.Context, rec readmodel.IdempotencyKeyRM, bookingID uuid.UUID) error
	Abort(ctx context.Context, userID uuid.UUID, key string) error
}
