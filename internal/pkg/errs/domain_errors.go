package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrForbidden       = errors.New("forbidden")

	// Draft errors
	ErrDraftNotFound  = errors.New("booking draft not found")
	ErrDraftForbidden = errors.New("booking draft belongs to another session")
	ErrDraftExpired   = errors.New("booking draft expired")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingForbidden = errors.New("booking belongs to another user")
	ErrCarUnavailable   = errors.New("car unavailable")
	ErrPromoNotFound    = errors.New("promo not found")

	// Catalog errors
	ErrVenueNotFound      = errors.New("venue not found")
	ErrCateringNotFound   = errors.New("catering not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrDecorationNotFound = errors.New("decoration not found")
	ErrCarNotFound        = errors.New("car not found")
	ErrMenuItemNotFound   = errors.New("dish is not on the catering menu")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrReviewForbidden = errors.New("review belongs to another user")
	ErrReviewByAdmin   = errors.New("admins cannot write or delete reviews")

	// Marketplace errors
	ErrMarketplaceUnavailable = errors.New("marketplace unavailable")
	ErrMarketplaceRejected    = errors.New("marketplace rejected request")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyMismatch    = errors.New("idempotency key reused with different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
