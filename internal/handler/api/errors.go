package api

import (
	"net/http"

	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Order matters: the first matching sentinel wins.
var errorRules = []httperr.Rule{
	{Target: errs.ErrSessionNotFound, Status: http.StatusUnauthorized, Message: "Authentication required"},
	{Target: errs.ErrSessionExpired, Status: http.StatusUnauthorized, Message: "Session expired"},
	{Target: commands.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "Invalid email or password"},
	{Target: commands.ErrUserAlreadyExists, Status: http.StatusConflict, Message: "User already exists"},

	{Target: errs.ErrForbidden, Status: http.StatusForbidden, Message: "Insufficient permissions"},
	{Target: errs.ErrDraftForbidden, Status: http.StatusForbidden, Message: "Booking form belongs to another user"},
	{Target: errs.ErrBookingForbidden, Status: http.StatusForbidden, Message: "Booking belongs to another user"},
	{Target: errs.ErrReviewByAdmin, Status: http.StatusForbidden, Message: "Reviews are written by customers only"},
	{Target: errs.ErrReviewForbidden, Status: http.StatusForbidden, Message: "Review belongs to another user"},

	{Target: errs.ErrDraftNotFound, Status: http.StatusNotFound, Message: "Booking form not found"},
	{Target: errs.ErrBookingNotFound, Status: http.StatusNotFound, Message: "Booking not found"},
	{Target: errs.ErrPromoNotFound, Status: http.StatusNotFound, Message: "Promo not found"},
	{Target: errs.ErrVenueNotFound, Status: http.StatusNotFound, Message: "Venue not found"},
	{Target: errs.ErrCateringNotFound, Status: http.StatusNotFound, Message: "Catering not found"},
	{Target: errs.ErrDishNotFound, Status: http.StatusNotFound, Message: "Dish not found"},
	{Target: errs.ErrDecorationNotFound, Status: http.StatusNotFound, Message: "Decoration not found"},
	{Target: errs.ErrCarNotFound, Status: http.StatusNotFound, Message: "Car not found"},
	{Target: errs.ErrMenuItemNotFound, Status: http.StatusNotFound, Message: "Dish is not on the catering menu"},
	{Target: errs.ErrReviewNotFound, Status: http.StatusNotFound, Message: "Review not found"},
	{Target: errs.ErrDraftExpired, Status: http.StatusGone, Message: "Booking form expired"},

	{Target: errs.ErrIdempotencyKeyRequired, Status: http.StatusBadRequest, Message: "Idempotency-Key header is required"},
	{Target: errs.ErrIdempotencyInProgress, Status: http.StatusConflict, Message: "Booking submission is currently being processed"},
	{Target: errs.ErrIdempotencyMismatch, Status: http.StatusUnprocessableEntity, Message: "Idempotency-Key was used for a different booking form"},
	{Target: commands.ErrIdempotencyCheckFailed, Status: http.StatusServiceUnavailable, Message: "Submission guard unavailable"},
	{Target: errs.ErrCarUnavailable, Status: http.StatusConflict, Message: "Car is not available"},
	{Target: queries.ErrInvalidCursor, Status: http.StatusBadRequest, Message: "Invalid cursor"},

	{Target: errs.ErrDomainValidation, Status: http.StatusUnprocessableEntity, Message: "Domain validation failed"},
	{Target: errs.ErrMarketplaceRejected, Status: http.StatusUnprocessableEntity, Message: "Rejected by marketplace"},
	{Target: errs.ErrMarketplaceUnavailable, Status: http.StatusBadGateway, Message: "Marketplace unavailable"},
	{Target: errs.ErrDatabaseOperationFailed, Status: http.StatusInternalServerError, Message: "Internal server error"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	httperr.AbortWithRules(c, err, errorRules)
}
