package request

import (
	"time"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/catalog"
)

type CreatePromoRequest struct {
	Name     string    `json:"name" binding:"required"`
	Discount float64   `json:"discount" binding:"required"`
	Expiry   time.Time `json:"expiry" binding:"required"`
}

func (r CreatePromoRequest) ToDomain(now time.Time) (catalog.Promo, error) {
	return catalog.NewPromo(r.Name, r.Discount, r.Expiry.UTC(), now)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}
