//go:build unit || e2e

package fakemarket

import (
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The marketplace writes naive timestamps.
const naiveLayout = "2006-01-02T15:04:05"

func naive(t time.Time) string {
	return t.UTC().Format(naiveLayout)
}

func venueJSON(v catalog.Venue) gin.H {
	return gin.H{
		"venue_id":            v.ID,
		"venue_name":          v.Name,
		"venue_address":       v.Address,
		"venue_capacity":      v.Capacity,
		"venue_price_per_day": v.PricePerDay,
	}
}

func cateringJSON(c catalog.Catering) gin.H {
	items := make([]gin.H, 0, len(c.MenuDishIDs))
	for _, id := range c.MenuDishIDs {
		items = append(items, gin.H{"catering_id": c.ID, "dish_id": id})
	}
	return gin.H{
		"catering_id":         c.ID,
		"catering_name":       c.Name,
		"catering_menu_items": items,
	}
}

func decorationJSON(d catalog.Decoration) gin.H {
	return gin.H{
		"decoration_id":    d.ID,
		"decoration_name":  d.Name,
		"decoration_price": d.Price,
	}
}

func promoJSON(p catalog.Promo) gin.H {
	return gin.H{
		"promo_id":       p.ID,
		"promo_name":     p.Name,
		"promo_expiry":   naive(p.Expiry),
		"promo_discount": p.Discount,
	}
}

func (s *Server) venues() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Venues))
	for _, v := range s.catalog.Venues {
		out = append(out, venueJSON(v))
	}
	return out
}

func (s *Server) caterings() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Caterings))
	for _, c := range s.catalog.Caterings {
		out = append(out, cateringJSON(c))
	}
	return out
}

func (s *Server) dishes() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Dishes))
	for _, d := range s.catalog.Dishes {
		out = append(out, gin.H{
			"dish_id":               d.ID,
			"dish_name":             d.Name,
			"dish_type":             string(d.Type),
			"dish_cost_per_serving": d.CostPerServing,
		})
	}
	return out
}

func (s *Server) decorations() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Decorations))
	for _, d := range s.catalog.Decorations {
		out = append(out, decorationJSON(d))
	}
	return out
}

// cars reports the live stock, not the quantity the catalog started with.
func (s *Server) cars() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Cars))
	for _, c := range s.catalog.Cars {
		out = append(out, gin.H{
			"car_id":           c.ID,
			"car_make":         c.Make,
			"car_model":        c.Model,
			"car_year":         c.Year,
			"car_rental_price": c.RentalPrice,
			"car_quantity":     s.stock[c.ID],
		})
	}
	return out
}

func (s *Server) promos() []gin.H {
	out := make([]gin.H, 0, len(s.catalog.Promos))
	for _, p := range s.catalog.Promos {
		out = append(out, promoJSON(p))
	}
	return out
}

func (s *Server) venue(id uuid.UUID) *catalog.Venue {
	for i := range s.catalog.Venues {
		if s.catalog.Venues[i].ID == id {
			return &s.catalog.Venues[i]
		}
	}
	return nil
}

func (s *Server) user(id uuid.UUID) User {
	for _, a := range s.accounts {
		if a.User.UserID == id {
			return a.User
		}
	}
	return User{UserID: id}
}

func (s *Server) bookingJSON(b *booking) gin.H {
	out := gin.H{
		"booking_id":          b.BookingID,
		"booking_date":        naive(b.BookingDate),
		"booking_event_date":  naive(b.BookingEventDate),
		"booking_guest_count": b.BookingGuestCount,
		"booking_status":      b.BookingStatus,
		"user":                s.user(b.UserID),
		"payment":             b.Payment,
	}
	if v := s.venue(b.VenueID); v != nil {
		out["venue"] = venueJSON(*v)
	} else {
		out["venue"] = gin.H{"venue_id": b.VenueID}
	}
	if b.CateringID != nil {
		for _, c := range s.catalog.Caterings {
			if c.ID == *b.CateringID {
				out["catering"] = cateringJSON(c)
			}
		}
	}
	if b.DecorationID != nil {
		for _, d := range s.catalog.Decorations {
			if d.ID == *b.DecorationID {
				out["decoration"] = decorationJSON(d)
			}
		}
	}
	if b.PromoID != nil {
		for _, p := range s.catalog.Promos {
			if p.ID == *b.PromoID {
				out["promo"] = promoJSON(p)
			}
		}
	}

	res := make([]reservation, 0)
	for _, r := range s.reservations {
		if r.BookingID == b.BookingID {
			res = append(res, r)
		}
	}
	out["car_reservations"] = res
	return out
}
