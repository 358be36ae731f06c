//go:build unit || e2e

package fakemarket

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type venueReview struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	UserID    uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
}

// AddReview stores a review directly, bypassing the admin check.
func (s *Server) AddReview(venueID, userID uuid.UUID, rating int, text string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &venueReview{ID: uuid.New(), VenueID: venueID, UserID: userID, Text: text, Rating: rating, CreatedAt: time.Now().UTC()}
	s.reviews[r.ID] = r
	return r.ID
}

func (s *Server) ReviewCount(venueID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.reviews {
		if r.VenueID == venueID {
			n++
		}
	}
	return n
}

// MenuDishIDs reports the catering's current menu, or nil when it is gone.
func (s *Server) MenuDishIDs(cateringID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.catering(cateringID); c != nil {
		return slices.Clone(c.MenuDishIDs)
	}
	return nil
}

func (s *Server) reviewJSON(r *venueReview) gin.H {
	return gin.H{
		"venue_review_id":         r.ID,
		"venue_id":                r.VenueID,
		"user":                    s.user(r.UserID),
		"venue_review_text":       r.Text,
		"venue_rating":            r.Rating,
		"venue_review_created_at": naive(r.CreatedAt),
	}
}

func (s *Server) venueReviews(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if s.venue(id) == nil {
		detail(c, http.StatusNotFound, "Venue not found")
		return
	}
	out := make([]gin.H, 0)
	for _, r := range s.reviews {
		if r.VenueID == id {
			out = append(out, s.reviewJSON(r))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createReview(c *gin.Context, u User) {
	if u.IsAdmin {
		detail(c, http.StatusForbidden, "Admins cannot submit reviews")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req struct {
		VenueRating     int    `json:"venue_rating"`
		VenueReviewText string `json:"venue_review_text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.VenueRating < 1 || strings.TrimSpace(req.VenueReviewText) == "" {
		detail(c, http.StatusUnprocessableEntity, "invalid review")
		return
	}
	if s.venue(id) == nil {
		detail(c, http.StatusNotFound, "Venue not found")
		return
	}

	r := &venueReview{ID: uuid.New(), VenueID: id, UserID: u.UserID, Text: req.VenueReviewText, Rating: req.VenueRating, CreatedAt: time.Now().UTC()}
	s.reviews[r.ID] = r
	c.JSON(http.StatusCreated, s.reviewJSON(r))
}

func (s *Server) deleteReview(c *gin.Context, u User) {
	if u.IsAdmin {
		detail(c, http.StatusForbidden, "Admins cannot delete reviews")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, exists := s.reviews[id]
	if !exists || r.UserID != u.UserID {
		detail(c, http.StatusNotFound, "Review not found")
		return
	}
	delete(s.reviews, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) listUsers(c *gin.Context, _ User) {
	out := make([]User, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.User)
	}
	c.JSON(http.StatusOK, out)
}

// removeByID deletes the item whose idOf matches and reports whether one did.
func removeByID[T any](items *[]T, id uuid.UUID, idOf func(T) uuid.UUID) bool {
	n := len(*items)
	*items = slices.DeleteFunc(*items, func(v T) bool { return idOf(v) == id })
	return len(*items) != n
}

func (s *Server) deleteItem(notFound string, remove func(uuid.UUID) bool) func(*gin.Context, User) {
	return func(c *gin.Context, _ User) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}
		if !remove(id) {
			detail(c, http.StatusNotFound, notFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// deleteVenue cascades to the venue's reviews.
func (s *Server) deleteVenue(c *gin.Context, u User) {
	s.deleteItem("Venue not found", func(id uuid.UUID) bool {
		if !removeByID(&s.catalog.Venues, id, func(v catalog.Venue) uuid.UUID { return v.ID }) {
			return false
		}
		for rid, r := range s.reviews {
			if r.VenueID == id {
				delete(s.reviews, rid)
			}
		}
		return true
	})(c, u)
}

func (s *Server) deleteCatering(c *gin.Context, u User) {
	s.deleteItem("Catering not found", func(id uuid.UUID) bool {
		return removeByID(&s.catalog.Caterings, id, func(v catalog.Catering) uuid.UUID { return v.ID })
	})(c, u)
}

// deleteDish also takes the dish off every menu.
func (s *Server) deleteDish(c *gin.Context, u User) {
	s.deleteItem("Dish not found", func(id uuid.UUID) bool {
		if !removeByID(&s.catalog.Dishes, id, func(v catalog.Dish) uuid.UUID { return v.ID }) {
			return false
		}
		for i := range s.catalog.Caterings {
			s.catalog.Caterings[i].MenuDishIDs = slices.DeleteFunc(s.catalog.Caterings[i].MenuDishIDs,
				func(d uuid.UUID) bool { return d == id })
		}
		return true
	})(c, u)
}

func (s *Server) deleteDecoration(c *gin.Context, u User) {
	s.deleteItem("Decoration not found", func(id uuid.UUID) bool {
		return removeByID(&s.catalog.Decorations, id, func(v catalog.Decoration) uuid.UUID { return v.ID })
	})(c, u)
}

func (s *Server) deleteCar(c *gin.Context, u User) {
	s.deleteItem("Car not found", func(id uuid.UUID) bool {
		if !removeByID(&s.catalog.Cars, id, func(v catalog.Car) uuid.UUID { return v.ID }) {
			return false
		}
		delete(s.stock, id)
		return true
	})(c, u)
}

func (s *Server) catering(id uuid.UUID) *catalog.Catering {
	for i := range s.catalog.Caterings {
		if s.catalog.Caterings[i].ID == id {
			return &s.catalog.Caterings[i]
		}
	}
	return nil
}

func (s *Server) menuTarget(c *gin.Context) (*catalog.Catering, uuid.UUID, bool) {
	cateringID, ok := parseID(c, "id")
	if !ok {
		return nil, uuid.Nil, false
	}
	dishID, ok := parseID(c, "dish_id")
	if !ok {
		return nil, uuid.Nil, false
	}
	cat := s.catering(cateringID)
	if cat == nil {
		detail(c, http.StatusNotFound, "Catering not found")
		return nil, uuid.Nil, false
	}
	return cat, dishID, true
}

func (s *Server) linkDish(c *gin.Context, _ User) {
	cat, dishID, ok := s.menuTarget(c)
	if !ok {
		return
	}
	if !slices.ContainsFunc(s.catalog.Dishes, func(d catalog.Dish) bool { return d.ID == dishID }) {
		detail(c, http.StatusNotFound, "Dish not found")
		return
	}
	if slices.Contains(cat.MenuDishIDs, dishID) {
		detail(c, http.StatusBadRequest, "Dish already exists in catering")
		return
	}
	cat.MenuDishIDs = append(cat.MenuDishIDs, dishID)
	c.JSON(http.StatusCreated, gin.H{"catering_id": cat.ID, "dish_id": dishID})
}

func (s *Server) unlinkDish(c *gin.Context, _ User) {
	cat, dishID, ok := s.menuTarget(c)
	if !ok {
		return
	}
	n := len(cat.MenuDishIDs)
	cat.MenuDishIDs = slices.DeleteFunc(cat.MenuDishIDs, func(d uuid.UUID) bool { return d == dishID })
	if len(cat.MenuDishIDs) == n {
		detail(c, http.StatusNotFound, "Menu item not found")
		return
	}
	c.Status(http.StatusNoContent)
}
