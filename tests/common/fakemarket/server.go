//go:build unit || e2e

// Package fakemarket is an in-memory stand-in for the marketplace API. It
// speaks the same routes and JSON shapes as the real service so the console
// can be exercised end to end without it.
package fakemarket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"wedding-console/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const tokenCookie = "access_token"

type account struct {
	User     User
	Password string
}

type User struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"is_admin"`
}

type payment struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	PaymentMethod string    `json:"payment_method"`
	TotalAmount   int64     `json:"total_amount"`
	Discount      float64   `json:"discount"`
	AmountPayed   int64     `json:"amount_payed"`
}

type reservation struct {
	CarReservationID uuid.UUID `json:"car_reservation_id"`
	CarID            uuid.UUID `json:"car_id"`
	BookingID        uuid.UUID `json:"booking_id"`
}

type booking struct {
	BookingID         uuid.UUID
	BookingDate       time.Time
	BookingEventDate  time.Time
	BookingGuestCount int
	BookingStatus     string
	UserID            uuid.UUID
	VenueID           uuid.UUID
	CateringID        *uuid.UUID
	DecorationID      *uuid.UUID
	PromoID           *uuid.UUID
	Payment           payment
}

// Server holds the marketplace state. All methods are safe for concurrent use.
type Server struct {
	mu           sync.Mutex
	initial      catalog.SnapshotData
	accounts     map[string]*account // by email
	tokens       map[string]uuid.UUID
	catalog      catalog.SnapshotData
	stock        map[uuid.UUID]int
	bookings     map[uuid.UUID]*booking
	reservations map[uuid.UUID]reservation
	reviews      map[uuid.UUID]*venueReview
	failCatalog  bool

	srv *httptest.Server
}

// Start serves data until the test ends.
func Start(t *testing.T, data catalog.SnapshotData) *Server {
	t.Helper()

	s := &Server{initial: data}
	s.Reset()

	s.srv = httptest.NewServer(s.routes())
	t.Cleanup(s.srv.Close)
	return s
}

// Reset drops accounts and bookings and restores the catalog and stock it
// was started with.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]*account)
	s.tokens = make(map[string]uuid.UUID)
	s.bookings = make(map[uuid.UUID]*booking)
	s.reservations = make(map[uuid.UUID]reservation)
	s.reviews = make(map[uuid.UUID]*venueReview)
	s.stock = make(map[uuid.UUID]int)
	s.catalog = s.initial
	s.catalog.Venues = slices.Clone(s.initial.Venues)
	s.catalog.Caterings = make([]catalog.Catering, len(s.initial.Caterings))
	for i, c := range s.initial.Caterings {
		c.MenuDishIDs = slices.Clone(c.MenuDishIDs)
		s.catalog.Caterings[i] = c
	}
	s.catalog.Dishes = slices.Clone(s.initial.Dishes)
	s.catalog.Decorations = slices.Clone(s.initial.Decorations)
	s.catalog.Cars = slices.Clone(s.initial.Cars)
	s.catalog.Promos = slices.Clone(s.initial.Promos)
	for _, c := range s.initial.Cars {
		s.stock[c.ID] = c.Quantity
	}
	s.failCatalog = false
}

// FailCatalog makes every catalog listing answer 503 while on.
func (s *Server) FailCatalog(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCatalog = on
}

func (s *Server) URL() string {
	return s.srv.URL
}

// AddAdmin registers an account with admin rights. Signup never grants them.
func (s *Server) AddAdmin(username, email, password string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{UserID: uuid.New(), Username: username, Email: email, IsAdmin: true}
	s.accounts[email] = &account{User: u, Password: password}
	return u
}

// Stock reports the units of the car still available.
func (s *Server) Stock(carID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[carID]
}

func (s *Server) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *Server) routes() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	users := r.Group("/users")
	users.POST("/signup", s.signup)
	users.POST("/login", s.login)
	users.GET("/logout", s.authed(s.logout))
	users.GET("/me", s.authed(s.me))
	users.GET("/", s.authed(s.adminOnly(s.listUsers)))

	r.GET("/venues/", s.listing(func() any { return s.venues() }))
	r.GET("/caterings/", s.listing(func() any { return s.caterings() }))
	r.GET("/caterings/dishes", s.listing(func() any { return s.dishes() }))
	r.GET("/decorations/", s.listing(func() any { return s.decorations() }))
	r.GET("/cars/", s.listing(func() any { return s.cars() }))
	r.GET("/promos/", s.listing(func() any { return s.promos() }))

	r.GET("/venues/reviews/:id", s.venueReviews)
	r.POST("/venues/reviews/:id", s.authed(s.createReview))
	r.DELETE("/venues/reviews/:id", s.authed(s.deleteReview))

	r.DELETE("/venues/:id", s.authed(s.adminOnly(s.deleteVenue)))
	r.DELETE("/caterings/:id", s.authed(s.adminOnly(s.deleteCatering)))
	r.DELETE("/caterings/dishes/:id", s.authed(s.adminOnly(s.deleteDish)))
	r.DELETE("/decorations/:id", s.authed(s.adminOnly(s.deleteDecoration)))
	r.DELETE("/cars/:id", s.authed(s.adminOnly(s.deleteCar)))
	r.POST("/caterings/:id/dishes/:dish_id", s.authed(s.adminOnly(s.linkDish)))
	r.DELETE("/caterings/:id/dishes/:dish_id", s.authed(s.adminOnly(s.unlinkDish)))

	r.POST("/promos/", s.authed(s.adminOnly(s.createPromo)))
	r.DELETE("/promos/:id", s.authed(s.adminOnly(s.deletePromo)))

	r.GET("/bookings/", s.authed(s.adminOnly(s.allBookings)))
	r.GET("/bookings/me", s.authed(s.myBookings))
	r.POST("/bookings/", s.authed(s.createBooking))
	r.GET("/bookings/:id", s.authed(s.getBooking))
	r.PATCH("/bookings/:id", s.authed(s.updateBooking))
	r.DELETE("/bookings/:id", s.authed(s.deleteBooking))

	r.POST("/cars/:car_id/:booking_id", s.authed(s.reserveCar))
	r.DELETE("/cars/reservations/:id", s.authed(s.releaseCar))

	return r
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// authed runs next with the caller's account, or answers 401. The mutex is
// held for the whole handler.
func (s *Server) authed(next func(*gin.Context, User)) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		token, err := c.Cookie(tokenCookie)
		if err != nil {
			detail(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		id, ok := s.tokens[token]
		if !ok {
			detail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		for _, a := range s.accounts {
			if a.User.UserID == id {
				next(c, a.User)
				return
			}
		}
		detail(c, http.StatusUnauthorized, "User not found")
	}
}

func (s *Server) adminOnly(next func(*gin.Context, User)) func(*gin.Context, User) {
	return func(c *gin.Context, u User) {
		if !u.IsAdmin {
			detail(c, http.StatusForbidden, "Admin privileges required")
			return
		}
		next(c, u)
	}
}

func (s *Server) listing(rows func() any) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.failCatalog {
			detail(c, http.StatusServiceUnavailable, "catalog unavailable")
			return
		}
		c.JSON(http.StatusOK, rows())
	}
}

func (s *Server) issueToken(c *gin.Context, u User) {
	token := uuid.NewString()
	s.tokens[token] = u.UserID
	c.SetCookie(tokenCookie, token, 3600, "/", "", false, true)
	c.JSON(http.StatusOK, u)
}

func (s *Server) signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		detail(c, http.StatusConflict, "Email already registered")
		return
	}
	u := User{UserID: uuid.New(), Username: req.Username, Email: req.Email}
	s.accounts[req.Email] = &account{User: u, Password: req.Password}
	s.issueToken(c, u)
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[req.Email]
	if !ok || a.Password != req.Password {
		detail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	s.issueToken(c, a.User)
}

func (s *Server) logout(c *gin.Context, _ User) {
	token, _ := c.Cookie(tokenCookie)
	delete(s.tokens, token)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (s *Server) me(c *gin.Context, u User) {
	c.JSON(http.StatusOK, u)
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		detail(c, http.StatusUnprocessableEntity, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) createPromo(c *gin.Context, _ User) {
	var req struct {
		PromoName     string    `json:"promo_name"`
		PromoExpiry   time.Time `json:"promo_expiry"`
		PromoDiscount float64   `json:"promo_discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	p := catalog.Promo{ID: uuid.New(), Name: req.PromoName, Discount: req.PromoDiscount, Expiry: req.PromoExpiry}
	s.catalog.Promos = append(s.catalog.Promos, p)
	c.JSON(http.StatusCreated, promoJSON(p))
}

func (s *Server) deletePromo(c *gin.Context, _ User) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	for i, p := range s.catalog.Promos {
		if p.ID == id {
			s.catalog.Promos = append(s.catalog.Promos[:i], s.catalog.Promos[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	detail(c, http.StatusNotFound, "Promo not found")
}

func (s *Server) allBookings(c *gin.Context, _ User) {
	out := make([]gin.H, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, s.bookingJSON(b))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) myBookings(c *gin.Context, u User) {
	out := make([]gin.H, 0)
	for _, b := range s.bookings {
		if b.UserID == u.UserID {
			out = append(out, s.bookingJSON(b))
		}
	}
	c.JSON(http.StatusOK, out)
}

// lookup answers 404 for unknown bookings and 403 for other users' bookings
// when the caller is not an admin.
func (s *Server) lookup(c *gin.Context, u User) (*booking, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	b, ok := s.bookings[id]
	if !ok {
		detail(c, http.StatusNotFound, "Booking not found")
		return nil, false
	}
	if !u.IsAdmin && b.UserID != u.UserID {
		detail(c, http.StatusForbidden, "Not your booking")
		return nil, false
	}
	return b, true
}

func (s *Server) getBooking(c *gin.Context, u User) {
	if b, ok := s.lookup(c, u); ok {
		c.JSON(http.StatusOK, s.bookingJSON(b))
	}
}

type bookingBody struct {
	Booking map[string]json.RawMessage `json:"booking"`
	Payment *struct {
		AmountPayed   int64   `json:"amount_payed"`
		TotalAmount   int64   `json:"total_amount"`
		PaymentMethod string  `json:"payment_method"`
		Discount      float64 `json:"discount"`
	} `json:"payment"`
}

// apply copies every key present in the body onto b. Explicit nulls clear
// optional ids.
func (body bookingBody) apply(b *booking) error {
	fields := map[string]any{
		"booking_event_date":  &b.BookingEventDate,
		"booking_guest_count": &b.BookingGuestCount,
		"booking_status":      &b.BookingStatus,
		"user_id":             &b.UserID,
		"venue_id":            &b.VenueID,
		"catering_id":         &b.CateringID,
		"decoration_id":       &b.DecorationID,
		"promo_id":            &b.PromoID,
	}
	for key, raw := range body.Booking {
		dst, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return err
		}
	}
	if body.Payment != nil && body.Payment.PaymentMethod != "" {
		b.Payment.PaymentMethod = body.Payment.PaymentMethod
		b.Payment.TotalAmount = body.Payment.TotalAmount
		b.Payment.Discount = body.Payment.Discount
		b.Payment.AmountPayed = body.Payment.AmountPayed
	}
	return nil
}

func (s *Server) createBooking(c *gin.Context, u User) {
	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	b := &booking{
		BookingID:   uuid.New(),
		BookingDate: time.Now().UTC(),
		Payment:     payment{PaymentID: uuid.New()},
	}
	if err := body.apply(b); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if b.UserID != u.UserID && !u.IsAdmin {
		detail(c, http.StatusForbidden, "Cannot book for another user")
		return
	}
	if s.venue(b.VenueID) == nil {
		detail(c, http.StatusNotFound, "Venue not found")
		return
	}

	s.bookings[b.BookingID] = b
	c.JSON(http.StatusCreated, s.bookingJSON(b))
}

func (s *Server) updateBooking(c *gin.Context, u User) {
	b, ok := s.lookup(c, u)
	if !ok {
		return
	}
	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := body.apply(b); err != nil {
		detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.JSON(http.StatusOK, s.bookingJSON(b))
}

func (s *Server) deleteBooking(c *gin.Context, u User) {
	b, ok := s.lookup(c, u)
	if !ok {
		return
	}
	for id, r := range s.reservations {
		if r.BookingID == b.BookingID {
			s.stock[r.CarID]++
			delete(s.reservations, id)
		}
	}
	delete(s.bookings, b.BookingID)
	c.Status(http.StatusNoContent)
}

func (s *Server) reserveCar(c *gin.Context, u User) {
	carID, ok := parseID(c, "car_id")
	if !ok {
		return
	}
	bookingID, ok := parseID(c, "booking_id")
	if !ok {
		return
	}
	b, exists := s.bookings[bookingID]
	if !exists || (!u.IsAdmin && b.UserID != u.UserID) {
		detail(c, http.StatusNotFound, "Booking not found")
		return
	}
	if s.stock[carID] <= 0 {
		detail(c, http.StatusNotFound, "Car not available")
		return
	}

	s.stock[carID]--
	r := reservation{CarReservationID: uuid.New(), CarID: carID, BookingID: bookingID}
	s.reservations[r.CarReservationID] = r
	c.JSON(http.StatusCreated, r)
}

func (s *Server) releaseCar(c *gin.Context, _ User) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, exists := s.reservations[id]
	if !exists {
		detail(c, http.StatusNotFound, "Reservation not found")
		return
	}
	s.stock[r.CarID]++
	delete(s.reservations, id)
	c.Status(http.StatusNoContent)
}
