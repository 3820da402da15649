package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/api/metrics"
	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type createBookingRequest struct {
	ListingID string    `json:"listing_id" validate:"required"`
	From      time.Time `json:"from" validate:"required"`
	To        time.Time `json:"to" validate:"required"`
	NumGuests int       `json:"num_guests" validate:"gte=0"`
}

type bookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
}

// Create books a listing for the authenticated user. The booking is priced
// at the listing's current price; the client sends no amount.
//
// @Summary      Book a listing
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookingService.Create(c.Request().Context(), ports.CreateBookingInput{
		ListingID: req.ListingID,
		From:      req.From,
		To:        req.To,
		NumGuests: req.NumGuests,
		UserEmail: email,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ListMine returns the authenticated user's bookings, newest first.
//
// @Summary      My bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  bookingsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.ListForUser(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingsResponse{Bookings: bookings})
}

// ListAll returns every booking. Admin only.
//
// @Summary      All bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  bookingsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookingService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingsResponse{Bookings: bookings})
}
