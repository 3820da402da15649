package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/api/metrics"
	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type RatingHandler struct {
	ratingService ports.RatingService
}

func NewRatingHandler(ratingService ports.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type createRatingRequest struct {
	Score  float64 `json:"rating" validate:"gte=0,lte=5"`
	Review string  `json:"review"`
}

type ratingsResponse struct {
	Ratings []domain.Rating      `json:"ratings"`
	Summary domain.RatingSummary `json:"summary"`
}

// Create records the authenticated user's rating for a listing.
//
// @Summary      Rate a listing
// @Tags         ratings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Listing id"
// @Param        body  body      createRatingRequest  true  "Score and review"
// @Success      201   {object}  domain.Rating
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/listings/{id}/ratings [post]
func (h *RatingHandler) Create(c echo.Context) error {
	_, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.ratingService.Create(c.Request().Context(), ports.CreateRatingInput{
		ListingID: c.Param("id"),
		Score:     req.Score,
		Review:    req.Review,
		UserEmail: email,
	})
	if err != nil {
		return err
	}

	metrics.RatingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, rating)
}

// ListForListing returns a listing's ratings with their aggregate.
//
// @Summary      Listing ratings
// @Tags         ratings
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  ratingsResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/listings/{id}/ratings [get]
func (h *RatingHandler) ListForListing(c echo.Context) error {
	ratings, summary, err := h.ratingService.ListForListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratingsResponse{Ratings: ratings, Summary: summary})
}

// ListAll returns every rating. Admin only.
//
// @Summary      All ratings
// @Tags         ratings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   domain.Rating
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/ratings [get]
func (h *RatingHandler) ListAll(c echo.Context) error {
	ratings, err := h.ratingService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ratings)
}
