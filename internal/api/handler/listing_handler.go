package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
	"github.com/wanderhub/travel-listings/internal/session"
)

type ListingHandler struct {
	listingService ports.ListingService
}

func NewListingHandler(listingService ports.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

type listingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Img         string  `json:"img"`
}

type listingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	// PrimaryAction is what a listing card offers the current session:
	// manage for admins, book for users, login otherwise.
	PrimaryAction session.Action `json:"primary_action"`
}

// List returns all listings together with the session's primary action.
//
// @Summary      Browse listings
// @Tags         listings
// @Produce      json
// @Success      200  {object}  listingsResponse
// @Router       /v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.listingService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listingsResponse{
		Listings:      listings,
		PrimaryAction: session.PrimaryListingAction(ctxSession(c)),
	})
}

// Get returns one listing with its rating aggregate.
//
// @Summary      Listing detail
// @Tags         listings
// @Produce      json
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.ListingDetail
// @Failure      404  {object}  map[string]string
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	detail, err := h.listingService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Create adds a listing to the catalog. Admin only.
//
// @Summary      Create listing
// @Tags         listings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      listingRequest  true  "Listing fields"
// @Success      201   {object}  domain.Listing
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingService.Create(c.Request().Context(), ports.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Img:         req.Img,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, listing)
}

// Update replaces a listing's fields. Admin only.
//
// @Summary      Update listing
// @Tags         listings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Listing id"
// @Param        body  body      listingRequest  true  "Listing fields"
// @Success      200   {object}  domain.Listing
// @Failure      404   {object}  map[string]string
// @Router       /v1/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingService.Update(c.Request().Context(), ports.UpdateListingInput{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Img:         req.Img,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Delete removes a listing. Admin only.
//
// @Summary      Delete listing
// @Tags         listings
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  string  true  "Listing id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	if err := h.listingService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
