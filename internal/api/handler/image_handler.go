package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type ImageHandler struct {
	storage ports.ObjectStorage
}

func NewImageHandler(storage ports.ObjectStorage) *ImageHandler {
	return &ImageHandler{storage: storage}
}

type uploadImageResponse struct {
	ID string `json:"id"`
}

// Upload stores a listing image and returns its identifier, which belongs
// in the listing's img field. Admin only.
//
// @Summary      Upload listing image
// @Tags         images
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      201   {object}  uploadImageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	id, err := h.storage.Upload(c.Request().Context(), fh.Filename, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, uploadImageResponse{ID: id})
}

// Get streams a stored image. Public, like the listings that embed them.
//
// @Summary      Fetch image
// @Tags         images
// @Produce      octet-stream
// @Param        id   path  string  true  "Image id"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /v1/images/{id} [get]
func (h *ImageHandler) Get(c echo.Context) error {
	stream, err := h.storage.Open(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer stream.Close()

	return c.Stream(http.StatusOK, "application/octet-stream", stream)
}
