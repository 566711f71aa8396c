package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"greeniecart/internal/delivery/http/response"
	"greeniecart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the shared marketplace, optionally filtered by name search.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "Products retrieved successfully")
}

// ListMine returns the acting user's own listings.
func (h *ProductHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products), "Products retrieved successfully")
}

// Get returns a single product.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid id parameter")
	}

	product, err := h.uc.Get(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product retrieved successfully")
}

// Create handles the multipart product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fields, bindMsg := bindProductForm(c)
	if bindMsg != "" {
		return response.BindingError(c, "INVALID_INPUT", bindMsg)
	}

	image, file, bindMsg := bindProductImage(c)
	if bindMsg != "" {
		return response.BindingError(c, "INVALID_INPUT", bindMsg)
	}
	if file != nil {
		defer file.Close()
	}

	input := &usecase.CreateProductInput{
		Name:  fields.name,
		Price: fields.price,
		Stock: fields.stock,
		Image: image,
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product), "Product created successfully")
}

// Update handles the multipart product edit request. The image part is
// optional; without it the current image is kept.
func (h *ProductHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid id parameter")
	}

	fields, bindMsg := bindProductForm(c)
	if bindMsg != "" {
		return response.BindingError(c, "INVALID_INPUT", bindMsg)
	}

	image, file, bindMsg := bindProductImage(c)
	if bindMsg != "" {
		return response.BindingError(c, "INVALID_INPUT", bindMsg)
	}
	if file != nil {
		defer file.Close()
	}

	input := &usecase.UpdateProductInput{
		ID:    productID,
		Name:  fields.name,
		Price: fields.price,
		Stock: fields.stock,
		Image: image,
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductView(product), "Product updated successfully")
}

// Delete removes one of the acting user's listings.
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, ok := pathID(c, "id")
	if !ok {
		return response.BindingError(c, "INVALID_INPUT", "Invalid id parameter")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

type productFormFields struct {
	name  string
	price float64
	stock int
}

// bindProductForm parses the scalar multipart fields. A non-empty second
// return value is the user-facing binding failure message.
func bindProductForm(c echo.Context) (productFormFields, string) {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return productFormFields{}, "Price must be a number"
	}

	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return productFormFields{}, "Stock must be an integer"
	}

	return productFormFields{
		name:  c.FormValue("name"),
		price: price,
		stock: stock,
	}, ""
}

// bindProductImage opens the uploaded image part. A missing part is not an
// error here; whether an image is required is the usecase's call.
func bindProductImage(c echo.Context) (*usecase.ProductImageInput, multipart.File, string) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, ""
		}

		return nil, nil, "Invalid image upload"
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, "Could not read image upload"
	}

	return &usecase.ProductImageInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, file, ""
}
