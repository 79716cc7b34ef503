package api

import (
	"encoding/json"
	"net/http"

	"devfolio/database"
	"devfolio/errs"
	"devfolio/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type productHandler struct {
	responder   Responder
	logger      zerolog.Logger
	productRepo *database.ProductRepo
}

func newProductHandler(productRepo *database.ProductRepo) productHandler {
	logger := log.With().Str("handlerName", "productHandler").Logger()

	return productHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		productRepo: productRepo,
	}
}

// getAllProducts lists every product.
// @Summary Get all products
// @Tags Products
// @Produce json
// @Success 200 {array} models.Product "List of products"
// @Failure 500 {object} MessageResponse "Error fetching products"
// @Router /api/products [get]
func (h productHandler) getAllProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := h.productRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "products", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, products)
	}
}

// getProduct retrieves a specific product by ID.
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product "Product details"
// @Failure 400 {object} MessageResponse "Invalid id"
// @Failure 404 {object} MessageResponse "Product not found"
// @Failure 500 {object} MessageResponse "Error fetching product"
// @Router /api/products/{id} [get]
func (h productHandler) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		product, err := h.productRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "product", err))
			return
		}

		if product == nil {
			h.responder.WriteError(w, errs.NewNotFound("Product"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, product)
	}
}

// createProduct creates a new product.
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product data"
// @Success 201 {object} models.Product "Created product"
// @Failure 400 {object} ValidationErrorResponse "Invalid product data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Error creating product"
// @Router /api/products [post]
func (h productHandler) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&product); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		product.ID = 0

		if err := h.productRepo.Add(&product); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "product", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, product)
	}
}

// updateProduct fully replaces an existing product.
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.Product true "Updated product data"
// @Success 200 {object} models.Product "Updated product"
// @Failure 400 {object} ValidationErrorResponse "Invalid product data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "Product not found"
// @Failure 500 {object} MessageResponse "Error updating product"
// @Router /api/products/{id} [put]
func (h productHandler) updateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var product models.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode product request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&product); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		updated, err := h.productRepo.Update(id, &product)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "product", err))
			return
		}

		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFound("Product"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}

// deleteProduct deletes a product by ID.
// @Summary Delete product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} SuccessResponse "Product deleted"
// @Failure 400 {object} MessageResponse "Invalid id"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "Product not found"
// @Failure 500 {object} MessageResponse "Error deleting product"
// @Router /api/products/{id} [delete]
func (h productHandler) deleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		deleted, err := h.productRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "product", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("Product"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
