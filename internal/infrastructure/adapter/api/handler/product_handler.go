package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kondo-pos/pos-backend/internal/domain/entity"
	domainerr "github.com/kondo-pos/pos-backend/internal/domain/error"
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"
	"github.com/kondo-pos/pos-backend/internal/domain/port/usecase"
	"github.com/kondo-pos/pos-backend/internal/infrastructure/adapter/api/dto"
)

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	catalog usecase.CatalogUseCase
	logger  coreport.Logger
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(catalog usecase.CatalogUseCase, logger coreport.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// Search handles GET /api/product-search?code=. A miss answers 200 with null.
func (h *ProductHandler) Search(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		respondError(c, invalidRequest("code is required"))
		return
	}

	product, found, err := h.catalog.FindByCode(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// GetByCode handles GET /api/products/code/:code
func (h *ProductHandler) GetByCode(c *gin.Context) {
	product, found, err := h.catalog.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, domainerr.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	product, found, err := h.catalog.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, domainerr.ErrProductNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindError(err))
		return
	}

	products, err := h.catalog.List(c.Request.Context(), entity.ProductFilter{
		Offset: query.Skip,
		Limit:  query.Limit,
		Search: query.Search,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductListResponse(products))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := bindBodyOrQuery(c, &req); err != nil {
		h.logger.Warn("Invalid product request format", map[string]any{
			"error": err.Error(),
		})
		respondError(c, bindError(err))
		return
	}

	product, err := h.catalog.Create(c.Request.Context(), req.Code, req.Name, *req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := bindBodyOrQuery(c, &req); err != nil {
		respondError(c, bindError(err))
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), id, entity.ProductUpdate{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Product deleted", ProductID: id})
}

// bindBodyOrQuery reads a JSON body when one is sent and the query string otherwise
func bindBodyOrQuery(c *gin.Context, obj any) error {
	if c.Request.ContentLength > 0 {
		return c.ShouldBindJSON(obj)
	}
	return c.ShouldBindQuery(obj)
}
